package state

import (
	"errors"
	"fmt"

	"github.com/atomicstack/settings-menu/internal/menu"
)

const (
	StatusCommitted = "committed"
	StatusCancelled = "cancelled"
)

// ErrEditing is returned by operations that require the browsing mode.
var ErrEditing = errors.New("edit in progress")

// Outcome tells the caller whether to keep running the input loop.
type Outcome int

const (
	Continue Outcome = iota
	Terminate
)

// mode is either browsing or *editing; navigation is only reachable from the
// browsing handlers.
type mode interface {
	isMode()
}

type browsing struct{}

type editing struct {
	target menu.Handle
	buf    *EditBuffer
}

func (browsing) isMode() {}
func (*editing) isMode() {}

// transition is what a handler wants applied once it returns.
type transition struct {
	redraw    bool
	status    string
	setStatus bool
}

// Controller owns the navigation and edit state for one menu tree and turns
// input events into mutations of that state.
type Controller struct {
	tree   Tree
	nav    Navigation
	mode   mode
	dirty  bool
	status string
}

// NewController starts browsing at the root of tree.
func NewController(tree Tree) (*Controller, error) {
	c := &Controller{
		tree:  tree,
		nav:   newNavigation(tree.Root()),
		mode:  browsing{},
		dirty: true,
	}
	status, err := c.selectionStatus()
	if err != nil {
		return nil, fmt.Errorf("init controller: %w", err)
	}
	c.status = status
	return c, nil
}

// Dispatch routes ev through the active mode. Errors indicate a broken tree
// and leave the state untouched.
func (c *Controller) Dispatch(ev Event) (Outcome, error) {
	if ev.Kind == Quit {
		return Terminate, nil
	}
	var (
		tr  transition
		err error
	)
	prevNav, prevMode := c.nav.clone(), c.mode
	switch m := c.mode.(type) {
	case *editing:
		tr, err = c.edit(m, ev)
	default:
		tr, err = c.browse(ev)
	}
	if err != nil {
		c.nav, c.mode = prevNav, prevMode
		return Continue, fmt.Errorf("%s: %w", ev, err)
	}
	if tr.redraw {
		c.dirty = true
	}
	if tr.setStatus {
		c.status = tr.status
	}
	return Continue, nil
}

// Open descends through chain as if Enter were pressed on each menu in turn.
// Every element must be a selectable menu child of the one before it, the
// first being a child of the current menu.
func (c *Controller) Open(chain []menu.Handle) error {
	if _, ok := c.mode.(*editing); ok {
		return ErrEditing
	}
	nav := c.nav.clone()
	for _, target := range chain {
		children, err := c.tree.SelectableChildren(nav.menu)
		if err != nil {
			return fmt.Errorf("open: %w", err)
		}
		idx := -1
		for i, child := range children {
			if child == target {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("open: %w: %s is not a child of %s", menu.ErrInvalidHandle, target, nav.menu)
		}
		entry, err := c.tree.Get(target)
		if err != nil {
			return fmt.Errorf("open: %w", err)
		}
		if !entry.IsMenu() {
			return fmt.Errorf("open: %w: %q", menu.ErrNotMenu, entry.Name)
		}
		nav.index = idx
		nav.descend(target)
	}
	prev := c.nav
	c.nav = nav
	status, err := c.selectionStatus()
	if err != nil {
		c.nav = prev
		return fmt.Errorf("open: %w", err)
	}
	c.status = status
	c.dirty = true
	return nil
}

func (c *Controller) browse(ev Event) (transition, error) {
	switch ev.Kind {
	case MoveUp:
		return c.afterMove(c.nav.moveBy(c.tree, -1))
	case MoveDown:
		return c.afterMove(c.nav.moveBy(c.tree, 1))
	case MoveFirst:
		return c.afterMove(c.nav.moveFirst(c.tree))
	case MoveLast:
		return c.afterMove(c.nav.moveLast(c.tree))
	case Enter:
		return c.enter()
	case Back:
		return c.afterMove(c.nav.ascend(c.tree))
	case Resize:
		return transition{redraw: true}, nil
	}
	return transition{}, nil
}

func (c *Controller) afterMove(moved bool, err error) (transition, error) {
	if err != nil || !moved {
		return transition{}, err
	}
	status, err := c.selectionStatus()
	if err != nil {
		return transition{}, err
	}
	return transition{redraw: true, status: status, setStatus: true}, nil
}

func (c *Controller) enter() (transition, error) {
	target, ok, err := c.nav.selected(c.tree)
	if err != nil || !ok {
		return transition{}, err
	}
	entry, err := c.tree.Get(target)
	if err != nil {
		return transition{}, err
	}
	if entry.IsMenu() {
		c.nav.descend(target)
		return c.afterMove(true, nil)
	}
	c.mode = &editing{target: target, buf: NewEditBuffer(entry.Value)}
	return transition{redraw: true}, nil
}

func (c *Controller) edit(m *editing, ev Event) (transition, error) {
	changed := false
	switch ev.Kind {
	case InsertChar:
		changed = m.buf.Insert(ev.Char)
	case Backspace:
		changed = m.buf.DeleteBackward()
	case Delete:
		changed = m.buf.DeleteForward()
	case MoveCursorLeft:
		changed = m.buf.MoveLeft()
	case MoveCursorRight:
		changed = m.buf.MoveRight()
	case MoveCursorStart:
		changed = m.buf.MoveStart()
	case MoveCursorEnd:
		changed = m.buf.MoveEnd()
	case Commit:
		if err := c.tree.SetValue(m.target, m.buf.Value()); err != nil {
			return transition{}, err
		}
		c.mode = browsing{}
		return transition{redraw: true, status: StatusCommitted, setStatus: true}, nil
	case Cancel:
		c.mode = browsing{}
		return transition{redraw: true, status: StatusCancelled, setStatus: true}, nil
	case Resize:
		changed = true
	}
	return transition{redraw: changed}, nil
}

// selectionStatus describes the selected entry, or the current menu when it
// has nothing selectable.
func (c *Controller) selectionStatus() (string, error) {
	target, ok, err := c.nav.selected(c.tree)
	if err != nil {
		return "", err
	}
	if !ok {
		target = c.nav.menu
	}
	entry, err := c.tree.Get(target)
	if err != nil {
		return "", err
	}
	return entry.Description, nil
}

// Navigation returns a copy of the navigation state.
func (c *Controller) Navigation() Navigation {
	return c.nav.clone()
}

// Selected returns the entry under the selection, if the menu has any.
func (c *Controller) Selected() (menu.Handle, bool, error) {
	return c.nav.selected(c.tree)
}

// IsEditing reports whether an option is being edited.
func (c *Controller) IsEditing() bool {
	_, ok := c.mode.(*editing)
	return ok
}

// Editing returns the live edit state while an option is being edited.
func (c *Controller) Editing() (EditView, bool) {
	m, ok := c.mode.(*editing)
	if !ok {
		return EditView{}, false
	}
	return EditView{Target: m.target, Text: m.buf.Value(), Cursor: m.buf.Cursor()}, true
}

// Status returns the status line text.
func (c *Controller) Status() string {
	return c.status
}

// Dirty reports whether the screen needs repainting.
func (c *Controller) Dirty() bool {
	return c.dirty
}

// Painted is called by the renderer once a paint pass has completed.
func (c *Controller) Painted() {
	c.dirty = false
}

// EditView is a read-only copy of the edit buffer.
type EditView struct {
	Target menu.Handle
	Text   string
	Cursor int
}

// Split returns the text before the cursor, the rune under it ("" at the
// end), and the text after it.
func (v EditView) Split() (before, at, after string) {
	runes := []rune(v.Text)
	pos := v.Cursor
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	before = string(runes[:pos])
	if pos < len(runes) {
		at = string(runes[pos])
		after = string(runes[pos+1:])
	}
	return before, at, after
}
