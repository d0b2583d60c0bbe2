package state

import (
	"errors"
	"testing"

	"github.com/atomicstack/settings-menu/internal/menu"
)

type testTree struct {
	store    *menu.Store
	network  menu.Handle
	hostname menu.Handle
	proxy    menu.Handle
	port     menu.Handle
	empty    menu.Handle
}

// newTestTree builds:
//
//	root
//	  Network      (menu)
//	    -----      (filler)
//	    Proxy      (menu)
//	      Port = 3128
//	    Empty      (menu, no children)
//	  Hostname = box1
func newTestTree(t *testing.T) testTree {
	t.Helper()
	s := menu.NewStore("", "Root Menu")
	var tt testTree
	tt.store = s
	must := func(h menu.Handle, err error) menu.Handle {
		t.Helper()
		if err != nil {
			t.Fatalf("build tree: %v", err)
		}
		return h
	}
	tt.network = must(s.AddMenu(s.Root(), "Network", "Network settings"))
	tt.hostname = must(s.AddOption(s.Root(), "Hostname", "Machine name", "box1"))
	must(s.AddFiller(tt.network, "-----"))
	tt.proxy = must(s.AddMenu(tt.network, "Proxy", "Proxy settings"))
	tt.port = must(s.AddOption(tt.proxy, "Port", "Proxy port", "3128"))
	tt.empty = must(s.AddMenu(tt.network, "Empty", "Nothing here"))
	return tt
}

func newTestController(t *testing.T, tree Tree) *Controller {
	t.Helper()
	c, err := NewController(tree)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	return c
}

func dispatch(t *testing.T, c *Controller, events ...Event) {
	t.Helper()
	for _, ev := range events {
		if _, err := c.Dispatch(ev); err != nil {
			t.Fatalf("dispatch %s: %v", ev, err)
		}
	}
}

func selected(t *testing.T, c *Controller) menu.Handle {
	t.Helper()
	h, ok, err := c.Selected()
	if err != nil {
		t.Fatalf("selected: %v", err)
	}
	if !ok {
		t.Fatalf("expected a selection")
	}
	return h
}

func TestInitialState(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	nav := c.Navigation()
	if nav.Menu() != tt.store.Root() || nav.Index() != 0 || nav.Depth() != 0 {
		t.Fatalf("unexpected initial navigation %+v", nav)
	}
	if !c.Dirty() {
		t.Fatalf("expected dirty flag set at construction")
	}
	if c.IsEditing() {
		t.Fatalf("expected browsing at start")
	}
	if c.Status() != "Network settings" {
		t.Fatalf("expected status of first selection, got %q", c.Status())
	}
}

func TestMoveDownUpClampAndUpdateStatus(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	c.Painted()

	dispatch(t, c, Key(MoveDown))
	if got := selected(t, c); got != tt.hostname {
		t.Fatalf("expected Hostname selected, got %s", got)
	}
	if c.Status() != "Machine name" || !c.Dirty() {
		t.Fatalf("expected status refresh and redraw, got %q dirty=%v", c.Status(), c.Dirty())
	}

	c.Painted()
	dispatch(t, c, Key(MoveDown))
	if c.Navigation().Index() != 1 {
		t.Fatalf("expected index to stay at 1, got %d", c.Navigation().Index())
	}
	if c.Dirty() {
		t.Fatalf("expected no redraw for a no-op move")
	}

	dispatch(t, c, Key(MoveUp), Key(MoveUp))
	if c.Navigation().Index() != 0 {
		t.Fatalf("expected index floored at 0, got %d", c.Navigation().Index())
	}
	dispatch(t, c, Key(MoveLast))
	if c.Navigation().Index() != 1 {
		t.Fatalf("expected last index, got %d", c.Navigation().Index())
	}
	dispatch(t, c, Key(MoveFirst))
	if c.Navigation().Index() != 0 {
		t.Fatalf("expected first index, got %d", c.Navigation().Index())
	}
}

func TestEditCommitPrependsTypedText(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)

	dispatch(t, c, Key(MoveDown), Key(Enter))
	view, ok := c.Editing()
	if !ok {
		t.Fatalf("expected editing after Enter on option")
	}
	if view.Text != "box1" || view.Cursor != 0 || view.Target != tt.hostname {
		t.Fatalf("unexpected edit seed %+v", view)
	}

	dispatch(t, c, Char('x'), Char('x'), Char('x'))
	view, _ = c.Editing()
	if view.Text != "xxxbox1" || view.Cursor != 3 {
		t.Fatalf("expected xxxbox1 with cursor 3, got %q/%d", view.Text, view.Cursor)
	}

	c.Painted()
	dispatch(t, c, Key(Commit))
	if c.IsEditing() {
		t.Fatalf("expected browsing after commit")
	}
	if v, _ := tt.store.Value(tt.hostname); v != "xxxbox1" {
		t.Fatalf("expected committed value xxxbox1, got %q", v)
	}
	if c.Status() != StatusCommitted || !c.Dirty() {
		t.Fatalf("expected committed status and redraw, got %q dirty=%v", c.Status(), c.Dirty())
	}
}

func TestCancelLeavesValueUntouched(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	dispatch(t, c, Key(MoveDown), Key(Enter), Char('z'), Key(Delete), Key(Delete), Key(Cancel))
	if c.IsEditing() {
		t.Fatalf("expected browsing after cancel")
	}
	if v, _ := tt.store.Value(tt.hostname); v != "box1" {
		t.Fatalf("expected value unchanged, got %q", v)
	}
	if c.Status() != StatusCancelled {
		t.Fatalf("expected cancelled status, got %q", c.Status())
	}
}

func TestEnterThenBackRestoresPosition(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)

	dispatch(t, c, Key(Enter))
	nav := c.Navigation()
	if nav.Menu() != tt.network || nav.Index() != 0 {
		t.Fatalf("expected Network at index 0, got %+v", nav)
	}
	if crumbs := nav.Breadcrumb(); len(crumbs) != 1 || crumbs[0] != tt.store.Root() {
		t.Fatalf("expected breadcrumb [root], got %v", crumbs)
	}
	if got := selected(t, c); got != tt.proxy {
		t.Fatalf("expected filler skipped and Proxy selected, got %s", got)
	}

	dispatch(t, c, Key(Back))
	nav = c.Navigation()
	if nav.Menu() != tt.store.Root() || nav.Index() != 0 || nav.Depth() != 0 {
		t.Fatalf("expected root at index 0, got %+v", nav)
	}
}

func TestBackRestoresNonZeroIndexAcrossLevels(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)

	dispatch(t, c, Key(Enter), Key(MoveDown))
	if got := selected(t, c); got != tt.empty {
		t.Fatalf("expected Empty selected, got %s", got)
	}
	dispatch(t, c, Key(Enter))
	if _, ok, _ := c.Selected(); ok {
		t.Fatalf("expected no selection in empty menu")
	}
	if c.Status() != "Nothing here" {
		t.Fatalf("expected empty menu description, got %q", c.Status())
	}
	dispatch(t, c, Key(Enter), Key(MoveDown), Key(MoveUp))
	if c.IsEditing() || c.Navigation().Menu() != tt.empty || c.Navigation().Index() != 0 {
		t.Fatalf("expected inert empty menu, got %+v", c.Navigation())
	}

	dispatch(t, c, Key(Back))
	nav := c.Navigation()
	if nav.Menu() != tt.network || nav.Index() != 1 {
		t.Fatalf("expected Network with Empty reselected at 1, got %+v", nav)
	}
	dispatch(t, c, Key(Back))
	if c.Navigation().Menu() != tt.store.Root() || c.Navigation().Index() != 0 {
		t.Fatalf("expected root at index 0, got %+v", c.Navigation())
	}
}

func TestBackAtRootIsNoOp(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	dispatch(t, c, Key(MoveDown))
	c.Painted()
	dispatch(t, c, Key(Back))
	if c.Navigation().Index() != 1 || c.Dirty() {
		t.Fatalf("expected Back at root to change nothing, got %+v dirty=%v", c.Navigation(), c.Dirty())
	}
}

func TestBackUsesIdentityNotName(t *testing.T) {
	s := menu.NewStore("", "")
	first, _ := s.AddMenu(s.Root(), "Same", "first")
	second, _ := s.AddMenu(s.Root(), "Same", "second")
	if _, err := s.AddOption(second, "leaf", "", ""); err != nil {
		t.Fatalf("add option: %v", err)
	}
	c := newTestController(t, s)
	dispatch(t, c, Key(MoveDown), Key(Enter), Key(Back))
	if got := selected(t, c); got != second || got == first {
		t.Fatalf("expected second duplicate reselected, got %s", got)
	}
}

func TestNavigationFrozenWhileEditing(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	dispatch(t, c, Key(MoveDown), Key(Enter))
	before := c.Navigation()
	dispatch(t, c, Key(MoveUp), Key(MoveDown), Key(Back), Key(Enter), Key(MoveFirst))
	after := c.Navigation()
	if after.Menu() != before.Menu() || after.Index() != before.Index() || after.Depth() != before.Depth() {
		t.Fatalf("navigation changed while editing: %+v -> %+v", before, after)
	}
	if !c.IsEditing() {
		t.Fatalf("expected to remain editing")
	}
}

func TestEditEventsIgnoredWhileBrowsing(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	c.Painted()
	dispatch(t, c, Char('x'), Key(Backspace), Key(Commit), Key(Cancel), Key(MoveCursorRight))
	if c.IsEditing() || c.Dirty() {
		t.Fatalf("expected edit events to be inert while browsing")
	}
	if v, _ := tt.store.Value(tt.hostname); v != "box1" {
		t.Fatalf("expected value untouched, got %q", v)
	}
}

func TestQuitWhileEditingMutatesNothing(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	dispatch(t, c, Key(MoveDown), Key(Enter), Char('q'))
	c.Painted()
	beforeView, _ := c.Editing()
	beforeStatus := c.Status()

	outcome, err := c.Dispatch(Key(Quit))
	if err != nil {
		t.Fatalf("quit: %v", err)
	}
	if outcome != Terminate {
		t.Fatalf("expected Terminate, got %v", outcome)
	}
	afterView, ok := c.Editing()
	if !ok || afterView != beforeView || c.Status() != beforeStatus || c.Dirty() {
		t.Fatalf("quit mutated state: %+v -> %+v", beforeView, afterView)
	}
	if v, _ := tt.store.Value(tt.hostname); v != "box1" {
		t.Fatalf("expected value untouched, got %q", v)
	}
}

func TestResizeMarksDirtyInBothModes(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	c.Painted()
	dispatch(t, c, Key(Resize))
	if !c.Dirty() {
		t.Fatalf("expected resize to mark dirty while browsing")
	}
	dispatch(t, c, Key(MoveDown), Key(Enter))
	c.Painted()
	dispatch(t, c, Key(Resize))
	if !c.Dirty() || !c.IsEditing() {
		t.Fatalf("expected resize to mark dirty and keep editing")
	}
}

func TestEnterAndLeaveEditingMarkDirty(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	dispatch(t, c, Key(MoveDown))
	c.Painted()
	dispatch(t, c, Key(Enter))
	if !c.Dirty() {
		t.Fatalf("expected entering edit mode to mark dirty")
	}
	c.Painted()
	dispatch(t, c, Key(Backspace))
	if c.Dirty() {
		t.Fatalf("expected backspace at cursor 0 to be a no-op")
	}
	dispatch(t, c, Key(Cancel))
	if !c.Dirty() {
		t.Fatalf("expected leaving edit mode to mark dirty")
	}
}

func TestOpenBehavesLikeEnter(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	if err := c.Open([]menu.Handle{tt.network, tt.proxy}); err != nil {
		t.Fatalf("open: %v", err)
	}
	nav := c.Navigation()
	if nav.Menu() != tt.proxy || nav.Depth() != 2 {
		t.Fatalf("expected Proxy at depth 2, got %+v", nav)
	}
	if c.Status() != "Proxy port" {
		t.Fatalf("expected status of Port, got %q", c.Status())
	}
	dispatch(t, c, Key(Back))
	if c.Navigation().Menu() != tt.network || c.Navigation().Index() != 0 {
		t.Fatalf("expected Network with Proxy selected, got %+v", c.Navigation())
	}
}

func TestOpenRejectsInvalidChains(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	if err := c.Open([]menu.Handle{tt.proxy}); !errors.Is(err, menu.ErrInvalidHandle) {
		t.Fatalf("expected invalid handle for non-child, got %v", err)
	}
	if err := c.Open([]menu.Handle{tt.hostname}); !errors.Is(err, menu.ErrNotMenu) {
		t.Fatalf("expected not-menu error, got %v", err)
	}
	if c.Navigation().Menu() != tt.store.Root() {
		t.Fatalf("expected failed open to leave navigation alone")
	}
	dispatch(t, c, Key(MoveDown), Key(Enter))
	if err := c.Open(nil); !errors.Is(err, ErrEditing) {
		t.Fatalf("expected ErrEditing, got %v", err)
	}
}

type brokenTree struct {
	Tree
}

func (brokenTree) SelectableChildren(menu.Handle) ([]menu.Handle, error) {
	return nil, menu.ErrInvalidHandle
}

func TestDispatchSurfacesStoreErrors(t *testing.T) {
	tt := newTestTree(t)
	c := newTestController(t, tt.store)
	c.tree = brokenTree{Tree: tt.store}
	if _, err := c.Dispatch(Key(MoveDown)); !errors.Is(err, menu.ErrInvalidHandle) {
		t.Fatalf("expected invalid handle error, got %v", err)
	}
	if c.Navigation().Index() != 0 {
		t.Fatalf("expected failed dispatch to leave index alone")
	}
}
