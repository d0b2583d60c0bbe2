package state

import (
	"github.com/atomicstack/settings-menu/internal/menu"
)

// Tree is the part of the entry store the navigation core needs.
type Tree interface {
	Root() menu.Handle
	Get(menu.Handle) (menu.Entry, error)
	SelectableChildren(menu.Handle) ([]menu.Handle, error)
	SetValue(menu.Handle, string) error
}

// Navigation records where the user is: the menu on screen, the selection
// among its selectable children, and the menus entered to get there.
type Navigation struct {
	menu       menu.Handle
	index      int
	breadcrumb []menu.Handle
}

func newNavigation(root menu.Handle) Navigation {
	return Navigation{menu: root}
}

// Menu returns the menu whose children are displayed.
func (n Navigation) Menu() menu.Handle {
	return n.menu
}

// Index returns the selection among the menu's selectable children.
func (n Navigation) Index() int {
	return n.index
}

// Depth returns the number of menus entered below the root.
func (n Navigation) Depth() int {
	return len(n.breadcrumb)
}

// Breadcrumb returns the ancestors of the current menu, root first.
func (n Navigation) Breadcrumb() []menu.Handle {
	return append([]menu.Handle(nil), n.breadcrumb...)
}

func (n Navigation) clone() Navigation {
	n.breadcrumb = n.Breadcrumb()
	return n
}

func (n *Navigation) selected(t Tree) (menu.Handle, bool, error) {
	children, err := t.SelectableChildren(n.menu)
	if err != nil {
		return menu.Handle{}, false, err
	}
	if n.index < 0 || n.index >= len(children) {
		return menu.Handle{}, false, nil
	}
	return children[n.index], true, nil
}

func (n *Navigation) moveBy(t Tree, delta int) (bool, error) {
	children, err := t.SelectableChildren(n.menu)
	if err != nil {
		return false, err
	}
	return n.moveTo(len(children), n.index+delta), nil
}

func (n *Navigation) moveFirst(t Tree) (bool, error) {
	children, err := t.SelectableChildren(n.menu)
	if err != nil {
		return false, err
	}
	return n.moveTo(len(children), 0), nil
}

func (n *Navigation) moveLast(t Tree) (bool, error) {
	children, err := t.SelectableChildren(n.menu)
	if err != nil {
		return false, err
	}
	return n.moveTo(len(children), len(children)-1), nil
}

// moveTo clamps target into [0, count) and reports whether the index moved.
func (n *Navigation) moveTo(count, target int) bool {
	if count == 0 {
		n.index = 0
		return false
	}
	old := n.index
	if target < 0 {
		target = 0
	}
	if target >= count {
		target = count - 1
	}
	n.index = target
	return n.index != old
}

func (n *Navigation) descend(target menu.Handle) {
	n.breadcrumb = append(n.breadcrumb, n.menu)
	n.menu = target
	n.index = 0
}

// ascend returns to the parent menu and reselects the menu just left. The
// lookup is a linear search of the parent's selectable children by handle.
func (n *Navigation) ascend(t Tree) (bool, error) {
	if n.menu == t.Root() || len(n.breadcrumb) == 0 {
		return false, nil
	}
	parent := n.breadcrumb[len(n.breadcrumb)-1]
	children, err := t.SelectableChildren(parent)
	if err != nil {
		return false, err
	}
	left := n.menu
	n.breadcrumb = n.breadcrumb[:len(n.breadcrumb)-1]
	n.menu = parent
	n.index = 0
	for i, child := range children {
		if child == left {
			n.index = i
			break
		}
	}
	return true, nil
}
