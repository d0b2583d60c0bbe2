package ui

import (
	"github.com/atomicstack/settings-menu/internal/logging/events"
	"github.com/atomicstack/settings-menu/internal/menu"
	uistate "github.com/atomicstack/settings-menu/internal/ui/state"
)

// snapshot captures what trace needs to describe a transition.
type snapshot struct {
	depth   int
	index   int
	editing bool
	edit    uistate.EditView
}

func (m *Model) snapshot() snapshot {
	nav := m.ctrl.Navigation()
	view, editing := m.ctrl.Editing()
	return snapshot{depth: nav.Depth(), index: nav.Index(), editing: editing, edit: view}
}

func (m *Model) trace(ev uistate.Event, before snapshot) {
	after := m.snapshot()
	nav := m.ctrl.Navigation()
	switch {
	case !before.editing && after.editing:
		events.Edit.Start(m.pathOf(after.edit.Target), after.edit.Text)
	case before.editing && !after.editing:
		if ev.Kind == uistate.Commit {
			events.Edit.Commit(m.pathOf(before.edit.Target), before.edit.Text)
		} else {
			events.Edit.Cancel(m.pathOf(before.edit.Target))
		}
	case after.editing:
		path := m.pathOf(after.edit.Target)
		switch {
		case len(after.edit.Text) > len(before.edit.Text):
			events.Edit.Insert(path, after.edit.Text, after.edit.Cursor)
		case len(after.edit.Text) < len(before.edit.Text):
			events.Edit.Delete(path, after.edit.Text, after.edit.Cursor)
		case after.edit.Cursor != before.edit.Cursor:
			events.Edit.Cursor(path, after.edit.Cursor)
		}
	case after.depth > before.depth:
		name := ""
		if entry, err := m.store.Get(nav.Menu()); err == nil {
			name = entry.Name
		}
		events.UI.MenuEnter(m.pathOf(nav.Menu()), name)
	case after.depth < before.depth:
		events.UI.MenuBack(m.pathOf(nav.Menu()), after.index)
	case after.index != before.index:
		events.UI.MenuCursor(m.pathOf(nav.Menu()), after.index)
	}
}

func (m *Model) pathOf(h menu.Handle) string {
	path, err := m.store.Path(h)
	if err != nil {
		return h.String()
	}
	return path
}
