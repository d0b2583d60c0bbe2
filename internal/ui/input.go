package ui

import (
	"github.com/atomicstack/settings-menu/internal/logging"
	"github.com/atomicstack/settings-menu/internal/logging/events"
	uistate "github.com/atomicstack/settings-menu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	for _, ev := range decodeKey(keyMsg, m.ctrl.IsEditing(), m.keys) {
		if cmd := m.dispatch(ev); cmd != nil {
			return cmd
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	events.UI.Resize(m.width, m.height)
	return m.dispatch(uistate.Key(uistate.Resize))
}

// dispatch feeds one event to the controller and returns tea.Quit once the
// controller asks to terminate.
func (m *Model) dispatch(ev uistate.Event) tea.Cmd {
	before := m.snapshot()
	outcome, err := m.ctrl.Dispatch(ev)
	if err != nil {
		logging.Error(err)
		m.errMsg = err.Error()
		m.stale = true
		return nil
	}
	if m.errMsg != "" && ev.Kind != uistate.Resize {
		m.errMsg = ""
		m.stale = true
	}
	if outcome == uistate.Terminate {
		events.UI.Quit(ev.String())
		m.quitting = true
		m.stale = true
		return tea.Quit
	}
	m.trace(ev, before)
	return nil
}
