package ui

import (
	"unicode"

	uistate "github.com/atomicstack/settings-menu/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type browseKeys struct {
	Up    key.Binding
	Down  key.Binding
	First key.Binding
	Last  key.Binding
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

type editKeys struct {
	Left      key.Binding
	Right     key.Binding
	Start     key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Commit    key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

type keyMap struct {
	browse browseKeys
	edit   editKeys
}

func defaultKeyMap() keyMap {
	return keyMap{
		browse: browseKeys{
			Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
			Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
			Enter: key.NewBinding(key.WithKeys("enter", "right", "l"), key.WithHelp("enter", "open/edit")),
			Back:  key.NewBinding(key.WithKeys("left", "esc", "backspace", "h"), key.WithHelp("esc", "back")),
			Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		edit: editKeys{
			Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "move")),
			Right:     key.NewBinding(key.WithKeys("right")),
			Start:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("ctrl+a/e", "start/end")),
			End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
			Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("bksp/del", "delete")),
			Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d")),
			Commit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
			Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		},
	}
}

// ShortHelp implements help.KeyMap.
func (k browseKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k browseKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.First, k.Last}, {k.Enter, k.Back, k.Quit}}
}

// ShortHelp implements help.KeyMap.
func (k editKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Cancel, k.Left, k.Start, k.Backspace}
}

// FullHelp implements help.KeyMap.
func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Left, k.Right, k.Start, k.End}, {k.Backspace, k.Delete}, {k.Commit, k.Cancel, k.Quit}}
}

// decodeKey maps a key press to controller events for the active mode.
// Pasted text arrives as one message carrying several runes, so the result
// is a slice. Unbound keys decode to nothing.
func decodeKey(msg tea.KeyMsg, editing bool, km keyMap) []uistate.Event {
	if editing {
		return decodeEditKey(msg, km.edit)
	}
	return decodeBrowseKey(msg, km.browse)
}

func decodeBrowseKey(msg tea.KeyMsg, k browseKeys) []uistate.Event {
	var kind uistate.EventKind
	switch {
	case key.Matches(msg, k.Quit):
		kind = uistate.Quit
	case key.Matches(msg, k.Up):
		kind = uistate.MoveUp
	case key.Matches(msg, k.Down):
		kind = uistate.MoveDown
	case key.Matches(msg, k.First):
		kind = uistate.MoveFirst
	case key.Matches(msg, k.Last):
		kind = uistate.MoveLast
	case key.Matches(msg, k.Enter):
		kind = uistate.Enter
	case key.Matches(msg, k.Back):
		kind = uistate.Back
	default:
		return nil
	}
	return []uistate.Event{uistate.Key(kind)}
}

func decodeEditKey(msg tea.KeyMsg, k editKeys) []uistate.Event {
	var kind uistate.EventKind
	switch {
	case key.Matches(msg, k.Quit):
		kind = uistate.Quit
	case key.Matches(msg, k.Commit):
		kind = uistate.Commit
	case key.Matches(msg, k.Cancel):
		kind = uistate.Cancel
	case key.Matches(msg, k.Left):
		kind = uistate.MoveCursorLeft
	case key.Matches(msg, k.Right):
		kind = uistate.MoveCursorRight
	case key.Matches(msg, k.Start):
		kind = uistate.MoveCursorStart
	case key.Matches(msg, k.End):
		kind = uistate.MoveCursorEnd
	case key.Matches(msg, k.Backspace):
		kind = uistate.Backspace
	case key.Matches(msg, k.Delete):
		kind = uistate.Delete
	default:
		return decodeText(msg)
	}
	return []uistate.Event{uistate.Key(kind)}
}

func decodeText(msg tea.KeyMsg) []uistate.Event {
	switch msg.Type {
	case tea.KeySpace:
		return []uistate.Event{uistate.Char(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		out := make([]uistate.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			out = append(out, uistate.Char(r))
		}
		return out
	}
	return nil
}
