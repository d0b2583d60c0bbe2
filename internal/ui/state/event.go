package state

import "fmt"

// EventKind enumerates the abstract inputs the controller understands.
type EventKind int

const (
	EventNone EventKind = iota
	MoveUp
	MoveDown
	MoveFirst
	MoveLast
	Enter
	Back
	Quit
	Resize
	InsertChar
	Backspace
	Delete
	MoveCursorLeft
	MoveCursorRight
	MoveCursorStart
	MoveCursorEnd
	Commit
	Cancel
)

var eventNames = map[EventKind]string{
	EventNone:       "none",
	MoveUp:          "move-up",
	MoveDown:        "move-down",
	MoveFirst:       "move-first",
	MoveLast:        "move-last",
	Enter:           "enter",
	Back:            "back",
	Quit:            "quit",
	Resize:          "resize",
	InsertChar:      "insert-char",
	Backspace:       "backspace",
	Delete:          "delete",
	MoveCursorLeft:  "cursor-left",
	MoveCursorRight: "cursor-right",
	MoveCursorStart: "cursor-start",
	MoveCursorEnd:   "cursor-end",
	Commit:          "commit",
	Cancel:          "cancel",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is one decoded input. Char is only meaningful for InsertChar.
type Event struct {
	Kind EventKind
	Char rune
}

// Key builds an event without a payload.
func Key(kind EventKind) Event {
	return Event{Kind: kind}
}

// Char builds an InsertChar event.
func Char(r rune) Event {
	return Event{Kind: InsertChar, Char: r}
}

func (e Event) String() string {
	if e.Kind == InsertChar {
		return fmt.Sprintf("%s(%q)", e.Kind, e.Char)
	}
	return e.Kind.String()
}
