package menu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle reports a handle that does not resolve to a live entry.
	ErrInvalidHandle = errors.New("invalid entry handle")
	// ErrInvalidParent reports an attempt to add an entry under a non-menu.
	ErrInvalidParent = errors.New("parent is not a menu")
	// ErrNotMenu reports a menu-only query against an option.
	ErrNotMenu = errors.New("entry is not a menu")
	// ErrNotOption reports a value access against a menu.
	ErrNotOption = errors.New("entry is not an option")
	// ErrNotFound reports a path segment that matches no menu.
	ErrNotFound = errors.New("menu not found")
)

// Kind distinguishes containers from editable leaves.
type Kind int

const (
	KindMenu Kind = iota
	KindOption
)

func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "menu"
	case KindOption:
		return "option"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Handle addresses an entry inside a Store. The zero Handle is never valid.
type Handle struct {
	slot uint32
	gen  uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

func (h Handle) String() string {
	if h.IsZero() {
		return "entry(nil)"
	}
	return fmt.Sprintf("entry(%d.%d)", h.slot, h.gen)
}

// Entry is a read-only snapshot of a node in the menu tree.
type Entry struct {
	Name        string
	Description string
	Kind        Kind
	// Children lists child handles in navigation order (menus only).
	Children []Handle
	// Value holds the current text (options only).
	Value  string
	Filler bool
}

// IsMenu reports whether the entry is a container.
func (e Entry) IsMenu() bool {
	return e.Kind == KindMenu
}

// IsOption reports whether the entry is an editable leaf.
func (e Entry) IsOption() bool {
	return e.Kind == KindOption
}

// OptionValue pairs an option's path with its committed value.
type OptionValue struct {
	Path  string `json:"path" yaml:"path"`
	Value string `json:"value" yaml:"value"`
}
