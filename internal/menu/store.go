package menu

import (
	"fmt"
	"strings"
)

const (
	DefaultRootName = "Root Menu"
	pathSeparator   = "/"
)

type slot struct {
	gen    uint32
	parent Handle
	entry  Entry
}

// Store is an arena holding every entry of one menu tree. Handles pair a slot
// index with the generation the slot had when the entry was inserted.
type Store struct {
	slots []slot
	root  Handle
}

// NewStore creates a store containing only the root menu.
func NewStore(rootName, rootDescription string) *Store {
	if strings.TrimSpace(rootName) == "" {
		rootName = DefaultRootName
	}
	s := &Store{}
	s.root = s.insert(Handle{}, Entry{Name: rootName, Description: rootDescription, Kind: KindMenu})
	return s
}

// Root returns the handle of the root menu.
func (s *Store) Root() Handle {
	return s.root
}

// Len returns the number of entries, root included.
func (s *Store) Len() int {
	return len(s.slots)
}

func (s *Store) insert(parent Handle, e Entry) Handle {
	idx := uint32(len(s.slots))
	s.slots = append(s.slots, slot{gen: 1, parent: parent, entry: e})
	return Handle{slot: idx, gen: 1}
}

func (s *Store) lookup(h Handle) (*slot, error) {
	if h.IsZero() || int(h.slot) >= len(s.slots) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h)
	}
	sl := &s.slots[h.slot]
	if sl.gen != h.gen {
		return nil, fmt.Errorf("%w: %s (slot generation %d)", ErrInvalidHandle, h, sl.gen)
	}
	return sl, nil
}

func (s *Store) add(parent Handle, e Entry) (Handle, error) {
	p, err := s.lookup(parent)
	if err != nil {
		return Handle{}, err
	}
	if !p.entry.IsMenu() {
		return Handle{}, fmt.Errorf("%w: %q", ErrInvalidParent, p.entry.Name)
	}
	h := s.insert(parent, e)
	// insert may grow the slice; re-resolve the parent.
	p = &s.slots[parent.slot]
	p.entry.Children = append(p.entry.Children, h)
	return h, nil
}

// AddMenu appends a new submenu to parent.
func (s *Store) AddMenu(parent Handle, name, description string) (Handle, error) {
	h, err := s.add(parent, Entry{Name: name, Description: description, Kind: KindMenu})
	if err != nil {
		return Handle{}, fmt.Errorf("add menu %q: %w", name, err)
	}
	return h, nil
}

// AddOption appends a new option seeded with defaultValue to parent.
func (s *Store) AddOption(parent Handle, name, description, defaultValue string) (Handle, error) {
	h, err := s.add(parent, Entry{Name: name, Description: description, Kind: KindOption, Value: defaultValue})
	if err != nil {
		return Handle{}, fmt.Errorf("add option %q: %w", name, err)
	}
	return h, nil
}

// AddFiller appends a decorative row that is rendered but never selectable.
func (s *Store) AddFiller(parent Handle, label string) (Handle, error) {
	h, err := s.add(parent, Entry{Name: label, Kind: KindOption, Filler: true})
	if err != nil {
		return Handle{}, fmt.Errorf("add filler %q: %w", label, err)
	}
	return h, nil
}

// Get returns a snapshot of the entry. Mutating the snapshot does not affect
// the store.
func (s *Store) Get(h Handle) (Entry, error) {
	sl, err := s.lookup(h)
	if err != nil {
		return Entry{}, err
	}
	e := sl.entry
	if e.Children != nil {
		e.Children = append([]Handle(nil), e.Children...)
	}
	return e, nil
}

// Value returns the current value of an option.
func (s *Store) Value(h Handle) (string, error) {
	sl, err := s.lookup(h)
	if err != nil {
		return "", err
	}
	if !sl.entry.IsOption() {
		return "", fmt.Errorf("%w: %q", ErrNotOption, sl.entry.Name)
	}
	return sl.entry.Value, nil
}

// SetValue replaces the value of an option.
func (s *Store) SetValue(h Handle, value string) error {
	sl, err := s.lookup(h)
	if err != nil {
		return err
	}
	if !sl.entry.IsOption() || sl.entry.Filler {
		return fmt.Errorf("%w: %q", ErrNotOption, sl.entry.Name)
	}
	sl.entry.Value = value
	return nil
}

// Children returns every child of a menu, fillers included.
func (s *Store) Children(menu Handle) ([]Handle, error) {
	sl, err := s.lookup(menu)
	if err != nil {
		return nil, err
	}
	if !sl.entry.IsMenu() {
		return nil, fmt.Errorf("%w: %q", ErrNotMenu, sl.entry.Name)
	}
	return append([]Handle(nil), sl.entry.Children...), nil
}

// SelectableChildren returns the children of a menu that are not fillers, in
// their original order.
func (s *Store) SelectableChildren(menu Handle) ([]Handle, error) {
	sl, err := s.lookup(menu)
	if err != nil {
		return nil, err
	}
	if !sl.entry.IsMenu() {
		return nil, fmt.Errorf("%w: %q", ErrNotMenu, sl.entry.Name)
	}
	out := make([]Handle, 0, len(sl.entry.Children))
	for _, child := range sl.entry.Children {
		if s.slots[child.slot].entry.Filler {
			continue
		}
		out = append(out, child)
	}
	return out, nil
}

// Parent returns the menu that holds h. The root has no parent.
func (s *Store) Parent(h Handle) (Handle, bool, error) {
	sl, err := s.lookup(h)
	if err != nil {
		return Handle{}, false, err
	}
	if sl.parent.IsZero() {
		return Handle{}, false, nil
	}
	return sl.parent, true, nil
}

// Path returns the slash-joined names from the first level below the root
// down to h. The root itself has an empty path.
func (s *Store) Path(h Handle) (string, error) {
	var names []string
	for cur := h; ; {
		sl, err := s.lookup(cur)
		if err != nil {
			return "", err
		}
		if sl.parent.IsZero() {
			break
		}
		names = append(names, sl.entry.Name)
		cur = sl.parent
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, pathSeparator), nil
}

// Options lists every option in depth-first order with its path and value.
func (s *Store) Options() []OptionValue {
	var out []OptionValue
	var walk func(h Handle, prefix string)
	walk = func(h Handle, prefix string) {
		for _, child := range s.slots[h.slot].entry.Children {
			e := s.slots[child.slot].entry
			if e.Filler {
				continue
			}
			path := e.Name
			if prefix != "" {
				path = prefix + pathSeparator + e.Name
			}
			if e.IsMenu() {
				walk(child, path)
				continue
			}
			out = append(out, OptionValue{Path: path, Value: e.Value})
		}
	}
	walk(s.root, "")
	return out
}
