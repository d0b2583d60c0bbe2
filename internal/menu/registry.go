package menu

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Resolve walks a slash-separated menu path from the root and returns the
// chain of menus it names, outermost first. An empty path yields an empty
// chain.
func (s *Store) Resolve(path string) ([]Handle, error) {
	segments := splitPath(path)
	chain := make([]Handle, 0, len(segments))
	cur := s.root
	for _, segment := range segments {
		next, err := s.findSubmenu(cur, segment)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", path, err)
		}
		chain = append(chain, next)
		cur = next
	}
	return chain, nil
}

func (s *Store) findSubmenu(parent Handle, query string) (Handle, error) {
	children, err := s.SelectableChildren(parent)
	if err != nil {
		return Handle{}, err
	}
	menus := make([]Handle, 0, len(children))
	names := make([]string, 0, len(children))
	for _, child := range children {
		e := s.slots[child.slot].entry
		if !e.IsMenu() {
			continue
		}
		menus = append(menus, child)
		names = append(names, e.Name)
	}
	idx := bestMatchIndex(names, query)
	if idx < 0 {
		return Handle{}, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	return menus[idx], nil
}

// bestMatchIndex prefers an exact match, then a prefix, then the closest
// fuzzy match. Earlier entries win ties.
func bestMatchIndex(names []string, query string) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(names) == 0 {
		return -1
	}
	for i, name := range names {
		if strings.EqualFold(name, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, name := range names {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return i
		}
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return -1
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	return best.OriginalIndex
}

func splitPath(path string) []string {
	parts := strings.Split(path, pathSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
