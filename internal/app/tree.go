package app

import (
	"fmt"

	"github.com/atomicstack/settings-menu/internal/menu"
)

// node describes one entry of a tree to be built. A node with children (or
// with menu set) becomes a menu; otherwise it is an option.
type node struct {
	name        string
	description string
	value       string
	filler      bool
	isMenu      bool
	children    []node
}

func submenu(name, description string, children ...node) node {
	return node{name: name, description: description, isMenu: true, children: children}
}

func option(name, description, value string) node {
	return node{name: name, description: description, value: value}
}

func filler(label string) node {
	return node{name: label, filler: true}
}

var defaultTree = []node{
	submenu("General", "Identity and locale",
		option("Hostname", "Name this machine announces on the network", "localhost"),
		option("Timezone", "IANA timezone name", "UTC"),
		option("Language", "Interface language code", "en"),
	),
	submenu("Network", "Interfaces, proxy and name resolution",
		option("Interface", "Primary network interface", "eth0"),
		filler("-- proxy --"),
		submenu("Proxy", "Outbound HTTP proxy",
			option("Host", "Proxy host name or address", ""),
			option("Port", "Proxy TCP port", "3128"),
			option("Bypass", "Comma separated hosts that skip the proxy", "localhost,127.0.0.1"),
		),
		filler("-- dns --"),
		submenu("DNS", "Name resolution",
			option("Primary", "First resolver address", "1.1.1.1"),
			option("Secondary", "Fallback resolver address", "8.8.8.8"),
		),
	),
	submenu("Display", "Terminal appearance",
		option("Theme", "Color theme name", "default"),
		option("Columns", "Preferred width in cells", "80"),
	),
	submenu("Advanced", "Nothing to configure yet"),
}

// buildTree materialises nodes under parent, stopping at the first failure.
func buildTree(s *menu.Store, parent menu.Handle, nodes []node) error {
	for _, n := range nodes {
		switch {
		case n.filler:
			if _, err := s.AddFiller(parent, n.name); err != nil {
				return err
			}
		case n.isMenu || len(n.children) > 0:
			h, err := s.AddMenu(parent, n.name, n.description)
			if err != nil {
				return err
			}
			if err := buildTree(s, h, n.children); err != nil {
				return fmt.Errorf("%s: %w", n.name, err)
			}
		default:
			if _, err := s.AddOption(parent, n.name, n.description, n.value); err != nil {
				return err
			}
		}
	}
	return nil
}

// DefaultStore returns the built-in settings tree with title as the root name.
func DefaultStore(title string) (*menu.Store, error) {
	s := menu.NewStore(title, "Use the arrow keys to move, enter to open or edit")
	if err := buildTree(s, s.Root(), defaultTree); err != nil {
		return nil, fmt.Errorf("build default tree: %w", err)
	}
	return s, nil
}
