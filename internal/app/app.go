package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/settings-menu/internal/menu"
	"github.com/atomicstack/settings-menu/internal/ui"
	uistate "github.com/atomicstack/settings-menu/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	// OpenPath is a slash separated submenu path to start in.
	OpenPath string
}

// Prepare builds the store and a controller positioned at cfg.OpenPath.
func Prepare(cfg Config) (*menu.Store, *uistate.Controller, error) {
	store, err := DefaultStore(cfg.Title)
	if err != nil {
		return nil, nil, err
	}
	ctrl, err := uistate.NewController(store)
	if err != nil {
		return nil, nil, err
	}
	if cfg.OpenPath != "" {
		chain, err := store.Resolve(cfg.OpenPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open %q: %w", cfg.OpenPath, err)
		}
		if err := ctrl.Open(chain); err != nil {
			return nil, nil, fmt.Errorf("open %q: %w", cfg.OpenPath, err)
		}
	}
	return store, ctrl, nil
}

// Run bootstraps and executes the Bubble Tea program. The store is returned
// even when the program fails so callers can still report committed values.
func Run(cfg Config) (*menu.Store, error) {
	store, ctrl, err := Prepare(cfg)
	if err != nil {
		return nil, err
	}
	title := cfg.Title
	if title == "" {
		title = menu.DefaultRootName
	}
	model := ui.NewModel(store, ctrl, ui.Options{
		Title:      title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return store, nil
	}
	return store, err
}
