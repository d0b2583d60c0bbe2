package ui

import (
	"reflect"

	"github.com/atomicstack/settings-menu/internal/menu"
	"github.com/atomicstack/settings-menu/internal/theme"
	uistate "github.com/atomicstack/settings-menu/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

const menuHeaderSeparator = " → "

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options carries the display settings for a Model.
type Options struct {
	Title      string
	Width      int
	Height     int
	ShowFooter bool
}

// Model implements the Bubble Tea model for the settings menu. All state
// changes go through the controller; the model only translates keys into
// events and paints the result.
type Model struct {
	store *menu.Store
	ctrl  *uistate.Controller

	title       string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	errMsg   string
	quitting bool

	keys      keyMap
	help      help.Model
	cursor    cursor.Model
	rowOffset int

	// frame is the last painted view, reused while nothing changed.
	frame string
	stale bool

	handlers map[reflect.Type]msgHandler
}

// NewModel wraps a controller built over store.
func NewModel(store *menu.Store, ctrl *uistate.Controller, opts Options) *Model {
	m := &Model{
		store:      store,
		ctrl:       ctrl,
		title:      opts.Title,
		showFooter: opts.ShowFooter,
		keys:       defaultKeyMap(),
		help:       help.New(),
		stale:      true,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	c.Style = styles.Cursor.Copy()
	c.TextStyle = styles.EditText.Copy()
	// A blinking caret would need a repaint per tick.
	c.SetMode(cursor.CursorStatic)
	c.SetChar(" ")
	c.Focus()
	m.cursor = c
	m.help.Styles.ShortKey = styles.Footer.Copy().Bold(true)
	m.help.Styles.ShortDesc = styles.Footer.Copy()
	m.help.Styles.ShortSeparator = styles.Footer.Copy()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.title)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Controller exposes the navigation controller driving the model.
func (m *Model) Controller() *uistate.Controller {
	return m.ctrl
}

// Quitting reports whether the model has asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}
