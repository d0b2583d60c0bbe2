package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/atomicstack/settings-menu/internal/menu"
	uistate "github.com/atomicstack/settings-menu/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

const (
	// fallbackWidth lays out rows before the first window size arrives.
	fallbackWidth = 80
	// valueMargin is subtracted from the width before halving it to get
	// the widest value column.
	valueMargin = 10
	fillerIndent = "    "
)

// View implements tea.Model. The frame is rebuilt only when the controller
// or the model reports a change; otherwise the previous frame is returned.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.frame != "" && !m.stale && !m.ctrl.Dirty() {
		return m.frame
	}
	m.frame = m.render()
	m.stale = false
	m.ctrl.Painted()
	return m.frame
}

func (m *Model) render() string {
	width := m.layoutWidth()
	lines := make([]string, 0, 16)
	if header := m.menuHeader(); header != "" {
		lines = append(lines, styles.Header.Render(ansi.Truncate(header, width, "…")))
	}

	rows, selectedRow := m.menuRows(width)
	rows = m.visibleRows(rows, selectedRow)
	lines = append(lines, rows...)

	lines = append(lines, "")
	lines = append(lines, styles.Status.Render(truncateStatus(m.ctrl.Status(), width)))
	if m.errMsg != "" {
		lines = append(lines, styles.Error.Render(truncateStatus("Error: "+m.errMsg, width)))
	}
	if m.showFooter {
		m.help.Width = width
		lines = append(lines, m.footer())
	}
	return strings.Join(lines, "\n")
}

func (m *Model) footer() string {
	if m.ctrl.IsEditing() {
		return m.help.View(m.keys.edit)
	}
	return m.help.View(m.keys.browse)
}

func (m *Model) layoutWidth() int {
	if m.width > 0 {
		return m.width
	}
	return fallbackWidth
}

// menuHeader joins the names of every menu from the root to the current one.
func (m *Model) menuHeader() string {
	nav := m.ctrl.Navigation()
	chain := append(nav.Breadcrumb(), nav.Menu())
	segments := make([]string, 0, len(chain))
	for _, h := range chain {
		entry, err := m.store.Get(h)
		if err != nil {
			continue
		}
		if name := strings.TrimSpace(entry.Name); name != "" {
			segments = append(segments, name)
		}
	}
	return strings.Join(segments, menuHeaderSeparator)
}

// menuRows renders every child of the current menu, fillers included, and
// returns the row index of the selection (-1 when nothing is selectable).
func (m *Model) menuRows(width int) ([]string, int) {
	nav := m.ctrl.Navigation()
	children, err := m.store.Children(nav.Menu())
	if err != nil {
		return []string{styles.Error.Render(err.Error())}, -1
	}
	if len(children) == 0 {
		return []string{styles.Info.Render("(no entries)")}, -1
	}
	selected, hasSelection, _ := m.ctrl.Selected()
	edit, editing := m.ctrl.Editing()
	rows := make([]string, 0, len(children))
	selectedRow := -1
	for i, h := range children {
		entry, err := m.store.Get(h)
		if err != nil {
			rows = append(rows, styles.Error.Render(err.Error()))
			continue
		}
		if entry.Filler {
			rows = append(rows, styles.Filler.Render(ansi.Truncate(fillerIndent+entry.Name, width, "")))
			continue
		}
		isSelected := hasSelection && h == selected
		if isSelected {
			selectedRow = i
		}
		var live *uistate.EditView
		if editing && edit.Target == h {
			live = &edit
		}
		rows = append(rows, m.renderRow(entry, isSelected, live, width))
	}
	return rows, selectedRow
}

// renderRow draws "[>] name ... value" with the value right-aligned. While
// editing, the live buffer and caret replace the stored value.
func (m *Model) renderRow(entry menu.Entry, selected bool, edit *uistate.EditView, width int) string {
	marker := "[ ]"
	markerStyle, nameStyle, valueStyle := styles.ItemMarker, styles.Item, styles.Value
	if selected {
		marker = "[>]"
		markerStyle, nameStyle, valueStyle = styles.SelectedMarker, styles.SelectedItem, styles.SelectedValue
	}
	name := entry.Name
	if entry.IsMenu() {
		name += " ›"
	}

	limit := max((width-valueMargin)/2, 1)
	var value string
	switch {
	case edit != nil:
		value = m.renderEditValue(*edit, limit)
	case entry.IsOption():
		value = valueStyle.Render(truncateValue(entry.Value, limit))
	}

	left := markerStyle.Render(marker) + nameStyle.Render(" "+name)
	gap := width - lipgloss.Width(left) - lipgloss.Width(value)
	if value == "" || gap < 1 {
		gap = 1
	}
	row := left + nameStyle.Render(strings.Repeat(" ", gap)) + value
	return ansi.Truncate(row, width, "…")
}

// renderEditValue shows the buffer with the caret on the rune under the
// cursor, scrolled so the caret stays inside limit cells.
func (m *Model) renderEditValue(edit uistate.EditView, limit int) string {
	before, at, after := edit.Split()
	caret := at
	if caret == "" {
		caret = " "
	}
	for runewidth.StringWidth(before)+runewidth.StringWidth(caret) > limit && before != "" {
		_, size := utf8.DecodeRuneInString(before)
		before = before[size:]
	}
	room := limit - runewidth.StringWidth(before) - runewidth.StringWidth(caret)
	after = truncateValue(after, max(room, 0))
	m.cursor.SetChar(caret)
	return styles.EditText.Render(before) + m.cursor.View() + styles.EditText.Render(after)
}

// visibleRows keeps the selected row inside the window of rows that fit
// on screen.
func (m *Model) visibleRows(rows []string, selectedRow int) []string {
	limit := m.maxVisibleRows()
	if limit <= 0 || len(rows) <= limit {
		m.rowOffset = 0
		return rows
	}
	m.rowOffset = clampOffset(m.rowOffset, selectedRow, limit, len(rows))
	return rows[m.rowOffset : m.rowOffset+limit]
}

func clampOffset(offset, selected, limit, total int) int {
	if selected >= 0 {
		if selected < offset {
			offset = selected
		}
		if selected >= offset+limit {
			offset = selected - limit + 1
		}
	}
	if offset > total-limit {
		offset = total - limit
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 2 // blank + status
	if m.menuHeader() != "" {
		used++
	}
	if m.errMsg != "" {
		used++
	}
	if m.showFooter {
		used++
	}
	return max(m.height-used, 1)
}

func truncateValue(value string, limit int) string {
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	return runewidth.Truncate(value, limit, "…")
}

func truncateStatus(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	return truncate.StringWithTail(text, uint(max(width-1, 0)), "…")
}
