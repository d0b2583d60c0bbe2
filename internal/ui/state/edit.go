package state

// EditBuffer holds the text being composed for an option and the insertion
// point. Positions count runes. Every method reports whether it changed
// anything.
type EditBuffer struct {
	runes  []rune
	cursor int
}

// NewEditBuffer seeds a buffer from value with the cursor at the start.
func NewEditBuffer(value string) *EditBuffer {
	return &EditBuffer{runes: []rune(value)}
}

// Value returns the buffer contents.
func (e *EditBuffer) Value() string {
	return string(e.runes)
}

// Len returns the buffer length in runes.
func (e *EditBuffer) Len() int {
	return len(e.runes)
}

// Cursor returns the insertion point, always within [0, Len()].
func (e *EditBuffer) Cursor() int {
	if e.cursor < 0 {
		return 0
	}
	if e.cursor > len(e.runes) {
		return len(e.runes)
	}
	return e.cursor
}

// Insert places r at the cursor and advances past it.
func (e *EditBuffer) Insert(r rune) bool {
	pos := e.Cursor()
	updated := make([]rune, 0, len(e.runes)+1)
	updated = append(updated, e.runes[:pos]...)
	updated = append(updated, r)
	updated = append(updated, e.runes[pos:]...)
	e.runes = updated
	e.cursor = pos + 1
	return true
}

// DeleteBackward removes the rune immediately before the cursor.
func (e *EditBuffer) DeleteBackward() bool {
	pos := e.Cursor()
	if pos == 0 {
		return false
	}
	e.runes = append(e.runes[:pos-1], e.runes[pos:]...)
	e.cursor = pos - 1
	return true
}

// DeleteForward removes the rune under the cursor.
func (e *EditBuffer) DeleteForward() bool {
	pos := e.Cursor()
	if pos >= len(e.runes) {
		return false
	}
	e.runes = append(e.runes[:pos], e.runes[pos+1:]...)
	return true
}

// MoveLeft moves the cursor one rune backward.
func (e *EditBuffer) MoveLeft() bool {
	if e.Cursor() == 0 {
		return false
	}
	e.cursor = e.Cursor() - 1
	return true
}

// MoveRight moves the cursor one rune forward.
func (e *EditBuffer) MoveRight() bool {
	if e.Cursor() >= len(e.runes) {
		return false
	}
	e.cursor = e.Cursor() + 1
	return true
}

// MoveStart moves the cursor to the start.
func (e *EditBuffer) MoveStart() bool {
	if e.Cursor() == 0 {
		return false
	}
	e.cursor = 0
	return true
}

// MoveEnd moves the cursor past the last rune.
func (e *EditBuffer) MoveEnd() bool {
	if e.Cursor() == len(e.runes) {
		return false
	}
	e.cursor = len(e.runes)
	return true
}
