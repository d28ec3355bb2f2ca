package textcore

import (
	"errors"
	"fmt"
)

// Cursor is a caret position plus selection length, both in runes.
//
// A valid Cursor satisfies 0 <= Offset and Offset+SelectionLen within the
// buffer's rune length. SelectionLen of 0 means no selection.
type Cursor struct {
	Offset       int
	SelectionLen int
}

// Result pairs an updated buffer with the cursor that follows the edit.
// The cursor is always valid with respect to Text.
type Result struct {
	Text   string
	Cursor Cursor
}

// ErrOffsetOutOfRange reports a caller-supplied offset outside the buffer.
// Mutating operations fail fast on it rather than clamping, so integration
// bugs surface at the call site.
var ErrOffsetOutOfRange = errors.New("textcore: offset out of range")

func checkOffset(offset, runeLen int) error {
	if offset < 0 || offset > runeLen {
		return fmt.Errorf("%w: offset %d, buffer length %d", ErrOffsetOutOfRange, offset, runeLen)
	}
	return nil
}

func clampOffset(offset, runeLen int) int {
	if offset < 0 {
		return 0
	}
	if offset > runeLen {
		return runeLen
	}
	return offset
}

// ClampCursor clamps c into the bounds of text.
//
// The returned Cursor always satisfies:
// - 0 <= Offset <= rune length of text
// - 0 <= SelectionLen, with Offset+SelectionLen <= rune length of text
func ClampCursor(text string, c Cursor) Cursor {
	n := len([]rune(text))
	off := clampOffset(c.Offset, n)
	sel := c.SelectionLen
	if sel < 0 {
		sel = 0
	}
	if off+sel > n {
		sel = n - off
	}
	return Cursor{Offset: off, SelectionLen: sel}
}
