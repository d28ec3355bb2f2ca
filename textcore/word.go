package textcore

import "unicode"

// SurroundingWord returns the contiguous non-whitespace run around offset.
//
// It scans left while the preceding rune is not whitespace and right while
// the rune at the scan position is not whitespace. An offset on whitespace
// yields "". Out-of-range offsets are clamped into the buffer; this is a
// read-only query and never fails.
func SurroundingWord(text string, offset int) string {
	runes := []rune(text)
	offset = clampOffset(offset, len(runes))

	start := offset
	for start > 0 && !unicode.IsSpace(runes[start-1]) {
		start--
	}

	end := offset
	for end < len(runes) && !unicode.IsSpace(runes[end]) {
		end++
	}

	return string(runes[start:end])
}
