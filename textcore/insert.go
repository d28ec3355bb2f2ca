package textcore

import "strings"

// InsertAt splices ins into text at the given rune offset.
//
// Out-of-range offsets return ErrOffsetOutOfRange rather than clamping; the
// offset is a caller precondition, not a recoverable input.
func InsertAt(text string, offset int, ins string) (string, error) {
	runes := []rune(text)
	if err := checkOffset(offset, len(runes)); err != nil {
		return "", err
	}
	if ins == "" {
		return text, nil
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(ins))
	sb.WriteString(string(runes[:offset]))
	sb.WriteString(ins)
	sb.WriteString(string(runes[offset:]))
	return sb.String(), nil
}

// InsertAtCursor performs InsertAt and places the caret immediately after
// the inserted text, with no selection.
func InsertAtCursor(text string, offset int, ins string) (Result, error) {
	out, err := InsertAt(text, offset, ins)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Text:   out,
		Cursor: Cursor{Offset: offset + len([]rune(ins))},
	}, nil
}

// ReplaceTrailingWord replaces the in-progress word before offset with repl.
//
// The prefix before offset is treated as whitespace-delimited words; the last
// such word is the token a user is mid-typing when accepting a completion.
// Everything before that token and everything at or after offset is kept.
// An empty or all-whitespace prefix degrades to plain insertion at offset.
//
// Known quirk, kept for compatibility: the token is located by a simple
// last-occurrence substring search within the prefix (strings.LastIndex),
// not by tokenization boundaries, so a token whose text recurs in the prefix
// splices at the final substring match.
func ReplaceTrailingWord(text string, offset int, repl string) (string, error) {
	runes := []rune(text)
	if err := checkOffset(offset, len(runes)); err != nil {
		return "", err
	}

	prefix := string(runes[:offset])
	suffix := string(runes[offset:])

	last := ""
	if words := strings.Fields(prefix); len(words) > 0 {
		last = words[len(words)-1]
	}

	// LastIndex of "" is len(prefix), which inserts at the caret.
	idx := strings.LastIndex(prefix, last)
	return prefix[:idx] + repl + suffix, nil
}
