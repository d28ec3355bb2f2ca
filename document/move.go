package document

import (
	"strings"
	"unicode"
)

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, grows the selection; if false clears it
}

// ApplyMove moves the caret by the given unit and direction.
func (d *Document) ApplyMove(m Move) {
	prevCaret, prevAnchor := d.caret, d.anchor

	next := d.moveCaret(d.caret, m)

	anchor := next
	if m.Extend {
		anchor = prevAnchor
	}

	if next == prevCaret && anchor == prevAnchor {
		return
	}
	d.caret = next
	d.anchor = anchor
	d.bump()
}

func (d *Document) moveCaret(caret int, m Move) int {
	switch m.Unit {
	case MoveRune:
		return d.moveRune(caret, m.Dir)
	case MoveWord:
		return d.moveWord(caret, m.Dir)
	case MoveLine:
		return d.moveLine(caret, m.Dir)
	case MoveDoc:
		return d.moveDoc(caret, m.Dir)
	default:
		return caret
	}
}

func (d *Document) moveRune(caret int, dir MoveDir) int {
	switch dir {
	case DirLeft:
		if caret > 0 {
			return caret - 1
		}
	case DirRight:
		if caret < d.RuneLen() {
			return caret + 1
		}
	}
	return caret
}

func (d *Document) moveWord(caret int, dir MoveDir) int {
	runes := []rune(d.text)
	switch dir {
	case DirLeft:
		for caret > 0 && unicode.IsSpace(runes[caret-1]) {
			caret--
		}
		for caret > 0 && !unicode.IsSpace(runes[caret-1]) {
			caret--
		}
	case DirRight:
		for caret < len(runes) && unicode.IsSpace(runes[caret]) {
			caret++
		}
		for caret < len(runes) && !unicode.IsSpace(runes[caret]) {
			caret++
		}
	}
	return caret
}

func (d *Document) moveLine(caret int, dir MoveDir) int {
	runes := []rune(d.text)
	start := lineStart(runes, caret)

	switch dir {
	case DirHome:
		return start
	case DirEnd:
		return lineEnd(runes, caret)
	case DirUp:
		if start == 0 {
			return caret
		}
		prevStart := lineStart(runes, start-1)
		return minInt(prevStart+(caret-start), start-1)
	case DirDown:
		end := lineEnd(runes, caret)
		if end >= len(runes) {
			return caret
		}
		nextStart := end + 1
		return minInt(nextStart+(caret-start), lineEnd(runes, nextStart))
	}
	return caret
}

func (d *Document) moveDoc(caret int, dir MoveDir) int {
	switch dir {
	case DirHome:
		return 0
	case DirEnd:
		return d.RuneLen()
	}
	return caret
}

// CaretLineCol returns the caret position as 0-based (line, rune column).
func (d *Document) CaretLineCol() (line, col int) {
	prefix := string([]rune(d.text)[:d.caret])
	line = strings.Count(prefix, "\n")
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		col = len([]rune(prefix[i+1:]))
	} else {
		col = len([]rune(prefix))
	}
	return line, col
}

func lineStart(runes []rune, caret int) int {
	for caret > 0 && runes[caret-1] != '\n' {
		caret--
	}
	return caret
}

func lineEnd(runes []rune, caret int) int {
	for caret < len(runes) && runes[caret] != '\n' {
		caret++
	}
	return caret
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
