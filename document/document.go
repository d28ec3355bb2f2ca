package document

import (
	"asmpad/textcore"
)

type Options struct {
	HistoryLimit int // default: 1000
}

// Document is the mutable editor state around an immutable text snapshot.
type Document struct {
	text    string
	caret   int // rune offset
	anchor  int // selection anchor; == caret when nothing is selected
	version uint64

	savedText string

	opt  Options
	hist historyState
	subs []func(ChangeEvent)
}

func New(text string, opt Options) *Document {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Document{
		text:      text,
		savedText: text,
		opt:       opt,
	}
}

func (d *Document) Text() string { return d.text }

func (d *Document) Version() uint64 { return d.version }

// RuneLen returns the document length in runes.
func (d *Document) RuneLen() int { return len([]rune(d.text)) }

// Caret returns the raw caret rune offset.
func (d *Document) Caret() int { return d.caret }

// Cursor returns the normalized caret/selection pair: Offset is the lower
// end of the selection (or the caret), SelectionLen is never negative.
func (d *Document) Cursor() textcore.Cursor {
	start, end, ok := d.Selection()
	if !ok {
		return textcore.Cursor{Offset: d.caret}
	}
	return textcore.Cursor{Offset: start, SelectionLen: end - start}
}

// Selection returns the active selection as a half-open rune range.
func (d *Document) Selection() (start, end int, ok bool) {
	if d.anchor == d.caret {
		return 0, 0, false
	}
	if d.anchor < d.caret {
		return d.anchor, d.caret, true
	}
	return d.caret, d.anchor, true
}

// SetCaret moves the caret and clears any selection. Out-of-range offsets
// are clamped.
func (d *Document) SetCaret(offset int) {
	offset = textcore.ClampCursor(d.text, textcore.Cursor{Offset: offset}).Offset
	if offset == d.caret && d.anchor == d.caret {
		return
	}
	d.caret = offset
	d.anchor = offset
	d.bump()
}

// SetSelection selects [anchor, caret) in either direction, clamped.
func (d *Document) SetSelection(anchor, caret int) {
	anchor = textcore.ClampCursor(d.text, textcore.Cursor{Offset: anchor}).Offset
	caret = textcore.ClampCursor(d.text, textcore.Cursor{Offset: caret}).Offset
	if anchor == d.anchor && caret == d.caret {
		return
	}
	d.anchor = anchor
	d.caret = caret
	d.bump()
}

func (d *Document) ClearSelection() {
	if d.anchor == d.caret {
		return
	}
	d.anchor = d.caret
	d.bump()
}

// Modified reports whether the text differs from the last MarkSaved state.
// Caret and selection changes alone do not count.
func (d *Document) Modified() bool { return d.text != d.savedText }

// MarkSaved records the current text as the on-disk state.
func (d *Document) MarkSaved() { d.savedText = d.text }

// bump records an observable change and notifies subscribers.
func (d *Document) bump() {
	d.version++
	d.notify()
}

func (d *Document) setText(text string, caret int) {
	d.text = text
	d.caret = textcore.ClampCursor(text, textcore.Cursor{Offset: caret}).Offset
	d.anchor = d.caret
}
