package document

import (
	"fmt"

	"asmpad/textcore"
)

// Insert inserts s at the caret, replacing the active selection first.
func (d *Document) Insert(s string) error {
	if s == "" {
		if _, _, ok := d.Selection(); ok {
			d.DeleteSelection()
		}
		return nil
	}

	prev := d.snapshot()
	d.collapseSelection()

	res, err := textcore.InsertAtCursor(d.text, d.caret, s)
	if err != nil {
		return fmt.Errorf("document: insert: %w", err)
	}
	d.setText(res.Text, res.Cursor.Offset)
	d.recordUndo(prev)
	d.bump()
	return nil
}

// InsertLineBreak inserts a newline at the caret, with the auto-indent the
// prefix calls for. The selection, if any, is replaced.
func (d *Document) InsertLineBreak(opt textcore.IndentOptions) error {
	prev := d.snapshot()
	d.collapseSelection()

	ins := textcore.LineBreakInsertion(d.text, d.caret, opt)
	res, err := textcore.InsertAtCursor(d.text, d.caret, ins)
	if err != nil {
		return fmt.Errorf("document: line break: %w", err)
	}
	d.setText(res.Text, res.Cursor.Offset)
	d.recordUndo(prev)
	d.bump()
	return nil
}

// AcceptCompletion replaces the in-progress word before the caret with word
// and leaves the caret right after it.
func (d *Document) AcceptCompletion(word string) error {
	prev := d.snapshot()
	d.collapseSelection()

	suffixLen := d.RuneLen() - d.caret
	next, err := textcore.ReplaceTrailingWord(d.text, d.caret, word)
	if err != nil {
		return fmt.Errorf("document: accept completion: %w", err)
	}
	d.setText(next, len([]rune(next))-suffixLen)
	d.recordUndo(prev)
	d.bump()
	return nil
}

// DeleteBackward applies backspace semantics.
func (d *Document) DeleteBackward() {
	if _, _, ok := d.Selection(); ok {
		d.DeleteSelection()
		return
	}
	if d.caret == 0 {
		return
	}
	prev := d.snapshot()
	d.deleteRange(d.caret-1, d.caret)
	d.recordUndo(prev)
	d.bump()
}

// DeleteForward applies delete-key semantics.
func (d *Document) DeleteForward() {
	if _, _, ok := d.Selection(); ok {
		d.DeleteSelection()
		return
	}
	if d.caret >= d.RuneLen() {
		return
	}
	prev := d.snapshot()
	d.deleteRange(d.caret, d.caret+1)
	d.recordUndo(prev)
	d.bump()
}

// DeleteSelection deletes the active selection, if any.
func (d *Document) DeleteSelection() {
	start, end, ok := d.Selection()
	if !ok {
		return
	}
	prev := d.snapshot()
	d.deleteRange(start, end)
	d.recordUndo(prev)
	d.bump()
}

// collapseSelection removes selected text without recording history or
// notifying; the caller folds it into its own transaction.
func (d *Document) collapseSelection() {
	start, end, ok := d.Selection()
	if !ok {
		return
	}
	d.deleteRange(start, end)
}

func (d *Document) deleteRange(start, end int) {
	runes := []rune(d.text)
	d.setText(string(runes[:start])+string(runes[end:]), start)
}
