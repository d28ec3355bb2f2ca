package document

import (
	"testing"

	"asmpad/textcore"
)

func TestDocument_Insert_AtCaret(t *testing.T) {
	d := New("abc", Options{})
	d.SetCaret(1)
	v := d.Version()

	if err := d.Insert("X"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := d.Text(), "aXbc"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Caret(), 2; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	if got := d.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
}

func TestDocument_Insert_ReplacesSelection(t *testing.T) {
	d := New("hello", Options{})
	d.SetSelection(1, 4) // "ell"

	if err := d.Insert("i"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := d.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Caret(), 2; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
	if _, _, ok := d.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestDocument_Insert_EmptyDeletesSelectionOnly(t *testing.T) {
	d := New("hello", Options{})
	d.SetSelection(1, 4)

	if err := d.Insert(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := d.Text(), "ho"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestDocument_InsertLineBreak_IndentsAfterLabel(t *testing.T) {
	d := New("start:", Options{})
	d.SetCaret(6)

	if err := d.InsertLineBreak(textcore.IndentOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := d.Text(), "start:\n   "; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Caret(), 10; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestDocument_InsertLineBreak_PlainNewline(t *testing.T) {
	d := New("mov eax, 1", Options{})
	d.SetCaret(10)

	if err := d.InsertLineBreak(textcore.IndentOptions{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := d.Text(), "mov eax, 1\n"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Caret(), 11; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestDocument_AcceptCompletion_ReplacesPartialWord(t *testing.T) {
	d := New("mov ea, ebx", Options{})
	d.SetCaret(6)

	if err := d.AcceptCompletion("eax"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := d.Text(), "mov eax, ebx"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	// Caret lands right after the accepted word.
	if got, want := d.Caret(), 7; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestDocument_AcceptCompletion_EmptyPrefix(t *testing.T) {
	d := New("", Options{})

	if err := d.AcceptCompletion("start"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := d.Text(), "start"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Caret(), 5; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}

func TestDocument_DeleteBackward(t *testing.T) {
	d := New("abc", Options{})
	d.SetCaret(2)

	d.DeleteBackward()
	if got, want := d.Text(), "ac"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Caret(), 1; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}

	d.SetCaret(0)
	v := d.Version()
	d.DeleteBackward()
	if got := d.Version(); got != v {
		t.Fatalf("backspace at start bumped version: %d -> %d", v, got)
	}
}

func TestDocument_DeleteForward(t *testing.T) {
	d := New("abc", Options{})
	d.SetCaret(1)

	d.DeleteForward()
	if got, want := d.Text(), "ac"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Caret(), 1; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}

	d.SetCaret(2)
	v := d.Version()
	d.DeleteForward()
	if got := d.Version(); got != v {
		t.Fatalf("delete at end bumped version: %d -> %d", v, got)
	}
}

func TestDocument_DeleteSelection_Multiline(t *testing.T) {
	d := New("ab\ncd\nef", Options{})
	d.SetSelection(1, 7)

	d.DeleteSelection()
	if got, want := d.Text(), "af"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := d.Caret(), 1; got != want {
		t.Fatalf("caret=%d, want %d", got, want)
	}
}
