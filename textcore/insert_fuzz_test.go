package textcore

import (
	"errors"
	"testing"
)

func FuzzInsertAt_LengthAndNoOp(f *testing.F) {
	f.Add("", 0, "")
	f.Add("mov eax, ebx", 4, "ecx")
	f.Add("start:\n   jmp start", 7, "\n   ")
	f.Add("π団", 1, "👍")

	f.Fuzz(func(t *testing.T, text string, offset int, ins string) {
		runeLen := len([]rune(text))

		got, err := InsertAt(text, offset, ins)
		if offset < 0 || offset > runeLen {
			if !errors.Is(err, ErrOffsetOutOfRange) {
				t.Fatalf("offset %d of %d: err=%v, want ErrOffsetOutOfRange", offset, runeLen, err)
			}
			return
		}
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got2, _ := InsertAt(text, offset, ins); got2 != got {
			t.Fatalf("non-deterministic: %q vs %q", got, got2)
		}

		if ins == "" && got != text {
			t.Fatalf("empty insert changed text: %q -> %q", text, got)
		}
		if gotLen, wantLen := len([]rune(got)), runeLen+len([]rune(ins)); gotLen != wantLen {
			t.Fatalf("rune length %d, want %d", gotLen, wantLen)
		}

		res, err := InsertAtCursor(text, offset, ins)
		if err != nil {
			t.Fatalf("unexpected cursor-insert error: %v", err)
		}
		if res.Text != got {
			t.Fatalf("cursor insert text %q, want %q", res.Text, got)
		}
		if want := offset + len([]rune(ins)); res.Cursor.Offset != want || res.Cursor.SelectionLen != 0 {
			t.Fatalf("cursor %+v, want offset %d with no selection", res.Cursor, want)
		}
		if clamped := ClampCursor(res.Text, res.Cursor); clamped != res.Cursor {
			t.Fatalf("result cursor not valid for text: %+v vs %+v", res.Cursor, clamped)
		}
	})
}
