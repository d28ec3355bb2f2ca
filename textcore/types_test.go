package textcore

import "testing"

func TestClampCursor(t *testing.T) {
	cases := []struct {
		name string
		text string
		in   Cursor
		want Cursor
	}{
		{name: "already valid", text: "abc", in: Cursor{Offset: 1, SelectionLen: 2}, want: Cursor{Offset: 1, SelectionLen: 2}},
		{name: "negative offset", text: "abc", in: Cursor{Offset: -2}, want: Cursor{Offset: 0}},
		{name: "offset past end", text: "abc", in: Cursor{Offset: 9}, want: Cursor{Offset: 3}},
		{name: "selection past end", text: "abc", in: Cursor{Offset: 2, SelectionLen: 5}, want: Cursor{Offset: 2, SelectionLen: 1}},
		{name: "negative selection", text: "abc", in: Cursor{Offset: 1, SelectionLen: -1}, want: Cursor{Offset: 1}},
		{name: "rune length bounds", text: "π団", in: Cursor{Offset: 5}, want: Cursor{Offset: 2}},
		{name: "empty text", text: "", in: Cursor{Offset: 3, SelectionLen: 3}, want: Cursor{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampCursor(tc.text, tc.in); got != tc.want {
				t.Fatalf("cursor=%+v, want %+v", got, tc.want)
			}
		})
	}
}
