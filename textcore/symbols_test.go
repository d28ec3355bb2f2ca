package textcore

import (
	"reflect"
	"testing"
)

func TestDeclaredIdentifiers_BasicDirectives(t *testing.T) {
	src := "section .data\n msg db \"hi\", 10\n count dw 3\n"
	got, err := DeclaredIdentifiers(src, "db|dw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"msg", "count", "[msg]", "[count]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("symbols=%v, want %v", got, want)
	}
}

func TestDeclaredIdentifiers_ColonsStrippedFirst(t *testing.T) {
	// The colon is removed before matching, so a label directly in front of
	// a declaration does not break the whitespace shape.
	src := "data:\n x db 1\n"
	got, err := DeclaredIdentifiers(src, "db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"x", "[x]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("symbols=%v, want %v", got, want)
	}
}

func TestDeclaredIdentifiers_DuplicatesPreserved(t *testing.T) {
	src := " buf db 0\n buf db 1\n"
	got, err := DeclaredIdentifiers(src, "db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"buf", "buf", "[buf]", "[buf]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("symbols=%v, want %v", got, want)
	}
}

func TestDeclaredIdentifiers_NoGrammar(t *testing.T) {
	// A declaration-shaped sequence inside a comment is extracted too; the
	// matcher is textual on purpose.
	src := "; note: fake db 1 here\n"
	got, err := DeclaredIdentifiers(src, "db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"fake", "[fake]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("symbols=%v, want %v", got, want)
	}
}

func TestDeclaredIdentifiers_NoMatches(t *testing.T) {
	got, err := DeclaredIdentifiers("mov eax, ebx\n", "db")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("symbols=%v, want none", got)
	}
}

func TestDeclaredIdentifiers_BadPattern(t *testing.T) {
	if _, err := DeclaredIdentifiers("x db 1", "db("); err == nil {
		t.Fatalf("expected error for malformed pattern")
	}
}

func TestLabelNames_LineOrder(t *testing.T) {
	got := LabelNames("start:\n  mov eax, 1\nloop:\n  jmp loop\n")
	want := []string{"start", "loop", "[start]", "[loop]"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("labels=%v, want %v", got, want)
	}
}

func TestLabelNames_TrimsAndAnchors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{name: "indented label", src: "   done:   \n", want: []string{"done", "[done]"}},
		{name: "colon mid line skipped", src: "x: mov eax, 1\n", want: nil},
		{name: "no labels", src: "mov eax, 1\n", want: nil},
		{name: "duplicate labels preserved", src: "a:\na:\n", want: []string{"a", "a", "[a]", "[a]"}},
		{name: "empty source", src: "", want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := LabelNames(tc.src)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("labels=%v, want %v", got, tc.want)
			}
		})
	}
}
