package textcore

import "strings"

// indentUnit is the fixed indent inserted after labels and section markers.
const indentUnit = "   "

// DefaultSectionMarkers returns the assembly section directives that open an
// indented block.
func DefaultSectionMarkers() []string {
	return []string{".data", ".bss", ".text"}
}

// IndentOptions configures LineBreakInsertion.
type IndentOptions struct {
	// SectionMarkers lists the directives that start an indented section
	// body. Empty means DefaultSectionMarkers.
	SectionMarkers []string
}

func normalizeIndentOptions(opt IndentOptions) IndentOptions {
	if len(opt.SectionMarkers) == 0 {
		opt.SectionMarkers = DefaultSectionMarkers()
	}
	return opt
}

// LineBreakInsertion returns the literal text a line break at offset should
// insert: "\n" plus one indent level, or a bare "\n".
//
// The indented form is chosen when the text before offset ends in ":" (a
// label was just typed), when the current line already carries the indent
// unit somewhere (and is not just the indent itself), or when the last word
// before offset is a section marker. There is no nesting; assembly bodies
// sit at a single fixed level. Out-of-range offsets are clamped.
func LineBreakInsertion(text string, offset int, opt IndentOptions) string {
	opt = normalizeIndentOptions(opt)

	runes := []rune(text)
	offset = clampOffset(offset, len(runes))
	prefix := string(runes[:offset])

	if strings.TrimSpace(text) != "" && strings.TrimSpace(prefix) != "" && strings.HasSuffix(prefix, ":") {
		return "\n" + indentUnit
	}

	lastLine := prefix
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		lastLine = prefix[i+1:]
	}
	if strings.Contains(lastLine, indentUnit) && lastLine != indentUnit {
		return "\n" + indentUnit
	}

	if words := strings.Fields(prefix); len(words) > 0 {
		last := words[len(words)-1]
		for _, marker := range opt.SectionMarkers {
			if last == marker {
				return "\n" + indentUnit
			}
		}
	}

	return "\n"
}
