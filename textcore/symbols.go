package textcore

import (
	"fmt"
	"regexp"
	"strings"
)

// labelRE matches a trailing "name:" on an already-trimmed line.
var labelRE = regexp.MustCompile(`([A-Za-z_][0-9A-Za-z_]*):$`)

// DeclaredIdentifiers extracts variable names declared with a type directive
// matching the caller-supplied regexp fragment (for example `db|dw|dd`).
//
// All colons are stripped from src first, then every occurrence of
// whitespace, identifier, whitespace, typePattern, whitespace is matched and
// the identifier captured. The result lists every plain name in match order
// followed by a "[name]" form for each, duplicates preserved.
//
// Matching is substring based with no assembler grammar behind it: a
// declaration-shaped sequence inside a comment or string literal is
// extracted all the same. A malformed typePattern is a configuration error
// and is returned to the caller.
func DeclaredIdentifiers(src, typePattern string) ([]string, error) {
	re, err := regexp.Compile(`\s([A-Za-z_][0-9A-Za-z_]*)\s+(?:` + typePattern + `)\s`)
	if err != nil {
		return nil, fmt.Errorf("textcore: compile type pattern %q: %w", typePattern, err)
	}

	stripped := strings.ReplaceAll(src, ":", "")

	var names []string
	for _, m := range re.FindAllStringSubmatch(stripped, -1) {
		names = append(names, m[1])
	}
	return withBracketedForms(names), nil
}

// LabelNames extracts jump-target labels: per trimmed line, an identifier
// followed by ":" anchored at line end. Names come back in line order, plain
// forms first, then a "[name]" form for each. Like DeclaredIdentifiers, the
// match is purely textual.
func LabelNames(src string) []string {
	var names []string
	for _, line := range strings.Split(src, "\n") {
		if m := labelRE.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			names = append(names, m[1])
		}
	}
	return withBracketedForms(names)
}

func withBracketedForms(names []string) []string {
	if len(names) == 0 {
		return nil
	}
	out := make([]string, 0, len(names)*2)
	out = append(out, names...)
	for _, n := range names {
		out = append(out, "["+n+"]")
	}
	return out
}
