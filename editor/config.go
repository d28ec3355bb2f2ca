package editor

import "asmpad/textcore"

// defaultTypePattern matches the common data-definition directives.
const defaultTypePattern = `db|dw|dd|dq|resb|resw|resd|equ`

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal document.
	Text string

	// TypePattern is the regexp fragment for data-declaration directives,
	// fed to textcore.DeclaredIdentifiers. Empty means the defaults.
	TypePattern string

	// SectionMarkers are the directives that open an indented block.
	// Empty means textcore.DefaultSectionMarkers.
	SectionMarkers []string

	// Rendering options.
	ShowLineNums bool
	Style        Style

	KeyMap           KeyMap
	CompletionKeyMap CompletionKeyMap

	// Forwarded to document.Options.
	HistoryLimit int
}

func normalizeConfig(cfg Config) Config {
	if cfg.TypePattern == "" {
		cfg.TypePattern = defaultTypePattern
	}
	if len(cfg.SectionMarkers) == 0 {
		cfg.SectionMarkers = textcore.DefaultSectionMarkers()
	}
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)
	cfg.CompletionKeyMap = normalizeCompletionKeyMap(cfg.CompletionKeyMap)
	return cfg
}

func (cfg Config) indentOptions() textcore.IndentOptions {
	return textcore.IndentOptions{SectionMarkers: cfg.SectionMarkers}
}
