// Package editor provides a Bubble Tea editor component for assembly source,
// backed by the document and textcore packages.
//
// The package owns input handling, viewport behavior, gutter rendering, the
// symbol-driven completion popup, auto-indent on line breaks, and the tab
// strip over multiple open documents.
package editor
