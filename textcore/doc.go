// Package textcore implements the pure text-manipulation core for asmpad.
//
// Every operation takes a full buffer string plus rune-based offsets and
// returns new values; nothing here holds state, performs I/O, or blocks, so
// the package is safe for concurrent use. Callers own serialization of edits
// against one logical document.
package textcore
