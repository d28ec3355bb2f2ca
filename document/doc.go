// Package document implements the single source-of-truth state for one open
// editor document: text, caret, selection, bounded undo history, and change
// notification.
//
// All text manipulation goes through the pure textcore package; Document adds
// the identity and lifecycle that the UI layer observes. One Document must
// only be mutated from one goroutine at a time.
package document
