package editor

import (
	"reflect"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"asmpad/textcore"
)

const defaultCompletionMaxVisibleRows = 8

// CompletionItem is one entry the popup can insert.
type CompletionItem struct {
	InsertText string
	Label      string
}

// CompletionState is the visible popup state. Anchor is the caret rune
// offset the popup was opened at.
type CompletionState struct {
	Visible  bool
	Anchor   int
	Query    string
	Items    []CompletionItem
	Selected int

	VisibleIndices []int
}

type CompletionKeyMap struct {
	Trigger key.Binding
	Accept  key.Binding

	AcceptTab bool

	Dismiss key.Binding
	Next    key.Binding
	Prev    key.Binding
}

func DefaultCompletionKeyMap() CompletionKeyMap {
	return CompletionKeyMap{
		Trigger:   key.NewBinding(key.WithKeys("ctrl+space", "ctrl+@"), key.WithHelp("ctrl+space", "trigger completion")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept completion")),
		AcceptTab: true,
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss completion")),
		Next:      key.NewBinding(key.WithKeys("down"), key.WithHelp("down", "next completion")),
		Prev:      key.NewBinding(key.WithKeys("up"), key.WithHelp("up", "prev completion")),
	}
}

func normalizeCompletionKeyMap(km CompletionKeyMap) CompletionKeyMap {
	if reflect.DeepEqual(km, CompletionKeyMap{}) {
		return DefaultCompletionKeyMap()
	}
	return km
}

// symbolCompletionItems extracts every declared identifier and label from
// src, in source order, as completion items. The bracketed memory-operand
// forms ride along with their plain names.
func symbolCompletionItems(src, typePattern string) ([]CompletionItem, error) {
	names, err := textcore.DeclaredIdentifiers(src, typePattern)
	if err != nil {
		return nil, err
	}
	names = append(names, textcore.LabelNames(src)...)

	items := make([]CompletionItem, 0, len(names))
	for _, n := range names {
		items = append(items, CompletionItem{InsertText: n, Label: n})
	}
	return items, nil
}

// filterCompletionItems keeps the indices of items containing query,
// case-insensitively. An empty query keeps everything.
func filterCompletionItems(items []CompletionItem, query string) []int {
	query = strings.ToLower(query)
	visible := make([]int, 0, len(items))
	for i := range items {
		if strings.Contains(strings.ToLower(items[i].Label), query) {
			visible = append(visible, i)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	return visible
}

func normalizeCompletionState(state CompletionState) CompletionState {
	state = cloneCompletionState(state)
	state.VisibleIndices = sanitizeCompletionVisibleIndices(state.VisibleIndices, len(state.Items))

	if len(state.VisibleIndices) == 0 {
		state.Selected = 0
		return state
	}
	state.Selected = clampInt(state.Selected, 0, len(state.VisibleIndices)-1)
	return state
}

func cloneCompletionState(state CompletionState) CompletionState {
	if len(state.Items) == 0 {
		state.Items = nil
	} else {
		state.Items = append([]CompletionItem(nil), state.Items...)
	}
	if len(state.VisibleIndices) == 0 {
		state.VisibleIndices = nil
	} else {
		state.VisibleIndices = append([]int(nil), state.VisibleIndices...)
	}
	return state
}

func sanitizeCompletionVisibleIndices(indices []int, itemCount int) []int {
	if len(indices) == 0 || itemCount <= 0 {
		return nil
	}
	out := make([]int, 0, len(indices))
	seen := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= itemCount {
			continue
		}
		if _, exists := seen[idx]; exists {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
