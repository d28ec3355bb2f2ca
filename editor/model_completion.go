package editor

// SetCompletionState replaces the popup state wholesale; hosts can push
// their own item lists instead of the symbol-derived ones.
func (m Model) SetCompletionState(state CompletionState) Model {
	m.completion = normalizeCompletionState(state)
	m.rebuildContent()
	return m
}

func (m Model) ClearCompletion() Model {
	m.completion = CompletionState{}
	m.rebuildContent()
	return m
}
