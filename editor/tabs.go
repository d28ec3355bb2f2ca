package editor

import (
	"strings"

	"asmpad/document"
)

// Tab is one open document with its display name and backing path.
type Tab struct {
	Name string
	Path string
	Doc  *document.Document
}

// Tabs is an ordered set of open documents with one active entry.
type Tabs struct {
	items  []Tab
	active int
}

func NewTabs() *Tabs { return &Tabs{} }

func (t *Tabs) Len() int { return len(t.items) }

// Add appends a tab and makes it active.
func (t *Tabs) Add(tab Tab) {
	t.items = append(t.items, tab)
	t.active = len(t.items) - 1
}

// Active returns the active tab, or false when none are open.
func (t *Tabs) Active() (Tab, bool) {
	if len(t.items) == 0 {
		return Tab{}, false
	}
	return t.items[t.active], true
}

func (t *Tabs) ActiveIndex() int { return t.active }

// CloseActive removes the active tab; the previous tab (or the new last one)
// becomes active.
func (t *Tabs) CloseActive() {
	if len(t.items) == 0 {
		return
	}
	t.items = append(t.items[:t.active], t.items[t.active+1:]...)
	if t.active >= len(t.items) {
		t.active = len(t.items) - 1
	}
	if t.active < 0 {
		t.active = 0
	}
}

func (t *Tabs) Next() {
	if len(t.items) > 1 {
		t.active = (t.active + 1) % len(t.items)
	}
}

func (t *Tabs) Prev() {
	if len(t.items) > 1 {
		t.active = (t.active - 1 + len(t.items)) % len(t.items)
	}
}

// RenderStrip renders the tab bar with the given styles. Modified documents
// carry a marker next to their name.
func (t *Tabs) RenderStrip(style Style) string {
	if len(t.items) == 0 {
		return ""
	}

	parts := make([]string, 0, len(t.items))
	for i, tab := range t.items {
		name := tab.Name
		if name == "" {
			name = "untitled"
		}

		s := style.TabInactive
		if i == t.active {
			s = style.TabActive
		}
		label := s.Render(name)
		if tab.Doc != nil && tab.Doc.Modified() {
			label += style.TabModified.Render("*")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "")
}
