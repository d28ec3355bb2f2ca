package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"asmpad/document"
	"asmpad/textcore"
)

// Model is a Bubble Tea component that renders and edits one document.
type Model struct {
	cfg Config
	doc *document.Document

	focused bool

	viewport   viewport.Model
	completion CompletionState

	// err holds the last configuration error (a malformed TypePattern);
	// hosts read it via Err.
	err error

	lastVersion uint64
	lastCaret   int
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		doc:      document.New(cfg.Text, document.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = m.doc.Version()
	m.lastCaret = m.doc.Caret()
	m.rebuildContent()
	return m
}

// NewWithDocument wraps an existing document, for hosts that keep documents
// alive across tabs.
func NewWithDocument(doc *document.Document, cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		doc:      doc,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastVersion = doc.Version()
	m.lastCaret = doc.Caret()
	m.rebuildContent()
	return m
}

func (m Model) Document() *document.Document { return m.doc }

// Err returns the last configuration error, if any.
func (m Model) Err() error { return m.err }

func (m Model) CompletionState() CompletionState {
	return cloneCompletionState(m.completion)
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.completion = CompletionState{}
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncFromDocument()
		return m, cmd
	}
}

func (m Model) View() string { return m.viewport.View() }

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.doc == nil {
		return m, nil
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insertText(string(msg.Runes))
		m.afterEdit()
		return m, nil
	}

	ckm := m.cfg.CompletionKeyMap
	if m.completion.Visible {
		switch {
		case key.Matches(msg, ckm.Accept):
			m.acceptCompletion()
			m.afterEdit()
			return m, nil
		case ckm.AcceptTab && msg.Type == tea.KeyTab:
			m.acceptCompletion()
			m.afterEdit()
			return m, nil
		case key.Matches(msg, ckm.Dismiss):
			m.completion = CompletionState{}
			m.rebuildContent()
			return m, nil
		case key.Matches(msg, ckm.Next):
			m.moveCompletionSelection(1)
			m.rebuildContent()
			return m, nil
		case key.Matches(msg, ckm.Prev):
			m.moveCompletionSelection(-1)
			m.rebuildContent()
			return m, nil
		}
	}
	if key.Matches(msg, ckm.Trigger) {
		m.openCompletion()
		m.rebuildContent()
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.doc.ApplyMove(document.Move{Unit: document.MoveRune, Dir: document.DirLeft})
	case key.Matches(msg, km.Right):
		m.doc.ApplyMove(document.Move{Unit: document.MoveRune, Dir: document.DirRight})
	case key.Matches(msg, km.Up):
		m.doc.ApplyMove(document.Move{Unit: document.MoveLine, Dir: document.DirUp})
	case key.Matches(msg, km.Down):
		m.doc.ApplyMove(document.Move{Unit: document.MoveLine, Dir: document.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.doc.ApplyMove(document.Move{Unit: document.MoveRune, Dir: document.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.doc.ApplyMove(document.Move{Unit: document.MoveRune, Dir: document.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.doc.ApplyMove(document.Move{Unit: document.MoveLine, Dir: document.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.doc.ApplyMove(document.Move{Unit: document.MoveLine, Dir: document.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.doc.ApplyMove(document.Move{Unit: document.MoveWord, Dir: document.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.doc.ApplyMove(document.Move{Unit: document.MoveWord, Dir: document.DirRight})

	case key.Matches(msg, km.Home):
		m.doc.ApplyMove(document.Move{Unit: document.MoveLine, Dir: document.DirHome})
	case key.Matches(msg, km.End):
		m.doc.ApplyMove(document.Move{Unit: document.MoveLine, Dir: document.DirEnd})
	case key.Matches(msg, km.DocHome):
		m.doc.ApplyMove(document.Move{Unit: document.MoveDoc, Dir: document.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.doc.ApplyMove(document.Move{Unit: document.MoveDoc, Dir: document.DirEnd})

	case key.Matches(msg, km.Backspace):
		m.doc.DeleteBackward()
		m.requeryCompletion()
	case key.Matches(msg, km.Delete):
		m.doc.DeleteForward()
		m.requeryCompletion()
	case key.Matches(msg, km.Enter):
		if err := m.doc.InsertLineBreak(m.cfg.indentOptions()); err != nil {
			m.err = err
		}
		m.completion = CompletionState{}

	case key.Matches(msg, km.Undo):
		_ = m.doc.Undo()
		m.completion = CompletionState{}
	case key.Matches(msg, km.Redo):
		_ = m.doc.Redo()
		m.completion = CompletionState{}

	default:
		if msg.Type == tea.KeyTab {
			m.insertText("\t")
			break
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insertText(string(msg.Runes))
		}
	}

	m.afterEdit()
	return m, nil
}

func (m *Model) insertText(s string) {
	if err := m.doc.Insert(s); err != nil {
		m.err = err
		return
	}
	m.requeryCompletion()
}

// afterEdit refreshes viewport content and scroll state after any mutation.
func (m *Model) afterEdit() {
	m.syncFromDocument()
	m.followCursor()
}

func (m *Model) syncFromDocument() {
	if m.doc == nil {
		return
	}
	ver := m.doc.Version()
	caret := m.doc.Caret()
	if ver == m.lastVersion && caret == m.lastCaret {
		return
	}
	m.lastVersion = ver
	m.lastCaret = caret
	m.rebuildContent()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.doc == nil {
		return
	}
	row, _ := m.doc.CaretLineCol()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

// openCompletion builds the popup from the document's declared identifiers
// and labels, seeded with the word around the caret as the query.
func (m *Model) openCompletion() {
	items, err := symbolCompletionItems(m.doc.Text(), m.cfg.TypePattern)
	if err != nil {
		m.err = err
		return
	}
	if len(items) == 0 {
		return
	}

	query := textcore.SurroundingWord(m.doc.Text(), m.doc.Caret())
	state := CompletionState{
		Visible: true,
		Anchor:  m.doc.Caret(),
		Query:   query,
		Items:   items,
	}
	state.VisibleIndices = filterCompletionItems(items, query)
	m.completion = normalizeCompletionState(state)
	if len(m.completion.VisibleIndices) == 0 {
		m.completion = CompletionState{}
	}
}

// requeryCompletion refreshes the open popup after a text change, or closes
// it when the caret left the word it was opened on.
func (m *Model) requeryCompletion() {
	if !m.completion.Visible {
		return
	}
	if m.doc.Caret() < m.completion.Anchor {
		m.completion = CompletionState{}
		return
	}

	query := textcore.SurroundingWord(m.doc.Text(), m.doc.Caret())
	m.completion.Query = query
	m.completion.VisibleIndices = filterCompletionItems(m.completion.Items, query)
	if len(m.completion.VisibleIndices) == 0 {
		m.completion = CompletionState{}
		return
	}
	m.completion = normalizeCompletionState(m.completion)
}

func (m *Model) moveCompletionSelection(delta int) {
	if !m.completion.Visible || len(m.completion.VisibleIndices) == 0 {
		return
	}
	n := len(m.completion.VisibleIndices)
	m.completion.Selected = ((m.completion.Selected+delta)%n + n) % n
}

func (m *Model) acceptCompletion() {
	state := m.completion
	m.completion = CompletionState{}
	if !state.Visible || len(state.VisibleIndices) == 0 {
		return
	}
	sel := clampInt(state.Selected, 0, len(state.VisibleIndices)-1)
	item := state.Items[state.VisibleIndices[sel]]
	if err := m.doc.AcceptCompletion(item.InsertText); err != nil {
		m.err = err
	}
}
