package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"asmpad"
	"asmpad/document"
	"asmpad/editor"
)

type model struct {
	tabs   *editor.Tabs
	editor editor.Model
	cfg    editor.Config
	style  editor.Style

	width  int
	height int
	status string
}

func newModel(paths []string) (model, error) {
	theme := editor.NewTheme()
	style := theme.Style()

	cfg := editor.Config{
		ShowLineNums: true,
		Style:        style,
	}

	tabs := editor.NewTabs()
	for _, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return model{}, fmt.Errorf("read %s: %w", path, err)
		}
		tabs.Add(editor.Tab{
			Name: filepath.Base(path),
			Path: path,
			Doc:  document.New(string(text), document.Options{}),
		})
	}
	if tabs.Len() == 0 {
		tabs.Add(editor.Tab{Doc: document.New("", document.Options{})})
	}

	m := model{
		tabs:  tabs,
		cfg:   cfg,
		style: style,
	}
	m.editor = m.editorForActiveTab()
	return m, nil
}

func (m model) editorForActiveTab() editor.Model {
	active, _ := m.tabs.Active()
	ed := editor.NewWithDocument(active.Doc, m.cfg)
	return ed.SetSize(m.width, m.editorHeight())
}

// editorHeight leaves one row for the tab strip and one for the status bar.
func (m model) editorHeight() int {
	h := m.height - 2
	if h < 0 {
		h = 0
	}
	return h
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.editor = m.editor.SetSize(m.width, m.editorHeight())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			m.status = m.saveActive()
			return m, nil
		case "ctrl+n":
			m.tabs.Add(editor.Tab{Doc: document.New("", document.Options{})})
			m.editor = m.editorForActiveTab()
			return m, nil
		case "ctrl+w":
			m.tabs.CloseActive()
			if m.tabs.Len() == 0 {
				return m, tea.Quit
			}
			m.editor = m.editorForActiveTab()
			return m, nil
		case "ctrl+pgdown":
			m.tabs.Next()
			m.editor = m.editorForActiveTab()
			return m, nil
		case "ctrl+pgup":
			m.tabs.Prev()
			m.editor = m.editorForActiveTab()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if err := m.editor.Err(); err != nil {
		m.status = err.Error()
	}
	return m, cmd
}

func (m model) saveActive() string {
	active, ok := m.tabs.Active()
	if !ok {
		return ""
	}
	if active.Path == "" {
		return "no file name; started without a path"
	}
	if err := os.WriteFile(active.Path, []byte(active.Doc.Text()), 0o644); err != nil {
		return fmt.Sprintf("save failed: %v", err)
	}
	active.Doc.MarkSaved()
	return fmt.Sprintf("wrote %s", active.Path)
}

func (m model) View() string {
	line, col := 0, 0
	if active, ok := m.tabs.Active(); ok && active.Doc != nil {
		line, col = active.Doc.CaretLineCol()
	}
	status := fmt.Sprintf(" %d:%d  %s", line+1, col+1, m.status)
	return m.tabs.RenderStrip(m.style) + "\n" + m.editor.View() + "\n" + status
}

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("asmpad " + asmpad.VersionTag())
		return
	}

	m, err := newModel(flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "asmpad:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "asmpad:", err)
		os.Exit(1)
	}
}
