package editor

import (
	"fmt"
	"strings"

	graphemeutil "asmpad/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.doc == nil {
		return ""
	}

	lines := strings.Split(m.doc.Text(), "\n")
	caretRow, caretCol := m.doc.CaretLineCol()
	selStart, selEnd, selOK := m.doc.Selection()

	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(len(lines))
	}

	out := make([]string, 0, len(lines))
	lineStart := 0 // rune offset of the current line start
	for row, line := range lines {
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == caretRow {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		sb.WriteString(m.renderLine(line, lineStart, row == caretRow, caretCol, selStart, selEnd, selOK))
		out = append(out, sb.String())

		lineStart += len([]rune(line)) + 1
	}

	if m.completion.Visible {
		out = m.injectCompletionPopup(out, lines, caretRow, caretCol, digitCount)
	}

	return strings.Join(out, "\n")
}

func (m *Model) renderLine(line string, lineStart int, caretRow bool, caretCol, selStart, selEnd int, selOK bool) string {
	var sb strings.Builder

	rel := 0 // rune offset within the line
	for _, cluster := range graphemeutil.Split(line) {
		abs := lineStart + rel

		style := m.cfg.Style.Text
		if selOK && abs >= selStart && abs < selEnd {
			style = m.cfg.Style.Selection
		}
		if m.focused && caretRow && rel == caretCol {
			style = m.cfg.Style.Cursor
		}

		sb.WriteString(style.Render(cluster))
		rel += len([]rune(cluster))
	}

	// Caret past the last cluster renders as a styled cell.
	if m.focused && caretRow && caretCol >= rel {
		sb.WriteString(m.cfg.Style.Cursor.Render(" "))
	}

	return sb.String()
}

// injectCompletionPopup places the popup rows directly under the caret line,
// indented to the caret column.
func (m *Model) injectCompletionPopup(rendered, lines []string, caretRow, caretCol, digitCount int) []string {
	visible := sanitizeCompletionVisibleIndices(m.completion.VisibleIndices, len(m.completion.Items))
	if len(visible) == 0 {
		return rendered
	}

	selected := clampInt(m.completion.Selected, 0, len(visible)-1)
	start := 0
	if selected >= defaultCompletionMaxVisibleRows {
		start = selected - defaultCompletionMaxVisibleRows + 1
	}
	window := visible[start:minInt(start+defaultCompletionMaxVisibleRows, len(visible))]

	width := 0
	for _, idx := range window {
		if w := graphemeutil.CellWidth(m.completion.Items[idx].Label); w > width {
			width = w
		}
	}

	indent := 0
	if m.cfg.ShowLineNums {
		indent = digitCount + 1
	}
	if caretRow >= 0 && caretRow < len(lines) {
		runes := []rune(lines[caretRow])
		col := clampInt(caretCol, 0, len(runes))
		indent += graphemeutil.CellWidth(string(runes[:col]))
	}
	pad := strings.Repeat(" ", indent)

	rows := make([]string, 0, len(window))
	for i, idx := range window {
		style := m.cfg.Style.CompletionItem
		if start+i == selected {
			style = m.cfg.Style.CompletionSelected
		}
		label := padCells(m.completion.Items[idx].Label, width)
		rows = append(rows, pad+style.Render(" "+label+" "))
	}

	at := caretRow + 1
	if at > len(rendered) {
		at = len(rendered)
	}
	out := make([]string, 0, len(rendered)+len(rows))
	out = append(out, rendered[:at]...)
	out = append(out, rows...)
	out = append(out, rendered[at:]...)
	return out
}

func padCells(s string, w int) string {
	if d := w - graphemeutil.CellWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func gutterDigits(lineCount int) int {
	digits := 1
	for lineCount >= 10 {
		lineCount /= 10
		digits++
	}
	return digits
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
