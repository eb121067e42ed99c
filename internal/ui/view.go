package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/menu-maker/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeSuspended {
		// The child process owns the terminal; render nothing behind it.
		return ""
	}
	lines := make([]styledLine, 0, 16)
	lines = append(lines, styledLine{text: m.title, style: m.styles.Title})
	if m.mode == ModeFilter {
		lines = append(lines, m.filterLines()...)
	} else {
		lines = append(lines, m.browseLines()...)
	}
	if info := m.currentInfo(); info != "" {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: info, style: m.styles.Info})
	}
	if m.showFooter {
		lines = append(lines, styledLine{})
		lines = append(lines, styledLine{text: m.footerText(), style: m.styles.Footer})
	}
	// Reserve rows for the bottom bar (blank + status, plus the filter prompt).
	reserved := 2
	if m.mode == ModeFilter {
		reserved++
	}
	lines = limitHeight(lines, m.height-reserved, m.width)
	lines = applyWidth(lines, m.width)

	bottomLines := []styledLine{{}}
	if m.errMsg != "" {
		bottomLines = append(bottomLines, styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: m.styles.Error})
	} else {
		bottomLines = append(bottomLines, styledLine{text: m.statusText(), style: m.styles.Status})
	}
	if m.mode == ModeFilter {
		bottomLines = append(bottomLines, styledLine{text: m.filterInput.View(), raw: true})
	}
	bottomLines = applyWidth(bottomLines, m.width)
	lines = append(lines, bottomLines...)
	return renderLines(lines)
}

// browseLines renders the visible window of the projected tree.
func (m *Model) browseLines() []styledLine {
	if len(m.rows) == 0 {
		return []styledLine{{text: "(no entries)", style: m.styles.Info}}
	}
	start := m.nav.Offset
	if start < 0 {
		start = 0
	}
	end := len(m.rows)
	if max := m.maxVisibleRows(); max > 0 && start+max < end {
		end = start + max
	}
	if start > end {
		start = end
	}
	cursorIdx := m.nav.Index(m.rows)
	lines := make([]styledLine, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.buildRowLine(m.rows[i], i == cursorIdx))
	}
	return lines
}

// filterLines renders the flat ranked match list under the search prompt.
func (m *Model) filterLines() []styledLine {
	if len(m.filtered) == 0 {
		msg := "(no entries)"
		if strings.TrimSpace(m.filterInput.Value()) != "" {
			msg = fmt.Sprintf("No matches for %q", m.filterInput.Value())
		}
		return []styledLine{{text: msg, style: m.styles.Info}}
	}
	start := m.filterOffset
	if start < 0 {
		start = 0
	}
	end := len(m.filtered)
	if max := m.maxVisibleRows(); max > 0 && start+max < end {
		end = start + max
	}
	if start > end {
		start = end
	}
	lines := make([]styledLine, 0, end-start)
	for i := start; i < end; i++ {
		node := m.filtered[i]
		style := m.styles.Item
		if i == m.filterCursor {
			style = m.styles.Cursor
		}
		text := "  " + node.Label
		if pad := m.width - len([]rune(text)); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		lines = append(lines, styledLine{text: text, style: style})
	}
	return lines
}

// buildRowLine constructs one menu row. Categories get an expansion marker;
// commands sit one extra indent step in. The text is padded to the full width
// so the cursor background spans the container.
func (m *Model) buildRowLine(row menu.Row, selected bool) styledLine {
	indent := strings.Repeat("  ", row.Depth)
	var text string
	highlightFrom := 0
	var prefixStyle *lipgloss.Style
	if row.Node.IsCategory() {
		marker := "▶"
		if row.Node.Expanded {
			marker = "▼"
		}
		text = indent + marker + " " + row.Node.Label
		highlightFrom = len([]rune(indent)) + 1
		prefixStyle = m.styles.Marker
	} else {
		text = indent + "  " + row.Node.Label
	}
	if pad := m.width - len([]rune(text)); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return styledLine{
		text:          text,
		style:         m.rowStyle(row.Node, selected),
		prefixStyle:   prefixStyle,
		highlightFrom: highlightFrom,
	}
}

// rowStyle picks the row's base style and layers any per-category color
// overrides from the menu file on top.
func (m *Model) rowStyle(node *menu.Node, selected bool) *lipgloss.Style {
	if selected {
		return m.styles.Cursor
	}
	base := m.styles.Item
	if node.IsCategory() {
		base = m.styles.Category
	}
	if node.Colors == nil || base == nil {
		return base
	}
	style := *base
	if node.Colors.Background != "" {
		style = style.Background(lipgloss.Color(node.Colors.Background))
	}
	if node.Colors.Text != "" {
		style = style.Foreground(lipgloss.Color(node.Colors.Text))
	}
	return &style
}

func (m *Model) statusText() string {
	var b strings.Builder
	if m.mode == ModeFilter {
		pos := 0
		if len(m.filtered) > 0 {
			pos = m.filterCursor + 1
		}
		fmt.Fprintf(&b, "Match %d/%d", pos, len(m.filtered))
	} else {
		pos := 0
		if idx := m.nav.Index(m.rows); idx >= 0 {
			pos = idx + 1
		}
		fmt.Fprintf(&b, "Item %d/%d | Theme: %s", pos, len(m.rows), m.theme.Name)
	}
	if m.pendingLabel != "" {
		fmt.Fprintf(&b, " | Running %s", m.pendingLabel)
	}
	return b.String()
}

func (m *Model) footerText() string {
	bindings := []key.Binding{
		m.keys.Up, m.keys.Select, m.keys.Toggle,
		m.keys.Filter, m.keys.Reload, m.keys.Info, m.keys.Quit,
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// maxVisibleRows reports how many menu rows fit between the title line and
// the bottom bar. A non-positive height means no constraint.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := headerRows + 2 // title plus blank + status
	if m.mode == ModeFilter {
		used++
	}
	if m.showFooter {
		used += 2
	}
	if m.currentInfo() != "" {
		used += 2
	}
	max := m.height - used
	if max < 1 {
		max = 1
	}
	return max
}

func limitHeight(lines []styledLine, height, width int) []styledLine {
	if height <= 0 || len(lines) <= height {
		return lines
	}
	if height == 1 {
		return []styledLine{{text: truncateText("…", width)}}
	}
	trimmed := make([]styledLine, 0, height)
	trimmed = append(trimmed, lines[:height-1]...)
	trimmed = append(trimmed, styledLine{text: truncateText("…", width)})
	return trimmed
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if w := lipgloss.Width(text); w > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		result[i] = styledLine{
			text:          text,
			style:         line.style,
			prefixStyle:   line.prefixStyle,
			highlightFrom: line.highlightFrom,
			raw:           line.raw,
		}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
