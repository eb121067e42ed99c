package ui

import (
	"github.com/atomicstack/menu-maker/internal/logging/events"
	"github.com/atomicstack/menu-maker/internal/menu"
	"github.com/atomicstack/menu-maker/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// enterFilter switches to the flat fuzzy-search view over every command in
// the tree, regardless of which categories are folded.
func (m *Model) enterFilter() tea.Cmd {
	m.mode = ModeFilter
	m.filterInput.SetValue("")
	m.filterCursor = 0
	m.filterOffset = 0
	m.applyFilter()
	events.Filter.Enter()
	return m.filterInput.Focus()
}

// exitFilter restores the tree view. The tree, cursor, and expansion state
// are untouched by a filter session.
func (m *Model) exitFilter() {
	events.Filter.Exit(m.filterInput.Value())
	m.mode = ModeBrowse
	m.filterInput.Blur()
	m.filtered = nil
	m.filterCursor = 0
	m.filterOffset = 0
}

func (m *Model) applyFilter() {
	query := m.filterInput.Value()
	m.filtered = state.FilterCommands(m.tree.Commands(), query)
	if m.filterCursor >= len(m.filtered) {
		m.filterCursor = len(m.filtered) - 1
	}
	if m.filterCursor < 0 {
		m.filterCursor = 0
	}
	m.ensureFilterVisible()
	events.Filter.Query(query, len(m.filtered))
}

func (m *Model) filterCursorMove(delta int) {
	next := m.filterCursor + delta
	if next < 0 || next >= len(m.filtered) {
		return
	}
	m.filterCursor = next
	m.ensureFilterVisible()
}

func (m *Model) ensureFilterVisible() {
	max := m.maxVisibleRows()
	if max <= 0 {
		m.filterOffset = 0
		return
	}
	if m.filterCursor < m.filterOffset {
		m.filterOffset = m.filterCursor
	}
	if m.filterCursor >= m.filterOffset+max {
		m.filterOffset = m.filterCursor - max + 1
	}
	if m.filterOffset < 0 {
		m.filterOffset = 0
	}
}

// filterSelection returns the command under the filter cursor, or nil.
func (m *Model) filterSelection() *menu.Node {
	if m.filterCursor < 0 || m.filterCursor >= len(m.filtered) {
		return nil
	}
	return m.filtered[m.filterCursor]
}
