package ui

import (
	"fmt"

	"github.com/atomicstack/menu-maker/internal/logging/events"
	"github.com/atomicstack/menu-maker/internal/menu"
	"github.com/atomicstack/menu-maker/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

// currentNode returns the node under the cursor, or nil when the menu is empty.
func (m *Model) currentNode() *menu.Node {
	idx := m.nav.Index(m.rows)
	if idx < 0 {
		return nil
	}
	return m.rows[idx].Node
}

func (m *Model) refreshRows() {
	m.rows = menu.VisibleRows(m.tree)
	m.nav.EnsureVisible(m.rows, m.maxVisibleRows())
}

func (m *Model) moveCursorUp() {
	if m.nav.MoveUp(m.rows) {
		events.UI.Cursor(m.nav.CursorID, m.nav.Index(m.rows))
	}
	m.nav.EnsureVisible(m.rows, m.maxVisibleRows())
}

func (m *Model) moveCursorDown() {
	if m.nav.MoveDown(m.rows) {
		events.UI.Cursor(m.nav.CursorID, m.nav.Index(m.rows))
	}
	m.nav.EnsureVisible(m.rows, m.maxVisibleRows())
}

func (m *Model) moveCursorPageUp() {
	if m.nav.MovePageUp(m.rows, m.maxVisibleRows()) {
		events.UI.Cursor(m.nav.CursorID, m.nav.Index(m.rows))
	}
	m.nav.EnsureVisible(m.rows, m.maxVisibleRows())
}

func (m *Model) moveCursorPageDown() {
	if m.nav.MovePageDown(m.rows, m.maxVisibleRows()) {
		events.UI.Cursor(m.nav.CursorID, m.nav.Index(m.rows))
	}
	m.nav.EnsureVisible(m.rows, m.maxVisibleRows())
}

func (m *Model) moveCursorHome() {
	if m.nav.MoveHome(m.rows) {
		events.UI.Cursor(m.nav.CursorID, m.nav.Index(m.rows))
	}
	m.nav.EnsureVisible(m.rows, m.maxVisibleRows())
}

func (m *Model) moveCursorEnd() {
	if m.nav.MoveEnd(m.rows) {
		events.UI.Cursor(m.nav.CursorID, m.nav.Index(m.rows))
	}
	m.nav.EnsureVisible(m.rows, m.maxVisibleRows())
}

// toggleNode flips a category's expansion. When a collapse hides the node
// the cursor was on, the cursor relocates to its nearest visible ancestor,
// which is the collapsed category itself.
func (m *Model) toggleNode(node *menu.Node) {
	if node == nil || !node.IsCategory() {
		return
	}
	wasCursor := m.nav.CursorID
	if !m.tree.ToggleExpand(node.ID) {
		return
	}
	events.UI.Toggle(node.ID, node.Expanded)
	rows := menu.VisibleRows(m.tree)
	if menu.RowIndex(rows, wasCursor) < 0 {
		if id, ok := m.tree.VisibleAncestor(rows, wasCursor); ok {
			m.nav.CursorID = id
		}
		events.UI.Relocate(wasCursor, m.nav.CursorID)
	}
	m.rows = rows
	m.nav.EnsureVisible(m.rows, m.maxVisibleRows())
}

// activateCurrent routes Enter/Space through the node variant: categories
// fold, commands run. An empty menu is a safe no-op.
func (m *Model) activateCurrent() tea.Cmd {
	node := m.currentNode()
	if node == nil {
		return nil
	}
	if node.IsCategory() {
		m.toggleNode(node)
		return nil
	}
	return m.runCommand(node)
}

// reloadMenu re-reads the menu file and rebuilds the tree. Failures keep the
// current tree and surface on the status bar.
func (m *Model) reloadMenu() {
	file, err := menu.LoadFile(m.menuPath)
	if err != nil {
		events.UI.Reload(m.menuPath, err)
		m.errMsg = fmt.Sprintf("Reload failed: %v", err)
		return
	}
	m.tree = file.BuildTree()
	if file.AppSettings.Title != "" {
		m.title = file.AppSettings.Title
	}
	m.theme = theme.Resolve(file.AppSettings.ThemeKey, file.SavedThemes)
	m.styles = m.theme.Styles()
	m.refreshRows()
	m.errMsg = ""
	m.setInfo("Configuration reloaded")
	events.UI.Reload(m.menuPath, nil)
}

// showItemInfo surfaces the highlighted command's info text.
func (m *Model) showItemInfo() {
	node := m.currentNode()
	if node == nil || node.IsCategory() {
		return
	}
	if node.Info != "" {
		m.setInfo(node.Info)
		return
	}
	m.setInfo(fmt.Sprintf("Runs: %s", node.Command))
}
