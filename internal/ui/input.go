package ui

import (
	"github.com/atomicstack/menu-maker/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// headerRows is the number of lines above the first menu row in the view.
const headerRows = 1

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	// A suspended terminal belongs to the child process; swallow everything.
	if m.mode == ModeSuspended {
		return nil
	}
	if m.mode == ModeFilter {
		return m.handleFilterKey(keyMsg)
	}
	switch m.translateKey(keyMsg) {
	case CommandQuit:
		events.App.Quit()
		return tea.Quit
	case CommandMoveUp:
		m.moveCursorUp()
	case CommandMoveDown:
		m.moveCursorDown()
	case CommandPageUp:
		m.moveCursorPageUp()
	case CommandPageDown:
		m.moveCursorPageDown()
	case CommandHome:
		m.moveCursorHome()
	case CommandEnd:
		m.moveCursorEnd()
	case CommandActivate:
		return m.activateCurrent()
	case CommandFilter:
		return m.enterFilter()
	case CommandReload:
		m.reloadMenu()
	case CommandInfo:
		m.showItemInfo()
	}
	return nil
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitFilter()
		return nil
	case tea.KeyCtrlC:
		events.App.Quit()
		return tea.Quit
	case tea.KeyEnter:
		node := m.filterSelection()
		m.exitFilter()
		if node == nil {
			return nil
		}
		return m.runCommand(node)
	case tea.KeyUp:
		m.filterCursorMove(-1)
		return nil
	case tea.KeyDown:
		m.filterCursorMove(1)
		return nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return cmd
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok || m.mode != ModeBrowse {
		return nil
	}
	if ev.Action != tea.MouseActionPress {
		return nil
	}
	switch ev.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursorUp()
	case tea.MouseButtonWheelDown:
		m.moveCursorDown()
	case tea.MouseButtonLeft:
		return m.handleRowClick(ev.Y)
	}
	return nil
}

// handleRowClick maps a click at screen row y to the menu row occupying it
// and activates that row. Clicks outside the list are ignored.
func (m *Model) handleRowClick(y int) tea.Cmd {
	idx := m.rowAt(y)
	if idx < 0 {
		return nil
	}
	m.nav.MoveTo(m.rows, idx)
	events.UI.Cursor(m.nav.CursorID, idx)
	m.nav.EnsureVisible(m.rows, m.maxVisibleRows())
	return m.activateCurrent()
}

// rowAt converts a screen row to an index into the visible row slice,
// accounting for the title line and the scroll offset. It returns -1 when
// the position falls outside the rendered window.
func (m *Model) rowAt(screenRow int) int {
	idx := screenRow - headerRows + m.nav.Offset
	if idx < m.nav.Offset || idx >= len(m.rows) {
		return -1
	}
	if max := m.maxVisibleRows(); max > 0 && idx >= m.nav.Offset+max {
		return -1
	}
	return idx
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
		if m.height > 0 && m.height < minViewportRows {
			m.fatalErr = ErrViewportTooSmall
			return tea.Quit
		}
	}
	m.nav.EnsureVisible(m.rows, m.maxVisibleRows())
	m.ensureFilterVisible()
	return nil
}
