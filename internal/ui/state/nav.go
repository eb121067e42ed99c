package state

import "github.com/atomicstack/menu-maker/internal/menu"

// Nav tracks the cursor and scroll position over the projected menu rows.
// The cursor is stored as a node id so it survives reprojection; movement
// helpers translate it through the current row slice.
type Nav struct {
	CursorID string
	Offset   int
}

// Index returns the cursor's position within rows, or -1 when the cursor is
// unset or no longer visible.
func (n *Nav) Index(rows []menu.Row) int {
	return menu.RowIndex(rows, n.CursorID)
}

// Clamp restores the cursor invariant after a reprojection: a cursor that no
// longer names a visible row falls back to the first row, and the offset is
// reset when the row list shrank underneath it.
func (n *Nav) Clamp(rows []menu.Row) {
	if len(rows) == 0 {
		n.CursorID = ""
		n.Offset = 0
		return
	}
	if n.Index(rows) < 0 {
		n.CursorID = rows[0].Node.ID
	}
	if n.Offset > len(rows)-1 {
		n.Offset = 0
	}
	if n.Offset < 0 {
		n.Offset = 0
	}
}

// MoveUp moves the cursor to the previous row. Already at the first row is a
// no-op; there is no wraparound.
func (n *Nav) MoveUp(rows []menu.Row) bool {
	return n.moveBy(rows, -1)
}

// MoveDown moves the cursor to the next row. Already at the last row is a
// no-op; there is no wraparound.
func (n *Nav) MoveDown(rows []menu.Row) bool {
	return n.moveBy(rows, 1)
}

// MovePageUp moves the cursor up by one page.
func (n *Nav) MovePageUp(rows []menu.Row, maxVisible int) bool {
	return n.moveBy(rows, -pageSize(len(rows), maxVisible))
}

// MovePageDown moves the cursor down by one page.
func (n *Nav) MovePageDown(rows []menu.Row, maxVisible int) bool {
	return n.moveBy(rows, pageSize(len(rows), maxVisible))
}

// MoveHome moves the cursor to the first row.
func (n *Nav) MoveHome(rows []menu.Row) bool {
	return n.MoveTo(rows, 0)
}

// MoveEnd moves the cursor to the last row.
func (n *Nav) MoveEnd(rows []menu.Row) bool {
	return n.MoveTo(rows, len(rows)-1)
}

// MoveTo places the cursor on the row at idx, clamped to the valid range.
// Used by mouse hit-testing as well as Home/End.
func (n *Nav) MoveTo(rows []menu.Row, idx int) bool {
	if len(rows) == 0 {
		return false
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(rows)-1 {
		idx = len(rows) - 1
	}
	old := n.CursorID
	n.CursorID = rows[idx].Node.ID
	return n.CursorID != old
}

func (n *Nav) moveBy(rows []menu.Row, delta int) bool {
	if len(rows) == 0 {
		return false
	}
	idx := n.Index(rows)
	if idx < 0 {
		idx = 0
		delta = 0
	}
	return n.MoveTo(rows, idx+delta)
}

func pageSize(total, maxVisible int) int {
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureVisible adjusts the scroll offset by exactly the amount needed to
// keep the cursor inside the viewport window, never more.
func (n *Nav) EnsureVisible(rows []menu.Row, maxVisible int) {
	n.Clamp(rows)
	if len(rows) == 0 {
		return
	}
	if maxVisible <= 0 {
		n.Offset = 0
		return
	}
	maxOffset := len(rows) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if n.Offset > maxOffset {
		n.Offset = maxOffset
	}
	idx := n.Index(rows)
	if idx < n.Offset {
		n.Offset = idx
	}
	if upper := n.Offset + maxVisible - 1; idx > upper {
		n.Offset = idx - maxVisible + 1
		if n.Offset < 0 {
			n.Offset = 0
		}
		if n.Offset > maxOffset {
			n.Offset = maxOffset
		}
	}
}
