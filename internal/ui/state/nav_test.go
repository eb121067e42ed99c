package state

import (
	"fmt"
	"testing"

	"github.com/atomicstack/menu-maker/internal/menu"
)

func flatRows(n int) []menu.Row {
	rows := make([]menu.Row, n)
	for i := range rows {
		rows[i] = menu.Row{Node: &menu.Node{ID: fmt.Sprintf("row-%d", i), Kind: menu.KindCommand}}
	}
	return rows
}

func TestMoveDownStopsAtLastRow(t *testing.T) {
	rows := flatRows(3)
	nav := Nav{CursorID: "row-0"}
	for i := 0; i < 10; i++ {
		nav.MoveDown(rows)
	}
	if nav.CursorID != "row-2" {
		t.Fatalf("expected cursor pinned to last row, got %s", nav.CursorID)
	}
	if nav.MoveDown(rows) {
		t.Fatalf("expected no movement past the last row")
	}
}

func TestMoveUpStopsAtFirstRow(t *testing.T) {
	rows := flatRows(3)
	nav := Nav{CursorID: "row-2"}
	for i := 0; i < 10; i++ {
		nav.MoveUp(rows)
	}
	if nav.CursorID != "row-0" {
		t.Fatalf("expected cursor pinned to first row, got %s", nav.CursorID)
	}
	if nav.MoveUp(rows) {
		t.Fatalf("expected no movement before the first row")
	}
}

func TestMoveOnEmptyRowsIsNoOp(t *testing.T) {
	nav := Nav{}
	if nav.MoveDown(nil) || nav.MoveUp(nil) || nav.MoveHome(nil) || nav.MoveEnd(nil) {
		t.Fatalf("expected all moves on empty rows to be no-ops")
	}
}

func TestClampRelocatesLostCursor(t *testing.T) {
	rows := flatRows(3)
	nav := Nav{CursorID: "gone", Offset: 7}
	nav.Clamp(rows)
	if nav.CursorID != "row-0" || nav.Offset != 0 {
		t.Fatalf("expected cursor reset to first row with zero offset, got %s/%d", nav.CursorID, nav.Offset)
	}
	nav.Clamp(nil)
	if nav.CursorID != "" || nav.Offset != 0 {
		t.Fatalf("expected cleared cursor for empty rows, got %q/%d", nav.CursorID, nav.Offset)
	}
}

func TestPaging(t *testing.T) {
	rows := flatRows(12)
	nav := Nav{CursorID: "row-0"}
	if !nav.MovePageDown(rows, 5) || nav.CursorID != "row-5" {
		t.Fatalf("expected row-5, got %s", nav.CursorID)
	}
	if !nav.MovePageDown(rows, 5) || nav.CursorID != "row-10" {
		t.Fatalf("expected row-10, got %s", nav.CursorID)
	}
	if !nav.MovePageDown(rows, 5) || nav.CursorID != "row-11" {
		t.Fatalf("expected clamp to last row, got %s", nav.CursorID)
	}
	if !nav.MovePageUp(rows, 5) || nav.CursorID != "row-6" {
		t.Fatalf("expected row-6, got %s", nav.CursorID)
	}
	if !nav.MoveHome(rows) || nav.CursorID != "row-0" {
		t.Fatalf("expected home, got %s", nav.CursorID)
	}
	if !nav.MoveEnd(rows) || nav.CursorID != "row-11" {
		t.Fatalf("expected end, got %s", nav.CursorID)
	}
	nav.CursorID = "row-2"
	if !nav.MovePageDown(rows, 0) || nav.CursorID != "row-11" {
		t.Fatalf("expected jump to end with unknown page size, got %s", nav.CursorID)
	}
}

func TestEnsureVisibleScrollsMinimally(t *testing.T) {
	rows := flatRows(10)
	nav := Nav{CursorID: "row-0", Offset: 0}

	// Cursor below the window: scroll down just far enough.
	nav.CursorID = "row-6"
	nav.EnsureVisible(rows, 5)
	if nav.Offset != 2 {
		t.Fatalf("expected offset 2, got %d", nav.Offset)
	}

	// Cursor inside the window: no scrolling at all.
	nav.CursorID = "row-4"
	nav.EnsureVisible(rows, 5)
	if nav.Offset != 2 {
		t.Fatalf("expected offset unchanged at 2, got %d", nav.Offset)
	}

	// Cursor above the window: scroll up exactly to it.
	nav.CursorID = "row-1"
	nav.EnsureVisible(rows, 5)
	if nav.Offset != 1 {
		t.Fatalf("expected offset 1, got %d", nav.Offset)
	}

	// Unknown viewport height resets the offset.
	nav.EnsureVisible(rows, 0)
	if nav.Offset != 0 {
		t.Fatalf("expected offset 0 for unknown height, got %d", nav.Offset)
	}
}

func TestEnsureVisibleClampsOverscroll(t *testing.T) {
	rows := flatRows(6)
	nav := Nav{CursorID: "row-5", Offset: 99}
	nav.EnsureVisible(rows, 4)
	if nav.Offset != 2 {
		t.Fatalf("expected max offset 2, got %d", nav.Offset)
	}
}
