package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/menu-maker/internal/menu"
	"github.com/atomicstack/menu-maker/internal/theme"
	"github.com/charmbracelet/bubbles/cursor"
)

func testTree() *menu.Tree {
	return menu.NewTree([]*menu.Node{
		{ID: "tools", Label: "Tools", Kind: menu.KindCategory, Expanded: true, Children: []*menu.Node{
			{ID: "tools:htop", Label: "System Monitor", Kind: menu.KindCommand, Command: "true"},
			{ID: "tools:net", Label: "Network", Kind: menu.KindCategory, Expanded: true, Children: []*menu.Node{
				{ID: "tools:net:ping", Label: "Ping", Kind: menu.KindCommand, Command: "true", Info: "One probe of localhost"},
			}},
		}},
		{ID: "games", Label: "Games", Kind: menu.KindCategory, Expanded: false, Children: []*menu.Node{
			{ID: "games:rogue", Label: "Rogue", Kind: menu.KindCommand, Command: "true"},
		}},
	})
}

func findNode(t *testing.T, tree *menu.Tree, id string) *menu.Node {
	t.Helper()
	node, ok := tree.Find(id)
	if !ok {
		t.Fatalf("node %q not found", id)
	}
	return node
}

func newTestModel(t *testing.T) *Model {
	t.Helper()
	m := NewModel(testTree(), "", "Test Menu", theme.DefaultTheme(), 80, 24, true, false)
	// A blinking cursor schedules timed commands that would stall the test
	// harness's command loop.
	m.filterInput.Cursor.SetMode(cursor.CursorStatic)
	return m
}

func TestCursorStartsOnFirstRow(t *testing.T) {
	m := newTestModel(t)
	if m.nav.CursorID != "tools" {
		t.Fatalf("expected cursor on first row, got %q", m.nav.CursorID)
	}
	if len(m.rows) != 5 {
		t.Fatalf("expected 5 visible rows, got %d", len(m.rows))
	}
}

func TestMoveCursorStopsAtBoundaries(t *testing.T) {
	m := newTestModel(t)
	m.moveCursorUp()
	if m.nav.CursorID != "tools" {
		t.Fatalf("expected move up at top to be a no-op, cursor on %q", m.nav.CursorID)
	}
	m.moveCursorEnd()
	if m.nav.CursorID != "games" {
		t.Fatalf("expected end to land on last row, cursor on %q", m.nav.CursorID)
	}
	m.moveCursorDown()
	if m.nav.CursorID != "games" {
		t.Fatalf("expected move down at bottom to be a no-op, cursor on %q", m.nav.CursorID)
	}
	m.moveCursorHome()
	if m.nav.CursorID != "tools" {
		t.Fatalf("expected home to land on first row, cursor on %q", m.nav.CursorID)
	}
}

func TestCollapseRelocatesCursorToVisibleAncestor(t *testing.T) {
	m := newTestModel(t)
	m.nav.CursorID = "tools:net:ping"
	m.toggleNode(findNode(t, m.tree, "tools"))
	if m.nav.CursorID != "tools" {
		t.Fatalf("expected cursor relocated to collapsed ancestor, got %q", m.nav.CursorID)
	}
	if menu.RowIndex(m.rows, m.nav.CursorID) < 0 {
		t.Fatal("cursor must always reference a visible row")
	}
	if len(m.rows) != 2 {
		t.Fatalf("expected 2 visible rows after collapse, got %d", len(m.rows))
	}
}

func TestToggleRoundTripRestoresRows(t *testing.T) {
	m := newTestModel(t)
	before := len(m.rows)
	node := findNode(t, m.tree, "tools:net")
	m.toggleNode(node)
	if len(m.rows) != before-1 {
		t.Fatalf("expected collapse to hide one row, got %d rows", len(m.rows))
	}
	m.toggleNode(node)
	if len(m.rows) != before {
		t.Fatalf("expected expand to restore %d rows, got %d", before, len(m.rows))
	}
}

func TestToggleIgnoresCommands(t *testing.T) {
	m := newTestModel(t)
	before := len(m.rows)
	m.toggleNode(findNode(t, m.tree, "tools:htop"))
	if len(m.rows) != before {
		t.Fatalf("expected toggling a command to be a no-op, got %d rows", len(m.rows))
	}
}

func TestActivateExpandsCollapsedCategory(t *testing.T) {
	m := newTestModel(t)
	m.moveCursorEnd()
	if cmd := m.activateCurrent(); cmd != nil {
		t.Fatal("expected no command from category activation")
	}
	if !findNode(t, m.tree, "games").Expanded {
		t.Fatal("expected games to expand")
	}
	if len(m.rows) != 6 {
		t.Fatalf("expected 6 visible rows, got %d", len(m.rows))
	}
	if m.nav.CursorID != "games" {
		t.Fatalf("expected cursor to stay on toggled category, got %q", m.nav.CursorID)
	}
}

func TestEmptyMenuActivationIsNoOp(t *testing.T) {
	m := NewModel(menu.NewTree(nil), "", "Empty", theme.DefaultTheme(), 80, 24, false, false)
	if node := m.currentNode(); node != nil {
		t.Fatalf("expected no current node, got %q", node.ID)
	}
	if cmd := m.activateCurrent(); cmd != nil {
		t.Fatal("expected activation on empty menu to be a no-op")
	}
	m.moveCursorDown()
	m.moveCursorUp()
}

func TestShowItemInfoUsesInfoText(t *testing.T) {
	m := newTestModel(t)
	m.nav.CursorID = "tools:net:ping"
	m.showItemInfo()
	if got := m.currentInfo(); got != "One probe of localhost" {
		t.Fatalf("expected item info text, got %q", got)
	}
}

func TestShowItemInfoFallsBackToCommand(t *testing.T) {
	m := newTestModel(t)
	m.nav.CursorID = "tools:htop"
	m.showItemInfo()
	if got := m.currentInfo(); got != "Runs: true" {
		t.Fatalf("expected command fallback, got %q", got)
	}
}

func TestReloadFailureKeepsCurrentTree(t *testing.T) {
	m := newTestModel(t)
	path := filepath.Join(t.TempDir(), "menus.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	m.menuPath = path
	before := len(m.rows)
	m.reloadMenu()
	if m.errMsg == "" {
		t.Fatal("expected reload failure to surface an error")
	}
	if len(m.rows) != before {
		t.Fatalf("expected tree unchanged after failed reload, got %d rows", len(m.rows))
	}
}

func TestReloadRebuildsTreeAndTitle(t *testing.T) {
	m := newTestModel(t)
	path := filepath.Join(t.TempDir(), "menus.json")
	file := &menu.File{
		Categories: map[string]menu.CategoryConfig{
			"Editors": {Items: []menu.ItemConfig{{Label: "Vim", Cmd: "vim"}}},
		},
		AppSettings: menu.AppSettings{Title: "Editors Only"},
	}
	if err := menu.WriteFile(path, file); err != nil {
		t.Fatal(err)
	}
	m.menuPath = path
	m.reloadMenu()
	if m.errMsg != "" {
		t.Fatalf("unexpected reload error: %s", m.errMsg)
	}
	if m.title != "Editors Only" {
		t.Fatalf("expected title from reloaded file, got %q", m.title)
	}
	if len(m.rows) != 2 {
		t.Fatalf("expected 2 visible rows, got %d", len(m.rows))
	}
	if got := m.currentInfo(); got != "Configuration reloaded" {
		t.Fatalf("expected reload confirmation, got %q", got)
	}
}
