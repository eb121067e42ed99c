package state

import (
	"testing"

	"github.com/atomicstack/menu-maker/internal/menu"
)

func commandNodes() []*menu.Node {
	return []*menu.Node{
		{ID: "sys:monitor", Label: "System Monitor", Kind: menu.KindCommand, Command: "htop"},
		{ID: "sys:disk", Label: "Disk Usage", Kind: menu.KindCommand, Command: "ncdu"},
		{ID: "net:ping", Label: "Ping Localhost", Kind: menu.KindCommand, Command: "ping -c 3 localhost"},
	}
}

func TestFilterCommandsEmptyQueryReturnsAll(t *testing.T) {
	all := commandNodes()
	got := FilterCommands(all, "   ")
	if len(got) != len(all) {
		t.Fatalf("expected all commands, got %d", len(got))
	}
	for i := range all {
		if got[i].ID != all[i].ID {
			t.Fatalf("expected display order preserved, got %v", got)
		}
	}
}

func TestFilterCommandsFuzzyMatch(t *testing.T) {
	got := FilterCommands(commandNodes(), "sysmon")
	if len(got) != 1 || got[0].ID != "sys:monitor" {
		t.Fatalf("expected fuzzy match on System Monitor, got %v", got)
	}
}

func TestFilterCommandsFoldsCase(t *testing.T) {
	got := FilterCommands(commandNodes(), "PING")
	if len(got) != 1 || got[0].ID != "net:ping" {
		t.Fatalf("expected case-insensitive match, got %v", got)
	}
}

func TestFilterCommandsSubstringFallbackOnCommandText(t *testing.T) {
	// "ncdu" is not a subsequence of any label, so the fallback must look at
	// the command strings.
	got := FilterCommands(commandNodes(), "-c 3")
	if len(got) != 1 || got[0].ID != "net:ping" {
		t.Fatalf("expected substring fallback on command text, got %v", got)
	}
}

func TestFilterCommandsNoMatches(t *testing.T) {
	if got := FilterCommands(commandNodes(), "zzzzzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}
