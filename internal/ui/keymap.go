package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is the abstract navigation action derived from raw input. The
// translation is pure: it never touches the tree or the cursor itself.
type Command int

const (
	CommandNone Command = iota
	CommandMoveUp
	CommandMoveDown
	CommandPageUp
	CommandPageDown
	CommandHome
	CommandEnd
	// CommandActivate covers both Enter and Space: the engine routes it to
	// expand/collapse on a category and to execution on a command.
	CommandActivate
	CommandFilter
	CommandReload
	CommandInfo
	CommandQuit
)

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Select   key.Binding
	Toggle   key.Binding
	Filter   key.Binding
	Reload   key.Binding
	Info     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "move")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "move")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fold")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Info:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "info")),
		Quit:     key.NewBinding(key.WithKeys("q", "Q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// translateKey maps a raw key press to its abstract command. Unbound keys
// translate to CommandNone.
func (m *Model) translateKey(msg tea.KeyMsg) Command {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return CommandQuit
	case key.Matches(msg, m.keys.Up):
		return CommandMoveUp
	case key.Matches(msg, m.keys.Down):
		return CommandMoveDown
	case key.Matches(msg, m.keys.PageUp):
		return CommandPageUp
	case key.Matches(msg, m.keys.PageDown):
		return CommandPageDown
	case key.Matches(msg, m.keys.Home):
		return CommandHome
	case key.Matches(msg, m.keys.End):
		return CommandEnd
	case key.Matches(msg, m.keys.Select), key.Matches(msg, m.keys.Toggle):
		return CommandActivate
	case key.Matches(msg, m.keys.Filter):
		return CommandFilter
	case key.Matches(msg, m.keys.Reload):
		return CommandReload
	case key.Matches(msg, m.keys.Info):
		return CommandInfo
	default:
		return CommandNone
	}
}
