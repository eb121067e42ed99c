package ui

import (
	"errors"
	"reflect"
	"time"

	"github.com/atomicstack/menu-maker/internal/menu"
	"github.com/atomicstack/menu-maker/internal/theme"
	"github.com/atomicstack/menu-maker/internal/ui/state"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode is the top-level state of the interface.
type Mode int

const (
	// ModeBrowse is the normal state: the menu is visible and accepting input.
	ModeBrowse Mode = iota
	// ModeFilter overlays the fuzzy command filter on top of the menu.
	ModeFilter
	// ModeSuspended means a child command owns the terminal; menu input is
	// not accepted until it finishes.
	ModeSuspended
)

// minViewportRows is the smallest terminal height the view can be trusted
// to render: title, one menu row, and the status bar.
const minViewportRows = 3

// ErrViewportTooSmall aborts the session when the terminal shrinks below the
// renderable minimum.
var ErrViewportTooSmall = errors.New("terminal viewport too small to render")

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the launcher menu.
type Model struct {
	tree *menu.Tree
	rows []menu.Row
	nav  state.Nav
	mode Mode

	menuPath string
	title    string
	theme    theme.Theme
	styles   *theme.Styles

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	pendingLabel string
	fatalErr     error

	filterInput  textinput.Model
	filtered     []*menu.Node
	filterCursor int
	filterOffset int

	keys     keyMap
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state for the loaded menu tree.
func NewModel(tree *menu.Tree, menuPath, title string, th theme.Theme, width, height int, showFooter, verbose bool) *Model {
	if title == "" {
		title = menu.DefaultTitle
	}
	m := &Model{
		tree:       tree,
		menuPath:   menuPath,
		title:      title,
		theme:      th,
		styles:     th.Styles(),
		showFooter: showFooter,
		verbose:    verbose,
		mode:       ModeBrowse,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	ti := textinput.New()
	ti.Prompt = "» "
	ti.Placeholder = "(type to search)"
	if m.styles.FilterPrompt != nil {
		ti.PromptStyle = *m.styles.FilterPrompt
	}
	if m.styles.FilterPlaceholder != nil {
		ti.PlaceholderStyle = *m.styles.FilterPlaceholder
	}
	m.filterInput = ti
	m.rows = menu.VisibleRows(tree)
	m.nav.Clamp(m.rows)
	m.keys = defaultKeyMap()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if m.mode == ModeFilter {
		// Non-key messages still reach the text input so its cursor blinks.
		if _, isKey := msg.(tea.KeyMsg); !isKey {
			var cmd tea.Cmd
			m.filterInput, cmd = m.filterInput.Update(msg)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(commandFinishedMsg{}): m.handleCommandFinishedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Err reports the fatal failure that forced the session to quit, if any.
func (m *Model) Err() error {
	return m.fatalErr
}

// Mode exposes the current interface state.
func (m *Model) Mode() Mode {
	return m.mode
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
