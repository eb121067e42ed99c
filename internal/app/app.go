package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/menu-maker/internal/logging/events"
	"github.com/atomicstack/menu-maker/internal/menu"
	"github.com/atomicstack/menu-maker/internal/theme"
	"github.com/atomicstack/menu-maker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	MenuPath   string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	menuPath := cfg.MenuPath
	if menuPath == "" {
		path, err := menu.DefaultPath()
		if err != nil {
			return fmt.Errorf("%w: %v", menu.ErrConfig, err)
		}
		menuPath = path
	}
	file, err := menu.LoadFile(menuPath)
	if err != nil {
		return err
	}
	tree := file.BuildTree()
	events.App.MenuLoaded(menuPath, tree.Len())
	th := theme.Resolve(file.AppSettings.ThemeKey, file.SavedThemes)
	model := ui.NewModel(tree, menuPath, file.AppSettings.Title, th, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}
	return model.Err()
}
