package menu

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrConfig marks menu file problems that should abort startup. Callers can
// test for it with errors.Is to pick the configuration exit code.
var ErrConfig = errors.New("menu configuration error")

// File mirrors the on-disk menus.json structure.
type File struct {
	Categories  map[string]CategoryConfig `json:"categories"`
	AppSettings AppSettings               `json:"app_settings"`
	SavedThemes []SavedTheme              `json:"saved_themes,omitempty"`
}

// CategoryConfig describes one category entry in the menu file. Categories
// may nest further categories alongside their items.
type CategoryConfig struct {
	Expanded   *bool                     `json:"expanded,omitempty"`
	Items      []ItemConfig              `json:"items,omitempty"`
	Categories map[string]CategoryConfig `json:"categories,omitempty"`
	Colors     *ColorConfig              `json:"colors,omitempty"`
}

// ItemConfig describes one launchable command.
type ItemConfig struct {
	Label string `json:"label"`
	Cmd   string `json:"cmd"`
	Info  string `json:"info,omitempty"`
	Pause bool   `json:"pause,omitempty"`
}

// ColorConfig holds optional hex color overrides for a category's rows.
type ColorConfig struct {
	Background string `json:"background,omitempty"`
	Text       string `json:"text,omitempty"`
}

// AppSettings carries application-wide presentation settings.
type AppSettings struct {
	Title    string `json:"title,omitempty"`
	ThemeKey string `json:"theme_key,omitempty"`
}

// SavedTheme is a named palette stored alongside the menu definitions.
type SavedTheme struct {
	Name       string `json:"name"`
	Primary    string `json:"primary"`
	Accent     string `json:"accent"`
	Highlight  string `json:"highlight,omitempty"`
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
}

// DefaultPath returns the conventional menu file location under the user's
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "menu-maker", "menus.json"), nil
}

// LoadFile reads and parses the menu file. A missing file is seeded with the
// default contents so a first run presents a working menu.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		file := DefaultFile()
		if err := WriteFile(path, file); err != nil {
			return nil, err
		}
		return file, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}
	file, err := ParseFile(data)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrConfig, path, err)
	}
	return file, nil
}

// WriteFile serialises the menu file, creating parent directories as needed.
func WriteFile(path string, file *File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create menu directory: %w", err)
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encode menu file: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ParseFile decodes and validates menu file contents.
func ParseFile(data []byte) (*File, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Categories) == 0 {
		return nil, errors.New("no categories defined")
	}
	for name, category := range file.Categories {
		if err := validateCategory(name, category); err != nil {
			return nil, err
		}
	}
	return &file, nil
}

func validateCategory(name string, category CategoryConfig) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("category with empty name")
	}
	for i, item := range category.Items {
		if strings.TrimSpace(item.Label) == "" {
			return fmt.Errorf("category %q: item %d: missing label", name, i)
		}
		if strings.TrimSpace(item.Cmd) == "" {
			return fmt.Errorf("category %q: item %q: missing cmd", name, item.Label)
		}
	}
	for child, sub := range category.Categories {
		if err := validateCategory(child, sub); err != nil {
			return fmt.Errorf("category %q: %w", name, err)
		}
	}
	return nil
}

// BuildTree converts the parsed file into the session menu tree. Categories
// appear in name order; items keep their file order within each category.
func (f *File) BuildTree() *Tree {
	children := buildCategories(f.Categories, "")
	return NewTree(children)
}

func buildCategories(configs map[string]CategoryConfig, parentID string) []*Node {
	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)

	seen := make(map[string]int)
	nodes := make([]*Node, 0, len(names))
	for _, name := range names {
		cfg := configs[name]
		node := &Node{
			ID:       uniqueID(joinID(parentID, slug(name)), seen),
			Label:    name,
			Kind:     KindCategory,
			Expanded: cfg.Expanded == nil || *cfg.Expanded,
		}
		if cfg.Colors != nil {
			node.Colors = &Colors{Background: cfg.Colors.Background, Text: cfg.Colors.Text}
		}
		childSeen := make(map[string]int)
		for _, item := range cfg.Items {
			node.Children = append(node.Children, &Node{
				ID:      uniqueID(joinID(node.ID, slug(item.Label)), childSeen),
				Label:   item.Label,
				Kind:    KindCommand,
				Command: item.Cmd,
				Info:    item.Info,
				Pause:   item.Pause,
				Colors:  node.Colors,
			})
		}
		node.Children = append(node.Children, buildCategories(cfg.Categories, node.ID)...)
		nodes = append(nodes, node)
	}
	return nodes
}

func joinID(parentID, key string) string {
	if parentID == "" {
		return key
	}
	return parentID + ":" + key
}

// uniqueID suffixes duplicate ids with a counter so labels may repeat.
func uniqueID(id string, seen map[string]int) string {
	n := seen[id]
	seen[id] = n + 1
	if n == 0 {
		return id
	}
	return fmt.Sprintf("%s-%d", id, n+1)
}

func slug(label string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "entry"
	}
	return out
}

// DefaultTitle is used when the menu file does not set one.
const DefaultTitle = "Menu Maker — Enhanced Categorized Menu System"

// DefaultFile returns the menu seeded on first run.
func DefaultFile() *File {
	expanded := true
	return &File{
		Categories: map[string]CategoryConfig{
			"System Tools": {
				Expanded: &expanded,
				Items: []ItemConfig{
					{
						Label: "System Monitor",
						Cmd:   "htop",
						Info:  "Interactive process viewer",
					},
				},
			},
		},
		AppSettings: AppSettings{
			Title:    DefaultTitle,
			ThemeKey: "saved:0",
		},
		SavedThemes: []SavedTheme{
			{
				Name:       "default",
				Primary:    "#5E81AC",
				Accent:     "#D08770",
				Highlight:  "#76B3C5",
				Background: "#3B4252",
				Surface:    "#4C566A",
				Text:       "#ECEFF4",
			},
		},
	}
}
