package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/menu-maker/internal/menu"
	"github.com/charmbracelet/lipgloss"
)

// Theme is a resolved color palette.
type Theme struct {
	Name       string
	Primary    string
	Accent     string
	Highlight  string
	Background string
	Surface    string
	Text       string
}

// Styles maps semantic render roles to reusable Lip Gloss styles.
type Styles struct {
	Title             *lipgloss.Style
	Category          *lipgloss.Style
	Marker            *lipgloss.Style
	Item              *lipgloss.Style
	Cursor            *lipgloss.Style
	Status            *lipgloss.Style
	Footer            *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
}

// DefaultTheme is the built-in nord-derived palette used when the menu file
// does not name a usable theme.
func DefaultTheme() Theme {
	return Theme{
		Name:       "default",
		Primary:    "#5E81AC",
		Accent:     "#D08770",
		Highlight:  "#76B3C5",
		Background: "#3B4252",
		Surface:    "#4C566A",
		Text:       "#ECEFF4",
	}
}

// FromSaved converts a saved palette from the menu file. Missing highlight
// values fall back to the primary color.
func FromSaved(s menu.SavedTheme) Theme {
	t := Theme{
		Name:       s.Name,
		Primary:    s.Primary,
		Accent:     s.Accent,
		Highlight:  s.Highlight,
		Background: s.Background,
		Surface:    s.Surface,
		Text:       s.Text,
	}
	if t.Highlight == "" {
		t.Highlight = t.Primary
	}
	return t
}

// Resolve picks the theme named by key from the saved palettes. Keys of the
// form "saved:N" select by index; any other key matches by name. Unknown or
// empty keys yield the default theme.
func Resolve(key string, saved []menu.SavedTheme) Theme {
	key = strings.TrimSpace(key)
	if key == "" {
		return DefaultTheme()
	}
	if idx, ok := strings.CutPrefix(key, "saved:"); ok {
		n, err := strconv.Atoi(idx)
		if err == nil && n >= 0 && n < len(saved) {
			return FromSaved(saved[n])
		}
		return DefaultTheme()
	}
	for _, s := range saved {
		if strings.EqualFold(s.Name, key) {
			return FromSaved(s)
		}
	}
	return DefaultTheme()
}

// SavedKey names a saved theme slot the way app_settings.theme_key refers to it.
func SavedKey(index int) string {
	return fmt.Sprintf("saved:%d", index)
}

// Styles materialises the render roles for the palette.
func (t Theme) Styles() *Styles {
	return &Styles{
		Title: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Bold(true),
		),
		Category: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)).Background(lipgloss.Color(t.Surface)).Bold(true),
		),
		Marker: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		),
		Item: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)).Background(lipgloss.Color(t.Surface)),
		),
		Cursor: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(t.Background)).Background(lipgloss.Color(t.Highlight)).Bold(true),
		),
		Status: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)).Background(lipgloss.Color(t.Primary)),
		),
		Footer: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)),
		),
		Error: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		),
		Info: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(t.Text)),
		),
		FilterPrompt: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color(t.Accent)).Bold(true),
		),
		FilterPlaceholder: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		),
	}
}

// Default exposes the style set for the built-in palette.
func Default() *Styles {
	return DefaultTheme().Styles()
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
