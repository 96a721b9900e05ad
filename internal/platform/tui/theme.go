package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the styles shared by the menus and the scoreboard.
type Theme struct {
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	MenuCleared     lipgloss.Style // Mark next to cleared levels
	HUDControls     lipgloss.Style

	// Scoreboard
	TableBorder   lipgloss.Color
	TableSelected lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		MenuCleared:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		HUDControls:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		TableBorder:   lipgloss.Color("240"),
		TableSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	}
}

// NeonTheme returns a high-contrast theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("199")).Bold(true) // Neon pink
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("87")).Bold(true)
	theme.MenuCleared = lipgloss.NewStyle().Foreground(lipgloss.Color("118"))
	theme.TableSelected = theme.TableSelected.Background(lipgloss.Color("199"))
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemNormal = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuCleared = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	return theme
}

var themes = map[string]func() Theme{
	"default": DefaultTheme,
	"neon":    NeonTheme,
	"mono":    MonochromeTheme,
}

// ThemeNames returns the names accepted by SetThemeByName.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// SetThemeByName sets a named theme. Unknown names are ignored and
// reported with false.
func SetThemeByName(name string) bool {
	f, ok := themes[name]
	if ok {
		currentTheme = f()
	}
	return ok
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return currentTheme
}
