package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for plain text output.
// Each field contains an ANSI escape code for the corresponding category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes.
	Success string
	// Warning is used for non-critical issues.
	Warning string
	// Error indicates failures.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// LightTheme is optimized for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // Dark blue
		Secondary: "\033[38;5;240m", // Dark grey
		Success:   "\033[38;5;28m",  // Dark green
		Warning:   "\033[38;5;130m", // Orange
		Error:     "\033[38;5;124m", // Dark red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or -no-color is given.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TableTheme holds lipgloss colors for the comparison table.
type TableTheme struct {
	Border  lipgloss.TerminalColor
	Header  lipgloss.TerminalColor
	Name    lipgloss.TerminalColor
	Value   lipgloss.TerminalColor
	Fastest lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
}

var (
	// DarkTableTheme matches DarkTheme.
	DarkTableTheme = TableTheme{
		Border:  lipgloss.Color("245"),
		Header:  lipgloss.Color("39"),
		Name:    lipgloss.Color("39"),
		Value:   lipgloss.Color("220"),
		Fastest: lipgloss.Color("82"),
		Warning: lipgloss.Color("208"),
	}

	// LightTableTheme matches LightTheme.
	LightTableTheme = TableTheme{
		Border:  lipgloss.Color("240"),
		Header:  lipgloss.Color("27"),
		Name:    lipgloss.Color("27"),
		Value:   lipgloss.Color("130"),
		Fastest: lipgloss.Color("28"),
		Warning: lipgloss.Color("124"),
	}

	// NoColorTableTheme renders with the terminal's default colors.
	NoColorTableTheme = TableTheme{
		Border:  lipgloss.NoColor{},
		Header:  lipgloss.NoColor{},
		Name:    lipgloss.NoColor{},
		Value:   lipgloss.NoColor{},
		Fastest: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
	}
)

// GetCurrentTableTheme returns the table theme matching the active theme.
func GetCurrentTableTheme() TableTheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	switch currentTheme.Name {
	case NoColorTheme.Name:
		return NoColorTableTheme
	case LightTheme.Name:
		return LightTableTheme
	}
	return DarkTableTheme
}

// GetCurrentTheme returns the currently active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme changes the active theme by name ("dark", "light", "none").
// Unknown names select the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	currentTheme = themeByName(name)
}

func themeByName(name string) Theme {
	switch name {
	case LightTheme.Name:
		return LightTheme
	case NoColorTheme.Name:
		return NoColorTheme
	}
	return DarkTheme
}

// InitTheme selects the theme from the -theme and -no-color flags and the
// NO_COLOR environment variable (https://no-color.org/).
//
// Parameters:
//   - name: The theme to use when colors are enabled ("dark", "light").
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(name string, noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = themeByName(name)
}
