package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the ANSI palette used by the line-oriented CLI output.
type Theme struct {
	Name      string
	Primary   string // headings and engine names
	Secondary string // labels and defaults
	Success   string // matching results
	Warning   string // usage and timeouts
	Error     string // mismatches and failures
	Bold      string
	Reset     string
}

var (
	// DarkTheme is the default palette for dark terminal backgrounds.
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

	// NoColorTheme disables all color output.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// TUITheme holds the lipgloss colors of the sweep dashboard. Int and Float
// color the two timing series so they read the same in every panel.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Int     lipgloss.TerminalColor
	Float   lipgloss.TerminalColor
}

var (
	// DarkTUITheme is the dashboard palette.
	DarkTUITheme = TUITheme{
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#FF6600"),
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
		Int:     lipgloss.Color("#4488FF"),
		Float:   lipgloss.Color("#FFB347"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Int:     lipgloss.NoColor{},
		Float:   lipgloss.NoColor{},
	}
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// GetCurrentTUITheme returns the dashboard palette matching the active theme.
func GetCurrentTUITheme() TUITheme {
	if GetCurrentTheme().Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// InitTheme selects the theme from the --no-color flag and the NO_COLOR
// environment variable (https://no-color.org/). Either one disables colors.
func InitTheme(noColor bool) {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		noColor = true
	}
	if noColor {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(DarkTheme)
}

// Colors adapts the active theme to the small color interfaces consumed by
// other packages (for example the error handler).
type Colors struct{}

// Yellow returns the warning color.
func (Colors) Yellow() string { return GetCurrentTheme().Warning }

// Red returns the error color.
func (Colors) Red() string { return GetCurrentTheme().Error }

// Green returns the success color.
func (Colors) Green() string { return GetCurrentTheme().Success }

// Bold returns the bold escape.
func (Colors) Bold() string { return GetCurrentTheme().Bold }

// Reset returns the reset escape.
func (Colors) Reset() string { return GetCurrentTheme().Reset }
