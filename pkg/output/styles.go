package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Accent theme matching the greeting: cyan borders, yellow art.
var (
	ColorCyan   = lipgloss.Color("#22d3ee") // Borders, keys
	ColorYellow = lipgloss.Color("#facc15") // Art, highlights
	ColorMuted  = lipgloss.Color("#78716c")
	ColorRed    = lipgloss.Color("#f43f5e")
	ColorGray   = lipgloss.Color("#a8a29e")
)

// accentStyles returns charmbracelet/log styles with the accent theme.
func accentStyles() *log.Styles {
	styles := log.DefaultStyles()

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Foreground(ColorRed).
		Bold(true)

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Foreground(ColorMuted)

	styles.Timestamp = lipgloss.NewStyle().
		Foreground(ColorMuted)

	// Keys in cyan for structured logging
	styles.Key = lipgloss.NewStyle().
		Foreground(ColorCyan)

	styles.Value = lipgloss.NewStyle().
		Foreground(ColorGray)

	return styles
}
