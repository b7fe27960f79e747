// Package output provides terminal output formatting for greet with the
// cyan and yellow accent theme.
package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

// Printer handles terminal output with accent-themed styling.
type Printer struct {
	out    io.Writer
	logger *log.Logger
	isTTY  bool
}

// New creates a Printer writing to stdout.
func New() *Printer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Printer with a custom writer.
func NewWithWriter(w io.Writer) *Printer {
	isTTY := isTerminal(w)

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly, // HH:MM:SS
	})

	if isTTY {
		logger.SetStyles(accentStyles())
	}

	return &Printer{
		out:    w,
		logger: logger,
		isTTY:  isTTY,
	}
}

// isTerminal checks if the writer is a TTY (for color support).
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Error logs an error message with optional key-value pairs.
func (p *Printer) Error(msg string, keyvals ...any) {
	p.logger.Error(msg, keyvals...)
}

// Debug logs a debug message with optional key-value pairs.
func (p *Printer) Debug(msg string, keyvals ...any) {
	p.logger.Debug(msg, keyvals...)
}

// SetDebug enables debug-level logging.
func (p *Printer) SetDebug(enabled bool) {
	if enabled {
		p.logger.SetLevel(log.DebugLevel)
	} else {
		p.logger.SetLevel(log.InfoLevel)
	}
}

// Based on Doom font from patorjk.com/software/taag
var bannerLines = []string{
	`                     _`,
	`  __ _ _ __ ___  ___| |_`,
	" / _` | '__/ _ \\/ _ \\ __|",
	`| (_| | | |  __/  __/ |_`,
	` \__, |_|  \___|\___|\__|`,
	`  __/ |`,
	` |___/`,
}

// Banner prints the ASCII logo with version information.
func (p *Printer) Banner(ver string) {
	if !p.isTTY {
		fmt.Fprintf(p.out, "greet %s\n\n", ver)
		return
	}

	cyan := lipgloss.NewStyle().Foreground(ColorCyan)
	yellow := lipgloss.NewStyle().Foreground(ColorYellow)
	muted := lipgloss.NewStyle().Foreground(ColorMuted)

	for _, line := range bannerLines {
		fmt.Fprintln(p.out, cyan.Render(line))
	}

	fmt.Fprintf(p.out, "\n  %s %s\n\n", muted.Render("version"), yellow.Render(ver))
}

// Println writes a message with newline directly to output.
func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}
