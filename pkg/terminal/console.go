// Package terminal provides the screen and keyboard controls used by greet.
package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when escape sequences are written.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode converts a flag or config value into a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// keyBufSize bounds a single key event. Escape sequences for arrows and
// function keys fit comfortably.
const keyBufSize = 8

// Console writes styled output to a terminal and reads keypresses from it.
type Console struct {
	out    io.Writer
	in     *os.File
	styled bool
}

// New creates a Console for stdout and stdin.
func New(mode ColorMode) *Console {
	return NewWithFiles(os.Stdout, os.Stdin, mode)
}

// NewWithFiles creates a Console with a custom writer and input.
// In ColorAuto mode the console is styled only when out is a TTY.
func NewWithFiles(out io.Writer, in *os.File, mode ColorMode) *Console {
	var styled bool
	switch mode {
	case ColorAlways:
		styled = true
	case ColorNever:
		styled = false
	default:
		styled = IsTerminal(out)
	}

	return &Console{
		out:    out,
		in:     in,
		styled: styled,
	}
}

// IsTerminal reports whether w is a TTY.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// Styled reports whether escape sequences are written.
func (c *Console) Styled() bool {
	return c.styled
}

// Write writes p unchanged.
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}

// Clear erases the display and homes the cursor.
func (c *Console) Clear() error {
	if !c.styled {
		return nil
	}
	if err := c.csi(fmt.Sprintf(termenv.EraseDisplaySeq, 2)); err != nil {
		return err
	}
	return c.csi(fmt.Sprintf(termenv.CursorPositionSeq, 1, 1))
}

// SetForeground sets the color of subsequent text.
func (c *Console) SetForeground(col Color) error {
	return c.sgr(col.ANSI().Sequence(false))
}

// SetBackground sets the background color of subsequent text.
func (c *Console) SetBackground(col Color) error {
	return c.sgr(col.ANSI().Sequence(true))
}

// Reset restores the terminal's default colors.
func (c *Console) Reset() error {
	return c.sgr(termenv.ResetSeq)
}

func (c *Console) sgr(seq string) error {
	if !c.styled {
		return nil
	}
	return c.csi(seq + "m")
}

func (c *Console) csi(seq string) error {
	if _, err := io.WriteString(c.out, termenv.CSI+seq); err != nil {
		return fmt.Errorf("writing escape sequence: %w", err)
	}
	return nil
}

// ReadKey blocks until a single key is pressed and discards it.
// A terminal input is switched to raw mode for the read so the key is
// delivered without waiting for Enter. Any other input yields one byte;
// end of input counts as the keypress.
func (c *Console) ReadKey() error {
	if c.in == nil {
		return errors.New("no input attached")
	}

	fd := int(c.in.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer func() { _ = term.Restore(fd, state) }()

		buf := make([]byte, keyBufSize)
		if _, err := c.in.Read(buf); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("reading key: %w", err)
		}
		return nil
	}

	var b [1]byte
	if _, err := c.in.Read(b[:]); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading key: %w", err)
	}
	return nil
}
