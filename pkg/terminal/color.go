package terminal

import "github.com/muesli/termenv"

// Color is a named terminal color.
type Color int

const (
	Black Color = iota
	Red
	Yellow
	Green
	Cyan
	Blue
	Magenta
	White
)

var colorNames = map[Color]string{
	Black:   "black",
	Red:     "red",
	Yellow:  "yellow",
	Green:   "green",
	Cyan:    "cyan",
	Blue:    "blue",
	Magenta: "magenta",
	White:   "white",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ANSI returns the bright ANSI color used to render c.
// Black stays plain black so it works as a background.
func (c Color) ANSI() termenv.ANSIColor {
	switch c {
	case Red:
		return termenv.ANSIBrightRed
	case Yellow:
		return termenv.ANSIBrightYellow
	case Green:
		return termenv.ANSIBrightGreen
	case Cyan:
		return termenv.ANSIBrightCyan
	case Blue:
		return termenv.ANSIBrightBlue
	case Magenta:
		return termenv.ANSIBrightMagenta
	case White:
		return termenv.ANSIBrightWhite
	default:
		return termenv.ANSIBlack
	}
}
