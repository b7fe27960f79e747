package greeting

import (
	"strings"

	"github.com/gridctl/greet/pkg/terminal"
	"github.com/rivo/uniseg"
)

// Message is printed one character at a time in random rainbow colors.
const Message = "Hello, Wonderful World! 🌎"

// TimeLayout renders the timestamp as a full date and time,
// e.g. "Monday, January 1, 2024 12:00:00 AM".
const TimeLayout = "Monday, January 2, 2006 3:04:05 PM"

// ExitPrompt is shown before waiting for the final keypress.
const ExitPrompt = "Press any key to exit..."

// Border frames the greeting top and bottom.
var Border = "★" + strings.Repeat("═", 31) + "★"

// Art is printed below the message.
var Art = []string{
	`    *  *  *`,
	`  *        *`,
	`*  Keep    *`,
	`*  Coding! *`,
	`  *      *`,
	`    * *`,
}

// Rainbow is the palette each message character is drawn from.
var Rainbow = []terminal.Color{
	terminal.Red,
	terminal.Yellow,
	terminal.Green,
	terminal.Cyan,
	terminal.Blue,
	terminal.Magenta,
}

// Fixed colors for the rest of the layout.
const (
	BorderColor     = terminal.Cyan
	ArtColor        = terminal.Yellow
	TextColor       = terminal.White
	BackgroundColor = terminal.Black
)

// Characters splits s into user-perceived characters (extended grapheme
// clusters), so an emoji is never broken into pieces.
func Characters(s string) []string {
	var chars []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		chars = append(chars, g.Str())
	}
	return chars
}
