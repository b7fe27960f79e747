package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PaletteEntry contains data for one row of the palette table.
type PaletteEntry struct {
	Name  string
	Index int // ANSI color index (0-15)
	Role  string
}

// swatchWidth is the number of cells in a color swatch.
const swatchWidth = 6

// Palette prints the color table with accent styling.
// Swatches are drawn only on a TTY.
func (p *Printer) Palette(title string, entries []PaletteEntry) {
	if len(entries) == 0 {
		return
	}

	p.Section(title)

	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(p.tableStyle())

	t.AppendHeader(table.Row{"#", "Color", "ANSI", "Role", "Swatch"})

	for i, e := range entries {
		t.AppendRow(table.Row{i, e.Name, e.Index, e.Role, p.swatch(e.Index)})
	}

	t.Render()
	p.Println()
}

func (p *Printer) swatch(index int) string {
	if !p.isTTY {
		return ""
	}
	style := lipgloss.NewStyle().Background(lipgloss.Color(strconv.Itoa(index)))
	return style.Render(strings.Repeat(" ", swatchWidth))
}

// tableStyle returns the standard accent-themed table style.
func (p *Printer) tableStyle() table.Style {
	style := table.StyleRounded
	if p.isTTY {
		style.Color.Header = text.Colors{text.FgHiCyan, text.Bold}
		style.Color.Border = text.Colors{text.FgHiBlack}
	}
	style.Options.SeparateRows = false
	return style
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	if p.isTTY {
		style := lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
		p.Println(style.Render(title))
	} else {
		p.Println(title)
	}
}
