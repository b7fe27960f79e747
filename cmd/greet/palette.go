package main

import (
	"github.com/gridctl/greet/pkg/greeting"
	"github.com/gridctl/greet/pkg/output"
	"github.com/gridctl/greet/pkg/terminal"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the colors used by the greeting",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printer := output.New()
		printer.Palette("RAINBOW", rainbowEntries())
		printer.Palette("ACCENTS", accentEntries())
	},
}

func rainbowEntries() []output.PaletteEntry {
	entries := make([]output.PaletteEntry, 0, len(greeting.Rainbow))
	for _, c := range greeting.Rainbow {
		entries = append(entries, paletteEntry(c, "message"))
	}
	return entries
}

func accentEntries() []output.PaletteEntry {
	return []output.PaletteEntry{
		paletteEntry(greeting.BorderColor, "border"),
		paletteEntry(greeting.TextColor, "text"),
		paletteEntry(greeting.ArtColor, "art"),
		paletteEntry(greeting.BackgroundColor, "background"),
	}
}

func paletteEntry(c terminal.Color, role string) output.PaletteEntry {
	return output.PaletteEntry{
		Name:  c.String(),
		Index: int(c.ANSI()),
		Role:  role,
	}
}
