// Package tcellcolor adapts this engine's terminal colors into
// github.com/gdamore/tcell/v2's Color and Style types, for host
// applications that render through tcell. It is a thin, optional bridge,
// not part of the core color engine itself; it follows the same
// tcell usage pattern the teacher repository's own render/renderers
// package uses (tcell.NewRGBColor for true color, tcell.StyleDefault's
// chained Foreground/Background for styling).
package tcellcolor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/apparebit/prettypretty/color"
	"github.com/apparebit/prettypretty/term"
)

// ToTcellColor converts a term.TerminalColor to the tcell.Color that
// renders it: tcell.ColorDefault for Default, tcell's 0..=255 palette
// index for Ansi/Rgb6/Gray, and an explicit RGB triple for Rgb256.
func ToTcellColor(tc term.TerminalColor) tcell.Color {
	if tc.IsDefault() {
		return tcell.ColorDefault
	}
	if idx, ok := tc.To8Bit(); ok {
		return tcell.PaletteColor(int(idx))
	}
	if rgb, ok := tc.Rgb256(); ok {
		r, g, b := rgb.Coordinates()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

// FromColor converts a high-resolution color.Color directly to a
// tcell.Color by rounding it to 24-bit sRGB, bypassing the terminal color
// taxonomy entirely (useful for callers who already know their terminal
// supports true color).
func FromColor(c color.Color) tcell.Color {
	rgb := c.To(color.SrgbSpace).Clip().To24Bit()
	return tcell.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2]))
}

// Style builds a tcell.Style from a foreground and background
// term.TerminalColor, mirroring tcell.StyleDefault.Foreground(fg).Background(bg).
func Style(fg, bg term.TerminalColor) tcell.Style {
	return tcell.StyleDefault.Foreground(ToTcellColor(fg)).Background(ToTcellColor(bg))
}
