// Package theme implements the 18-entry table mapping default
// foreground/background and the 16 ANSI slots to concrete high-resolution
// colors.
package theme

import (
	"fmt"

	"github.com/apparebit/prettypretty/color"
	"github.com/apparebit/prettypretty/term"
)

// ThemeEntry indexes the 18 slots of a Theme.
type ThemeEntry uint8

const (
	ForegroundEntry ThemeEntry = iota
	BackgroundEntry
	BlackEntry
	RedEntry
	GreenEntry
	YellowEntry
	BlueEntry
	MagentaEntry
	CyanEntry
	WhiteEntry
	BrightBlackEntry
	BrightRedEntry
	BrightGreenEntry
	BrightYellowEntry
	BrightBlueEntry
	BrightMagentaEntry
	BrightCyanEntry
	BrightWhiteEntry

	themeLength = int(BrightWhiteEntry) + 1
)

// ThemeEntryFromIndex converts a table index (0..=17) to a ThemeEntry.
func ThemeEntryFromIndex(i int) (ThemeEntry, error) {
	if i < 0 || i >= themeLength {
		return 0, &color.BadIndexError{Index: i, Len: themeLength}
	}
	return ThemeEntry(i), nil
}

// ThemeEntryFromAnsiColor returns the ThemeEntry that holds c's color:
// c.To8Bit() + 2.
func ThemeEntryFromAnsiColor(c term.AnsiColor) ThemeEntry {
	return ThemeEntry(c.To8Bit() + 2)
}

// BadThemeLengthError reports a Theme constructed from other than 18
// colors.
type BadThemeLengthError struct {
	Got int
}

func (e *BadThemeLengthError) Error() string {
	return fmt.Sprintf("theme requires exactly %d colors, got %d", themeLength, e.Got)
}

// Theme is a fixed-length sequence of 18 colors: the default
// foreground/background plus the 16 ANSI slots. Every entry is expected
// to be a finite, in-gamut sRGB color after normalize — callers
// constructing a Theme are responsible for pre-converting their colors.
type Theme struct {
	entries [themeLength]color.Color
}

// New builds a Theme from exactly 18 colors, ordered per ThemeEntry.
func New(colors []color.Color) (Theme, error) {
	if len(colors) != themeLength {
		return Theme{}, &BadThemeLengthError{Got: len(colors)}
	}
	var t Theme
	copy(t.entries[:], colors)
	return t, nil
}

// At returns the color at the given table index.
func (t Theme) At(i int) (color.Color, error) {
	if i < 0 || i >= themeLength {
		return color.Color{}, &color.BadIndexError{Index: i, Len: themeLength}
	}
	return t.entries[i], nil
}

// Layer returns the theme's default color for the given layer:
// Foreground or Background.
func (t Theme) Layer(layer term.Layer) color.Color {
	if layer == term.Background {
		return t.entries[BackgroundEntry]
	}
	return t.entries[ForegroundEntry]
}

// Ansi returns the theme's color for the given ANSI slot.
func (t Theme) Ansi(c term.AnsiColor) color.Color {
	return t.entries[ThemeEntryFromAnsiColor(c)]
}

// Entry returns the color at the given ThemeEntry.
func (t Theme) Entry(e ThemeEntry) color.Color {
	return t.entries[e]
}

// Colors returns a copy of the theme's 18 colors, ordered per ThemeEntry.
func (t Theme) Colors() []color.Color {
	out := make([]color.Color, themeLength)
	copy(out, t.entries[:])
	return out
}

// vgaEntries holds the default theme's colors, using the classic VGA
// text-mode palette (original_source/src/collect.rs's DEFAULT_THEME).
var vgaEntries = [themeLength]color.Color{
	ForegroundEntry: color.Srgb(0, 0, 0),
	BackgroundEntry: color.Srgb(1, 1, 1),

	BlackEntry:   color.Srgb(0, 0, 0),
	RedEntry:     color.Srgb(0.666666666666667, 0, 0),
	GreenEntry:   color.Srgb(0, 0.666666666666667, 0),
	YellowEntry:  color.Srgb(0.666666666666667, 0.333333333333333, 0),
	BlueEntry:    color.Srgb(0, 0, 0.666666666666667),
	MagentaEntry: color.Srgb(0.666666666666667, 0, 0.666666666666667),
	CyanEntry:    color.Srgb(0, 0.666666666666667, 0.666666666666667),
	WhiteEntry:   color.Srgb(0.666666666666667, 0.666666666666667, 0.666666666666667),

	BrightBlackEntry:   color.Srgb(0.333333333333333, 0.333333333333333, 0.333333333333333),
	BrightRedEntry:     color.Srgb(1, 0.333333333333333, 0.333333333333333),
	BrightGreenEntry:   color.Srgb(0.333333333333333, 1, 0.333333333333333),
	BrightYellowEntry:  color.Srgb(1, 1, 0.333333333333333),
	BrightBlueEntry:    color.Srgb(0.333333333333333, 0.333333333333333, 1),
	BrightMagentaEntry: color.Srgb(1, 0.333333333333333, 1),
	BrightCyanEntry:    color.Srgb(0.333333333333333, 1, 1),
	BrightWhiteEntry:   color.Srgb(1, 1, 1),
}

// VGA is the default theme: the classic VGA text-mode 16-color palette,
// with black-on-white default foreground/background. It provides a
// well-defined initial value; unlike original_source/src/lib.rs, this
// package holds no global mutable "current theme" — callers thread a
// Theme explicitly wherever one is needed.
func VGA() Theme {
	return Theme{entries: vgaEntries}
}
