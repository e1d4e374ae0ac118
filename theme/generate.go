package theme

import (
	"math/rand"

	"github.com/apparebit/prettypretty/color"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Generate builds a custom 16-slot ANSI theme from hues drawn with a
// seeded random-number generator and turned into swatches via
// go-colorful's HSV constructor (fixed saturation and value,
// well-separated hues), keeping VGA's black-on-white default
// foreground/background. This supplements the fixed VGA theme (the only
// one spec.md defines) with a generator for callers who want a palette
// other than VGA; it has no counterpart in original_source/, where
// themes are always caller-supplied.
//
// seed drives a dedicated math/rand source, so the same seed always
// reproduces the same theme; go-colorful's own FastHappyPalette/
// HappyPalette generators draw from the package-global RNG and can't be
// seeded, so Generate builds its swatches directly from colorful.Hsv.
func Generate(seed int) (Theme, error) {
	rng := rand.New(rand.NewSource(int64(seed)))

	colors := make([]color.Color, themeLength)
	colors[ForegroundEntry] = color.Srgb(0, 0, 0)
	colors[BackgroundEntry] = color.Srgb(1, 1, 1)

	const swatches = 8
	for i := 0; i < swatches; i++ {
		hue := (360.0/swatches)*float64(i) + rng.Float64()*(360.0/swatches)
		swatch := colorful.Hsv(hue, 0.65, 0.8)
		r, g, b := swatch.RGB255()
		dim := color.From24Bit(r, g, b)
		colors[BlackEntry+ThemeEntry(i)] = dim
		// The bright twin is the same hue lightened in Oklrch, mirroring
		// the ~2x intensity step VGA's own bright colors exhibit, then
		// gamut-mapped back into sRGB.
		colors[BrightBlackEntry+ThemeEntry(i)] = dim.Lighten(0.2).ToGamut()
	}

	return New(colors)
}
