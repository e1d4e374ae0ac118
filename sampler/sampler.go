// Package sampler bridges high-resolution colors (color.Color) and the
// terminal color taxonomy (term.TerminalColor), given a theme: upsampling
// an 8-bit or ANSI color to full resolution, downsampling a
// high-resolution color to the nearest ANSI or 8-bit slot, and adjusting
// a terminal color to a target fidelity.
package sampler

import (
	"math"

	"github.com/apparebit/prettypretty/color"
	"github.com/apparebit/prettypretty/term"
	"github.com/apparebit/prettypretty/theme"
)

// cubeRamp is the terminal-standard embedded-cube coordinate ramp.
var cubeRamp = [6]float64{0, 95.0 / 255.0, 135.0 / 255.0, 175.0 / 255.0, 215.0 / 255.0, 1}

// grayLevel returns the sRGB value of gray ramp step 0..=23.
func grayLevel(level uint8) float64 {
	return (8.0 + 10.0*float64(level)) / 255.0
}

// Sampler owns an immutable Theme and OkVersion, plus the lookup tables
// needed for nearest-color search. Everything is precomputed at
// construction (collect.rs's ColorMatcher), so a Sampler is safe to share
// across goroutines without synchronization.
type Sampler struct {
	theme   theme.Theme
	version color.OkVersion

	// ansiCartesian[i] is the Theme's color for AnsiColor(i), converted
	// to version.CartesianSpace(), used by ToClosestAnsi.
	ansiCartesian [16]color.Color
	// ansiSrgb[i] is the same color, clipped to sRGB, used by
	// ToAnsiInRGB.
	ansiSrgb [16]color.Color

	// eightBit[i] is the sRGB color for 8-bit index 16+i (i in 0..=239,
	// covering the embedded cube and the gray ramp; ANSI slots are
	// excluded because they are theme-dependent and would otherwise
	// dominate the nearest-neighbor search).
	eightBit [240]color.Color
}

// New precomputes a Sampler's lookup tables for th and version.
func New(th theme.Theme, version color.OkVersion) *Sampler {
	s := &Sampler{theme: th, version: version}

	for i := 0; i < 16; i++ {
		ansi, _ := term.AnsiColorFromU8(uint8(i))
		c := th.Ansi(ansi)
		s.ansiCartesian[i] = c.To(version.CartesianSpace())
		s.ansiSrgb[i] = c.To(color.SrgbSpace).Clip()
	}

	for i := 0; i < 240; i++ {
		s.eightBit[i] = s.toHighRes8BitRaw(uint8(i + 16))
	}

	return s
}

// toHighRes8BitRaw computes the canonical sRGB color for 8-bit indices
// 16..=255 (embedded cube / gray ramp), independent of any theme.
func (s *Sampler) toHighRes8BitRaw(idx uint8) color.Color {
	switch {
	case idx >= 16 && idx <= 231:
		e, _ := term.EmbeddedRgbFromU8(idx)
		r, g, b := e.Coordinates()
		return color.Srgb(cubeRamp[r], cubeRamp[g], cubeRamp[b])
	default:
		g, _ := term.GrayGradientFromU8(idx)
		v := grayLevel(g.Level())
		return color.Srgb(v, v, v)
	}
}

// ToHighRes8Bit is a pure function of idx (0..=255): the theme entry for
// 0..=15, or the canonical sRGB color for the embedded cube / gray ramp
// entry otherwise.
func (s *Sampler) ToHighRes8Bit(idx uint8) color.Color {
	if idx <= 15 {
		ansi, _ := term.AnsiColorFromU8(idx)
		return s.theme.Ansi(ansi)
	}
	return s.toHighRes8BitRaw(idx)
}

// TryHighRes returns the high-resolution color for Ansi/Rgb6/Gray/Rgb256,
// and false for Default (which has no color of its own).
func (s *Sampler) TryHighRes(tc term.TerminalColor) (color.Color, bool) {
	switch tc.Kind() {
	case term.KindAnsi:
		a, _ := tc.Ansi()
		return s.theme.Ansi(a), true
	case term.KindRgb6, term.KindGray:
		idx, _ := tc.To8Bit()
		return s.toHighRes8BitRaw(idx), true
	case term.KindRgb256:
		rgb, _ := tc.Rgb256()
		r, g, b := rgb.Coordinates()
		return color.From24Bit(r, g, b), true
	default:
		return color.Color{}, false
	}
}

// ToHighRes resolves tc to a high-resolution color, like TryHighRes, but
// resolves Default to the theme's foreground or background entry for
// layer.
func (s *Sampler) ToHighRes(tc term.TerminalColor, layer term.Layer) color.Color {
	if c, ok := s.TryHighRes(tc); ok {
		return c
	}
	return s.theme.Layer(layer)
}

// findClosest returns the index of the candidate minimizing Euclidean
// distance to origin, breaking ties toward the lowest index. It is the
// named primitive shared by ToClosestAnsi and ToClosestEightBitRaw.
func findClosest(origin Coordinates, candidates []Coordinates) int {
	best := 0
	bestDistance := math.Inf(1)
	for i, candidate := range candidates {
		d := euclidean(origin, candidate)
		if d < bestDistance {
			bestDistance = d
			best = i
		}
	}
	return best
}

// Coordinates is a plain 3-tuple used internally by findClosest so the
// search has no dependency on which space the caller's coordinates are
// expressed in.
type Coordinates = [3]float64

func euclidean(a, b Coordinates) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// ToClosestAnsi converts c to version.CartesianSpace() and returns the
// ANSI slot minimizing Euclidean distance to the Sampler's precomputed
// table. Ties break toward the lowest slot index.
func (s *Sampler) ToClosestAnsi(c color.Color) term.AnsiColor {
	origin := c.To(s.version.CartesianSpace()).Coordinates()
	candidates := make([]Coordinates, 16)
	for i, entry := range s.ansiCartesian {
		candidates[i] = entry.Coordinates()
	}
	idx := findClosest(origin, candidates)
	a, _ := term.AnsiColorFromU8(uint8(idx))
	return a
}

// ToAnsiInRGB is the alternate ANSI selection that operates in sRGB:
// clip c to sRGB gamut, then pick the ANSI slot whose theme color has
// minimum sRGB Euclidean distance. Some users prefer this over
// ToClosestAnsi's perceptual match because it favors hue fidelity.
func (s *Sampler) ToAnsiInRGB(c color.Color) term.AnsiColor {
	origin := c.To(color.SrgbSpace).Clip().Coordinates()
	candidates := make([]Coordinates, 16)
	for i, entry := range s.ansiSrgb {
		candidates[i] = entry.Coordinates()
	}
	idx := findClosest(origin, candidates)
	a, _ := term.AnsiColorFromU8(uint8(idx))
	return a
}

// ToClosestEightBitRaw returns the 8-bit index in 16..=255 (embedded cube
// and gray ramp only; ANSI slots are excluded, as they are theme-dependent
// and tend to disrupt a gradation) minimizing sRGB distance to c after
// clipping.
func (s *Sampler) ToClosestEightBitRaw(c color.Color) uint8 {
	origin := c.To(color.SrgbSpace).Clip().Coordinates()
	candidates := make([]Coordinates, 240)
	for i, entry := range s.eightBit {
		candidates[i] = entry.Coordinates()
	}
	idx := findClosest(origin, candidates)
	return uint8(idx + 16)
}

// ToClosestEightBit wraps ToClosestEightBitRaw's index in the appropriate
// TerminalColor variant (Rgb6 or Gray).
func (s *Sampler) ToClosestEightBit(c color.Color) term.TerminalColor {
	return term.From8Bit(s.ToClosestEightBitRaw(c))
}

// Adjust downgrades tc to the highest-fidelity representation that is
// still at most fidelity. It returns ok=false for Plain/NoColor, meaning
// the caller should strip color entirely.
func (s *Sampler) Adjust(tc term.TerminalColor, fidelity term.Fidelity) (term.TerminalColor, bool) {
	switch fidelity {
	case term.Plain, term.NoColor:
		return term.TerminalColor{}, false

	case term.AnsiFidelity:
		switch tc.Kind() {
		case term.KindDefault, term.KindAnsi:
			return tc, true
		default:
			c, _ := s.TryHighRes(tc)
			return term.FromAnsi(s.ToClosestAnsi(c)), true
		}

	case term.EightBit:
		switch tc.Kind() {
		case term.KindDefault, term.KindAnsi, term.KindRgb6, term.KindGray:
			return tc, true
		case term.KindRgb256:
			c, _ := s.TryHighRes(tc)
			return s.ToClosestEightBit(c), true
		default:
			return tc, true
		}

	case term.Full:
		return tc, true

	default:
		return tc, true
	}
}
