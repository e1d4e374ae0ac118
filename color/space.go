// Package color implements a perceptually-correct color engine: the
// space-conversion graph, the Color value type, gamut handling, and
// Oklab-based difference and interpolation.
package color

import "fmt"

// Space identifies one of the eleven supported color spaces.
type Space uint8

const (
	SrgbSpace Space = iota
	LinearSrgb
	DisplayP3
	LinearDisplayP3
	Rec2020
	LinearRec2020
	Xyz
	Oklab
	Oklch
	Oklrab
	Oklrch
)

var spaceNames = [...]string{
	SrgbSpace:       "srgb",
	LinearSrgb:      "linear-srgb",
	DisplayP3:       "display-p3",
	LinearDisplayP3: "--linear-display-p3",
	Rec2020:         "rec2020",
	LinearRec2020:   "--linear-rec2020",
	Xyz:             "xyz",
	Oklab:           "oklab",
	Oklch:           "oklch",
	Oklrab:          "--oklrab",
	Oklrch:          "--oklrch",
}

// String returns the lowercase CSS-style tag for the space, e.g. "oklch"
// or "--linear-rec2020" for the linear variant, matching
// original_source/src/core/string.rs's COLOR_SPACES table.
func (s Space) String() string {
	if int(s) >= len(spaceNames) {
		return fmt.Sprintf("Space(%d)", uint8(s))
	}
	return spaceNames[s]
}

// IsRGB reports whether the space is one of the six RGB-like (bounded)
// spaces: SrgbSpace, LinearSrgb, DisplayP3, LinearDisplayP3, Rec2020,
// LinearRec2020.
func (s Space) IsRGB() bool {
	switch s {
	case SrgbSpace, LinearSrgb, DisplayP3, LinearDisplayP3, Rec2020, LinearRec2020:
		return true
	default:
		return false
	}
}

// IsPolar reports whether the space uses polar (L, C, h) coordinates.
// Every polar space is also an Ok-family space.
func (s Space) IsPolar() bool {
	return s == Oklch || s == Oklrch
}

// IsOk reports whether the space belongs to the Oklab family (Oklab,
// Oklch, Oklrab, Oklrch).
func (s Space) IsOk() bool {
	switch s {
	case Oklab, Oklch, Oklrab, Oklrch:
		return true
	default:
		return false
	}
}

// IsBounded reports whether coordinates in this space have a natural
// [0,1] gamut. Only the RGB-like spaces are bounded; Xyz and the Ok
// family are unbounded.
func (s Space) IsBounded() bool {
	return s.IsRGB()
}

// OkVersion selects between the original Oklab/Oklch lightness and
// Björn Ottosson's 2023 lightness revision (Oklrab/Oklrch), which
// preserves mid-gray lightness better at the cost of needing an
// algebraic inverse to recover the original L.
type OkVersion uint8

const (
	Original OkVersion = iota
	Revised
)

// CartesianSpace returns the Cartesian (non-polar) Ok-family space for
// this version: Oklab for Original, Oklrab for Revised.
func (v OkVersion) CartesianSpace() Space {
	if v == Revised {
		return Oklrab
	}
	return Oklab
}

// PolarSpace returns the polar Ok-family space for this version: Oklch
// for Original, Oklrch for Revised.
func (v OkVersion) PolarSpace() Space {
	if v == Revised {
		return Oklrch
	}
	return Oklch
}

// hueEpsilon is the chroma threshold below which a polar color's hue is
// considered meaningless and collapsed to NaN.
const hueEpsilon = 0.0002
