package color

// Color is an immutable triple of coordinates tagged with the space they
// are expressed in. Coordinates are never silently clamped on
// construction; a polar color may carry a NaN hue, which means
// "achromatic" and lets grayscale colors round-trip through Oklch/Oklrch
// without inventing a hue.
type Color struct {
	space       Space
	coordinates Coordinates
}

// New constructs a Color in the given space from three coordinates,
// applying normalize (hue wrapping / NaN collapse for polar spaces).
func New(space Space, c0, c1, c2 float64) Color {
	return Color{space: space, coordinates: normalize(space, Coordinates{c0, c1, c2})}
}

// Srgb constructs a Color in the sRGB space.
func Srgb(r, g, b float64) Color { return New(SrgbSpace, r, g, b) }

// DisplayP3FromRGB constructs a Color in the Display P3 space.
func DisplayP3FromRGB(r, g, b float64) Color { return New(DisplayP3, r, g, b) }

// Rec2020FromRGB constructs a Color in the Rec. 2020 space.
func Rec2020FromRGB(r, g, b float64) Color { return New(Rec2020, r, g, b) }

// XyzColor constructs a Color in the CIE XYZ (D65) space.
func XyzColor(x, y, z float64) Color { return New(Xyz, x, y, z) }

// OklabColor constructs a Color in the Oklab space.
func OklabColor(l, a, b float64) Color { return New(Oklab, l, a, b) }

// OklchColor constructs a Color in the Oklch space.
func OklchColor(l, c, h float64) Color { return New(Oklch, l, c, h) }

// From24Bit constructs an sRGB Color from 24-bit byte coordinates.
func From24Bit(r, g, b uint8) Color {
	return New(SrgbSpace, float64(r)/255.0, float64(g)/255.0, float64(b)/255.0)
}

// Space returns the color's space tag.
func (c Color) Space() Space { return c.space }

// Coordinates returns the color's three raw coordinates.
func (c Color) Coordinates() Coordinates { return c.coordinates }

// At returns the coordinate at index i (0, 1, or 2), or a BadIndexError.
func (c Color) At(i int) (float64, error) {
	if i < 0 || i > 2 {
		return 0, &BadIndexError{Index: i, Len: 3}
	}
	return c.coordinates[i], nil
}

// IsDefault is always false for a Color; it exists so Color and
// TerminalColor present a parallel predicate (the terminal default has
// no Color representation of its own).
func (c Color) IsDefault() bool { return false }

// To converts the color to the target space, returning a new Color.
func (c Color) To(target Space) Color {
	if c.space == target {
		return c
	}
	return Color{space: target, coordinates: normalize(target, convert(c.space, target, c.coordinates))}
}

// To24Bit converts the color (assumed already in an RGB-like space, most
// commonly sRGB) to clamped 24-bit bytes.
func (c Color) To24Bit() [3]uint8 {
	return to24Bit(c.space, c.coordinates)
}

// String renders the color using the CSS-inspired syntax: #RRGGBB for
// in-gamut sRGB, otherwise `color(<space> c0 c1 c2)` / `oklab(...)` /
// `oklch(...)`.
func (c Color) String() string {
	return format(c)
}

// ToHexFormat renders the color as #RRGGBB, converting to sRGB first.
func (c Color) ToHexFormat() string {
	rgb := c.To(SrgbSpace).To24Bit()
	return hexFormat(rgb)
}

const gamutTolerance = 1e-4

// InGamut reports whether the color's coordinates are realizable in its
// own space: always true for unbounded spaces, and true for bounded
// (RGB-like) spaces when every coordinate lies in [0,1] within tolerance.
func (c Color) InGamut() bool {
	if !c.space.IsBounded() {
		return true
	}
	for _, x := range c.coordinates {
		if x < -gamutTolerance || x > 1+gamutTolerance {
			return false
		}
	}
	return true
}

// Clip componentwise-clamps the color's coordinates to [0,1] if its space
// is bounded; otherwise it is the identity.
func (c Color) Clip() Color {
	if !c.space.IsBounded() {
		return c
	}
	clamp := func(x float64) float64 {
		if x < 0 {
			return 0
		}
		if x > 1 {
			return 1
		}
		return x
	}
	return Color{
		space: c.space,
		coordinates: Coordinates{
			clamp(c.coordinates[0]),
			clamp(c.coordinates[1]),
			clamp(c.coordinates[2]),
		},
	}
}

// gamutMapJND is the Oklab-distance threshold the CSS Color 4 gamut
// mapping algorithm uses to decide a clipped projection is "close enough"
// to the unclipped original.
const gamutMapJND = 0.02

// ToGamut implements the CSS Color 4 gamut-mapping algorithm: convert to
// Oklch, then binary-search chroma downward (holding L and h fixed) until
// clipping the projection into the destination space changes it by less
// than gamutMapJND (measured as Oklab distance). Unbounded destination
// spaces are returned unchanged.
func (c Color) ToGamut() Color {
	if !c.space.IsBounded() {
		return c
	}
	if c.InGamut() {
		return c
	}

	destination := c.space
	oklch := c.To(Oklch)
	l, hi, h := oklch.coordinates[0], oklch.coordinates[1], oklch.coordinates[2]

	// Extreme lightness: there is no in-gamut chroma to search for.
	if l <= 0 {
		return Color{space: destination, coordinates: Coordinates{0, 0, 0}}
	}
	if l >= 1 {
		return Color{space: destination, coordinates: Coordinates{1, 1, 1}}
	}

	lo := 0.0
	const maxIterations = 20
	const precision = 1e-4

	clipped := oklch.To(destination).Clip()
	for i := 0; i < maxIterations && hi-lo > precision; i++ {
		mid := (lo + hi) / 2
		candidate := Color{space: Oklch, coordinates: Coordinates{l, mid, h}}
		projected := candidate.To(destination)
		clippedCandidate := projected.Clip()
		delta := distance(projected, clippedCandidate, Original)
		if projected.InGamut() || delta < gamutMapJND {
			lo = mid
			clipped = clippedCandidate
		} else {
			hi = mid
		}
	}
	return clipped
}

// Lighten converts to Oklrch, adds f to the revised lightness Lr
// (clamping to [0,1]), and converts back to the original space.
func (c Color) Lighten(f float64) Color {
	return c.adjustLightness(f)
}

// Darken converts to Oklrch, subtracts f from the revised lightness Lr
// (clamping to [0,1]), and converts back to the original space.
func (c Color) Darken(f float64) Color {
	return c.adjustLightness(-f)
}

func (c Color) adjustLightness(delta float64) Color {
	original := c.space
	oklrch := c.To(Oklrch)
	lr := oklrch.coordinates[0] + delta
	if lr < 0 {
		lr = 0
	}
	if lr > 1 {
		lr = 1
	}
	adjusted := Color{space: Oklrch, coordinates: Coordinates{lr, oklrch.coordinates[1], oklrch.coordinates[2]}}
	return adjusted.To(original)
}
