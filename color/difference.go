package color

import "math"

// distance returns the Euclidean (perceptual) distance between a and b,
// ΔE_OK, computed in version's Cartesian space (Oklab or Oklrab).
func distance(a, b Color, version OkVersion) float64 {
	space := version.CartesianSpace()
	pa := a.To(space).coordinates
	pb := b.To(space).coordinates
	return math.Sqrt(
		(pa[0]-pb[0])*(pa[0]-pb[0]) +
			(pa[1]-pb[1])*(pa[1]-pb[1]) +
			(pa[2]-pb[2])*(pa[2]-pb[2]),
	)
}

// Distance returns the perceptual distance (ΔE_OK) between a and b in
// version's Cartesian Ok-family space.
func Distance(a, b Color, version OkVersion) float64 {
	return distance(a, b, version)
}

// HueStrategy resolves the hue delta (Δh) used when interpolating in a
// polar space.
type HueStrategy uint8

const (
	// Shorter picks the sign of Δh so that |Δh| <= 180.
	Shorter HueStrategy = iota
	// Longer picks the sign of Δh so that |Δh| >= 180.
	Longer
	// Increasing forces Δh >= 0, adding 360 if necessary.
	Increasing
	// Decreasing forces Δh <= 0, subtracting 360 if necessary.
	Decreasing
)

// Interpolator is an immutable, precomputed linear interpolation between
// two colors in a chosen space, with the hue delta (for polar spaces)
// already resolved by a HueStrategy.
type Interpolator struct {
	space    Space
	strategy HueStrategy
	from     Coordinates
	to       Coordinates
	isPolar  bool
	deltaHue float64
}

// Interpolate pre-converts a and b into space (applying normalize), and
// for polar spaces resolves the hue each endpoint should use — an
// achromatic (NaN-hue) endpoint inherits the other endpoint's hue, and the
// hue delta is resolved per strategy.
func Interpolate(a, b Color, space Space, strategy HueStrategy) Interpolator {
	ca := a.To(space)
	cb := b.To(space)

	it := Interpolator{space: space, strategy: strategy, from: ca.coordinates, to: cb.coordinates, isPolar: space.IsPolar()}
	if !it.isPolar {
		return it
	}

	h1, h2 := ca.coordinates[2], cb.coordinates[2]
	switch {
	case math.IsNaN(h1) && math.IsNaN(h2):
		// Both achromatic: hue is irrelevant, leave delta at zero.
		return it
	case math.IsNaN(h1):
		h1 = h2
		it.from[2] = h1
	case math.IsNaN(h2):
		h2 = h1
		it.to[2] = h2
	}

	delta := h2 - h1
	switch strategy {
	case Shorter:
		if delta > 180 {
			delta -= 360
		} else if delta < -180 {
			delta += 360
		}
	case Longer:
		if delta > 0 && delta < 180 {
			delta -= 360
		} else if delta < 0 && delta > -180 {
			delta += 360
		}
	case Increasing:
		if delta < 0 {
			delta += 360
		}
	case Decreasing:
		if delta > 0 {
			delta -= 360
		}
	}
	it.deltaHue = delta
	return it
}

// At evaluates the interpolation at fraction t, returning a Color in the
// interpolator's space. t is not clamped to [0,1]; extrapolation is
// allowed, and non-finite t yields non-finite coordinates.
func (it Interpolator) At(t float64) Color {
	mix := func(from, to float64) float64 { return from + (to-from)*t }

	if !it.isPolar {
		return Color{
			space: it.space,
			coordinates: Coordinates{
				mix(it.from[0], it.to[0]),
				mix(it.from[1], it.to[1]),
				mix(it.from[2], it.to[2]),
			},
		}
	}

	l := mix(it.from[0], it.to[0])
	c := mix(it.from[1], it.to[1])
	h := it.from[2] + it.deltaHue*t
	return Color{space: it.space, coordinates: normalize(it.space, Coordinates{l, c, h})}
}
