package color

import (
	"math"
	"testing"
)

func TestDistanceZeroForIdenticalColors(t *testing.T) {
	c := Srgb(0.3, 0.6, 0.9)
	if d := Distance(c, c, Original); d != 0 {
		t.Errorf("Distance(c, c) = %v, want 0", d)
	}
}

func TestInterpolateShorterVsLonger(t *testing.T) {
	a := OklchColor(0.5, 0.1, 10)
	b := OklchColor(0.5, 0.1, 350)

	shorter := Interpolate(a, b, Oklch, Shorter).At(0.5)
	if h, _ := shorter.At(2); math.Abs(h-0) > 1e-6 && math.Abs(h-360) > 1e-6 {
		t.Errorf("Shorter midpoint hue = %v, want ~0 (or 360)", h)
	}

	longer := Interpolate(a, b, Oklch, Longer).At(0.5)
	if h, _ := longer.At(2); math.Abs(h-180) > 1e-6 {
		t.Errorf("Longer midpoint hue = %v, want ~180", h)
	}
}

func TestInterpolateIncreasingAndDecreasing(t *testing.T) {
	a := OklchColor(0.5, 0.1, 350)
	b := OklchColor(0.5, 0.1, 10)

	inc := Interpolate(a, b, Oklch, Increasing).At(1.0)
	if h, _ := inc.At(2); math.Abs(h-10) > 1e-6 {
		t.Errorf("Increasing endpoint hue = %v, want 10", h)
	}

	dec := Interpolate(b, a, Oklch, Decreasing).At(1.0)
	if h, _ := dec.At(2); math.Abs(h-350) > 1e-6 {
		t.Errorf("Decreasing endpoint hue = %v, want 350", h)
	}
}

func TestInterpolateAchromaticInheritsHue(t *testing.T) {
	gray := Srgb(0.5, 0.5, 0.5) // NaN hue in Oklch
	hued := OklchColor(0.5, 0.2, 120)

	mid := Interpolate(gray, hued, Oklch, Shorter).At(0.5)
	h, _ := mid.At(2)
	if math.Abs(h-120) > 1e-6 {
		t.Errorf("midpoint hue = %v, want 120 (inherited)", h)
	}
}

func TestInterpolateExtrapolatesPastEndpoints(t *testing.T) {
	a := Srgb(0, 0, 0)
	b := Srgb(0.2, 0.2, 0.2)
	extrapolated := Interpolate(a, b, SrgbSpace, Shorter).At(2.0)
	if math.Abs(extrapolated.coordinates[0]-0.4) > 1e-9 {
		t.Errorf("extrapolated coordinate = %v, want 0.4", extrapolated.coordinates[0])
	}
}

func TestInterpolateNonFiniteTYieldsNonFinite(t *testing.T) {
	a := Srgb(0, 0, 0)
	b := Srgb(1, 1, 1)
	result := Interpolate(a, b, SrgbSpace, Shorter).At(math.NaN())
	if !math.IsNaN(result.coordinates[0]) {
		t.Errorf("At(NaN) = %v, want NaN coordinates", result.coordinates)
	}
}
