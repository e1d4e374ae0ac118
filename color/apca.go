package color

import "math"

// APCA constants pinned to APCA-W3 0.1.9 ("Bridge"), the last revision
// with stable, widely reproduced coefficients (see DESIGN.md, Open
// Question a). Treat these as a tunable, not an immutable law of nature.
const (
	apcaMainTRC = 2.4

	apcaSrCoefficient = 0.2126729
	apcaSgCoefficient = 0.7151522
	apcaSbCoefficient = 0.0721750

	apcaNormBG  = 0.56
	apcaNormTxt = 0.57
	apcaRevTxt  = 0.62
	apcaRevBG   = 0.65

	apcaBlackThreshold = 0.022
	apcaBlackClamp     = 1.414
	apcaDeltaYMin       = 0.0005

	apcaScaleBoW    = 1.14
	apcaLoBoWOffset = 0.027
	apcaScaleWoB    = 1.14
	apcaLoWoBOffset = 0.027
	apcaLoClip      = 0.1
)

// apcaLuminance computes the APCA "Y" value for an sRGB color: the
// weighted sum of each channel raised to the APCA main tone-response
// curve exponent (a simplified, pure-power gamma rather than the sRGB
// piecewise curve, per the APCA specification).
func apcaLuminance(c Color) float64 {
	rgb := c.To(SrgbSpace).Clip().coordinates
	p := func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		return math.Pow(x, apcaMainTRC)
	}
	return apcaSrCoefficient*p(rgb[0]) + apcaSgCoefficient*p(rgb[1]) + apcaSbCoefficient*p(rgb[2])
}

func apcaSoftClamp(y float64) float64 {
	if y > apcaBlackThreshold {
		return y
	}
	return y + math.Pow(apcaBlackThreshold-y, apcaBlackClamp)
}

// apcaContrast returns the signed APCA Lc contrast value (-100..100,
// roughly) of text-color txt against background bg.
func apcaContrast(txt, bg Color) float64 {
	txtY := apcaSoftClamp(apcaLuminance(txt))
	bgY := apcaSoftClamp(apcaLuminance(bg))

	if math.Abs(bgY-txtY) < apcaDeltaYMin {
		return 0
	}

	var sapc float64
	if bgY > txtY {
		sapc = (math.Pow(bgY, apcaNormBG) - math.Pow(txtY, apcaNormTxt)) * apcaScaleBoW
		if sapc < apcaLoClip {
			return 0
		}
		return (sapc - apcaLoBoWOffset) * 100
	}

	sapc = (math.Pow(bgY, apcaRevBG) - math.Pow(txtY, apcaRevTxt)) * apcaScaleWoB
	if sapc > -apcaLoClip {
		return 0
	}
	return (sapc + apcaLoWoBOffset) * 100
}

// ContrastAgainst returns the signed APCA Lc contrast of c, used as text,
// against bg, used as background. The sign indicates polarity (positive
// for dark text on a light background, negative for the reverse); the
// magnitude is the perceptual contrast strength.
func (c Color) ContrastAgainst(bg Color) float64 {
	return apcaContrast(c, bg)
}

// UseBlackText reports whether black text would read better against c
// (used as a background) than white text would, by APCA magnitude.
func (c Color) UseBlackText() bool {
	black := Srgb(0, 0, 0)
	white := Srgb(1, 1, 1)
	return math.Abs(apcaContrast(black, c)) >= math.Abs(apcaContrast(white, c))
}

// UseBlackBackground reports whether a black background would read
// better behind c (used as text/foreground) than a white background
// would, by APCA magnitude.
func (c Color) UseBlackBackground() bool {
	black := Srgb(0, 0, 0)
	white := Srgb(1, 1, 1)
	return math.Abs(apcaContrast(c, black)) >= math.Abs(apcaContrast(c, white))
}
