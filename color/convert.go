package color

import "math"

// Coordinates is a fixed-size triple of color coordinates. Its meaning
// (RGB, XYZ, Lab, Lch, ...) depends on the Space it is paired with.
type Coordinates = [3]float64

// multiply applies a 3x3 matrix (row-major) to a column vector.
func multiply(m *[3][3]float64, v Coordinates) Coordinates {
	return Coordinates{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// --------------------------------------------------------------------
// sRGB / Display P3 gamma (identical transfer function, different
// primaries).

func rgbToLinearRGB(v Coordinates) Coordinates {
	convert := func(x float64) float64 {
		magnitude := math.Abs(x)
		if magnitude <= 0.04045 {
			return x / 12.92
		}
		return math.Copysign(math.Pow((magnitude+0.055)/1.055, 2.4), x)
	}
	return Coordinates{convert(v[0]), convert(v[1]), convert(v[2])}
}

func linearRGBToRGB(v Coordinates) Coordinates {
	convert := func(x float64) float64 {
		magnitude := math.Abs(x)
		if magnitude <= 0.00313098 {
			return x * 12.92
		}
		return math.Copysign(math.Pow(magnitude, 1.0/2.4)*1.055-0.055, x)
	}
	return Coordinates{convert(v[0]), convert(v[1]), convert(v[2])}
}

// --------------------------------------------------------------------
// Linear sRGB <-> XYZ
// https://github.com/color-js/color.js/blob/main/src/spaces/srgb-linear.js

var linearSrgbToXyzMatrix = [3][3]float64{
	{0.41239079926595934, 0.357584339383878, 0.1804807884018343},
	{0.21263900587151027, 0.715168678767756, 0.07219231536073371},
	{0.01933081871559182, 0.11919477979462598, 0.9505321522496607},
}

var xyzToLinearSrgbMatrix = [3][3]float64{
	{3.2409699419045226, -1.537383177570094, -0.4986107602930034},
	{-0.9692436362808796, 1.8759675015077202, 0.04155505740717559},
	{0.05563007969699366, -0.20397695888897652, 1.0569715142428786},
}

func linearSrgbToXyz(v Coordinates) Coordinates { return multiply(&linearSrgbToXyzMatrix, v) }
func xyzToLinearSrgb(v Coordinates) Coordinates { return multiply(&xyzToLinearSrgbMatrix, v) }

// --------------------------------------------------------------------
// Linear Display P3 <-> XYZ
// https://github.com/color-js/color.js/blob/main/src/spaces/p3-linear.js

var linearDisplayP3ToXyzMatrix = [3][3]float64{
	{0.4865709486482162, 0.26566769316909306, 0.1982172852343625},
	{0.2289745640697488, 0.6917385218365064, 0.079286914093745},
	{0.0000000000000000, 0.04511338185890264, 1.043944368900976},
}

var xyzToLinearDisplayP3Matrix = [3][3]float64{
	{2.493496911941425, -0.9313836179191239, -0.40271078445071684},
	{-0.8294889695615747, 1.7626640603183463, 0.023624685841943577},
	{0.03584583024378447, -0.07617238926804182, 0.9568845240076872},
}

func linearDisplayP3ToXyz(v Coordinates) Coordinates {
	return multiply(&linearDisplayP3ToXyzMatrix, v)
}
func xyzToLinearDisplayP3(v Coordinates) Coordinates {
	return multiply(&xyzToLinearDisplayP3Matrix, v)
}

// --------------------------------------------------------------------
// Rec. 2020 <-> linear Rec. 2020
// https://github.com/color-js/color.js/blob/main/src/spaces/rec2020.js

const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

func rec2020ToLinearRec2020(v Coordinates) Coordinates {
	convert := func(x float64) float64 {
		if x < rec2020Beta*4.5 {
			return x / 4.5
		}
		return math.Pow((x+rec2020Alpha-1.0)/rec2020Alpha, 1.0/0.45)
	}
	return Coordinates{convert(v[0]), convert(v[1]), convert(v[2])}
}

func linearRec2020ToRec2020(v Coordinates) Coordinates {
	convert := func(x float64) float64 {
		if x < rec2020Beta {
			return x * 4.5
		}
		return rec2020Alpha*math.Pow(x, 0.45) - (rec2020Alpha - 1.0)
	}
	return Coordinates{convert(v[0]), convert(v[1]), convert(v[2])}
}

// --------------------------------------------------------------------
// Linear Rec. 2020 <-> XYZ
// https://github.com/color-js/color.js/blob/main/src/spaces/rec2020-linear.js

var linearRec2020ToXyzMatrix = [3][3]float64{
	{0.6369580483012914, 0.14461690358620832, 0.1688809751641721},
	{0.2627002120112671, 0.6779980715188708, 0.05930171646986196},
	{0.000000000000000, 0.028072693049087428, 1.060985057710791},
}

var xyzToLinearRec2020Matrix = [3][3]float64{
	{1.716651187971268, -0.355670783776392, -0.253366281373660},
	{-0.666684351832489, 1.616481236634939, 0.0157685458139111},
	{0.017639857445311, -0.042770613257809, 0.942103121235474},
}

func linearRec2020ToXyz(v Coordinates) Coordinates { return multiply(&linearRec2020ToXyzMatrix, v) }
func xyzToLinearRec2020(v Coordinates) Coordinates { return multiply(&xyzToLinearRec2020Matrix, v) }

// --------------------------------------------------------------------
// Oklab polar/Cartesian and lightness-revision edges.

// okxchToOkxab converts Oklch/Oklrch coordinates to Oklab/Oklrab. A NaN
// hue collapses to the achromatic point (L, 0, 0).
func okxchToOkxab(v Coordinates) Coordinates {
	l, c, h := v[0], v[1], v[2]
	if math.IsNaN(h) {
		return Coordinates{l, 0, 0}
	}
	hueRadian := h * math.Pi / 180.0
	return Coordinates{l, c * math.Cos(hueRadian), c * math.Sin(hueRadian)}
}

// okxabToOkxch converts Oklab/Oklrab coordinates to Oklch/Oklrch. Near-zero
// chroma collapses the hue to NaN so that round-tripping through polar
// coordinates doesn't invent a meaningless hue for grays.
func okxabToOkxch(v Coordinates) Coordinates {
	l, a, b := v[0], v[1], v[2]
	var c, h float64
	if math.Abs(a) < hueEpsilon && math.Abs(b) < hueEpsilon {
		c, h = 0, math.NaN()
	} else {
		c = math.Hypot(a, b)
		h = math.Atan2(b, a) * 180.0 / math.Pi
	}
	if h < 0 {
		h += 360.0
	}
	return Coordinates{l, c, h}
}

const (
	okK1 = 0.206
	okK2 = 0.03
)

var okK3 = (1.0 + okK1) / (1.0 + okK2)

// oklxxToOklrxx replaces Oklab/Oklch's lightness L with the revised
// lightness Lr (Ottosson 2023). Chroma/hue or a/b pass through unchanged.
func oklxxToOklrxx(v Coordinates) Coordinates {
	l, a, b := v[0], v[1], v[2]
	k3l := okK3 * l
	lr := 0.5 * (k3l - okK1 + math.Sqrt((k3l-okK1)*(k3l-okK1)+4*okK2*k3l))
	return Coordinates{lr, a, b}
}

// oklrxxToOklxx is the algebraic inverse of oklxxToOklrxx.
func oklrxxToOklxx(v Coordinates) Coordinates {
	lr, a, b := v[0], v[1], v[2]
	l := (lr * (lr + okK1)) / (okK3 * (lr + okK2))
	return Coordinates{l, a, b}
}

// --------------------------------------------------------------------
// Oklab <-> XYZ
// https://github.com/color-js/color.js/blob/main/src/spaces/oklab.js

var oklabToOklmsMatrix = [3][3]float64{
	{1.0000000000000000, 0.3963377773761749, 0.2158037573099136},
	{1.0000000000000000, -0.1055613458156586, -0.0638541728258133},
	{1.0000000000000000, -0.0894841775298119, -1.2914855480194092},
}

var oklmsToXyzMatrix = [3][3]float64{
	{1.2268798758459243, -0.5578149944602171, 0.2813910456659647},
	{-0.0405757452148008, 1.1122868032803170, -0.0717110580655164},
	{-0.0763729366746601, -0.4214933324022432, 1.5869240198367816},
}

func oklabToXyz(v Coordinates) Coordinates {
	lms := multiply(&oklabToOklmsMatrix, v)
	lms = Coordinates{lms[0] * lms[0] * lms[0], lms[1] * lms[1] * lms[1], lms[2] * lms[2] * lms[2]}
	return multiply(&oklmsToXyzMatrix, lms)
}

var xyzToOklmsMatrix = [3][3]float64{
	{0.8190224379967030, 0.3619062600528904, -0.1288737815209879},
	{0.0329836539323885, 0.9292868615863434, 0.0361446663506424},
	{0.0481771893596242, 0.2642395317527308, 0.6335478284694309},
}

var oklmsToOklabMatrix = [3][3]float64{
	{0.2104542683093140, 0.7936177747023054, -0.0040720430116193},
	{1.9779985324311684, -2.4285922420485799, 0.4505937096174110},
	{0.0259040424655478, 0.7827717124575296, -0.8086757549230774},
}

func xyzToOklab(v Coordinates) Coordinates {
	lms := multiply(&xyzToOklmsMatrix, v)
	lms = Coordinates{math.Cbrt(lms[0]), math.Cbrt(lms[1]), math.Cbrt(lms[2])}
	return multiply(&oklmsToOklabMatrix, lms)
}

// --------------------------------------------------------------------
// Two-hop compositions through the gamma/linear and XYZ edges.

func srgbToXyz(v Coordinates) Coordinates   { return linearSrgbToXyz(rgbToLinearRGB(v)) }
func xyzToSrgb(v Coordinates) Coordinates   { return linearRGBToRGB(xyzToLinearSrgb(v)) }
func displayP3ToXyz(v Coordinates) Coordinates { return linearDisplayP3ToXyz(rgbToLinearRGB(v)) }
func xyzToDisplayP3(v Coordinates) Coordinates { return linearRGBToRGB(xyzToLinearDisplayP3(v)) }
func rec2020ToXyz(v Coordinates) Coordinates { return linearRec2020ToXyz(rec2020ToLinearRec2020(v)) }
func xyzToRec2020(v Coordinates) Coordinates { return linearRec2020ToRec2020(xyzToLinearRec2020(v)) }
func oklchToXyz(v Coordinates) Coordinates   { return oklabToXyz(okxchToOkxab(v)) }
func xyzToOklch(v Coordinates) Coordinates   { return okxabToOkxch(xyzToOklab(v)) }
func oklrabToXyz(v Coordinates) Coordinates  { return oklabToXyz(oklrxxToOklxx(v)) }
func xyzToOklrab(v Coordinates) Coordinates  { return oklxxToOklrxx(xyzToOklab(v)) }
func oklabToOklrch(v Coordinates) Coordinates { return oklxxToOklrxx(okxabToOkxch(v)) }
func oklrchToOklab(v Coordinates) Coordinates { return okxchToOkxab(oklrxxToOklxx(v)) }
func oklrabToOklch(v Coordinates) Coordinates { return okxabToOkxch(oklrxxToOklxx(v)) }
func oklchToOklrab(v Coordinates) Coordinates { return oklxxToOklrxx(okxchToOkxab(v)) }

// Three-hop: Oklrch <-> XYZ goes via Oklch.
func oklrchToXyz(v Coordinates) Coordinates { return oklchToXyz(oklrxxToOklxx(v)) }
func xyzToOklrch(v Coordinates) Coordinates { return oklxxToOklrxx(xyzToOklch(v)) }

// normalize finalizes coordinates for a space: in a polar space, non-finite
// hues and the hue of a color with chroma below hueEpsilon collapse to NaN,
// and other hues wrap into [0,360).
func normalize(space Space, v Coordinates) Coordinates {
	if !space.IsPolar() {
		return v
	}
	l, c, h := v[0], v[1], v[2]
	if c < hueEpsilon || math.IsNaN(h) || math.IsInf(h, 0) {
		return Coordinates{l, c, math.NaN()}
	}
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	return Coordinates{l, c, h}
}

// convert transforms coordinates from one space to another. Pairs joined by
// a direct edge (gamma/linear twins, the Ok-family edges) convert directly;
// every other pair goes through Xyz, with each RGB-like space reaching Xyz
// via its own linear variant and the Ok family via Oklab.
// It never fails: non-finite or out-of-gamut coordinates pass through
// unchanged by the arithmetic, to be handled by gamut policies elsewhere.
func convert(from, to Space, coordinates Coordinates) Coordinates {
	coordinates = normalize(from, coordinates)
	if from == to {
		return coordinates
	}

	switch {
	case (from == SrgbSpace && to == LinearSrgb) || (from == DisplayP3 && to == LinearDisplayP3):
		return rgbToLinearRGB(coordinates)
	case (from == LinearSrgb && to == SrgbSpace) || (from == LinearDisplayP3 && to == DisplayP3):
		return linearRGBToRGB(coordinates)
	case from == Rec2020 && to == LinearRec2020:
		return rec2020ToLinearRec2020(coordinates)
	case from == LinearRec2020 && to == Rec2020:
		return linearRec2020ToRec2020(coordinates)
	case (from == Oklch && to == Oklab) || (from == Oklrch && to == Oklrab):
		return okxchToOkxab(coordinates)
	case (from == Oklab && to == Oklch) || (from == Oklrab && to == Oklrch):
		return okxabToOkxch(coordinates)
	case (from == Oklab && to == Oklrab) || (from == Oklch && to == Oklrch):
		return oklxxToOklrxx(coordinates)
	case (from == Oklrab && to == Oklab) || (from == Oklrch && to == Oklch):
		return oklrxxToOklxx(coordinates)
	case from == Oklrch && to == Oklab:
		return oklrchToOklab(coordinates)
	case from == Oklch && to == Oklrab:
		return oklchToOklrab(coordinates)
	case from == Oklab && to == Oklrch:
		return oklabToOklrch(coordinates)
	case from == Oklrab && to == Oklch:
		return oklrabToOklch(coordinates)
	}

	var intermediate Coordinates
	switch from {
	case SrgbSpace:
		intermediate = srgbToXyz(coordinates)
	case LinearSrgb:
		intermediate = linearSrgbToXyz(coordinates)
	case DisplayP3:
		intermediate = displayP3ToXyz(coordinates)
	case LinearDisplayP3:
		intermediate = linearDisplayP3ToXyz(coordinates)
	case Rec2020:
		intermediate = rec2020ToXyz(coordinates)
	case LinearRec2020:
		intermediate = linearRec2020ToXyz(coordinates)
	case Oklch:
		intermediate = oklchToXyz(coordinates)
	case Oklab:
		intermediate = oklabToXyz(coordinates)
	case Oklrch:
		intermediate = oklrchToXyz(coordinates)
	case Oklrab:
		intermediate = oklrabToXyz(coordinates)
	case Xyz:
		intermediate = coordinates
	}

	switch to {
	case SrgbSpace:
		return xyzToSrgb(intermediate)
	case LinearSrgb:
		return xyzToLinearSrgb(intermediate)
	case DisplayP3:
		return xyzToDisplayP3(intermediate)
	case LinearDisplayP3:
		return xyzToLinearDisplayP3(intermediate)
	case Rec2020:
		return xyzToRec2020(intermediate)
	case LinearRec2020:
		return xyzToLinearRec2020(intermediate)
	case Oklch:
		return xyzToOklch(intermediate)
	case Oklab:
		return xyzToOklab(intermediate)
	case Oklrch:
		return xyzToOklrch(intermediate)
	case Oklrab:
		return xyzToOklrab(intermediate)
	case Xyz:
		return intermediate
	}
	return intermediate
}

// from24Bit converts 24-bit sRGB bytes to sRGB float coordinates.
func from24Bit(r, g, b uint8) Coordinates {
	return Coordinates{float64(r) / 255.0, float64(g) / 255.0, float64(b) / 255.0}
}

// to24Bit scales coordinates to bytes, clamping the result to 0..=255. It
// does not convert between spaces, so the bytes are sRGB only when space is
// SrgbSpace. It assumes an in-gamut RGB color but never panics on
// out-of-gamut input.
func to24Bit(space Space, coordinates Coordinates) [3]uint8 {
	v := normalize(space, coordinates)
	toByte := func(x float64) uint8 {
		x = math.RoundToEven(x * 255.0)
		if x <= 0 {
			return 0
		}
		if x >= 255 {
			return 255
		}
		return uint8(x)
	}
	return [3]uint8{toByte(v[0]), toByte(v[1]), toByte(v[2])}
}
