package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// cssSpaceTags maps the lowercase CSS `color()` space tag to its Space,
// grounded on original_source/src/core/string.rs's COLOR_SPACES table.
var cssSpaceTags = map[string]Space{
	"srgb":                SrgbSpace,
	"linear-srgb":         LinearSrgb,
	"display-p3":          DisplayP3,
	"--linear-display-p3": LinearDisplayP3,
	"rec2020":             Rec2020,
	"--linear-rec2020":    LinearRec2020,
	"xyz":                 Xyz,
	"xyz-d65":             Xyz,
	"--oklrab":            Oklrab,
	"--oklrch":            Oklrch,
}

// Parse accepts `#rgb`, `#rrggbb`, and the CSS `color()`/`oklab()`/
// `oklch()` functional forms this package emits via String/ToHexFormat.
func Parse(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "#") {
		return parseHashed(trimmed)
	}
	if strings.HasPrefix(trimmed, "oklab(") {
		return parseFunctional(trimmed, "oklab(", Oklab)
	}
	if strings.HasPrefix(trimmed, "oklch(") {
		return parseFunctional(trimmed, "oklch(", Oklch)
	}
	if strings.HasPrefix(trimmed, "color(") {
		return parseCSSColor(trimmed)
	}
	return Color{}, &ParseError{Input: s, Why: "unrecognized color syntax"}
}

// parseHashed parses `#rgb` and `#rrggbb`, expanding each single hex
// digit into a doubled byte (`#1` -> 0x11), matching string.rs's
// parse_hashed.
func parseHashed(s string) (Color, error) {
	digits := s[1:]
	var r, g, b uint8
	switch len(digits) {
	case 3:
		rd, err := parseNibble(digits[0])
		if err != nil {
			return Color{}, &ParseError{Input: s, Why: "invalid hex digit"}
		}
		gd, err := parseNibble(digits[1])
		if err != nil {
			return Color{}, &ParseError{Input: s, Why: "invalid hex digit"}
		}
		bd, err := parseNibble(digits[2])
		if err != nil {
			return Color{}, &ParseError{Input: s, Why: "invalid hex digit"}
		}
		r, g, b = rd*16+rd, gd*16+gd, bd*16+bd
	case 6:
		value, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return Color{}, &ParseError{Input: s, Why: "invalid hex digits"}
		}
		r = uint8((value >> 16) & 0xff)
		g = uint8((value >> 8) & 0xff)
		b = uint8(value & 0xff)
	default:
		return Color{}, &ParseError{Input: s, Why: "expected #rgb or #rrggbb"}
	}
	return From24Bit(r, g, b), nil
}

func parseNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("not a hex digit")
	}
}

// parseFunctional parses `oklab(L a b)` / `oklch(L C h)`, where the hue
// coordinate (for oklch) may be the literal token "none" for NaN.
func parseFunctional(s, prefix string, space Space) (Color, error) {
	if !strings.HasSuffix(s, ")") {
		return Color{}, &ParseError{Input: s, Why: "missing closing parenthesis"}
	}
	body := s[len(prefix) : len(s)-1]
	fields := strings.Fields(body)
	if len(fields) != 3 {
		return Color{}, &ParseError{Input: s, Why: "expected exactly three coordinates"}
	}
	coords, err := parseCoordinates(fields)
	if err != nil {
		return Color{}, &ParseError{Input: s, Why: err.Error()}
	}
	return New(space, coords[0], coords[1], coords[2]), nil
}

// parseCSSColor parses `color(<space-tag> c0 c1 c2)`.
func parseCSSColor(s string) (Color, error) {
	if !strings.HasSuffix(s, ")") {
		return Color{}, &ParseError{Input: s, Why: "missing closing parenthesis"}
	}
	body := s[len("color(") : len(s)-1]
	fields := strings.Fields(body)
	if len(fields) != 4 {
		return Color{}, &ParseError{Input: s, Why: "expected a space tag and three coordinates"}
	}
	space, ok := cssSpaceTags[fields[0]]
	if !ok {
		return Color{}, &ParseError{Input: s, Why: "unrecognized color space tag " + fields[0]}
	}
	coords, err := parseCoordinates(fields[1:])
	if err != nil {
		return Color{}, &ParseError{Input: s, Why: err.Error()}
	}
	return New(space, coords[0], coords[1], coords[2]), nil
}

func parseCoordinates(fields []string) (Coordinates, error) {
	var out Coordinates
	for i, f := range fields {
		if f == "none" {
			out[i] = math.NaN()
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return out, fmt.Errorf("invalid coordinate %q", f)
		}
		out[i] = v
	}
	return out, nil
}

// hexFormat renders 24-bit bytes as #RRGGBB.
func hexFormat(rgb [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}

// format renders a Color using #RRGGBB for in-gamut sRGB, oklab()/oklch()
// for the Ok family, and color(<space> ...) otherwise. The hue coordinate
// of a polar space is rounded to two fewer decimal places than L/C
// (degrees span two more orders of magnitude), and NaN renders as "none",
// following string.rs's format().
func format(c Color) string {
	if c.space == SrgbSpace && c.InGamut() {
		return hexFormat(c.To24Bit())
	}

	coords := c.coordinates
	fmtCoord := func(v float64, isHue bool) string {
		if math.IsNaN(v) {
			return "none"
		}
		precision := 6
		if isHue {
			precision = 4
		}
		return strconv.FormatFloat(roundTo(v, precision), 'g', -1, 64)
	}

	isPolar := c.space.IsPolar()
	c0 := fmtCoord(coords[0], false)
	c1 := fmtCoord(coords[1], false)
	c2 := fmtCoord(coords[2], isPolar)

	switch c.space {
	case Oklab, Oklrab:
		if c.space == Oklab {
			return fmt.Sprintf("oklab(%s %s %s)", c0, c1, c2)
		}
		return fmt.Sprintf("color(--oklrab %s %s %s)", c0, c1, c2)
	case Oklch, Oklrch:
		if c.space == Oklch {
			return fmt.Sprintf("oklch(%s %s %s)", c0, c1, c2)
		}
		return fmt.Sprintf("color(--oklrch %s %s %s)", c0, c1, c2)
	default:
		return fmt.Sprintf("color(%s %s %s %s)", c.space.String(), c0, c1, c2)
	}
}

// roundTo rounds v to the given number of significant decimal digits
// after the point, used to suppress float noise before formatting.
func roundTo(v float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(v*scale) / scale
}
