package term

import "fmt"

// AnsiColor is one of the 16 named terminal color slots (8 base colors
// plus their 8 bright twins). ANSI colors have no intrinsic color value;
// a Theme resolves them to concrete high-resolution colors.
type AnsiColor uint8

const (
	Black AnsiColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var ansiColorNames = [...]string{
	Black: "black", Red: "red", Green: "green", Yellow: "yellow",
	Blue: "blue", Magenta: "magenta", Cyan: "cyan", White: "white",
	BrightBlack: "bright-black", BrightRed: "bright-red", BrightGreen: "bright-green",
	BrightYellow: "bright-yellow", BrightBlue: "bright-blue", BrightMagenta: "bright-magenta",
	BrightCyan: "bright-cyan", BrightWhite: "bright-white",
}

func (a AnsiColor) String() string {
	if int(a) >= len(ansiColorNames) {
		return fmt.Sprintf("AnsiColor(%d)", uint8(a))
	}
	return ansiColorNames[a]
}

// AnsiColorFromU8 converts an 8-bit index (0..=15) to an AnsiColor.
func AnsiColorFromU8(v uint8) (AnsiColor, error) {
	if v > 15 {
		return 0, &OutOfRangeError{Value: int(v), Min: 0, Max: 15}
	}
	return AnsiColor(v), nil
}

// To8Bit returns the 8-bit terminal color index (0..=15) for a.
func (a AnsiColor) To8Bit() uint8 { return uint8(a) }

// IsBright reports whether a is one of the eight bright slots.
func (a AnsiColor) IsBright() bool { return a >= BrightBlack }

// NonBright maps a bright slot to its non-bright twin; it is the identity
// on already-non-bright colors.
func (a AnsiColor) NonBright() AnsiColor {
	if a.IsBright() {
		return a - BrightBlack
	}
	return a
}

// Bright maps a non-bright slot to its bright twin; it is the identity on
// already-bright colors.
func (a AnsiColor) Bright() AnsiColor {
	if a.IsBright() {
		return a
	}
	return a + BrightBlack
}

// --------------------------------------------------------------------

// EmbeddedRgb is a color in the terminal's 6x6x6 RGB cube (8-bit indices
// 16..=231), with each coordinate ranging 0..=5.
type EmbeddedRgb struct {
	r, g, b uint8
}

// NewEmbeddedRgb validates that each coordinate is in 0..=5.
func NewEmbeddedRgb(r, g, b uint8) (EmbeddedRgb, error) {
	for _, c := range [3]uint8{r, g, b} {
		if c > 5 {
			return EmbeddedRgb{}, &OutOfRangeError{Value: int(c), Min: 0, Max: 5}
		}
	}
	return EmbeddedRgb{r: r, g: g, b: b}, nil
}

// Coordinates returns the cube coordinates, each in 0..=5.
func (e EmbeddedRgb) Coordinates() (r, g, b uint8) { return e.r, e.g, e.b }

// To8Bit returns the 8-bit terminal color index, 16 + 36r + 6g + b.
func (e EmbeddedRgb) To8Bit() uint8 {
	return 16 + 36*e.r + 6*e.g + e.b
}

// EmbeddedRgbFromU8 decomposes an 8-bit index in 16..=231 into its cube
// coordinates.
func EmbeddedRgbFromU8(v uint8) (EmbeddedRgb, error) {
	if v < 16 || v > 231 {
		return EmbeddedRgb{}, &OutOfRangeError{Value: int(v), Min: 16, Max: 231}
	}
	n := v - 16
	r := n / 36
	n -= r * 36
	g := n / 6
	b := n - g*6
	return EmbeddedRgb{r: r, g: g, b: b}, nil
}

// --------------------------------------------------------------------

// GrayGradient is a level on the terminal's 24-step gray ramp (8-bit
// indices 232..=255).
type GrayGradient uint8

// NewGrayGradient validates that level is in 0..=23.
func NewGrayGradient(level uint8) (GrayGradient, error) {
	if level > 23 {
		return 0, &OutOfRangeError{Value: int(level), Min: 0, Max: 23}
	}
	return GrayGradient(level), nil
}

// Level returns the gray ramp step, 0..=23.
func (g GrayGradient) Level() uint8 { return uint8(g) }

// To8Bit returns the 8-bit terminal color index, 232 + level.
func (g GrayGradient) To8Bit() uint8 { return 232 + uint8(g) }

// GrayGradientFromU8 converts an 8-bit index in 232..=255 to a
// GrayGradient.
func GrayGradientFromU8(v uint8) (GrayGradient, error) {
	if v < 232 {
		return 0, &OutOfRangeError{Value: int(v), Min: 232, Max: 255}
	}
	return GrayGradient(v - 232), nil
}

// --------------------------------------------------------------------

// TrueColor is a 24-bit RGB color, the terminal's highest-fidelity
// representation.
type TrueColor struct {
	r, g, b uint8
}

// NewTrueColor constructs a TrueColor from three bytes.
func NewTrueColor(r, g, b uint8) TrueColor { return TrueColor{r: r, g: g, b: b} }

// Coordinates returns the three RGB bytes.
func (t TrueColor) Coordinates() (r, g, b uint8) { return t.r, t.g, t.b }

// --------------------------------------------------------------------

// Kind identifies which variant of the terminal-color sum a TerminalColor
// holds.
type Kind uint8

const (
	KindDefault Kind = iota
	KindAnsi
	KindRgb6
	KindGray
	KindRgb256
)

// TerminalColor is a closed tagged sum of the terminal's five color
// representations: Default (the terminal's ambient color for a layer),
// Ansi, Rgb6 (embedded cube), Gray, and Rgb256 (true color).
type TerminalColor struct {
	kind   Kind
	ansi   AnsiColor
	rgb6   EmbeddedRgb
	gray   GrayGradient
	rgb256 TrueColor
}

// Default returns the terminal-color variant carrying no payload.
func Default() TerminalColor { return TerminalColor{kind: KindDefault} }

// FromAnsi wraps an AnsiColor as a TerminalColor.
func FromAnsi(a AnsiColor) TerminalColor { return TerminalColor{kind: KindAnsi, ansi: a} }

// FromRgb6 wraps an EmbeddedRgb as a TerminalColor.
func FromRgb6(e EmbeddedRgb) TerminalColor { return TerminalColor{kind: KindRgb6, rgb6: e} }

// FromGray wraps a GrayGradient as a TerminalColor.
func FromGray(g GrayGradient) TerminalColor { return TerminalColor{kind: KindGray, gray: g} }

// FromRgb256 wraps a TrueColor as a TerminalColor.
func FromRgb256(t TrueColor) TerminalColor { return TerminalColor{kind: KindRgb256, rgb256: t} }

// From24Bit constructs the Rgb256 variant directly from three bytes.
func From24Bit(r, g, b uint8) TerminalColor { return FromRgb256(NewTrueColor(r, g, b)) }

// From8Bit dispatches an 8-bit terminal color index to the appropriate
// variant: 0..=15 -> Ansi, 16..=231 -> Rgb6, 232..=255 -> Gray.
func From8Bit(v uint8) TerminalColor {
	switch {
	case v <= 15:
		a, _ := AnsiColorFromU8(v)
		return FromAnsi(a)
	case v <= 231:
		e, _ := EmbeddedRgbFromU8(v)
		return FromRgb6(e)
	default:
		g, _ := GrayGradientFromU8(v)
		return FromGray(g)
	}
}

// Kind returns which variant tc holds.
func (tc TerminalColor) Kind() Kind { return tc.kind }

// IsDefault reports whether tc is the Default variant.
func (tc TerminalColor) IsDefault() bool { return tc.kind == KindDefault }

// Ansi returns the AnsiColor payload and whether tc holds one.
func (tc TerminalColor) Ansi() (AnsiColor, bool) { return tc.ansi, tc.kind == KindAnsi }

// Rgb6 returns the EmbeddedRgb payload and whether tc holds one.
func (tc TerminalColor) Rgb6() (EmbeddedRgb, bool) { return tc.rgb6, tc.kind == KindRgb6 }

// Gray returns the GrayGradient payload and whether tc holds one.
func (tc TerminalColor) Gray() (GrayGradient, bool) { return tc.gray, tc.kind == KindGray }

// Rgb256 returns the TrueColor payload and whether tc holds one.
func (tc TerminalColor) Rgb256() (TrueColor, bool) { return tc.rgb256, tc.kind == KindRgb256 }

// To8Bit returns the 8-bit terminal color index for the Ansi/Rgb6/Gray
// variants, and false for Default/Rgb256, which have no 8-bit index.
func (tc TerminalColor) To8Bit() (uint8, bool) {
	switch tc.kind {
	case KindAnsi:
		return tc.ansi.To8Bit(), true
	case KindRgb6:
		return tc.rgb6.To8Bit(), true
	case KindGray:
		return tc.gray.To8Bit(), true
	default:
		return 0, false
	}
}

// --------------------------------------------------------------------

// Layer is the SGR target: foreground text or background fill.
type Layer uint8

const (
	Foreground Layer = iota
	Background
)

// Offset returns the SGR base offset for the layer: 0 for Foreground, 10
// for Background.
func (l Layer) Offset() int {
	if l == Background {
		return 10
	}
	return 0
}

// --------------------------------------------------------------------

// Fidelity is the totally-ordered maximum color expressiveness a target
// terminal supports: Plain < NoColor < Ansi < EightBit < Full.
type Fidelity uint8

const (
	Plain Fidelity = iota
	NoColor
	AnsiFidelity
	EightBit
	Full
)

// FidelityOf derives the fidelity a terminal color requires: Default and
// any color need at least NoColor; Ansi needs Ansi; Rgb6/Gray need
// EightBit; Rgb256 needs Full.
func FidelityOf(tc TerminalColor) Fidelity {
	switch tc.kind {
	case KindDefault:
		return NoColor
	case KindAnsi:
		return AnsiFidelity
	case KindRgb6, KindGray:
		return EightBit
	case KindRgb256:
		return Full
	default:
		return NoColor
	}
}
