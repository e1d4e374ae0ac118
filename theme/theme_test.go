package theme

import (
	"testing"

	"github.com/apparebit/prettypretty/color"
	"github.com/apparebit/prettypretty/term"
)

func TestVGALayerAndAnsiAccessors(t *testing.T) {
	vga := VGA()

	fg := vga.Layer(term.Foreground)
	if fg.To24Bit() != [3]uint8{0, 0, 0} {
		t.Errorf("Layer(Foreground) = %v, want black", fg.To24Bit())
	}

	bg := vga.Layer(term.Background)
	if bg.To24Bit() != [3]uint8{255, 255, 255} {
		t.Errorf("Layer(Background) = %v, want white", bg.To24Bit())
	}

	red := vga.Ansi(term.Red)
	want := color.Srgb(0.666666666666667, 0, 0).To24Bit()
	if red.To24Bit() != want {
		t.Errorf("Ansi(Red) = %v, want %v", red.To24Bit(), want)
	}
}

func TestThemeEntryFromAnsiColor(t *testing.T) {
	if got := ThemeEntryFromAnsiColor(term.Black); got != BlackEntry {
		t.Errorf("ThemeEntryFromAnsiColor(Black) = %v, want BlackEntry", got)
	}
	if got := ThemeEntryFromAnsiColor(term.BrightWhite); got != BrightWhiteEntry {
		t.Errorf("ThemeEntryFromAnsiColor(BrightWhite) = %v, want BrightWhiteEntry", got)
	}
}

func TestNewRejectsWrongLength(t *testing.T) {
	_, err := New(make([]color.Color, 10))
	if err == nil {
		t.Error("expected BadThemeLengthError for 10 colors")
	}
}

func TestNewAcceptsEighteenColors(t *testing.T) {
	colors := VGA().Colors()
	built, err := New(colors)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if built.Layer(term.Foreground) != VGA().Layer(term.Foreground) {
		t.Error("round-tripped theme doesn't match original")
	}
}

func TestGenerateProducesValidTheme(t *testing.T) {
	th, err := Generate(1)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	for i := 0; i < 18; i++ {
		c, err := th.At(i)
		if err != nil {
			t.Fatalf("At(%d) error: %v", i, err)
		}
		if !c.InGamut() {
			t.Errorf("entry %d not in gamut: %v", i, c)
		}
	}
}

func TestGenerateIsDeterministicForSameSeed(t *testing.T) {
	first, err := Generate(42)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	second, err := Generate(42)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	for i := 0; i < 18; i++ {
		a, _ := first.At(i)
		b, _ := second.At(i)
		if a != b {
			t.Errorf("entry %d differs across identical seeds: %v vs %v", i, a, b)
		}
	}
}

func TestGenerateDiffersForDifferentSeeds(t *testing.T) {
	first, err := Generate(1)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	second, err := Generate(2)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	same := true
	for i := 0; i < 18; i++ {
		a, _ := first.At(i)
		b, _ := second.At(i)
		if a != b {
			same = false
			break
		}
	}
	if same {
		t.Error("Generate(1) and Generate(2) produced identical themes")
	}
}
