package sampler

import (
	"testing"

	"github.com/apparebit/prettypretty/color"
	"github.com/apparebit/prettypretty/term"
	"github.com/apparebit/prettypretty/theme"
)

func TestToClosestAnsiRed(t *testing.T) {
	s := New(theme.VGA(), color.Revised)
	got := s.ToClosestAnsi(color.Srgb(1, 0, 0))
	if got != term.Red {
		t.Errorf("ToClosestAnsi(red) = %v, want Red", got)
	}
}

func TestToClosestAnsiIsExhaustiveArgmin(t *testing.T) {
	s := New(theme.VGA(), color.Revised)
	probe := color.Srgb(0.4, 0.8, 0.1)
	got := s.ToClosestAnsi(probe)

	origin := probe.To(color.Revised.CartesianSpace())
	bestDistance := color.Distance(origin, s.ansiCartesian[got], color.Revised)
	for i := 0; i < 16; i++ {
		a, _ := term.AnsiColorFromU8(uint8(i))
		d := color.Distance(origin, s.ansiCartesian[i], color.Revised)
		if d < bestDistance-1e-12 {
			t.Errorf("AnsiColor(%v) is closer (%v) than reported closest %v (%v)", a, d, got, bestDistance)
		}
	}
}

func TestAdjustFullIsIdentity(t *testing.T) {
	s := New(theme.VGA(), color.Revised)
	tc := term.From24Bit(10, 20, 30)
	got, ok := s.Adjust(tc, term.Full)
	if !ok || got != tc {
		t.Errorf("Adjust(tc, Full) = (%v, %v), want (%v, true)", got, ok, tc)
	}
}

func TestAdjustNoColorStripsEverything(t *testing.T) {
	s := New(theme.VGA(), color.Revised)
	for _, tc := range []term.TerminalColor{
		term.Default(), term.FromAnsi(term.Red), term.From24Bit(1, 2, 3),
	} {
		_, ok := s.Adjust(tc, term.NoColor)
		if ok {
			t.Errorf("Adjust(%v, NoColor) ok = true, want false", tc)
		}
	}
}

func TestAdjustAnsiDowngradesRgb256(t *testing.T) {
	s := New(theme.VGA(), color.Revised)
	tc := term.From24Bit(255, 0, 0)
	got, ok := s.Adjust(tc, term.AnsiFidelity)
	if !ok {
		t.Fatal("Adjust returned ok=false")
	}
	a, isAnsi := got.Ansi()
	if !isAnsi {
		t.Fatalf("Adjust(rgb256, Ansi) = %v, want Ansi variant", got)
	}
	if a != term.Red && a != term.BrightRed {
		t.Errorf("Adjust(bright red, Ansi) = %v, want Red or BrightRed", a)
	}
}

func TestToHighRes8BitMatchesCubeAndGrayRamps(t *testing.T) {
	s := New(theme.VGA(), color.Revised)

	// Cube corner (5,5,5) -> index 231 -> full white.
	white := s.ToHighRes8Bit(231)
	if white.To24Bit() != [3]uint8{255, 255, 255} {
		t.Errorf("ToHighRes8Bit(231) = %v, want white", white.To24Bit())
	}

	// Gray ramp step 0 -> index 232 -> (8/255).
	gray0 := s.ToHighRes8Bit(232)
	if got := gray0.To24Bit(); got != [3]uint8{8, 8, 8} {
		t.Errorf("ToHighRes8Bit(232) = %v, want [8 8 8]", got)
	}
}

func TestToHighResResolvesDefaultToLayer(t *testing.T) {
	s := New(theme.VGA(), color.Revised)
	fg := s.ToHighRes(term.Default(), term.Foreground)
	if fg.To24Bit() != [3]uint8{0, 0, 0} {
		t.Errorf("ToHighRes(Default, Foreground) = %v, want black", fg.To24Bit())
	}
}

func TestTryHighResFalseForDefault(t *testing.T) {
	s := New(theme.VGA(), color.Revised)
	if _, ok := s.TryHighRes(term.Default()); ok {
		t.Error("TryHighRes(Default) ok = true, want false")
	}
}
