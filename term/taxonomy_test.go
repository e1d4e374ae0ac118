package term

import "testing"

func TestEmbeddedRgbEncoding(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		index   uint8
	}{
		{0, 0, 0, 16},
		{5, 5, 5, 231},
		{1, 2, 3, 16 + 36 + 12 + 3},
	}
	for _, tc := range tests {
		e, err := NewEmbeddedRgb(tc.r, tc.g, tc.b)
		if err != nil {
			t.Fatalf("NewEmbeddedRgb(%d,%d,%d) error: %v", tc.r, tc.g, tc.b, err)
		}
		if got := e.To8Bit(); got != tc.index {
			t.Errorf("To8Bit() = %d, want %d", got, tc.index)
		}
	}
}

func TestEmbeddedRgbOutOfRange(t *testing.T) {
	if _, err := NewEmbeddedRgb(6, 0, 0); err == nil {
		t.Error("expected error for coordinate 6")
	}
}

func TestGrayGradientEncoding(t *testing.T) {
	g, err := NewGrayGradient(0)
	if err != nil {
		t.Fatalf("NewGrayGradient(0) error: %v", err)
	}
	if got := g.To8Bit(); got != 232 {
		t.Errorf("To8Bit() = %d, want 232", got)
	}

	g23, err := NewGrayGradient(23)
	if err != nil {
		t.Fatalf("NewGrayGradient(23) error: %v", err)
	}
	if got := g23.To8Bit(); got != 255 {
		t.Errorf("To8Bit() = %d, want 255", got)
	}
}

func TestGrayGradientOutOfRange(t *testing.T) {
	if _, err := NewGrayGradient(24); err == nil {
		t.Error("expected error for level 24")
	}
}

// TestFrom8BitRoundTrip verifies the spec invariant
// TerminalColor.from_8bit(i).to_8bit() = i for every i in 0..=255.
func TestFrom8BitRoundTrip(t *testing.T) {
	for i := 0; i <= 255; i++ {
		tc := From8Bit(uint8(i))
		got, ok := tc.To8Bit()
		if !ok {
			t.Fatalf("To8Bit() for index %d returned ok=false", i)
		}
		if int(got) != i {
			t.Errorf("From8Bit(%d).To8Bit() = %d, want %d", i, got, i)
		}
	}
}

func TestFrom8BitDispatchesToExpectedKind(t *testing.T) {
	tests := []struct {
		index int
		kind   Kind
	}{
		{0, KindAnsi}, {15, KindAnsi},
		{16, KindRgb6}, {231, KindRgb6},
		{232, KindGray}, {255, KindGray},
	}
	for _, tc := range tests {
		got := From8Bit(uint8(tc.index)).Kind()
		if got != tc.kind {
			t.Errorf("From8Bit(%d).Kind() = %v, want %v", tc.index, got, tc.kind)
		}
	}
}

func TestAnsiColorNonBrightAndBright(t *testing.T) {
	if got := BrightRed.NonBright(); got != Red {
		t.Errorf("BrightRed.NonBright() = %v, want Red", got)
	}
	if got := Red.NonBright(); got != Red {
		t.Errorf("Red.NonBright() = %v, want Red (identity)", got)
	}
	if got := Red.Bright(); got != BrightRed {
		t.Errorf("Red.Bright() = %v, want BrightRed", got)
	}
	if got := BrightRed.Bright(); got != BrightRed {
		t.Errorf("BrightRed.Bright() = %v, want BrightRed (identity)", got)
	}
}

func TestFidelityOrdering(t *testing.T) {
	if !(Plain < NoColor && NoColor < AnsiFidelity && AnsiFidelity < EightBit && EightBit < Full) {
		t.Error("fidelity values are not totally ordered as specified")
	}
}

func TestFidelityOf(t *testing.T) {
	tests := []struct {
		tc   TerminalColor
		want Fidelity
	}{
		{Default(), NoColor},
		{FromAnsi(Red), AnsiFidelity},
		{FromRgb6(mustRgb6(t, 1, 2, 3)), EightBit},
		{FromGray(mustGray(t, 5)), EightBit},
		{From24Bit(10, 20, 30), Full},
	}
	for _, tc := range tests {
		if got := FidelityOf(tc.tc); got != tc.want {
			t.Errorf("FidelityOf(%v) = %v, want %v", tc.tc, got, tc.want)
		}
	}
}

func mustRgb6(t *testing.T, r, g, b uint8) EmbeddedRgb {
	t.Helper()
	e, err := NewEmbeddedRgb(r, g, b)
	if err != nil {
		t.Fatalf("NewEmbeddedRgb error: %v", err)
	}
	return e
}

func mustGray(t *testing.T, level uint8) GrayGradient {
	t.Helper()
	g, err := NewGrayGradient(level)
	if err != nil {
		t.Fatalf("NewGrayGradient error: %v", err)
	}
	return g
}
