package tcellcolor

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/apparebit/prettypretty/color"
	"github.com/apparebit/prettypretty/term"
)

func TestToTcellColorDefault(t *testing.T) {
	if got := ToTcellColor(term.Default()); got != tcell.ColorDefault {
		t.Errorf("ToTcellColor(Default) = %v, want ColorDefault", got)
	}
}

func TestToTcellColorAnsiUsesPaletteIndex(t *testing.T) {
	got := ToTcellColor(term.FromAnsi(term.Red))
	want := tcell.PaletteColor(1)
	if got != want {
		t.Errorf("ToTcellColor(Red) = %v, want %v", got, want)
	}
}

func TestToTcellColorRgb256UsesRGB(t *testing.T) {
	got := ToTcellColor(term.From24Bit(10, 20, 30))
	want := tcell.NewRGBColor(10, 20, 30)
	if got != want {
		t.Errorf("ToTcellColor(rgb256) = %v, want %v", got, want)
	}
}

func TestFromColorRoundsToByte(t *testing.T) {
	got := FromColor(color.Srgb(1, 0, 0))
	want := tcell.NewRGBColor(255, 0, 0)
	if got != want {
		t.Errorf("FromColor(red) = %v, want %v", got, want)
	}
}

func TestStyleChainsForegroundAndBackground(t *testing.T) {
	style := Style(term.FromAnsi(term.Red), term.Default())
	want := tcell.StyleDefault.Foreground(tcell.PaletteColor(1)).Background(tcell.ColorDefault)
	if style != want {
		t.Errorf("Style(Red, Default) = %v, want %v", style, want)
	}
}
