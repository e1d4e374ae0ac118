package term

// SGRParameters returns the Select Graphic Rendition parameter integers
// for rendering tc on the given layer. The caller is responsible for
// joining them with ';' and wrapping them in the "ESC [ ... m" control
// sequence; this package performs no control-sequence I/O.
func SGRParameters(tc TerminalColor, layer Layer) []int {
	base := layer.Offset()

	switch tc.kind {
	case KindDefault:
		return []int{39 + base}

	case KindAnsi:
		a := tc.ansi
		if !a.IsBright() {
			return []int{30 + base + int(a.To8Bit())}
		}
		if layer == Foreground {
			return []int{90 + int(a.NonBright().To8Bit())}
		}
		return []int{100 + int(a.NonBright().To8Bit())}

	case KindRgb6:
		return []int{38 + base, 5, int(tc.rgb6.To8Bit())}

	case KindGray:
		return []int{38 + base, 5, int(tc.gray.To8Bit())}

	case KindRgb256:
		r, g, b := tc.rgb256.Coordinates()
		return []int{38 + base, 2, int(r), int(g), int(b)}

	default:
		return nil
	}
}
