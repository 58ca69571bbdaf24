package canvas

import (
	"image/color"
	"math"
	"testing"
)

func absf(x float64) float64 {
	return math.Abs(x)
}

func colorsClose(a, b RGBA, tol float64) bool {
	return absf(a.R-b.R) <= tol && absf(a.G-b.G) <= tol &&
		absf(a.B-b.B) <= tol && absf(a.A-b.A) <= tol
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"RGB short", "f80", RGBA{R: 1, G: 136.0 / 255, B: 0, A: 1}},
		{"RGB short with hash", "#f80", RGBA{R: 1, G: 136.0 / 255, B: 0, A: 1}},
		{"RGBA short", "f00f", RGBA{R: 1, G: 0, B: 0, A: 1}},
		{"RRGGBB", "ff8000", RGBA{R: 1, G: 128.0 / 255, B: 0, A: 1}},
		{"RRGGBB with hash", "#0000ff", RGBA{R: 0, G: 0, B: 1, A: 1}},
		{"RRGGBBAA", "ff000080", RGBA{R: 1, G: 0, B: 0, A: 128.0 / 255}},
		{"uppercase", "#FF8000", RGBA{R: 1, G: 128.0 / 255, B: 0, A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.hex)
			if !colorsClose(got, tt.want, 1e-9) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexInvalid(t *testing.T) {
	// Unparseable lengths fall back to opaque black.
	for _, hex := range []string{"", "ff", "fffff", "fffffffff"} {
		got := Hex(hex)
		if !colorsClose(got, Black, 1e-9) {
			t.Errorf("Hex(%q) = %+v, want opaque black", hex, got)
		}
	}
}

func TestPremultiplyRoundTrip(t *testing.T) {
	c := RGBA{R: 0.8, G: 0.4, B: 0.2, A: 0.5}
	got := c.Premultiply().Unpremultiply()
	if !colorsClose(got, c, 1e-9) {
		t.Errorf("premultiply round trip: got %+v, want %+v", got, c)
	}
}

func TestUnpremultiplyZeroAlpha(t *testing.T) {
	c := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 0}
	got := c.Premultiply().Unpremultiply()
	if got != (RGBA{}) {
		t.Errorf("zero alpha should collapse to transparent black, got %+v", got)
	}
}

func TestFromColor(t *testing.T) {
	// Premultiplied color.RGBA is converted back to straight alpha.
	in := color.RGBA{R: 128, G: 0, B: 0, A: 128}
	got := FromColor(in)
	if absf(got.R-1.0) > 0.01 || absf(got.A-0.5) > 0.01 {
		t.Errorf("FromColor(%+v) = %+v, want R≈1 A≈0.5", in, got)
	}

	// NRGBA round trip through Color().
	c := RGBA{R: 1, G: 0.5, B: 0, A: 1}
	back := FromColor(c.Color())
	if !colorsClose(back, c, 0.01) {
		t.Errorf("Color() round trip: got %+v, want %+v", back, c)
	}
}

func TestFromColorTransparent(t *testing.T) {
	got := FromColor(color.RGBA{})
	if got != (RGBA{}) {
		t.Errorf("transparent input should map to zero value, got %+v", got)
	}
}

func TestLerp(t *testing.T) {
	a := Black
	b := White
	mid := a.Lerp(b, 0.5)
	want := RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1}
	if !colorsClose(mid, want, 1e-9) {
		t.Errorf("Lerp midpoint = %+v, want %+v", mid, want)
	}
	if a.Lerp(b, 0) != a || a.Lerp(b, 1) != b {
		t.Error("Lerp endpoints should return the inputs")
	}
}

// TestRGBAImplementsColor verifies RGBA values can be used directly as
// color.Color: the channels come back premultiplied at 16 bits.
func TestRGBAImplementsColor(t *testing.T) {
	var c color.Color = RGBA{R: 1, G: 0, B: 0, A: 0.5}
	r, g, b, a := c.RGBA()
	if absf(float64(r)-0.5*65535) > 1 || g != 0 || b != 0 {
		t.Errorf("premultiplied channels = (%d, %d, %d), want (≈32768, 0, 0)", r, g, b)
	}
	if absf(float64(a)-0.5*65535) > 1 {
		t.Errorf("alpha = %d, want ≈32768", a)
	}

	// Round trip back through FromColor.
	got := FromColor(RGBA{R: 0.8, G: 0.4, B: 0.2, A: 1})
	if !colorsClose(got, RGBA{R: 0.8, G: 0.4, B: 0.2, A: 1}, 0.01) {
		t.Errorf("FromColor round trip = %+v", got)
	}
}

// TestSetColorAcceptsRGBA covers passing the package's own color values
// straight to SetColor.
func TestSetColorAcceptsRGBA(t *testing.T) {
	dc, err := NewContext(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	dc.SetColor(Orange)
	dc.SetAntialias(false)
	dc.DrawRectangle(0, 0, 4, 4)
	if err := dc.Fill(); err != nil {
		t.Fatal(err)
	}
	if got := dc.Pixmap().GetPixel(2, 2); !colorsClose(got, Orange, 0.01) {
		t.Errorf("pixel = %+v, want orange", got)
	}
}

func TestWithAlpha(t *testing.T) {
	c := Orange.WithAlpha(0.25)
	if c.R != Orange.R || c.G != Orange.G || c.B != Orange.B {
		t.Error("WithAlpha must preserve RGB components")
	}
	if c.A != 0.25 {
		t.Errorf("WithAlpha alpha = %v, want 0.25", c.A)
	}
}
