package canvas

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewPixmapZeroed(t *testing.T) {
	pm, err := NewPixmap(7, 5)
	if err != nil {
		t.Fatal(err)
	}
	data := pm.RawBytes()
	if len(data) != 7*5*4 {
		t.Fatalf("buffer length = %d, want %d", len(data), 7*5*4)
	}
	for i, v := range data {
		if v != 0 {
			t.Fatalf("buffer not zeroed at index %d: %d", i, v)
		}
	}
}

func TestNewPixmapInvalid(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want error
	}{
		{"zero width", 0, 10, ErrInvalidSize},
		{"zero height", 10, 0, ErrInvalidSize},
		{"negative width", -1, 10, ErrInvalidSize},
		{"negative height", 10, -5, ErrInvalidSize},
		{"overflow", 1 << 31, 1 << 31, ErrSizeOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPixmap(tt.w, tt.h)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewPixmap(%d, %d) err = %v, want %v", tt.w, tt.h, err, tt.want)
			}
		})
	}
}

func TestSetGetPixel(t *testing.T) {
	pm, err := NewPixmap(10, 10)
	if err != nil {
		t.Fatal(err)
	}

	c := RGBA{R: 0.8, G: 0.4, B: 0.2, A: 0.5}
	pm.SetPixel(3, 7, c)
	got := pm.GetPixel(3, 7)
	if !colorsClose(got, c, 0.01) {
		t.Errorf("GetPixel = %+v, want %+v", got, c)
	}
}

func TestSetPixelOutOfBounds(t *testing.T) {
	pm, err := NewPixmap(4, 4)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range []struct{ x, y int }{{-1, 0}, {4, 0}, {0, -1}, {0, 4}, {-100, 100}} {
		pm.SetPixel(p.x, p.y, Red)
		pm.SetPixelPremul(p.x, p.y, 255, 0, 0, 255)
	}
	for i, v := range pm.RawBytes() {
		if v != 0 {
			t.Fatalf("out-of-bounds write modified data at index %d", i)
		}
	}

	if got := pm.GetPixel(-3, 99); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %+v, want transparent", got)
	}
}

func TestSetPixelPremul(t *testing.T) {
	pm, err := NewPixmap(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	pm.SetPixelPremul(5, 5, 128, 64, 32, 255)

	i := (5*10 + 5) * 4
	data := pm.RawBytes()
	if data[i+0] != 128 || data[i+1] != 64 || data[i+2] != 32 || data[i+3] != 255 {
		t.Errorf("raw data mismatch: got (%d, %d, %d, %d), want (128, 64, 32, 255)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}
}

func TestClear(t *testing.T) {
	pm, err := NewPixmap(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	pm.Clear(Blue)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := pm.GetPixel(x, y); !colorsClose(got, Blue, 0.01) {
				t.Fatalf("pixel (%d,%d) = %+v, want blue", x, y, got)
			}
		}
	}
}

func TestToImageFromImageRoundTrip(t *testing.T) {
	pm, err := NewPixmap(8, 6)
	if err != nil {
		t.Fatal(err)
	}
	pm.SetPixel(1, 1, Red)
	pm.SetPixel(6, 4, RGBA{R: 0.2, G: 0.6, B: 1, A: 0.5})

	back, err := FromImage(pm.ToImage())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(pm.RawBytes(), back.RawBytes()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestFromImageNonRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(2, 2, color.NRGBA{R: 255, G: 128, B: 0, A: 255})

	pm, err := FromImage(src)
	if err != nil {
		t.Fatal(err)
	}
	got := pm.GetPixel(2, 2)
	if !colorsClose(got, Orange, 0.01) {
		t.Errorf("pixel (2,2) = %+v, want orange", got)
	}
}

// TestPixmapSet verifies the draw.Image interface stores premultiplied
// bytes directly.
func TestPixmapSet(t *testing.T) {
	pm, err := NewPixmap(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	pm.Set(1, 2, color.RGBA{R: 128, G: 0, B: 0, A: 128})

	i := (2*4 + 1) * 4
	data := pm.RawBytes()
	if data[i+0] != 128 || data[i+3] != 128 {
		t.Errorf("Set stored (%d, _, _, %d), want (128, _, _, 128)", data[i+0], data[i+3])
	}
}

func TestClone(t *testing.T) {
	pm, err := NewPixmap(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	pm.SetPixel(0, 0, Green)

	dup := pm.Clone()
	dup.SetPixel(0, 0, Red)
	if got := pm.GetPixel(0, 0); !colorsClose(got, Green, 0.01) {
		t.Errorf("clone write leaked into original: %+v", got)
	}
}
