package canvas

import (
	"errors"
	"testing"
)

func mustContext(t *testing.T, w, h int, opts ...ContextOption) *Context {
	t.Helper()
	dc, err := NewContext(w, h, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return dc
}

func TestNewContextInvalidSize(t *testing.T) {
	for _, d := range []struct{ w, h int }{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := NewContext(d.w, d.h); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewContext(%d, %d) err = %v, want ErrInvalidSize", d.w, d.h, err)
		}
	}
}

func TestNewContextBufferZeroed(t *testing.T) {
	dc := mustContext(t, 13, 9)
	data := dc.Pixmap().RawBytes()
	if len(data) != 13*9*4 {
		t.Fatalf("buffer length = %d, want %d", len(data), 13*9*4)
	}
	for i, v := range data {
		if v != 0 {
			t.Fatalf("buffer not zeroed at index %d", i)
		}
	}
}

func TestNewContextForSizeTruncates(t *testing.T) {
	dc, err := NewContextForSize(10.9, 7.2)
	if err != nil {
		t.Fatal(err)
	}
	if dc.Width() != 10 || dc.Height() != 7 {
		t.Errorf("size = %dx%d, want 10x7", dc.Width(), dc.Height())
	}

	if _, err := NewContextForSize(0.9, 10); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("sub-pixel width should truncate to zero and fail, got %v", err)
	}
}

// TestOriginConvention draws the same unit-thick bar near the origin in
// both conventions and probes where it lands in the buffer.
func TestOriginConvention(t *testing.T) {
	const w, h = 8, 6

	tests := []struct {
		name     string
		origin   Origin
		wantRow  int // buffer row the bar should land on
		emptyRow int
	}{
		{"top-left", OriginTopLeft, 0, h - 1},
		{"bottom-left", OriginBottomLeft, h - 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := mustContext(t, w, h, WithOrigin(tt.origin))
			dc.SetColor(Red)
			dc.SetAntialias(false)
			dc.DrawRectangle(0, 0, w, 1)
			if err := dc.Fill(); err != nil {
				t.Fatal(err)
			}

			if got := dc.Pixmap().GetPixel(3, tt.wantRow); got.A == 0 {
				t.Errorf("expected bar on buffer row %d, pixel is transparent", tt.wantRow)
			}
			if got := dc.Pixmap().GetPixel(3, tt.emptyRow); got.A != 0 {
				t.Errorf("buffer row %d should be empty, got %+v", tt.emptyRow, got)
			}
		})
	}
}

// TestIdentityPreservesBaseline verifies that resetting the transform
// keeps the origin convention in force.
func TestIdentityPreservesBaseline(t *testing.T) {
	const w, h = 8, 6
	dc := mustContext(t, w, h, WithOrigin(OriginBottomLeft))
	dc.Translate(3, 2)
	dc.Scale(2, 2)
	dc.Identity()

	dc.SetColor(White)
	dc.SetAntialias(false)
	dc.DrawRectangle(0, 0, 1, 1)
	if err := dc.Fill(); err != nil {
		t.Fatal(err)
	}

	if got := dc.Pixmap().GetPixel(0, h-1); got.A == 0 {
		t.Error("unit square at origin should land on the bottom buffer row")
	}
}

func TestPushPop(t *testing.T) {
	dc := mustContext(t, 4, 4)
	base := dc.GetTransform()

	dc.Push()
	dc.Translate(2, 2)
	if dc.GetTransform() == base {
		t.Fatal("translate should change the transform")
	}
	dc.Pop()
	if dc.GetTransform() != base {
		t.Error("Pop should restore the saved transform")
	}

	// Popping an empty stack keeps the baseline.
	dc.Pop()
	dc.Pop()
	if dc.GetTransform() != base {
		t.Error("Pop on empty stack must not discard the baseline")
	}
}

func TestTransformedDrawing(t *testing.T) {
	dc := mustContext(t, 10, 10)
	dc.SetColor(Green)
	dc.SetAntialias(false)
	dc.Translate(4, 4)
	dc.DrawRectangle(0, 0, 2, 2)
	if err := dc.Fill(); err != nil {
		t.Fatal(err)
	}

	if got := dc.Pixmap().GetPixel(5, 5); got.A == 0 {
		t.Error("translated rectangle should cover (5,5)")
	}
	if got := dc.Pixmap().GetPixel(1, 1); got.A != 0 {
		t.Error("pixel (1,1) should stay empty after translation")
	}
}

func TestDrawCircleFill(t *testing.T) {
	dc := mustContext(t, 41, 41)
	dc.SetColor(Red)
	dc.DrawCircle(20, 20, 15)
	if err := dc.Fill(); err != nil {
		t.Fatal(err)
	}

	center := dc.Pixmap().GetPixel(20, 20)
	if !colorsClose(center, Red, 0.01) {
		t.Errorf("circle center = %+v, want opaque red", center)
	}
	if corner := dc.Pixmap().GetPixel(0, 0); corner.A != 0 {
		t.Errorf("corner should stay transparent, got %+v", corner)
	}
	// Just inside the radius along the axis.
	if edge := dc.Pixmap().GetPixel(33, 20); edge.A < 0.5 {
		t.Errorf("pixel just inside the radius should be mostly covered, alpha = %v", edge.A)
	}
}

func TestFillClearsPath(t *testing.T) {
	dc := mustContext(t, 4, 4)
	dc.DrawRectangle(0, 0, 2, 2)
	if err := dc.Fill(); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := dc.GetCurrentPoint(); ok {
		t.Error("Fill should clear the path")
	}

	dc.DrawRectangle(0, 0, 2, 2)
	if err := dc.FillPreserve(); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := dc.GetCurrentPoint(); !ok {
		t.Error("FillPreserve should keep the path")
	}
}

func TestEvenOddHole(t *testing.T) {
	dc := mustContext(t, 20, 20)
	dc.SetColor(Blue)
	dc.SetAntialias(false)
	dc.SetFillRule(FillRuleEvenOdd)
	dc.DrawRectangle(2, 2, 16, 16)
	dc.DrawRectangle(6, 6, 8, 8)
	if err := dc.Fill(); err != nil {
		t.Fatal(err)
	}

	if got := dc.Pixmap().GetPixel(10, 10); got.A != 0 {
		t.Errorf("even-odd hole center should be empty, got %+v", got)
	}
	if got := dc.Pixmap().GetPixel(3, 10); got.A == 0 {
		t.Error("ring should be filled")
	}
}

func TestBlendModeMultiplyFill(t *testing.T) {
	dc := mustContext(t, 4, 4)
	dc.ClearWithColor(RGB(1, 1, 0.5))
	dc.SetColor(RGB(0.5, 1, 1))
	dc.SetBlendMode(BlendMultiply)
	dc.SetAntialias(false)
	dc.DrawRectangle(0, 0, 4, 4)
	if err := dc.Fill(); err != nil {
		t.Fatal(err)
	}

	got := dc.Pixmap().GetPixel(2, 2)
	want := RGB(0.5, 1, 0.5)
	if !colorsClose(got, want, 0.02) {
		t.Errorf("multiply fill = %+v, want %+v", got, want)
	}
}

func TestCloseIdempotent(t *testing.T) {
	dc := mustContext(t, 4, 4)
	if err := dc.Close(); err != nil {
		t.Fatal(err)
	}
	if err := dc.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}
}

func TestNewContextForImage(t *testing.T) {
	src := mustContext(t, 6, 6)
	src.ClearWithColor(Yellow)

	dc, err := NewContextForImage(src.Image())
	if err != nil {
		t.Fatal(err)
	}
	if dc.Width() != 6 || dc.Height() != 6 {
		t.Fatalf("size = %dx%d, want 6x6", dc.Width(), dc.Height())
	}
	if got := dc.Pixmap().GetPixel(3, 3); !colorsClose(got, Yellow, 0.01) {
		t.Errorf("pixel (3,3) = %+v, want yellow", got)
	}
}
