package canvas

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/softink/canvas/internal/blend"
)

// Interpolation selects the resampling kernel used when an image is
// drawn or scaled at a size other than its own.
type Interpolation int

const (
	// InterpNearest is nearest-neighbor sampling. Fast, blocky.
	InterpNearest Interpolation = iota

	// InterpBilinear is approximate bilinear sampling.
	InterpBilinear

	// InterpCatmullRom is Catmull-Rom kernel resampling. Slowest,
	// best quality; the default for the image operations.
	InterpCatmullRom
)

// interpolator returns the x/image/draw scaler for the mode.
func (i Interpolation) interpolator() xdraw.Interpolator {
	switch i {
	case InterpNearest:
		return xdraw.NearestNeighbor
	case InterpBilinear:
		return xdraw.ApproxBiLinear
	default:
		return xdraw.CatmullRom
	}
}

// Scale resamples src to exactly width x height with a Catmull-Rom
// kernel. The source aspect ratio is not preserved; the output always
// has the requested dimensions.
func Scale(src *Pixmap, width, height int) (*Pixmap, error) {
	return ScaleWith(src, width, height, InterpCatmullRom)
}

// ScaleWith is Scale with an explicit interpolation mode.
func ScaleWith(src *Pixmap, width, height int, interp Interpolation) (*Pixmap, error) {
	dst, err := NewPixmap(width, height)
	if err != nil {
		return nil, err
	}
	interp.interpolator().Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Crop extracts the region r of src into a new pixmap of size r.Dx() x
// r.Dy(). The part of r inside the source is copied exactly; any part
// outside stays transparent black. A region that lies entirely outside
// the source yields a fully transparent image, never an error.
func Crop(src *Pixmap, r image.Rectangle) (*Pixmap, error) {
	r = r.Canon()
	dst, err := NewPixmap(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}

	overlap := r.Intersect(src.Bounds())
	for y := overlap.Min.Y; y < overlap.Max.Y; y++ {
		srcOff := (y*src.width + overlap.Min.X) * 4
		dstOff := ((y-r.Min.Y)*dst.width + (overlap.Min.X - r.Min.X)) * 4
		n := overlap.Dx() * 4
		copy(dst.data[dstOff:dstOff+n], src.data[srcOff:srcOff+n])
	}
	return dst, nil
}

// Tint blends a solid color over every pixel of src and returns the
// result; src is not modified. BlendMultiply gives the conventional
// tint (darkening toward the tint color); other modes follow the same
// per-pixel formulas as context fills. The color's alpha scales the
// effect with no special cases at the extremes: zero alpha returns the
// source unchanged, full alpha applies the blend formula outright.
func Tint(src *Pixmap, col RGBA, mode BlendMode) (*Pixmap, error) {
	out := src.Clone()
	bm := toBlendMode(mode)
	s := blend.RGBA{R: col.R, G: col.G, B: col.B, A: col.A}

	for y := 0; y < out.height; y++ {
		for x := 0; x < out.width; x++ {
			d := out.GetPixel(x, y)
			res := blend.Blend(s, blend.RGBA{R: d.R, G: d.G, B: d.B, A: d.A}, bm)
			out.SetPixel(x, y, RGBA{R: res.R, G: res.G, B: res.B, A: res.A})
		}
	}
	return out, nil
}

// CircleImage renders a filled circle of the given radius inscribed in
// a 2r x 2r image: the center is the solid color, the corners stay
// transparent. Fractional sizes are truncated toward zero.
func CircleImage(radius float64, col RGBA) (*Pixmap, error) {
	dc, err := NewContextForSize(2*radius, 2*radius)
	if err != nil {
		return nil, err
	}
	dc.SetRGBA(col.R, col.G, col.B, col.A)
	dc.DrawCircle(radius, radius, radius)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	return dc.Pixmap(), nil
}
