package canvas

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/softink/canvas/internal/blend"
)

// DrawImageOptions controls how DrawImageEx composites an image.
// Use DefaultDrawImageOptions as the starting point; the zero value has
// zero opacity and draws nothing.
type DrawImageOptions struct {
	// Opacity scales the image's alpha, in [0,1].
	Opacity float64

	// Blend selects how image pixels combine with the destination.
	Blend BlendMode

	// Interpolation selects the resampling kernel when Width/Height
	// differ from the image's own size.
	Interpolation Interpolation

	// Width and Height give the target size in pixels. Zero means the
	// image's natural size.
	Width  int
	Height int
}

// DefaultDrawImageOptions returns options for a plain draw: full
// opacity, source-over blending, Catmull-Rom resampling, natural size.
func DefaultDrawImageOptions() DrawImageOptions {
	return DrawImageOptions{
		Opacity:       1,
		Blend:         BlendNormal,
		Interpolation: InterpCatmullRom,
	}
}

// DrawImage draws an image with its top-left corner at (x, y) in buffer
// coordinates. Like SetPixel, it bypasses the transform stack. Pixels
// falling outside the context are clipped.
func (c *Context) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	xdraw.Draw(c.pixmap, r, img, b.Min, xdraw.Over)
}

// DrawImageEx draws an image with its top-left corner at (x, y) in
// buffer coordinates, resampled to the requested size and composited
// with the given opacity and blend mode.
func (c *Context) DrawImageEx(img image.Image, x, y int, opts DrawImageOptions) {
	b := img.Bounds()
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = b.Dx()
	}
	if h <= 0 {
		h = b.Dy()
	}
	if w <= 0 || h <= 0 {
		return
	}

	opacity := opts.Opacity
	if opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}

	// Resample to target size first, then composite per pixel.
	src := image.NewRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		xdraw.Draw(src, src.Bounds(), img, b.Min, xdraw.Src)
	} else {
		opts.Interpolation.interpolator().Scale(src, src.Bounds(), img, b, xdraw.Src, nil)
	}

	mode := toBlendMode(opts.Blend)
	for sy := 0; sy < h; sy++ {
		dy := y + sy
		if dy < 0 || dy >= c.height {
			continue
		}
		for sx := 0; sx < w; sx++ {
			dx := x + sx
			if dx < 0 || dx >= c.width {
				continue
			}
			px := FromColor(src.RGBAAt(sx, sy))
			if px.A == 0 {
				continue
			}
			s := blend.RGBA{R: px.R, G: px.G, B: px.B, A: px.A * opacity}
			d := c.pixmap.GetPixel(dx, dy)
			res := blend.Blend(s, blend.RGBA{R: d.R, G: d.G, B: d.B, A: d.A}, mode)
			c.pixmap.SetPixel(dx, dy, RGBA{R: res.R, G: res.G, B: res.B, A: res.A})
		}
	}
}

// DrawPixmap draws another pixmap at (x, y) in buffer coordinates with
// source-over compositing.
func (c *Context) DrawPixmap(pm *Pixmap, x, y int) {
	c.DrawImage(pm, x, y)
}
