package canvas

import (
	"image"
	"image/color"
	"math"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored premultiplied, 8 bits per channel, RGBA order,
// row-major with a row stride of width*4 bytes. A new pixmap is fully
// zero-initialized (transparent black).
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
// It fails if either dimension is non-positive or the buffer size would
// overflow.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	if width > (math.MaxInt/4)/height {
		return nil, ErrSizeOverflow
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// RawBytes returns the underlying pixel data with no header: premultiplied
// RGBA, row-major, stride width*4. The slice aliases the pixmap's storage;
// it is meant for raw inspection, not interchange.
func (p *Pixmap) RawBytes() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel from a straight-alpha color.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	pm := c.Premultiply()
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(pm.R * 255))
	p.data[i+1] = uint8(clamp255(pm.G * 255))
	p.data[i+2] = uint8(clamp255(pm.B * 255))
	p.data[i+3] = uint8(clamp255(pm.A * 255))
}

// SetPixelPremul stores already-premultiplied channel bytes directly.
// Out-of-bounds coordinates are silently ignored.
func (p *Pixmap) SetPixelPremul(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// GetPixel returns the straight-alpha color of a single pixel.
// Out-of-bounds coordinates return transparent black.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	pm := RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
	return pm.Unpremultiply()
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	pm := c.Premultiply()
	r := uint8(clamp255(pm.R * 255))
	g := uint8(clamp255(pm.G * 255))
	b := uint8(clamp255(pm.B * 255))
	a := uint8(clamp255(pm.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	out := &Pixmap{
		width:  p.width,
		height: p.height,
		data:   make([]uint8, len(p.data)),
	}
	copy(out.data, p.data)
	return out
}

// ToImage converts the pixmap to an image.RGBA.
// Both use premultiplied alpha, so this is a straight copy.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) (*Pixmap, error) {
	bounds := img.Bounds()
	pm, err := NewPixmap(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path: image.RGBA shares the premultiplied layout.
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == pm.width*4 && bounds.Min == (image.Point{}) {
		copy(pm.data, rgba.Pix)
		return pm, nil
	}

	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*pm.width + x) * 4
			pm.data[i+0] = uint8(r >> 8)
			pm.data[i+1] = uint8(g >> 8)
			pm.data[i+2] = uint8(b >> 8)
			pm.data[i+3] = uint8(a >> 8)
		}
	}
	return pm, nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// Set implements the draw.Image interface. The incoming color is
// converted to premultiplied RGBA8 and stored directly, so scalers from
// golang.org/x/image/draw can target a pixmap without an extra copy.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	r, g, b, a := c.RGBA()
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(r >> 8)
	p.data[i+1] = uint8(g >> 8)
	p.data[i+2] = uint8(b >> 8)
	p.data[i+3] = uint8(a >> 8)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
