package canvas

import (
	"image"
	"image/color"
	"io"
	"math"
)

// Context is the main drawing context over a pixel buffer.
// It maintains a pixmap, current path, paint state, and transformation
// stack. The origin convention is resolved once at creation into a
// baseline transform; Identity and Pop restore to that baseline, never
// below it, so the coordinate flip is in force for the context's whole
// lifetime.
type Context struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer Renderer

	// Current state
	path  *Path
	paint *Paint

	// Transform and state stack
	origin Origin
	base   Matrix
	matrix Matrix
	stack  []Matrix

	// Lifecycle
	closed bool
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a new drawing context with the given dimensions.
// The backing buffer is zero-initialized (transparent black). Optional
// ContextOption arguments customize the origin convention, pixmap, and
// renderer:
//
//	// Default: top-left origin, Y down
//	dc, err := canvas.NewContext(800, 600)
//
//	// Bottom-left origin, Y up
//	dc, err := canvas.NewContext(800, 600, canvas.WithOrigin(canvas.OriginBottomLeft))
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		var err error
		pixmap, err = NewPixmap(width, height)
		if err != nil {
			return nil, err
		}
	}

	renderer := options.renderer
	if renderer == nil {
		renderer = NewSoftwareRenderer(width, height)
	}

	base := options.origin.baseline(float64(height))

	return &Context{
		width:    width,
		height:   height,
		pixmap:   pixmap,
		renderer: renderer,
		path:     NewPath(),
		paint:    NewPaint(),
		origin:   options.origin,
		base:     base,
		matrix:   base,
		stack:    make([]Matrix, 0, 8),
	}, nil
}

// NewContextForSize creates a context from floating-point dimensions,
// truncating each toward zero first.
func NewContextForSize(width, height float64, opts ...ContextOption) (*Context, error) {
	return NewContext(int(math.Trunc(width)), int(math.Trunc(height)), opts...)
}

// NewContextForImage creates a context for drawing on a copy of an
// existing image.
func NewContextForImage(img image.Image, opts ...ContextOption) (*Context, error) {
	pixmap, err := FromImage(img)
	if err != nil {
		return nil, err
	}
	opts = append([]ContextOption{WithPixmap(pixmap)}, opts...)
	return NewContext(pixmap.Width(), pixmap.Height(), opts...)
}

// Close releases resources associated with the Context.
// After Close, the Context should not be used.
// Close is idempotent - multiple calls are safe.
// Implements io.Closer.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.ClearPath()
	c.stack = nil

	return nil
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.height
}

// Origin returns the coordinate convention the context was created with.
func (c *Context) Origin() Origin {
	return c.origin
}

// Pixmap returns the context's backing pixel buffer.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns the context's image.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// Clear fills the entire context with transparent black.
func (c *Context) Clear() {
	c.pixmap.Clear(Transparent)
}

// ClearWithColor fills the entire context with a specific color.
func (c *Context) ClearWithColor(col RGBA) {
	c.pixmap.Clear(col)
}

// SetColor sets the current drawing color.
func (c *Context) SetColor(col color.Color) {
	c.paint.Color = FromColor(col)
}

// SetRGB sets the current color using RGB values (0-1).
func (c *Context) SetRGB(r, g, b float64) {
	c.paint.Color = RGB(r, g, b)
}

// SetRGBA sets the current color using RGBA values (0-1).
func (c *Context) SetRGBA(r, g, b, a float64) {
	c.paint.Color = NewRGBA(r, g, b, a)
}

// SetHexColor sets the current color using a hex string.
func (c *Context) SetHexColor(hex string) {
	c.paint.Color = Hex(hex)
}

// SetFillRule sets the fill rule.
func (c *Context) SetFillRule(rule FillRule) {
	c.paint.FillRule = rule
}

// SetBlendMode sets how fill pixels combine with the destination.
func (c *Context) SetBlendMode(mode BlendMode) {
	c.paint.Blend = mode
}

// SetAntialias enables or disables anti-aliased edges.
func (c *Context) SetAntialias(antialias bool) {
	c.paint.Antialias = antialias
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to the current path.
func (c *Context) LineTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// QuadraticTo adds a quadratic Bezier curve to the current path.
func (c *Context) QuadraticTo(cx, cy, x, y float64) {
	cp := c.matrix.TransformPoint(Pt(cx, cy))
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.QuadraticTo(cp.X, cp.Y, p.X, p.Y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (c *Context) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	cp1 := c.matrix.TransformPoint(Pt(c1x, c1y))
	cp2 := c.matrix.TransformPoint(Pt(c2x, c2y))
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p.X, p.Y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// ClearPath clears the current path.
func (c *Context) ClearPath() {
	c.path.Clear()
}

// GetCurrentPoint returns the current point of the path.
// Returns (0, 0, false) if there is no current point.
func (c *Context) GetCurrentPoint() (x, y float64, ok bool) {
	if c.path == nil || !c.path.HasCurrentPoint() {
		return 0, 0, false
	}
	pt := c.path.CurrentPoint()
	return pt.X, pt.Y, true
}

// Fill fills the current path and clears it.
// Returns an error if the rendering operation fails.
func (c *Context) Fill() error {
	err := c.renderer.Fill(c.pixmap, c.path, c.paint)
	c.path.Clear()
	return err
}

// FillPreserve fills the current path without clearing it.
// Returns an error if the rendering operation fails.
func (c *Context) FillPreserve() error {
	return c.renderer.Fill(c.pixmap, c.path, c.paint)
}

// Push saves the current transform.
func (c *Context) Push() {
	c.stack = append(c.stack, c.matrix)
}

// Pop restores the last saved transform.
// Popping with an empty stack is a no-op; the baseline transform set at
// creation time can never be discarded.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		return
	}
	c.matrix = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Identity resets the transformation matrix to the context's baseline,
// which already encodes the origin convention.
func (c *Context) Identity() {
	c.matrix = c.base
}

// Translate applies a translation to the transformation matrix.
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Context) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(ScaleMatrix(x, y))
}

// Rotate applies a rotation (angle in radians).
func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// RotateAbout rotates around a specific point.
func (c *Context) RotateAbout(angle, x, y float64) {
	c.Translate(x, y)
	c.Rotate(angle)
	c.Translate(-x, -y)
}

// Shear applies a shear transformation.
func (c *Context) Shear(x, y float64) {
	c.matrix = c.matrix.Multiply(Shear(x, y))
}

// Transform multiplies the current transformation matrix by the given
// matrix.
func (c *Context) Transform(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// GetTransform returns a copy of the current transformation matrix,
// including the baseline.
func (c *Context) GetTransform() Matrix {
	return c.matrix
}

// TransformPoint transforms a point by the current matrix.
func (c *Context) TransformPoint(x, y float64) (float64, float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	return p.X, p.Y
}

// SetPixel sets a single pixel in buffer coordinates, bypassing the
// transform stack.
func (c *Context) SetPixel(x, y int, col RGBA) {
	c.pixmap.SetPixel(x, y, col)
}

// DrawRectangle draws a rectangle.
func (c *Context) DrawRectangle(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// DrawCircle draws a circle.
func (c *Context) DrawCircle(x, y, r float64) {
	offset := r * circleK

	c.MoveTo(x+r, y)
	c.CubicTo(x+r, y+offset, x+offset, y+r, x, y+r)
	c.CubicTo(x-offset, y+r, x-r, y+offset, x-r, y)
	c.CubicTo(x-r, y-offset, x-offset, y-r, x, y-r)
	c.CubicTo(x+offset, y-r, x+r, y-offset, x+r, y)
	c.ClosePath()
}

// DrawEllipse draws an ellipse.
func (c *Context) DrawEllipse(x, y, rx, ry float64) {
	ox := rx * circleK
	oy := ry * circleK

	c.MoveTo(x+rx, y)
	c.CubicTo(x+rx, y+oy, x+ox, y+ry, x, y+ry)
	c.CubicTo(x-ox, y+ry, x-rx, y+oy, x-rx, y)
	c.CubicTo(x-rx, y-oy, x-ox, y-ry, x, y-ry)
	c.CubicTo(x+ox, y-ry, x+rx, y-oy, x+rx, y)
	c.ClosePath()
}

// DrawRegularPolygon draws a regular polygon with n sides.
func (c *Context) DrawRegularPolygon(n int, x, y, r, rotation float64) {
	angle := 2.0 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := rotation + angle*float64(i)
		px := x + r*math.Cos(a)
		py := y + r*math.Sin(a)
		if i == 0 {
			c.MoveTo(px, py)
		} else {
			c.LineTo(px, py)
		}
	}
	c.ClosePath()
}
