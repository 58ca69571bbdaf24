package canvas

import (
	"io"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/color"
	"seehuhn.de/go/pdf/document"
)

// PDF is a drawing target that streams a multi-page PDF document to a
// writer. It offers the same coordinate-convention contract as Context:
// the origin convention is resolved once at creation into a baseline
// transform, and page drawing code never branches on it.
//
// A PDF is a scoped resource. Every AddPage must be balanced by a
// PDFPage Close, and the document's Close must run on every exit path;
// otherwise the output is truncated or invalid.
//
//	pdf, err := canvas.NewPDF(w, 200, 200)
//	if err != nil { ... }
//	page, err := pdf.AddPage()
//	if err != nil { ... }
//	page.SetColor(canvas.Orange)
//	page.DrawCircle(100, 100, 80)
//	page.Fill()
//	if err := page.Close(); err != nil { ... }
//	if err := pdf.Close(); err != nil { ... }
type PDF struct {
	doc    *document.MultiPage
	width  float64
	height float64
	origin Origin
	base   Matrix

	open   int
	pages  int
	closed bool
}

// PDFOption configures a PDF during creation.
type PDFOption func(*pdfOptions)

type pdfOptions struct {
	origin Origin
}

// WithPageOrigin sets the coordinate convention callers draw pages in.
// The default is OriginTopLeft, matching NewContext; PDF's native
// bottom-left convention is hidden behind the baseline transform.
func WithPageOrigin(o Origin) PDFOption {
	return func(opts *pdfOptions) {
		opts.origin = o
	}
}

// NewPDF creates a multi-page PDF document with the given page
// dimensions in PDF points. All pages share the same media box.
func NewPDF(w io.Writer, width, height float64, opts ...PDFOption) (*PDF, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}

	options := pdfOptions{origin: OriginTopLeft}
	for _, opt := range opts {
		opt(&options)
	}

	mediaBox := &pdf.Rectangle{URx: width, URy: height}
	doc, err := document.WriteMultiPage(w, mediaBox, nil)
	if err != nil {
		return nil, err
	}

	return &PDF{
		doc:    doc,
		width:  width,
		height: height,
		origin: options.origin,
		base:   options.origin.pdfBaseline(height),
	}, nil
}

// Width returns the page width in PDF points.
func (p *PDF) Width() float64 {
	return p.width
}

// Height returns the page height in PDF points.
func (p *PDF) Height() float64 {
	return p.height
}

// Origin returns the coordinate convention the document was created with.
func (p *PDF) Origin() Origin {
	return p.origin
}

// AddPage opens a new page. Only one page may be open at a time; the
// previous page must be closed first.
func (p *PDF) AddPage() (*PDFPage, error) {
	if p.closed {
		return nil, ErrClosed
	}
	if p.open > 0 {
		return nil, ErrPageOpen
	}
	p.open++
	p.pages++

	return &PDFPage{
		pdf:    p,
		page:   p.doc.AddPage(),
		matrix: p.base,
		stack:  make([]Matrix, 0, 8),
	}, nil
}

// Close finishes the document and writes the page tree and trailer.
// It fails with ErrPageOpen while a page is still open and with
// ErrNoPage if no page was ever added. Close is idempotent.
func (p *PDF) Close() error {
	if p.closed {
		return nil
	}
	if p.open > 0 {
		return ErrPageOpen
	}
	if p.pages == 0 {
		return ErrNoPage
	}
	p.closed = true
	return p.doc.Close()
}

// PDFPage is a single open page of a PDF document. It mirrors the
// Context drawing surface: paths built from transformed points, a
// transform stack bottoming out at the document baseline, and fill as
// the painting operation.
//
// PDF fill colors carry no alpha; the alpha channel of colors set on a
// page is ignored.
type PDFPage struct {
	pdf  *PDF
	page *document.Page

	matrix Matrix
	stack  []Matrix

	closed bool
}

// Close finishes the page and appends it to the document's page tree.
// The page must not be used afterwards.
func (p *PDFPage) Close() error {
	if p.closed {
		return ErrClosed
	}
	p.closed = true
	p.pdf.open--
	return p.page.Close()
}

// SetColor sets the fill color. Alpha is ignored.
func (p *PDFPage) SetColor(col RGBA) {
	p.page.SetFillColor(color.RGB(col.R, col.G, col.B))
}

// SetRGB sets the fill color from components in [0,1].
func (p *PDFPage) SetRGB(r, g, b float64) {
	p.page.SetFillColor(color.RGB(r, g, b))
}

// MoveTo starts a new subpath at the given point.
func (p *PDFPage) MoveTo(x, y float64) {
	pt := p.matrix.TransformPoint(Pt(x, y))
	p.page.MoveTo(pt.X, pt.Y)
}

// LineTo adds a line to the current path.
func (p *PDFPage) LineTo(x, y float64) {
	pt := p.matrix.TransformPoint(Pt(x, y))
	p.page.LineTo(pt.X, pt.Y)
}

// CubicTo adds a cubic Bezier curve to the current path.
func (p *PDFPage) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	cp1 := p.matrix.TransformPoint(Pt(c1x, c1y))
	cp2 := p.matrix.TransformPoint(Pt(c2x, c2y))
	pt := p.matrix.TransformPoint(Pt(x, y))
	p.page.CurveTo(cp1.X, cp1.Y, cp2.X, cp2.Y, pt.X, pt.Y)
}

// ClosePath closes the current subpath.
func (p *PDFPage) ClosePath() {
	p.page.ClosePath()
}

// Fill fills the current path, implicitly closing open subpaths.
func (p *PDFPage) Fill() {
	p.page.Fill()
}

// DrawRectangle adds a rectangle to the current path.
func (p *PDFPage) DrawRectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.ClosePath()
}

// DrawCircle adds a circle to the current path using cubic Bezier
// curves, the same construction the raster contexts use.
func (p *PDFPage) DrawCircle(x, y, r float64) {
	offset := r * circleK

	p.MoveTo(x+r, y)
	p.CubicTo(x+r, y+offset, x+offset, y+r, x, y+r)
	p.CubicTo(x-offset, y+r, x-r, y+offset, x-r, y)
	p.CubicTo(x-r, y-offset, x-offset, y-r, x, y-r)
	p.CubicTo(x+offset, y-r, x+r, y-offset, x+r, y)
	p.ClosePath()
}

// Push saves the current transform.
func (p *PDFPage) Push() {
	p.stack = append(p.stack, p.matrix)
}

// Pop restores the last saved transform. Popping with an empty stack is
// a no-op; the baseline transform is never discarded.
func (p *PDFPage) Pop() {
	if len(p.stack) == 0 {
		return
	}
	p.matrix = p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
}

// Identity resets the transform to the document baseline.
func (p *PDFPage) Identity() {
	p.matrix = p.pdf.base
}

// Translate applies a translation to the transform.
func (p *PDFPage) Translate(x, y float64) {
	p.matrix = p.matrix.Multiply(Translate(x, y))
}

// Scale applies a scaling transformation.
func (p *PDFPage) Scale(x, y float64) {
	p.matrix = p.matrix.Multiply(ScaleMatrix(x, y))
}

// Rotate applies a rotation (angle in radians).
func (p *PDFPage) Rotate(angle float64) {
	p.matrix = p.matrix.Multiply(Rotate(angle))
}

// Shear applies a shear transformation.
func (p *PDFPage) Shear(x, y float64) {
	p.matrix = p.matrix.Multiply(Shear(x, y))
}
