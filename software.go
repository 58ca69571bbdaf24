package canvas

import (
	"github.com/softink/canvas/internal/blend"
	"github.com/softink/canvas/internal/path"
	"github.com/softink/canvas/internal/raster"
)

// SoftwareRenderer is a CPU-based scanline rasterizer.
type SoftwareRenderer struct {
	rasterizer *raster.Rasterizer
}

// NewSoftwareRenderer creates a new software renderer.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{
		rasterizer: raster.NewRasterizer(width, height),
	}
}

// Resize adjusts the renderer to new target dimensions.
func (r *SoftwareRenderer) Resize(width, height int) {
	r.rasterizer.Resize(width, height)
}

// pixmapAdapter adapts Pixmap to the raster.Pixmap interface and applies
// the paint's blend mode when writing covered pixels.
type pixmapAdapter struct {
	pixmap *Pixmap
	mode   blend.Mode
}

func (p *pixmapAdapter) Width() int {
	return p.pixmap.Width()
}

func (p *pixmapAdapter) Height() int {
	return p.pixmap.Height()
}

// BlendPixel combines the color with the existing pixel at the given edge
// coverage. Coverage scales the source alpha before blending.
func (p *pixmapAdapter) BlendPixel(x, y int, c raster.RGBA, coverage uint8) {
	if coverage == 0 {
		return
	}
	if x < 0 || x >= p.pixmap.Width() || y < 0 || y >= p.pixmap.Height() {
		return
	}

	src := blend.RGBA{
		R: c.R,
		G: c.G,
		B: c.B,
		A: c.A * float64(coverage) / 255.0,
	}
	dstPx := p.pixmap.GetPixel(x, y)
	dst := blend.RGBA{R: dstPx.R, G: dstPx.G, B: dstPx.B, A: dstPx.A}

	out := blend.Blend(src, dst, p.mode)
	p.pixmap.SetPixel(x, y, RGBA{R: out.R, G: out.G, B: out.B, A: out.A})
}

// convertPath converts Path elements to path.PathElement for flattening.
func convertPath(p *Path) []path.PathElement {
	elements := make([]path.PathElement, 0, len(p.Elements()))
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			elements = append(elements, path.MoveTo{Point: path.Point{X: e.Point.X, Y: e.Point.Y}})
		case LineTo:
			elements = append(elements, path.LineTo{Point: path.Point{X: e.Point.X, Y: e.Point.Y}})
		case QuadTo:
			elements = append(elements, path.QuadTo{
				Control: path.Point{X: e.Control.X, Y: e.Control.Y},
				Point:   path.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case CubicTo:
			elements = append(elements, path.CubicTo{
				Control1: path.Point{X: e.Control1.X, Y: e.Control1.Y},
				Control2: path.Point{X: e.Control2.X, Y: e.Control2.Y},
				Point:    path.Point{X: e.Point.X, Y: e.Point.Y},
			})
		case Close:
			elements = append(elements, path.Close{})
		}
	}
	return elements
}

// convertContours converts flattened path contours to raster points.
func convertContours(contours [][]path.Point) [][]raster.Point {
	result := make([][]raster.Point, len(contours))
	for i, contour := range contours {
		points := make([]raster.Point, len(contour))
		for j, p := range contour {
			points[j] = raster.Point{X: p.X, Y: p.Y}
		}
		result[i] = points
	}
	return result
}

// toBlendMode converts the public blend mode to the internal one.
func toBlendMode(mode BlendMode) blend.Mode {
	switch mode {
	case BlendMultiply:
		return blend.Multiply
	case BlendScreen:
		return blend.Screen
	case BlendOverlay:
		return blend.Overlay
	default:
		return blend.Normal
	}
}

// Fill implements Renderer.Fill.
func (r *SoftwareRenderer) Fill(pixmap *Pixmap, p *Path, paint *Paint) error {
	elements := convertPath(p)
	contours := convertContours(path.Flatten(elements))

	fillRule := raster.FillRuleNonZero
	if paint.FillRule == FillRuleEvenOdd {
		fillRule = raster.FillRuleEvenOdd
	}

	col := raster.RGBA{
		R: paint.Color.R,
		G: paint.Color.G,
		B: paint.Color.B,
		A: paint.Color.A,
	}

	adapter := &pixmapAdapter{pixmap: pixmap, mode: toBlendMode(paint.Blend)}
	if paint.Antialias {
		r.rasterizer.Fill(adapter, contours, fillRule, col)
	} else {
		r.rasterizer.FillNoAA(adapter, contours, fillRule, col)
	}

	return nil
}
