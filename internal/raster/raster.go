// Package raster provides scanline rasterization for 2D paths.
// Anti-aliased filling uses 4x vertical supersampling with exact
// horizontal span coverage accumulated per pixel row.
package raster

import (
	"math"
	"sort"
)

// RGBA represents a color (internal copy to avoid import cycle).
type RGBA struct {
	R, G, B, A float64
}

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Pixmap is the blit target (avoids an import cycle with the root
// package). BlendPixel combines the color with the existing pixel at the
// given edge coverage, 0-255.
type Pixmap interface {
	Width() int
	Height() int
	BlendPixel(x, y int, c RGBA, coverage uint8)
}

// Supersample is the number of subscanlines sampled per pixel row for
// anti-aliased fills.
const Supersample = 4

// crossing is an edge intersection with a subscanline.
type crossing struct {
	x   float64
	dir int
}

// Rasterizer performs scanline rasterization.
type Rasterizer struct {
	width  int
	height int

	cov       []float64  // per-pixel coverage for the current row
	crossings []crossing // scratch for subscanline intersections
}

// NewRasterizer creates a new rasterizer for the given dimensions.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		width:     width,
		height:    height,
		cov:       make([]float64, width),
		crossings: make([]crossing, 0, 32),
	}
}

// Resize adjusts the rasterizer's target dimensions.
func (r *Rasterizer) Resize(width, height int) {
	r.width = width
	r.height = height
	if len(r.cov) < width {
		r.cov = make([]float64, width)
	}
}

// buildEdges converts closed polyline contours into an edge list.
// The closing segment from last to first point is implied. Horizontal
// edges contribute nothing to scanline crossings and are skipped.
func buildEdges(contours [][]Point) []Edge {
	var edges []Edge
	for _, contour := range contours {
		n := len(contour)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0 := contour[i]
			p1 := contour[(i+1)%n]
			if math.Abs(p1.Y-p0.Y) < 1e-9 {
				continue
			}
			edges = append(edges, NewEdge(p0, p1))
		}
	}
	return edges
}

// Fill rasterizes filled contours with anti-aliasing onto a pixmap.
func (r *Rasterizer) Fill(dst Pixmap, contours [][]Point, rule FillRule, col RGBA) {
	r.fill(dst, contours, rule, col, true)
}

// FillNoAA rasterizes filled contours without anti-aliasing (faster but
// aliased).
func (r *Rasterizer) FillNoAA(dst Pixmap, contours [][]Point, rule FillRule, col RGBA) {
	r.fill(dst, contours, rule, col, false)
}

func (r *Rasterizer) fill(dst Pixmap, contours [][]Point, rule FillRule, col RGBA, antialias bool) {
	edges := buildEdges(contours)
	if len(edges) == 0 {
		return
	}

	yMin := math.MaxFloat64
	yMax := -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}

	y0 := int(math.Floor(yMin))
	y1 := int(math.Ceil(yMax))
	if y0 < 0 {
		y0 = 0
	}
	if y1 > dst.Height() {
		y1 = dst.Height()
	}

	samples := Supersample
	if !antialias {
		samples = 1
	}

	for y := y0; y < y1; y++ {
		for i := range r.cov {
			r.cov[i] = 0
		}

		for s := 0; s < samples; s++ {
			sy := float64(y) + (float64(s)+0.5)/float64(samples)
			r.scanline(edges, sy, rule)
		}

		r.blitRow(dst, y, samples, col, antialias)
	}
}

// scanline accumulates span coverage for a single subscanline.
func (r *Rasterizer) scanline(edges []Edge, sy float64, rule FillRule) {
	r.crossings = r.crossings[:0]
	for i := range edges {
		e := &edges[i]
		if e.y0 <= sy && sy < e.y1 {
			r.crossings = append(r.crossings, crossing{x: e.XAtY(sy), dir: e.dir})
		}
	}
	if len(r.crossings) < 2 {
		return
	}

	sort.Slice(r.crossings, func(i, j int) bool {
		return r.crossings[i].x < r.crossings[j].x
	})

	if rule == FillRuleNonZero {
		winding := 0
		var x1 float64
		for _, c := range r.crossings {
			if winding == 0 {
				x1 = c.x
			}
			winding += c.dir
			if winding == 0 {
				r.accumulate(x1, c.x)
			}
		}
	} else {
		for i := 0; i+1 < len(r.crossings); i += 2 {
			r.accumulate(r.crossings[i].x, r.crossings[i+1].x)
		}
	}
}

// accumulate adds the span [x0, x1) to the current row's coverage with
// exact fractional coverage at the span ends.
func (r *Rasterizer) accumulate(x0, x1 float64) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float64(r.width) {
		x1 = float64(r.width)
	}
	if x0 >= x1 {
		return
	}

	i0 := int(x0)
	i1 := int(x1)
	if i1 >= r.width {
		i1 = r.width - 1
	}

	if i0 == i1 {
		r.cov[i0] += x1 - x0
		return
	}

	r.cov[i0] += float64(i0+1) - x0
	for i := i0 + 1; i < i1; i++ {
		r.cov[i]++
	}
	r.cov[i1] += x1 - float64(i1)
}

// blitRow blends the accumulated coverage for row y into the pixmap.
func (r *Rasterizer) blitRow(dst Pixmap, y, samples int, col RGBA, antialias bool) {
	scale := 255.0 / float64(samples)
	for x := 0; x < r.width; x++ {
		c := r.cov[x]
		if c <= 0 {
			continue
		}
		alpha := c * scale
		if alpha > 255 {
			alpha = 255
		}
		if !antialias && alpha > 0 {
			// Center-sample decision only: a touched pixel is either
			// fully in or fully out.
			if c < 0.5 {
				continue
			}
			alpha = 255
		}
		dst.BlendPixel(x, y, col, uint8(alpha+0.5))
	}
}
