package canvas

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// BlendMode defines how source pixels are combined with destination
// pixels during fill and image drawing.
type BlendMode int

const (
	// BlendNormal performs standard alpha blending (source over destination).
	BlendNormal BlendMode = iota

	// BlendMultiply multiplies source and destination colors.
	// Result is always darker or equal.
	BlendMultiply

	// BlendScreen performs inverse multiply for lighter results.
	BlendScreen

	// BlendOverlay combines multiply and screen based on destination
	// brightness.
	BlendOverlay
)

// Paint represents the styling information for filling.
type Paint struct {
	// Color is the fill color (straight alpha).
	Color RGBA

	// FillRule is the fill rule for paths.
	FillRule FillRule

	// Blend is how fill pixels combine with the destination.
	Blend BlendMode

	// Antialias enables anti-aliased edges.
	Antialias bool
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		Color:     Black,
		FillRule:  FillRuleNonZero,
		Blend:     BlendNormal,
		Antialias: true,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}
