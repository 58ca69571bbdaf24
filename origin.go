package canvas

// Origin selects the coordinate convention a context's callers draw in.
// It is resolved exactly once, at context creation, into a baseline
// transform; no other code branches on the convention.
//
// The pixel buffer backend is natively top-left Y-down (row-major rows),
// so OriginTopLeft is the identity there and OriginBottomLeft needs a
// flip. A PDF page is natively bottom-left Y-up, so the flip lands on the
// other side. Either way the caller sees one consistent convention.
type Origin int

const (
	// OriginTopLeft places (0,0) at the top-left corner with Y increasing
	// downward. This is the default.
	OriginTopLeft Origin = iota

	// OriginBottomLeft places (0,0) at the bottom-left corner with Y
	// increasing upward.
	OriginBottomLeft
)

// String returns the name of the origin convention.
func (o Origin) String() string {
	switch o {
	case OriginTopLeft:
		return "top-left"
	case OriginBottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}

// baseline returns the matrix mapping caller coordinates in convention o
// onto a top-left Y-down target of the given height. For a bottom-left
// caller convention this is a translate-by-height followed by a vertical
// flip; for top-left it is the identity.
func (o Origin) baseline(height float64) Matrix {
	if o == OriginBottomLeft {
		return Translate(0, height).Multiply(ScaleMatrix(1, -1))
	}
	return Identity()
}

// pdfBaseline returns the matrix mapping caller coordinates in convention
// o onto a PDF page of the given height, whose native convention is
// bottom-left Y-up. The flip is mirrored relative to baseline: a top-left
// caller needs it, a bottom-left caller does not.
func (o Origin) pdfBaseline(height float64) Matrix {
	if o == OriginTopLeft {
		return Translate(0, height).Multiply(ScaleMatrix(1, -1))
	}
	return Identity()
}
