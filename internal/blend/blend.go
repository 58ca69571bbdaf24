// Package blend provides color blending operations.
//
// Separable blend modes follow the W3C Compositing and Blending Level 1
// specification: the per-channel blend function B(Cs, Cb) is applied to
// unmultiplied channels and the result is composited source-over.
package blend

// RGBA represents a straight-alpha color (internal copy to avoid import
// cycle). Components are in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Mode represents a blending mode.
type Mode int

const (
	// Normal is standard source-over alpha compositing.
	Normal Mode = iota
	// Multiply multiplies source and destination channels: B(s,b) = s*b.
	Multiply
	// Screen is the inverse multiply: B(s,b) = 1 - (1-s)*(1-b).
	Screen
	// Overlay multiplies or screens depending on the backdrop channel.
	Overlay
)

// Blend combines a source color with a backdrop color using the given
// mode. Both inputs and the result use straight (non-premultiplied) alpha.
func Blend(src, dst RGBA, mode Mode) RGBA {
	var blendChan func(s, b float64) float64
	switch mode {
	case Multiply:
		blendChan = func(s, b float64) float64 { return s * b }
	case Screen:
		blendChan = func(s, b float64) float64 { return 1 - (1-s)*(1-b) }
	case Overlay:
		blendChan = func(s, b float64) float64 {
			if b <= 0.5 {
				return 2 * s * b
			}
			return 1 - 2*(1-s)*(1-b)
		}
	default:
		return sourceOver(src, dst)
	}
	return separable(src, dst, blendChan)
}

// sourceOver blends source over destination using alpha compositing.
func sourceOver(src, dst RGBA) RGBA {
	srcA := src.A
	dstA := dst.A
	invSrcA := 1.0 - srcA

	outA := srcA + dstA*invSrcA
	if outA == 0 {
		return RGBA{}
	}

	return RGBA{
		R: (src.R*srcA + dst.R*dstA*invSrcA) / outA,
		G: (src.G*srcA + dst.G*dstA*invSrcA) / outA,
		B: (src.B*srcA + dst.B*dstA*invSrcA) / outA,
		A: outA,
	}
}

// separable applies a per-channel blend function and composites the
// result source-over:
//
//	Co = Sa*(1-Da)*Cs + Sa*Da*B(Cs,Cb) + (1-Sa)*Da*Cb
//	Ao = Sa + Da*(1-Sa)
func separable(src, dst RGBA, blendChan func(s, b float64) float64) RGBA {
	sa := src.A
	da := dst.A

	outA := sa + da*(1-sa)
	if outA == 0 {
		return RGBA{}
	}

	mix := func(cs, cb float64) float64 {
		co := sa*(1-da)*cs + sa*da*blendChan(cs, cb) + (1-sa)*da*cb
		return co / outA
	}

	return RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: outA,
	}
}
