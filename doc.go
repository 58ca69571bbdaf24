// Package canvas provides a small CPU 2D drawing library for Go.
//
// # Overview
//
// canvas offers an immediate-mode drawing API over a premultiplied RGBA
// pixel buffer, plus a streaming PDF page sink with the same drawing
// surface. Both context kinds resolve their coordinate convention once at
// creation time: callers pick the origin they want to draw in (top-left
// Y-down by default) and never branch on the target's native convention
// again.
//
// # Quick Start
//
//	import "github.com/softink/canvas"
//
//	dc, err := canvas.NewContext(512, 512)
//	if err != nil {
//		log.Fatal(err)
//	}
//	dc.SetColor(canvas.Orange)
//	dc.DrawCircle(256, 256, 100)
//	dc.Fill()
//
//	data, err := canvas.Encode(dc.Pixmap(), canvas.FormatTIFF)
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = canvas.WriteFile("circle.tiff", data)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Context, PDF, Path, Paint, Matrix, Pixmap, image ops
//   - Internal: raster (scanline fill), path (flattening), blend (compositing)
//
// All operations are synchronous and every context owns its buffers; no
// state is shared between calls.
package canvas
