package canvas

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default top-left origin, software rendering
//	dc, err := canvas.NewContext(800, 600)
//
//	// Bottom-left Y-up convention for the whole context lifetime
//	dc, err := canvas.NewContext(800, 600, canvas.WithOrigin(canvas.OriginBottomLeft))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	origin   Origin
	renderer Renderer
	pixmap   *Pixmap
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		origin:   OriginTopLeft,
		renderer: nil, // Will be set to SoftwareRenderer if nil
		pixmap:   nil, // Will be created if nil
	}
}

// WithOrigin sets the coordinate convention the context's callers draw
// in. The convention is resolved once, at creation.
func WithOrigin(o Origin) ContextOption {
	return func(opts *contextOptions) {
		opts.origin = o
	}
}

// WithRenderer sets a custom renderer for the Context.
// Use this for dependency injection of custom renderers.
func WithRenderer(r Renderer) ContextOption {
	return func(opts *contextOptions) {
		opts.renderer = r
	}
}

// WithPixmap sets a custom pixmap for the Context.
// The pixmap dimensions should match the Context dimensions.
func WithPixmap(pm *Pixmap) ContextOption {
	return func(opts *contextOptions) {
		opts.pixmap = pm
	}
}
