package canvas

import "errors"

// Failure sentinels. Every fallible operation returns an error instead of
// aborting; callers decide whether a failure is fatal.
var (
	// ErrInvalidSize is returned when a context or buffer is requested
	// with non-positive dimensions.
	ErrInvalidSize = errors.New("canvas: invalid dimensions")

	// ErrSizeOverflow is returned when the requested dimensions would
	// overflow the pixel buffer size.
	ErrSizeOverflow = errors.New("canvas: dimensions overflow buffer size")

	// ErrUnsupportedFormat is returned when an image format is not
	// supported by the codec.
	ErrUnsupportedFormat = errors.New("canvas: unsupported format")

	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("canvas: empty data")

	// ErrPageOpen is returned when a PDF document is closed while one or
	// more pages are still open.
	ErrPageOpen = errors.New("canvas: pdf page still open")

	// ErrNoPage is returned when a PDF document is closed before any
	// page was added; a page tree needs at least one page.
	ErrNoPage = errors.New("canvas: pdf document has no pages")

	// ErrClosed is returned when a closed context or document is used.
	ErrClosed = errors.New("canvas: use after close")
)
