package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/tiff"
)

// Format identifies an image container format for encoding.
type Format int

const (
	// FormatTIFF is the primary interchange container: RGBA8 with alpha,
	// deflate-compressed.
	FormatTIFF Format = iota

	// FormatPNG encodes lossless PNG.
	FormatPNG

	// FormatJPEG encodes lossy JPEG. JPEG has no alpha channel; the
	// image is composited as-is onto the codec's opaque output.
	FormatJPEG
)

// String returns the conventional file extension name of the format.
func (f Format) String() string {
	switch f {
	case FormatTIFF:
		return "tiff"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// jpegQuality is the quality used for JPEG encoding.
const jpegQuality = 90

// EncodeTo encodes the pixmap into the given format and writes it to w.
func EncodeTo(w io.Writer, pm *Pixmap, format Format) error {
	img := pm.ToImage()

	var err error
	switch format {
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{
			Compression: tiff.Deflate,
			Predictor:   true,
		})
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return fmt.Errorf("format %d: %w", int(format), ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}

// Encode encodes the pixmap into the given format and returns the bytes.
func Encode(pm *Pixmap, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeTo(&buf, pm, format); err != nil {
		return nil, err
	}
	Logger().Debug("encoded image",
		"format", format.String(),
		"width", pm.Width(),
		"height", pm.Height(),
		"bytes", buf.Len())
	return buf.Bytes(), nil
}

// Decode reads an encoded image (TIFF, PNG, or JPEG) from r and returns
// it as a pixmap.
func Decode(r io.Reader) (*Pixmap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return FromImage(img)
}

// DecodeBytes decodes an encoded image from a byte slice.
func DecodeBytes(data []byte) (*Pixmap, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// LoadImage reads and decodes an image file.
func LoadImage(path string) (*Pixmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile writes data to path atomically: the bytes go to a temporary
// file in the same directory which is then renamed over the
// destination. The destination is either fully replaced or left
// untouched.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".canvas-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		if rmErr := os.Remove(tmpName); rmErr != nil {
			Logger().Warn("temp file cleanup failed", "path", tmpName, "error", rmErr)
		}
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// SaveFile encodes the pixmap and writes it to path atomically.
func SaveFile(path string, pm *Pixmap, format Format) error {
	data, err := Encode(pm, format)
	if err != nil {
		return err
	}
	return WriteFile(path, data)
}

// EncodePNG encodes the context's image as PNG to the given writer.
func (c *Context) EncodePNG(w io.Writer) error {
	return EncodeTo(w, c.pixmap, FormatPNG)
}

// EncodeJPEG encodes the context's image as JPEG to the given writer.
func (c *Context) EncodeJPEG(w io.Writer) error {
	return EncodeTo(w, c.pixmap, FormatJPEG)
}

// SavePNG writes the context's image to a PNG file atomically.
func (c *Context) SavePNG(path string) error {
	return SaveFile(path, c.pixmap, FormatPNG)
}
