package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/softink/canvas"
)

type options struct {
	OutputDir string  `short:"o" long:"output-dir" default:"." description:"The output directory"`
	Photo     string  `short:"p" long:"photo" description:"Input photo (PNG/JPEG/TIFF); a placeholder is generated if omitted"`
	Radius    float64 `short:"r" long:"radius" default:"100" description:"Circle radius in pixels"`
	Verbose   bool    `short:"v" long:"verbose" description:"Enable debug logging"`
}

func parseCmd() options {
	var opts options
	cmdParser := flags.NewParser(&opts, flags.Default)

	if _, err := cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	var err error
	if opts.OutputDir, err = filepath.Abs(opts.OutputDir); err != nil {
		log.WithError(err).Fatal("Bad output directory")
	}

	return opts
}

// drawCircleImages renders the filled circle and writes it as TIFF and PNG.
func drawCircleImages(opts options) error {
	circle, err := canvas.CircleImage(opts.Radius, canvas.Orange)
	if err != nil {
		return fmt.Errorf("draw circle: %w", err)
	}

	for _, format := range []canvas.Format{canvas.FormatTIFF, canvas.FormatPNG} {
		path := filepath.Join(opts.OutputDir, "circle."+format.String())
		if err := canvas.SaveFile(path, circle, format); err != nil {
			return err
		}
		log.WithField("path", path).Info("Wrote circle image")
	}
	return nil
}

// writePDF emits a two-page document: a circle page and a square page.
func writePDF(opts options) (err error) {
	path := filepath.Join(opts.OutputDir, "shapes.pdf")
	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	size := 2 * opts.Radius
	doc, err := canvas.NewPDF(fd, size, size)
	if err != nil {
		return err
	}

	page, err := doc.AddPage()
	if err != nil {
		return err
	}
	page.SetColor(canvas.Orange)
	page.DrawCircle(opts.Radius, opts.Radius, opts.Radius)
	page.Fill()
	if err := page.Close(); err != nil {
		return err
	}

	page, err = doc.AddPage()
	if err != nil {
		return err
	}
	page.SetColor(canvas.Blue)
	page.DrawRectangle(size/4, size/4, size/2, size/2)
	page.Fill()
	if err := page.Close(); err != nil {
		return err
	}

	if err := doc.Close(); err != nil {
		return err
	}
	log.WithField("path", path).Info("Wrote PDF")
	return nil
}

// loadPhoto reads the input photo, or synthesizes a stand-in when none
// was given.
func loadPhoto(opts options) (*canvas.Pixmap, error) {
	if opts.Photo != "" {
		return canvas.LoadImage(opts.Photo)
	}

	dc, err := canvas.NewContext(640, 480)
	if err != nil {
		return nil, err
	}
	dc.ClearWithColor(canvas.RGB(0.2, 0.4, 0.7))
	dc.SetColor(canvas.Yellow)
	dc.DrawCircle(480, 120, 60)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	dc.SetColor(canvas.RGB(0.1, 0.5, 0.2))
	dc.DrawRectangle(0, 360, 640, 120)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	return dc.Pixmap(), nil
}

// transformPhoto runs the scale, crop, and tint pipeline and writes
// each intermediate result.
func transformPhoto(opts options) error {
	photo, err := loadPhoto(opts)
	if err != nil {
		return fmt.Errorf("load photo: %w", err)
	}

	scaled, err := canvas.Scale(photo, 340, 200)
	if err != nil {
		return err
	}

	cropBox := image.Rect(70, 40, 270, 160)
	cropped, err := canvas.Crop(scaled, cropBox)
	if err != nil {
		return err
	}

	tinted, err := canvas.Tint(cropped, canvas.Red.WithAlpha(0.5), canvas.BlendMultiply)
	if err != nil {
		return err
	}

	outputs := []struct {
		name string
		pm   *canvas.Pixmap
	}{
		{"photo-scaled.png", scaled},
		{"photo-cropped.png", cropped},
		{"photo-tinted.png", tinted},
	}
	for _, out := range outputs {
		path := filepath.Join(opts.OutputDir, out.name)
		if err := canvas.SaveFile(path, out.pm, canvas.FormatPNG); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"path":   path,
			"width":  out.pm.Width(),
			"height": out.pm.Height(),
		}).Info("Wrote photo")
	}
	return nil
}

func run(opts options) error {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return err
	}
	if err := drawCircleImages(opts); err != nil {
		return err
	}
	if err := writePDF(opts); err != nil {
		return err
	}
	return transformPhoto(opts)
}

func main() {
	opts := parseCmd()
	if opts.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(opts); err != nil {
		log.WithError(err).Fatal("canvasdemo failed")
	}
}
