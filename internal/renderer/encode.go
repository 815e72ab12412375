package renderer

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/linuxmatters/rankhist/internal/config"
	"github.com/linuxmatters/rankhist/internal/errs"
	"github.com/linuxmatters/rankhist/internal/histogram"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is a raster file encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

const jpegQuality = 95

// FormatFromPath picks the encoding from the file extension. Unknown or
// missing extensions fall back to PNG.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	default:
		return FormatPNG
	}
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(w, img)
	}
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %w", errs.ErrRender, format, err)
	}
	return nil
}

// SaveImage writes img to outputPath, replacing any existing file
func SaveImage(img image.Image, outputPath string) error {
	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", errs.ErrIO, outputPath, err)
	}

	if err := Encode(outFile, img, FormatFromPath(outputPath)); err != nil {
		outFile.Close()
		return err
	}
	if err := outFile.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", errs.ErrIO, outputPath, err)
	}
	return nil
}

// Raster renders the chart and saves it to pc.Output.
// It satisfies histogram.RasterFunc.
func Raster(ranks histogram.RankSeries, yMax int, pc config.PlotConfig) error {
	img, err := RenderImage(ranks, yMax, pc)
	if err != nil {
		return err
	}
	return SaveImage(img, pc.Output)
}

var _ histogram.RasterFunc = Raster
