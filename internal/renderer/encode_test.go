package renderer

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/linuxmatters/rankhist/internal/errs"
)

func TestFormatFromPath(t *testing.T) {
	testCases := []struct {
		path string
		want Format
	}{
		{"histogram.png", FormatPNG},
		{"out/chart.PNG", FormatPNG},
		{"chart.jpg", FormatJPEG},
		{"chart.jpeg", FormatJPEG},
		{"chart.bmp", FormatBMP},
		{"chart.tif", FormatTIFF},
		{"chart.TIFF", FormatTIFF},
		{"chart.svg", FormatPNG},
		{"chart", FormatPNG},
	}

	for _, tc := range testCases {
		if got := FormatFromPath(tc.path); got != tc.want {
			t.Errorf("FormatFromPath(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

// TestEncode decodes each encoded image back to check its format and size.
func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 0x2a, G: 0x71, B: 0xb0, A: 255})
		}
	}

	for _, format := range []Format{FormatPNG, FormatJPEG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, img, format); err != nil {
				t.Fatalf("Encode() returned error: %v", err)
			}

			cfg, name, err := image.DecodeConfig(&buf)
			if err != nil {
				t.Fatalf("DecodeConfig() returned error: %v", err)
			}
			if name != string(format) {
				t.Errorf("decoded format = %q, want %q", name, format)
			}
			if cfg.Width != 32 || cfg.Height != 24 {
				t.Errorf("decoded size = %dx%d, want 32x24", cfg.Width, cfg.Height)
			}
		})
	}
}

func TestSaveImage_Unwritable(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	path := filepath.Join(t.TempDir(), "missing", "chart.png")

	if err := SaveImage(img, path); !errors.Is(err, errs.ErrIO) {
		t.Errorf("SaveImage() error = %v, want %v", err, errs.ErrIO)
	}
}
