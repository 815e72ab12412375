package renderer

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/linuxmatters/rankhist/internal/config"
	"github.com/linuxmatters/rankhist/internal/errs"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the three faces a chart is drawn with.
type Fonts struct {
	Title font.Face // caption above the plot
	Label font.Face // tick labels
	Axis  font.Face // axis descriptions
}

// LoadFont parses TrueType data and returns a face of the given size
func LoadFont(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	return face, nil
}

// LoadFonts builds the chart faces from the bundled Go fonts
func LoadFonts(a config.Appearance) (*Fonts, error) {
	title, err := LoadFont(gobold.TTF, a.TitleFontSize)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load title font: %w", errs.ErrRender, err)
	}

	label, err := LoadFont(goregular.TTF, a.LabelFontSize)
	if err != nil {
		title.Close()
		return nil, fmt.Errorf("%w: failed to load label font: %w", errs.ErrRender, err)
	}

	axis, err := LoadFont(goregular.TTF, a.AxisFontSize)
	if err != nil {
		title.Close()
		label.Close()
		return nil, fmt.Errorf("%w: failed to load axis font: %w", errs.ErrRender, err)
	}

	return &Fonts{Title: title, Label: label, Axis: axis}, nil
}

// Close releases every face
func (f *Fonts) Close() {
	f.Title.Close()
	f.Label.Close()
	f.Axis.Close()
}
