package config

import (
	"fmt"
	"image/color"

	"github.com/linuxmatters/rankhist/internal/errs"
)

// Appearance is the resolved look of the raster chart.
type Appearance struct {
	BarColor        color.RGBA
	TextColor       color.RGBA
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	LightGridColor  color.RGBA

	TitleFontSize float64
	LabelFontSize float64
	AxisFontSize  float64

	Margin     int
	XLabelArea int
	YLabelArea int
}

// DefaultAppearance returns the appearance with no overrides applied.
func DefaultAppearance() Appearance {
	return (&RuntimeConfig{}).Appearance()
}

// Appearance resolves the overrides against the defaults.
func (c *RuntimeConfig) Appearance() Appearance {
	return Appearance{
		BarColor:        c.GetBarColor(),
		TextColor:       c.GetTextColor(),
		BackgroundColor: c.GetBackgroundColor(),
		GridColor:       c.GetGridColor(),
		LightGridColor:  c.GetLightGridColor(),
		TitleFontSize:   c.GetTitleFontSize(),
		LabelFontSize:   c.GetLabelFontSize(),
		AxisFontSize:    c.GetAxisFontSize(),
		Margin:          c.GetMargin(),
		XLabelArea:      XLabelArea,
		YLabelArea:      YLabelArea,
	}
}

// PlotConfig is the read-only bundle the raster renderer draws from.
type PlotConfig struct {
	Title      string
	XDesc      string
	YDesc      string
	Geometry   Geometry
	Output     string
	Appearance Appearance
}

// Flags is the raw configuration surface as typed on the command line.
type Flags struct {
	Input      string
	Delimiter  string
	Key        int
	Output     string
	NoOutput   bool
	Header     bool
	TextPlot   bool
	Save       string
	Title      string
	Geometry   string
	XDesc      string
	YDesc      string
	TextWidth  int
	TextHeight int
}

// Options is the validated configuration handed to the pipeline.
type Options struct {
	Input     string // empty or "-" reads standard input
	Delimiter byte
	Column    int // 1-indexed
	HasHeader bool

	NoImage  bool
	TextPlot bool
	SavePath string // empty disables, SaveToStdout writes to the console

	TextWidth  int
	TextHeight int

	Plot PlotConfig
}

// ReadsStdin reports whether input comes from standard input.
func (o Options) ReadsStdin() bool {
	return o.Input == "" || o.Input == "-"
}

// Build validates the raw flags and resolves them into Options. rc may be nil.
func Build(f Flags, rc *RuntimeConfig) (Options, error) {
	if rc == nil {
		rc = &RuntimeConfig{}
	}

	if f.Key < 1 {
		return Options{}, fmt.Errorf("%w: key column must be >= 1, got %d", errs.ErrValidation, f.Key)
	}

	delim, err := ResolveDelimiter(f.Delimiter)
	if err != nil {
		return Options{}, err
	}

	geom, err := ParseGeometry(f.Geometry)
	if err != nil {
		return Options{}, err
	}

	if f.TextPlot && (f.TextWidth < 2 || f.TextHeight < 4) {
		return Options{}, fmt.Errorf("%w: text chart needs at least 2x4 dots, got %dx%d",
			errs.ErrValidation, f.TextWidth, f.TextHeight)
	}

	if !f.NoOutput && f.Output == "" {
		return Options{}, fmt.Errorf("%w: output path must not be empty", errs.ErrValidation)
	}

	return Options{
		Input:      f.Input,
		Delimiter:  delim,
		Column:     f.Key,
		HasHeader:  f.Header,
		NoImage:    f.NoOutput,
		TextPlot:   f.TextPlot,
		SavePath:   f.Save,
		TextWidth:  f.TextWidth,
		TextHeight: f.TextHeight,
		Plot: PlotConfig{
			Title:      f.Title,
			XDesc:      f.XDesc,
			YDesc:      f.YDesc,
			Geometry:   geom,
			Output:     f.Output,
			Appearance: rc.Appearance(),
		},
	}, nil
}

// DefaultFlags returns the flag values used when nothing is specified.
func DefaultFlags() Flags {
	return Flags{
		Delimiter:  DefaultDelimiter,
		Key:        DefaultKeyColumn,
		Output:     DefaultOutput,
		Title:      DefaultTitle,
		Geometry:   DefaultGeometry,
		XDesc:      DefaultXDesc,
		YDesc:      DefaultYDesc,
		TextWidth:  TextWidth,
		TextHeight: TextHeight,
	}
}
