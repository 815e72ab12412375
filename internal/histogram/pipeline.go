package histogram

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/linuxmatters/rankhist/internal/config"
	"github.com/linuxmatters/rankhist/internal/errs"
)

// RasterFunc draws the rank series as an image described by pc.
type RasterFunc func(ranks RankSeries, yMax int, pc config.PlotConfig) error

// TextFunc draws the rank series as a text chart on w. The canvas is
// width x height dots and the x axis spans [xmin, xmax].
type TextFunc func(w io.Writer, ranks RankSeries, yMax, width, height int, xmin, xmax float64) error

// Pipeline runs one pass from input stream to outputs. Renderers are injected
// so this package stays free of drawing code.
type Pipeline struct {
	Options config.Options
	Stdout  io.Writer
	Logger  *slog.Logger
	Raster  RasterFunc
	Text    TextFunc
}

// Result summarises a completed run.
type Result struct {
	Table *FrequencyTable
	Ranks RankSeries
	YMax  int
	XMax  int
}

// RunInput opens the configured input, or reads stdin when none is set.
func (p *Pipeline) RunInput(stdin io.Reader) (*Result, error) {
	if p.Options.ReadsStdin() {
		return p.Run(stdin)
	}

	f, err := os.Open(p.Options.Input)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %w", errs.ErrIO, p.Options.Input, err)
	}
	defer f.Close()

	return p.Run(f)
}

// Run aggregates r and produces every requested output. The first failure
// aborts the run.
func (p *Pipeline) Run(r io.Reader) (*Result, error) {
	log := p.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	opts := p.Options

	start := time.Now()
	src, err := NewRecordSource(r, opts.Delimiter, opts.HasHeader)
	if err != nil {
		return nil, err
	}

	table, err := Aggregate(src, opts.Column)
	if err != nil {
		return nil, err
	}
	log.Debug("aggregated input",
		"records", src.Records(),
		"counted", table.Total(),
		"distinct", table.Len(),
		"column", opts.Column,
		"elapsed", time.Since(start))

	if opts.SavePath != "" {
		if err := SaveCounts(opts.SavePath, p.Stdout, table); err != nil {
			return nil, err
		}
		log.Debug("saved counts", "dest", opts.SavePath)
	}

	ranks := BuildRanks(table)
	yMax, err := AxisScale(ranks.Max())
	if err != nil {
		return nil, err
	}
	xMax := XExtent(ranks.Len())
	log.Debug("derived axes", "max_count", ranks.Max(), "y_max", yMax, "x_max", xMax)

	res := &Result{Table: table, Ranks: ranks, YMax: yMax, XMax: xMax}

	if opts.TextPlot {
		if p.Text == nil {
			return nil, fmt.Errorf("%w: text plot requested without a text renderer", errs.ErrInvariant)
		}
		if err := p.Text(p.Stdout, ranks, yMax, opts.TextWidth, opts.TextHeight, 0, float64(xMax)); err != nil {
			return nil, err
		}
	}

	if !opts.NoImage {
		if p.Raster == nil {
			return nil, fmt.Errorf("%w: image requested without a raster renderer", errs.ErrInvariant)
		}
		if err := p.Raster(ranks, yMax, opts.Plot); err != nil {
			return nil, err
		}
		log.Debug("wrote plot", "path", opts.Plot.Output, "geometry", opts.Plot.Geometry.String())
	}

	return res, nil
}
