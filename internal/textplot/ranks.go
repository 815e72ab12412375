package textplot

import (
	"io"
	"os"

	"github.com/linuxmatters/rankhist/internal/histogram"
	"github.com/mattn/go-isatty"
)

// PlotRanks draws ranks (ascending) as a descending bar chart on w, rank 1 at
// x = 1, with y spanning [0, yMax].
func PlotRanks(w io.Writer, ranks histogram.RankSeries, yMax, width, height int, xmin, xmax float64, styled bool) error {
	chart, err := NewWithYRange(width, height, xmin, xmax, 0, float64(yMax))
	if err != nil {
		return err
	}

	desc := ranks.Descending()
	points := make([]Point, len(desc))
	for i, count := range desc {
		points[i] = Point{X: float64(i + 1), Y: float64(count)}
	}

	chart.Bars(points)
	return chart.Render(w, styled)
}

// Renderer returns a histogram.TextFunc that styles its output when the
// destination is a terminal.
func Renderer() histogram.TextFunc {
	return func(w io.Writer, ranks histogram.RankSeries, yMax, width, height int, xmin, xmax float64) error {
		return PlotRanks(w, ranks, yMax, width, height, xmin, xmax, IsTerminal(w))
	}
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
