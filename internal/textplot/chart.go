// Package textplot draws charts with braille characters for the terminal.
package textplot

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/linuxmatters/rankhist/internal/cli"
	"github.com/linuxmatters/rankhist/internal/errs"
)

// Minimum canvas size: one braille cell
const (
	MinWidth  = cellWidth
	MinHeight = cellHeight
)

var (
	barStyle   = lipgloss.NewStyle().Foreground(cli.BarBlue)
	frameStyle = lipgloss.NewStyle().Foreground(cli.DeepNavy)
	labelStyle = lipgloss.NewStyle().Foreground(cli.SlateGray)
)

// Point is a data coordinate.
type Point struct {
	X, Y float64
}

// Chart maps data coordinates in [XMin, XMax] x [YMin, YMax] onto a canvas
// of Width x Height dots.
type Chart struct {
	Width  int
	Height int
	XMin   float64
	XMax   float64
	YMin   float64
	YMax   float64

	canvas *Canvas
}

// NewWithYRange returns an empty chart with explicit ranges on both axes.
func NewWithYRange(width, height int, xmin, xmax, ymin, ymax float64) (*Chart, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("%w: text chart needs at least %dx%d dots, got %dx%d",
			errs.ErrValidation, MinWidth, MinHeight, width, height)
	}
	if !(xmax > xmin) || !(ymax > ymin) {
		return nil, fmt.Errorf("%w: empty text chart range x=[%g, %g] y=[%g, %g]",
			errs.ErrInvariant, xmin, xmax, ymin, ymax)
	}

	return &Chart{
		Width:  width,
		Height: height,
		XMin:   xmin,
		XMax:   xmax,
		YMin:   ymin,
		YMax:   ymax,
		canvas: NewCanvas(width, height),
	}, nil
}

// dotX returns the canvas column for data x.
func (c *Chart) dotX(x float64) int {
	return int(math.Round((x - c.XMin) / (c.XMax - c.XMin) * float64(c.Width-1)))
}

// dotY returns the canvas row for data y. Rows grow downwards.
func (c *Chart) dotY(y float64) int {
	return c.Height - 1 - int(math.Round((y-c.YMin)/(c.YMax-c.YMin)*float64(c.Height-1)))
}

// Bars draws points as a bar outline. Each bar rises at its own x, runs
// flat at its y and drops back to YMin at the next point's x. The last bar
// is one unit wide.
func (c *Chart) Bars(points []Point) {
	base := c.dotY(c.YMin)
	for i, p := range points {
		next := p.X + 1
		if i+1 < len(points) {
			next = points[i+1].X
		}

		x0, x1, y := c.dotX(p.X), c.dotX(next), c.dotY(p.Y)
		c.canvas.Line(x0, base, x0, y)
		c.canvas.Line(x0, y, x1, y)
		c.canvas.Line(x1, y, x1, base)
	}
}

// Rows returns the drawn canvas without frame or labels.
func (c *Chart) Rows() []string {
	return c.canvas.Rows()
}

// Render writes the framed chart to w. The first and last rows carry the y
// range and a line below the frame carries the x range.
func (c *Chart) Render(w io.Writer, styled bool) error {
	paint := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	rows := c.canvas.Rows()
	rule := strings.Repeat("─", c.canvas.Cols())

	var sb strings.Builder
	sb.WriteString(paint(frameStyle, "┌"+rule+"┐"))
	sb.WriteString("\n")
	for i, row := range rows {
		sb.WriteString(paint(frameStyle, "│"))
		sb.WriteString(paint(barStyle, row))
		sb.WriteString(paint(frameStyle, "│"))
		switch i {
		case 0:
			sb.WriteString(" " + paint(labelStyle, formatLabel(c.YMax)))
		case len(rows) - 1:
			sb.WriteString(" " + paint(labelStyle, formatLabel(c.YMin)))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(paint(frameStyle, "└"+rule+"┘"))
	sb.WriteString("\n")

	xmin, xmax := formatLabel(c.XMin), formatLabel(c.XMax)
	gap := c.canvas.Cols() + 2 - len(xmin) - len(xmax)
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(paint(labelStyle, xmin+strings.Repeat(" ", gap)+xmax))
	sb.WriteString("\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("%w: writing text chart: %w", errs.ErrIO, err)
	}
	return nil
}

func formatLabel(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
