// Package renderer draws a rank histogram onto a raster image.
package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/linuxmatters/rankhist/internal/config"
	"github.com/linuxmatters/rankhist/internal/errs"
	"github.com/linuxmatters/rankhist/internal/histogram"
	"golang.org/x/image/draw"
)

// layout maps data coordinates onto the pixel rectangle of the plot area.
// The x axis is segmented: value v covers the cell [v, v+1).
type layout struct {
	plot image.Rectangle
	xMax int
	yMax int
}

// newLayout reserves the caption, label areas and margins around the plot.
func newLayout(geom config.Geometry, a config.Appearance, titleHeight, xMax, yMax int) (layout, error) {
	if xMax < 1 || yMax < 1 {
		return layout{}, fmt.Errorf("%w: axis ranges must be positive, got x=%d y=%d", errs.ErrInvariant, xMax, yMax)
	}

	top := a.Margin
	if titleHeight > 0 {
		top += titleHeight + config.TitleGap
	}

	left := a.Margin + a.YLabelArea
	right := geom.Width - a.Margin
	bottom := geom.Height - a.Margin - a.XLabelArea

	// image.Rect would silently swap inverted edges
	if right-left < 1 || bottom-top < 1 {
		return layout{}, fmt.Errorf("%w: geometry %s leaves no room for the plot area", errs.ErrRender, geom)
	}
	plot := image.Rect(left, top, right, bottom)

	return layout{plot: plot, xMax: xMax, yMax: yMax}, nil
}

// xPos returns the pixel column where cell v starts.
func (l layout) xPos(v float64) int {
	return l.plot.Min.X + int(math.Round(v*float64(l.plot.Dx())/float64(l.xMax)))
}

// yPos returns the pixel row of count v. Zero sits on the bottom edge.
func (l layout) yPos(v float64) int {
	return l.plot.Max.Y - int(math.Round(v*float64(l.plot.Dy())/float64(l.yMax)))
}

// Chart renders one rank histogram.
type Chart struct {
	img    *image.RGBA
	fonts  *Fonts
	layout layout
	pc     config.PlotConfig
}

// RenderImage draws ranks (ascending) as bars in descending order, rank 1
// leftmost, against a count axis of 0..yMax.
func RenderImage(ranks histogram.RankSeries, yMax int, pc config.PlotConfig) (*image.RGBA, error) {
	if ranks.Len() == 0 {
		return nil, fmt.Errorf("%w: no ranks to draw", errs.ErrInvariant)
	}
	if ranks.Max() > yMax {
		return nil, fmt.Errorf("%w: max count %d exceeds axis bound %d", errs.ErrInvariant, ranks.Max(), yMax)
	}

	fonts, err := LoadFonts(pc.Appearance)
	if err != nil {
		return nil, err
	}
	defer fonts.Close()

	titleHeight := 0
	if pc.Title != "" {
		titleHeight = lineHeight(fonts.Title)
	}

	l, err := newLayout(pc.Geometry, pc.Appearance, titleHeight, histogram.XExtent(ranks.Len()), yMax)
	if err != nil {
		return nil, err
	}

	c := &Chart{
		img:    image.NewRGBA(image.Rect(0, 0, pc.Geometry.Width, pc.Geometry.Height)),
		fonts:  fonts,
		layout: l,
		pc:     pc,
	}
	c.Draw(ranks.Descending())
	return c.img, nil
}

// Draw paints the full chart. Bars are drawn over the mesh.
func (c *Chart) Draw(descending []int) {
	a := c.pc.Appearance

	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(a.BackgroundColor), image.Point{}, draw.Src)

	c.drawMesh()
	c.drawBars(descending)
	c.drawAxes()
	c.drawYTicks()
	c.drawXTicks()
	c.drawDescriptions()
	c.drawTitle()
}

// drawMesh draws horizontal grid lines only. Light lines subdivide each
// labelled step into ten when they are far enough apart.
func (c *Chart) drawMesh() {
	a := c.pc.Appearance
	l := c.layout
	step := tickStep(l.yMax, config.MaxTicks)

	sub := float64(step) / 10
	if sub*float64(l.plot.Dy())/float64(l.yMax) >= config.MinLightGridSpacing {
		for k := 1; float64(k)*sub <= float64(l.yMax); k++ {
			if k%10 == 0 {
				continue
			}
			c.hline(l.yPos(float64(k)*sub), a.LightGridColor)
		}
	}

	for v := step; v <= l.yMax; v += step {
		c.hline(l.yPos(float64(v)), a.GridColor)
	}
}

// hline draws a one pixel line across the plot area at row y.
func (c *Chart) hline(y int, col color.Color) {
	plot := c.layout.plot
	if y < plot.Min.Y || y >= plot.Max.Y {
		return
	}
	c.fill(image.Rect(plot.Min.X, y, plot.Max.X, y+1), col)
}

func (c *Chart) fill(r image.Rectangle, col color.Color) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// drawBars fills bar x over the cell [x, x+1) from zero up to its count.
// Adjacent bars share their edge pixel column, so there is no gap.
func (c *Chart) drawBars(descending []int) {
	l := c.layout
	col := c.pc.Appearance.BarColor

	for x, count := range descending {
		bar := image.Rect(
			l.xPos(float64(x)),
			l.yPos(float64(count)),
			l.xPos(float64(x+1)),
			l.plot.Max.Y,
		)
		c.fill(bar, col)
	}
}

// drawAxes draws the left and bottom axis lines just outside the plot area.
func (c *Chart) drawAxes() {
	plot := c.layout.plot
	col := c.pc.Appearance.TextColor

	c.fill(image.Rect(plot.Min.X-1, plot.Min.Y, plot.Min.X, plot.Max.Y+1), col)
	c.fill(image.Rect(plot.Min.X-1, plot.Max.Y, plot.Max.X, plot.Max.Y+1), col)
}

func (c *Chart) drawYTicks() {
	l := c.layout
	col := c.pc.Appearance.TextColor
	face := c.fonts.Label
	ascent := face.Metrics().Ascent.Ceil()

	step := tickStep(l.yMax, config.MaxTicks)
	for v := 0; v <= l.yMax; v += step {
		y := l.yPos(float64(v))
		c.fill(image.Rect(l.plot.Min.X-1-config.TickLength, y, l.plot.Min.X-1, y+1), col)
		drawTextRight(c.img, face, col, strconv.Itoa(v),
			l.plot.Min.X-1-config.TickLength-4, y+ascent/2)
	}
}

// drawXTicks labels cells by rank, so the first cell reads 1.
func (c *Chart) drawXTicks() {
	l := c.layout
	col := c.pc.Appearance.TextColor
	face := c.fonts.Label
	baseline := l.plot.Max.Y + 1 + config.TickLength + 2 + face.Metrics().Ascent.Ceil()

	for _, rank := range xTickRanks(l.xMax, config.MaxTicks) {
		cx := (l.xPos(float64(rank-1)) + l.xPos(float64(rank))) / 2
		c.fill(image.Rect(cx, l.plot.Max.Y+1, cx+1, l.plot.Max.Y+1+config.TickLength), col)
		drawTextCentered(c.img, face, col, strconv.Itoa(rank), cx, baseline)
	}
}

// drawDescriptions places the x description along the bottom edge and the y
// description, rotated, along the left edge.
func (c *Chart) drawDescriptions() {
	l := c.layout
	a := c.pc.Appearance
	face := c.fonts.Axis

	if c.pc.XDesc != "" {
		centerX := (l.plot.Min.X + l.plot.Max.X) / 2
		baseline := c.img.Bounds().Dy() - a.Margin - face.Metrics().Descent.Ceil()
		drawTextCentered(c.img, face, a.TextColor, c.pc.XDesc, centerX, baseline)
	}

	if c.pc.YDesc != "" {
		centerY := (l.plot.Min.Y + l.plot.Max.Y) / 2
		drawRotatedTextCentered(c.img, face, a.TextColor, c.pc.YDesc, a.Margin, centerY)
	}
}

func (c *Chart) drawTitle() {
	if c.pc.Title == "" {
		return
	}
	a := c.pc.Appearance
	face := c.fonts.Title

	width, _ := measureText(face, c.pc.Title)
	x := (c.img.Bounds().Dx() - width) / 2
	drawText(c.img, face, a.TextColor, c.pc.Title, x, a.Margin+face.Metrics().Ascent.Ceil())
}

// tickStep returns a 1, 2 or 5 times power-of-ten step that puts at most
// maxTicks intervals on [0, span].
func tickStep(span, maxTicks int) int {
	if span <= maxTicks {
		return 1
	}

	raw := float64(span) / float64(maxTicks)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, m := range []float64{1, 2, 5, 10} {
		if step := m * mag; step >= raw {
			return int(math.Round(step))
		}
	}
	return int(math.Round(10 * mag))
}

// xTickRanks returns the ranks to label on an axis of xMax cells: rank 1 and
// every multiple of the tick step.
func xTickRanks(xMax, maxTicks int) []int {
	step := tickStep(xMax, maxTicks)
	ranks := []int{1}
	for r := step; r <= xMax; r += step {
		if r != 1 {
			ranks = append(ranks, r)
		}
	}
	return ranks
}
