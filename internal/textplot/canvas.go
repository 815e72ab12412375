package textplot

import "strings"

// Braille cells are 2 dots wide and 4 dots tall
const (
	cellWidth   = 2
	cellHeight  = 4
	brailleBase = 0x2800
)

// dotBits maps a dot inside a cell, indexed [row][col], to its braille bit
var dotBits = [cellHeight][cellWidth]byte{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of dots backed by braille characters. Dot (0, 0) is the
// top-left corner.
type Canvas struct {
	width  int
	height int
	cols   int
	rows   int
	cells  []byte
}

// NewCanvas returns a blank canvas of width x height dots.
func NewCanvas(width, height int) *Canvas {
	cols := (width + cellWidth - 1) / cellWidth
	rows := (height + cellHeight - 1) / cellHeight
	return &Canvas{
		width:  width,
		height: height,
		cols:   cols,
		rows:   rows,
		cells:  make([]byte, cols*rows),
	}
}

// Set turns on the dot at (x, y). Dots outside the canvas are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[(y/cellHeight)*c.cols+x/cellWidth] |= dotBits[y%cellHeight][x%cellWidth]
}

// Line draws a straight line between two dots, both ends included.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Rows returns one string per character row. Empty cells render as the blank
// braille pattern so every row has the same width.
func (c *Canvas) Rows() []string {
	out := make([]string, c.rows)
	var sb strings.Builder
	for r := 0; r < c.rows; r++ {
		sb.Reset()
		for _, bits := range c.cells[r*c.cols : (r+1)*c.cols] {
			sb.WriteRune(rune(brailleBase + int(bits)))
		}
		out[r] = sb.String()
	}
	return out
}

// Cols returns the canvas width in characters.
func (c *Canvas) Cols() int { return c.cols }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
