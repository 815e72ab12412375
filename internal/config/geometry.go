package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/linuxmatters/rankhist/internal/errs"
)

// Geometry is the pixel size of the raster image.
type Geometry struct {
	Width  int
	Height int
}

func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Width, g.Height)
}

// ParseGeometry parses "WIDTHxHEIGHT". There must be exactly one literal 'x'
// and both parts must be positive integers.
func ParseGeometry(s string) (Geometry, error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return Geometry{}, fmt.Errorf("%w: geometry %q is not in WIDTHxHEIGHT format", errs.ErrParse, s)
	}

	width, err := strconv.Atoi(parts[0])
	if err != nil || width <= 0 {
		return Geometry{}, fmt.Errorf("%w: geometry %q: width %q is not a positive integer", errs.ErrParse, s, parts[0])
	}

	height, err := strconv.Atoi(parts[1])
	if err != nil || height <= 0 {
		return Geometry{}, fmt.Errorf("%w: geometry %q: height %q is not a positive integer", errs.ErrParse, s, parts[1])
	}

	return Geometry{Width: width, Height: height}, nil
}
