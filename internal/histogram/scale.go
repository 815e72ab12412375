package histogram

import (
	"fmt"
	"math"

	"github.com/linuxmatters/rankhist/internal/config"
	"github.com/linuxmatters/rankhist/internal/errs"
)

// stepsPerDecade is the resolution of the logarithmic grid AxisScale rounds to.
const stepsPerDecade = 10

// gridSnap absorbs log10 rounding error for counts that sit exactly on a grid
// step, such as powers of ten.
const gridSnap = 1e-9

// AxisScale returns the upper bound of the count axis for a maximum count m:
//
//	B = 10^(ceil(log10(m)*10)/10), truncated
//
// which rounds up on a grid of ten logarithmic steps per decade. m must be at
// least 1; anything else means an empty table slipped past aggregation.
func AxisScale(m int) (int, error) {
	if m < 1 {
		return 0, fmt.Errorf("%w: axis scale needs a maximum count >= 1, got %d", errs.ErrInvariant, m)
	}

	steps := math.Log10(float64(m)) * stepsPerDecade
	if r := math.Round(steps); math.Abs(steps-r) < gridSnap {
		steps = r
	}
	b := int(math.Pow(10, math.Ceil(steps)/stepsPerDecade))

	// 10^x may still truncate just below m
	if b < m {
		b = m
	}
	return b, nil
}

// XExtent returns the width of the rank axis for n distinct keys: n plus 10%
// padding, rounded up. Integer arithmetic keeps 10 keys at 11 cells.
func XExtent(n int) int {
	return (n*(100+config.XPaddingPercent) + 99) / 100
}
