package textplot

import (
	"slices"
	"testing"
)

func TestCanvas_Set(t *testing.T) {
	testCases := []struct {
		name string
		dots [][2]int
		want string
	}{
		{"blank", nil, "⠀"},
		{"top left", [][2]int{{0, 0}}, "⠁"},
		{"bottom right", [][2]int{{1, 3}}, "⢀"},
		{"left column", [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}}, "⡇"},
		{"full cell", [][2]int{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}, {1, 3}}, "⣿"},
		{"outside ignored", [][2]int{{-1, 0}, {2, 0}, {0, 4}}, "⠀"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(2, 4)
			for _, d := range tc.dots {
				c.Set(d[0], d[1])
			}
			if got := c.Rows(); !slices.Equal(got, []string{tc.want}) {
				t.Errorf("Rows() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCanvas_Size(t *testing.T) {
	c := NewCanvas(5, 9)
	rows := c.Rows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	if c.Cols() != 3 {
		t.Errorf("Cols() = %d, want 3", c.Cols())
	}
	for i, row := range rows {
		if n := len([]rune(row)); n != 3 {
			t.Errorf("row %d has %d cells, want 3", i, n)
		}
	}
}

func TestCanvas_Line(t *testing.T) {
	testCases := []struct {
		name           string
		x0, y0, x1, y1 int
		want           string
	}{
		{"diagonal", 0, 0, 3, 3, "⠑⢄"},
		{"diagonal reversed", 3, 3, 0, 0, "⠑⢄"},
		{"horizontal", 0, 3, 3, 3, "⣀⣀"},
		{"vertical", 2, 0, 2, 3, "⠀⡇"},
		{"single dot", 1, 1, 1, 1, "⠐⠀"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCanvas(4, 4)
			c.Line(tc.x0, tc.y0, tc.x1, tc.y1)
			if got := c.Rows()[0]; got != tc.want {
				t.Errorf("Line(%d,%d,%d,%d) = %q, want %q", tc.x0, tc.y0, tc.x1, tc.y1, got, tc.want)
			}
		})
	}
}
