package textplot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/linuxmatters/rankhist/internal/errs"
	"github.com/linuxmatters/rankhist/internal/histogram"
)

func TestNewWithYRange_Failures(t *testing.T) {
	testCases := []struct {
		name                   string
		width, height          int
		xmin, xmax, ymin, ymax float64
		wantErr                error
	}{
		{"too narrow", 1, 4, 0, 1, 0, 1, errs.ErrValidation},
		{"too short", 2, 3, 0, 1, 0, 1, errs.ErrValidation},
		{"empty x range", 4, 4, 1, 1, 0, 1, errs.ErrInvariant},
		{"inverted y range", 4, 4, 0, 1, 2, 1, errs.ErrInvariant},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWithYRange(tc.width, tc.height, tc.xmin, tc.xmax, tc.ymin, tc.ymax)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("NewWithYRange() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

// TestChart_Bars checks the outline of two bars on a 4x4 dot canvas, one
// dot per data unit.
func TestChart_Bars(t *testing.T) {
	c, err := NewWithYRange(4, 4, 0, 3, 0, 3)
	if err != nil {
		t.Fatal(err)
	}
	c.Bars([]Point{{X: 1, Y: 2}, {X: 2, Y: 1}})

	// columns 1 and 2 rise to y=2, column 3 to y=1
	want := []string{"⢰⣦"}
	if got := c.Rows(); len(got) != 1 || got[0] != want[0] {
		t.Errorf("Rows() = %q, want %q", got, want)
	}
}

func TestChart_Render(t *testing.T) {
	c, err := NewWithYRange(20, 8, 0, 11, 0, 125)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := c.Render(&buf, false); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	blank := strings.Repeat("⠀", 10)
	rule := strings.Repeat("─", 10)
	want := "┌" + rule + "┐\n" +
		"│" + blank + "│ 125.0\n" +
		"│" + blank + "│ 0.0\n" +
		"└" + rule + "┘\n" +
		"0.0     11.0\n"

	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestPlotRanks(t *testing.T) {
	var buf bytes.Buffer
	ranks := histogram.RankSeries{1, 2}

	if err := PlotRanks(&buf, ranks, 2, 160, 80, 0, 3, false); err != nil {
		t.Fatalf("PlotRanks() returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 80/4+3 {
		t.Fatalf("got %d lines, want %d", len(lines), 80/4+3)
	}
	if !strings.HasSuffix(lines[1], " 2.0") {
		t.Errorf("first row = %q, want y max label 2.0", lines[1])
	}
	if !strings.HasSuffix(lines[len(lines)-3], " 0.0") {
		t.Errorf("last row = %q, want y min label 0.0", lines[len(lines)-3])
	}
	if !strings.HasPrefix(lines[len(lines)-1], "0.0") || !strings.HasSuffix(lines[len(lines)-1], "3.0") {
		t.Errorf("x labels = %q, want 0.0 .. 3.0", lines[len(lines)-1])
	}

	// rank 1 reaches the top row, so the canvas is not blank there
	if !strings.ContainsFunc(lines[1], func(r rune) bool { return r > 0x2800 && r <= 0x28ff }) {
		t.Errorf("top row has no dots: %q", lines[1])
	}
}

func TestPlotRanks_Failures(t *testing.T) {
	var buf bytes.Buffer
	err := PlotRanks(&buf, histogram.RankSeries{1}, 1, 1, 1, 0, 2, false)
	if !errors.Is(err, errs.ErrValidation) {
		t.Errorf("PlotRanks() error = %v, want %v", err, errs.ErrValidation)
	}
	if buf.Len() != 0 {
		t.Errorf("PlotRanks() wrote %d bytes on failure", buf.Len())
	}
}

func TestRenderer_PlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Fatal("IsTerminal() = true for a buffer")
	}

	render := Renderer()
	if err := render(&buf, histogram.RankSeries{1, 3, 3}, 3, 40, 16, 0, 4); err != nil {
		t.Fatalf("Renderer() returned error: %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Error("output to a buffer contains ANSI escapes")
	}
}
