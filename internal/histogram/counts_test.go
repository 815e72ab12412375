package histogram

import (
	"bytes"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/linuxmatters/rankhist/internal/errs"
)

func TestWriteCounts_Scenario(t *testing.T) {
	table, err := aggregateString(t, "a\na\nb\n", '\t', false, 1)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCounts(&buf, table); err != nil {
		t.Fatalf("WriteCounts() returned error: %v", err)
	}
	if got, want := buf.String(), "1\tb\n2\ta\n"; got != want {
		t.Errorf("WriteCounts() = %q, want %q", got, want)
	}
}

// TestCounts_RoundTrip checks that reading the written format recovers the
// exact key/count set.
func TestCounts_RoundTrip(t *testing.T) {
	input := "k;red\nk;green\nk;red\nk;with\ttab\nk;blue\nk;red\nk;green\nk; spaced \n"
	table, err := aggregateString(t, input, ';', false, 2)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCounts(&buf, table); err != nil {
		t.Fatal(err)
	}

	got, err := ReadCounts(&buf)
	if err != nil {
		t.Fatalf("ReadCounts() returned error: %v", err)
	}

	want := make(map[string]int)
	for _, k := range table.Keys() {
		want[k], _ = table.Count(k)
	}
	if !maps.Equal(got, want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

// TestCounts_RoundTripQuotedKeys covers keys that arrive quoted or carry
// literal quotes.
func TestCounts_RoundTripQuotedKeys(t *testing.T) {
	input := "\"GET / HTTP/1.1\",200\nsay \"hi\",x\n\"a,b\",y\nsay \"hi\",z\n"
	table, err := aggregateString(t, input, ',', false, 1)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCounts(&buf, table); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCounts(&buf)
	if err != nil {
		t.Fatalf("ReadCounts() returned error: %v", err)
	}

	want := map[string]int{"GET / HTTP/1.1": 1, `say "hi"`: 2, "a,b": 1}
	if !maps.Equal(got, want) {
		t.Errorf("round trip = %v, want %v", got, want)
	}
}

func TestWriteCounts_LineBreakInKey(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"newline", "\"a\nb\"\nc\n"},
		{"carriage return", "\"a\rb\"\nc\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			table, err := aggregateString(t, tc.input, '\t', false, 1)
			if err != nil {
				t.Fatal(err)
			}

			var buf bytes.Buffer
			err = WriteCounts(&buf, table)
			if !errors.Is(err, errs.ErrValidation) {
				t.Errorf("WriteCounts() error = %v, want ErrValidation", err)
			}
			if buf.Len() != 0 {
				t.Errorf("WriteCounts() wrote %q before failing", buf.String())
			}
		})
	}
}

func TestReadCounts_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"missing tab", "3 apples\n"},
		{"non-numeric count", "three\tapples\n"},
		{"zero count", "0\tapples\n"},
		{"duplicate key", "1\tapples\n2\tapples\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ReadCounts(strings.NewReader(tc.input)); !errors.Is(err, errs.ErrParse) {
				t.Errorf("ReadCounts() error = %v, want ErrParse", err)
			}
		})
	}
}

func TestSaveCounts(t *testing.T) {
	table, err := aggregateString(t, "x\ny\ny\n", '\t', false, 1)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "counts.tsv")
		if err := os.WriteFile(path, []byte("stale content that must go\n"), 0o644); err != nil {
			t.Fatal(err)
		}

		var stdout bytes.Buffer
		if err := SaveCounts(path, &stdout, table); err != nil {
			t.Fatalf("SaveCounts() returned error: %v", err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if got := string(data); got != "1\tx\n2\ty\n" {
			t.Errorf("file content = %q", got)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout received %q, want nothing", stdout.String())
		}
	})

	t.Run("stdout", func(t *testing.T) {
		var stdout bytes.Buffer
		if err := SaveCounts("-", &stdout, table); err != nil {
			t.Fatalf("SaveCounts() returned error: %v", err)
		}
		if got := stdout.String(); got != "1\tx\n2\ty\n" {
			t.Errorf("stdout = %q", got)
		}
	})

	t.Run("unwritable", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "counts.tsv")
		if err := SaveCounts(path, nil, table); !errors.Is(err, errs.ErrIO) {
			t.Errorf("SaveCounts() error = %v, want ErrIO", err)
		}
	})
}
