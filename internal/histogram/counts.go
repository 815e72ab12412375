package histogram

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/linuxmatters/rankhist/internal/config"
	"github.com/linuxmatters/rankhist/internal/errs"
)

// WriteCounts writes one "<count>\t<key>" line per distinct key, ascending by
// count. Keys containing a line break cannot be read back and are rejected
// before anything is written.
func WriteCounts(w io.Writer, t *FrequencyTable) error {
	entries := t.Entries()
	for _, e := range entries {
		if strings.ContainsAny(e.Key, "\r\n") {
			return fmt.Errorf("%w: key %q contains a line break and cannot be saved as raw counts",
				errs.ErrValidation, e.Key)
		}
	}

	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%d\t%s\n", e.Count, e.Key); err != nil {
			return fmt.Errorf("%w: writing counts: %w", errs.ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: writing counts: %w", errs.ErrIO, err)
	}
	return nil
}

// SaveCounts writes the counts to dest, creating or truncating the file.
// config.SaveToStdout writes to stdout instead.
func SaveCounts(dest string, stdout io.Writer, t *FrequencyTable) error {
	if dest == config.SaveToStdout {
		return WriteCounts(stdout, t)
	}

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", errs.ErrIO, dest, err)
	}

	if err := WriteCounts(f, t); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %s: %w", errs.ErrIO, dest, err)
	}
	return nil
}

// ReadCounts parses the format written by WriteCounts back into key counts.
// The key is everything after the first tab.
func ReadCounts(r io.Reader) (map[string]int, error) {
	counts := make(map[string]int)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		countStr, key, ok := strings.Cut(scanner.Text(), "\t")
		if !ok {
			return nil, fmt.Errorf("%w: counts line %d: missing tab separator", errs.ErrParse, line)
		}

		n, err := strconv.Atoi(countStr)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: counts line %d: %q is not a positive count", errs.ErrParse, line, countStr)
		}
		if _, dup := counts[key]; dup {
			return nil, fmt.Errorf("%w: counts line %d: duplicate key %q", errs.ErrParse, line, key)
		}
		counts[key] = n
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading counts: %w", errs.ErrIO, err)
	}
	return counts, nil
}
