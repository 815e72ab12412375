package histogram

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/linuxmatters/rankhist/internal/errs"
)

// ExtractKey returns the value of the 1-indexed column of rec.
func ExtractKey(rec Record, column int) (string, error) {
	if column < 1 {
		return "", fmt.Errorf("%w: key column must be >= 1, got %d", errs.ErrValidation, column)
	}
	if column > len(rec.Fields) {
		return "", fmt.Errorf("%w: column %d not found on line %d (record has %d fields)",
			errs.ErrValidation, column, rec.Line, len(rec.Fields))
	}
	return rec.Fields[column-1], nil
}

// Entry is one distinct key and how often it occurred.
type Entry struct {
	Key   string
	Count int
}

// FrequencyTable maps each distinct key to its occurrence count.
// It is built once by Aggregate and never mutated afterwards.
type FrequencyTable struct {
	counts map[string]int
	order  []string // first-seen order
	total  int
}

func newFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: make(map[string]int)}
}

// add increments key, initialising unseen keys to 1.
func (t *FrequencyTable) add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
	t.total++
}

// Len returns the number of distinct keys.
func (t *FrequencyTable) Len() int {
	return len(t.order)
}

// Total returns the number of counted records.
func (t *FrequencyTable) Total() int {
	return t.total
}

// Count returns how often key occurred. Absent keys report false, never zero.
func (t *FrequencyTable) Count(key string) (int, bool) {
	n, ok := t.counts[key]
	return n, ok
}

// Keys returns the distinct keys in first-seen order.
func (t *FrequencyTable) Keys() []string {
	return slices.Clone(t.order)
}

// Entries returns every key with its count, sorted by ascending count. Equal
// counts are ordered by key so identical input always yields identical output.
func (t *FrequencyTable) Entries() []Entry {
	keys := t.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k, Count: t.counts[k]})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if a.Count != b.Count {
			return a.Count - b.Count
		}
		return strings.Compare(a.Key, b.Key)
	})
	return entries
}

// Aggregate drains src, counting the value of column in every record.
// An exhausted source that produced no records is a validation failure.
func Aggregate(src *RecordSource, column int) (*FrequencyTable, error) {
	t := newFrequencyTable()
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		key, err := ExtractKey(rec, column)
		if err != nil {
			return nil, err
		}
		t.add(key)
	}

	if t.Len() == 0 {
		return nil, fmt.Errorf("%w: no data to plot", errs.ErrValidation)
	}
	return t, nil
}
