// Package histogram implements the counting half of a rank histogram: reading
// delimited records, tallying one column, and deriving the ordered counts and
// axis scale the renderers draw from.
package histogram

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/linuxmatters/rankhist/internal/config"
	"github.com/linuxmatters/rankhist/internal/errs"
)

// Record is one delimiter-split input line.
type Record struct {
	Fields []string
	Line   int // 1-based line the record starts on
}

// RecordSource yields records from a delimited byte stream.
type RecordSource struct {
	reader      *csv.Reader
	skipHeader  bool
	headerTaken bool
	read        int
}

// NewRecordSource wraps r. When hasHeader is set the first record is read and
// discarded on the first call to Next.
func NewRecordSource(r io.Reader, delim byte, hasHeader bool) (*RecordSource, error) {
	if err := config.ValidateDelimiter(delim); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = rune(delim)
	cr.FieldsPerRecord = -1 // field count is not fixed
	cr.LazyQuotes = true    // quotes inside unquoted fields are literal text

	return &RecordSource{
		reader:     cr,
		skipHeader: hasHeader,
	}, nil
}

// Next returns the next record, or io.EOF once the stream is exhausted.
// Reader failures are reported as errs.ErrParse or errs.ErrIO and end the run.
func (s *RecordSource) Next() (Record, error) {
	if s.skipHeader && !s.headerTaken {
		s.headerTaken = true
		if _, err := s.readRecord(); err != nil {
			return Record{}, err
		}
	}

	rec, err := s.readRecord()
	if err != nil {
		return Record{}, err
	}
	s.read++
	return rec, nil
}

// Records returns how many records Next has yielded, header excluded.
func (s *RecordSource) Records() int {
	return s.read
}

func (s *RecordSource) readRecord() (Record, error) {
	fields, err := s.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return Record{}, fmt.Errorf("%w: %w", errs.ErrParse, err)
		}
		return Record{}, fmt.Errorf("%w: reading input: %w", errs.ErrIO, err)
	}

	line, _ := s.reader.FieldPos(0)
	return Record{Fields: fields, Line: line}, nil
}
