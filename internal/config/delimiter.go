package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/linuxmatters/rankhist/internal/errs"
)

// delimiterAliases maps the named spellings accepted on the command line.
// Lookups are case-insensitive.
var delimiterAliases = map[string]byte{
	`\t`:        '\t',
	"\t":        '\t',
	"tab":       '\t',
	"comma":     ',',
	"space":     ' ',
	"semicolon": ';',
	"pipe":      '|',
}

// ResolveDelimiter turns a delimiter specifier into the byte the record reader
// splits on. Unknown specifiers fall back to their first byte.
func ResolveDelimiter(spec string) (byte, error) {
	if spec == "" {
		return 0, fmt.Errorf("%w: delimiter must not be empty", errs.ErrValidation)
	}

	d, ok := delimiterAliases[strings.ToLower(spec)]
	if !ok {
		d = spec[0]
	}

	if err := ValidateDelimiter(d); err != nil {
		return 0, err
	}
	return d, nil
}

// ValidateDelimiter rejects bytes that cannot separate fields: the quote
// character, line breaks, NUL and anything outside ASCII.
func ValidateDelimiter(d byte) error {
	switch {
	case d == '"', d == '\r', d == '\n', d == 0:
		return fmt.Errorf("%w: delimiter %q is not allowed", errs.ErrValidation, d)
	case d >= utf8.RuneSelf:
		return fmt.Errorf("%w: delimiter byte 0x%02x is not ASCII", errs.ErrValidation, d)
	}
	return nil
}
