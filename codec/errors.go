package codec

import (
	"errors"
	"fmt"
)

// ErrMalformed marks input that cannot be parsed into contacts.
// All decode failures in this package match it with errors.Is.
var ErrMalformed = errors.New("codec: malformed record")

// MalformedLineError reports a VCard line with no ':' separator.
type MalformedLineError struct {
	Block int // 0-based VCARD block index
	Line  int // 1-based line number inside the block
	Text  string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("codec: vcard %d line %d: missing ':' in %q", e.Block, e.Line, e.Text)
}

func (e *MalformedLineError) Unwrap() error { return ErrMalformed }

func malformed(format string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrMalformed, format, err)
}
