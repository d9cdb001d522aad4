package contactconv

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/unkn0wn-root/contactconv/codec"
	"github.com/unkn0wn-root/contactconv/normalize"
)

var (
	ErrUnknownFormat = errors.New("contactconv: unknown format")
	ErrUnknownMode   = errors.New("contactconv: unknown conversion")
)

// Kind classifies a failed conversion.
type Kind int

const (
	KindUnknown Kind = iota
	// KindIO: source unreadable or output unwritable.
	KindIO
	// KindMalformed: input does not parse as contacts.
	KindMalformed
	// KindDecoding: a quoted-printable payload is invalid.
	KindDecoding
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindMalformed:
		return "malformed"
	case KindDecoding:
		return "decoding"
	default:
		return "unknown"
	}
}

// ConvertError is returned for every failed Read, Write or Convert.
type ConvertError struct {
	Op   string // "read", "decode", "normalize", "encode", "write"
	Path string
	Kind Kind
	Err  error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("contactconv: %s %q (%s): %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *ConvertError) Unwrap() error { return e.Err }

// IsNotFound reports whether err stems from a missing source file.
func IsNotFound(err error) bool { return errors.Is(err, fs.ErrNotExist) }

func wrapErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var ce *ConvertError
	if errors.As(err, &ce) {
		return err
	}
	return &ConvertError{Op: op, Path: path, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	var pe *fs.PathError
	switch {
	case errors.Is(err, normalize.ErrDecoding):
		return KindDecoding
	case errors.Is(err, codec.ErrMalformed):
		return KindMalformed
	case errors.As(err, &pe), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return KindIO
	default:
		return KindUnknown
	}
}
