package contactconv

import (
	"github.com/unkn0wn-root/contactconv/contact"
	"github.com/unkn0wn-root/contactconv/normalize"
)

// Converter runs one conversion per call. It holds no state between calls.
type Converter interface {
	// Convert reads path as mode.From, applies the configured passes and
	// writes mode.To next to it. It returns the output path.
	Convert(mode Mode, path string) (string, error)

	// ConvertBytes is Convert without the file system.
	ConvertBytes(mode Mode, in []byte) ([]byte, error)

	// Normalize applies the configured passes to l.
	Normalize(l contact.List) (contact.List, error)
}

// Options tune the conversion pipeline. The zero value converts without
// any normalization pass, keeping the first of repeated keys.
type Options struct {
	Logger Logger // if nil, NopLogger is used

	Decode bool // run the quoted-printable pass
	Reduce bool // run the phone reducer pass

	ReplaceSameKey bool // repeated keys while decoding: last wins instead of first
	MaxInputBytes  int  // 0 => unlimited

	QuotedPrintableCharset string             // "" => UTF-8
	PhoneKeys              []string           // nil => normalize.DefaultPhoneKeys()
	PhoneConflict          normalize.Conflict // default overwrite
}

func New(opts Options) (Converter, error) {
	return newConverter(opts)
}
