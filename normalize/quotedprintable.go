package normalize

import (
	"errors"
	"fmt"
	"io"
	"mime/quotedprintable"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/unkn0wn-root/contactconv/contact"
)

// DefaultCharset is the charset named by DefaultSuffix.
const DefaultCharset = "UTF-8"

// DefaultSuffix tags attributes holding UTF-8 quoted-printable values.
const DefaultSuffix = ";CHARSET=" + DefaultCharset + ";ENCODING=QUOTED-PRINTABLE"

// ErrDecoding marks an attribute value that could not be decoded.
var ErrDecoding = errors.New("normalize: decoding failed")

// DecodeError reports the contact and attribute whose value failed to decode.
type DecodeError struct {
	Contact int
	Key     string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("normalize: contact %d key %q: %v", e.Contact, e.Key, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecoding, e.Err} }

// QuotedPrintable decodes every attribute whose key ends with Suffix and
// stores the text under the key with Suffix stripped.
// The zero value is NOT ready to use. Construct with NewQuotedPrintable.
type QuotedPrintable struct {
	suffix  string
	charset encoding.Encoding // nil => UTF-8, validated rather than replaced
}

var _ Pass = QuotedPrintable{}

// NewQuotedPrintable builds the pass for the named charset ("" means UTF-8).
// The suffix marker becomes ";CHARSET=<name>;ENCODING=QUOTED-PRINTABLE".
func NewQuotedPrintable(charset string) (QuotedPrintable, error) {
	if charset == "" || strings.EqualFold(charset, DefaultCharset) {
		return QuotedPrintable{suffix: DefaultSuffix}, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return QuotedPrintable{}, fmt.Errorf("normalize: charset %q: %w", charset, err)
	}
	return QuotedPrintable{
		suffix:  ";CHARSET=" + strings.ToUpper(charset) + ";ENCODING=QUOTED-PRINTABLE",
		charset: enc,
	}, nil
}

// Suffix returns the key marker this pass looks for.
func (q QuotedPrintable) Suffix() string { return q.suffix }

func (QuotedPrintable) Name() string { return "quoted-printable" }

// Apply builds a fresh contact per source contact in source key order.
// A stripped key that collides with one already written takes the later
// value. Any decode failure aborts the whole pass.
func (q QuotedPrintable) Apply(l contact.List) (contact.List, error) {
	out := make(contact.List, len(l))
	for i, c := range l {
		nc := &contact.Contact{}
		var err error
		c.Each(func(k, v string) {
			if err != nil {
				return
			}
			base, ok := strings.CutSuffix(k, q.suffix)
			if !ok {
				nc.Set(k, v)
				return
			}
			var text string
			if text, err = q.decode(v); err != nil {
				err = &DecodeError{Contact: i, Key: k, Err: err}
				return
			}
			nc.Set(base, text)
		})
		if err != nil {
			return nil, err
		}
		out[i] = nc
	}
	return out, nil
}

func (q QuotedPrintable) decode(v string) (string, error) {
	raw, err := io.ReadAll(quotedprintable.NewReader(strings.NewReader(v)))
	if err != nil {
		return "", err
	}
	if q.charset == nil {
		if !utf8.Valid(raw) {
			return "", errors.New("invalid UTF-8 payload")
		}
		return string(raw), nil
	}
	text, err := q.charset.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(text), nil
}
