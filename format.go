package contactconv

import (
	"fmt"
	"strings"

	c "github.com/unkn0wn-root/contactconv/codec"
	"github.com/unkn0wn-root/contactconv/contact"
)

// Format names an on-disk contact representation.
type Format string

const (
	VCF     Format = "vcf"
	CSV     Format = "csv"
	JSON    Format = "json"
	Msgpack Format = "msgpack"
	CBOR    Format = "cbor"
	PB      Format = "pb"
)

// Formats lists every supported format in display order.
var Formats = []Format{VCF, CSV, JSON, Msgpack, CBOR, PB}

// ParseFormat resolves a format name (case-insensitive).
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext is the extension appended to the input path when writing f.
func (f Format) Ext() string { return "." + string(f) }

// OutputPath returns path with f's extension appended. The input extension
// is never replaced: "book.vcf" -> "book.vcf.csv".
func (f Format) OutputPath(path string) string { return path + f.Ext() }

// codec returns f's codec; policy applies to formats that can see a key twice.
func (f Format) codec(policy contact.Policy) (c.ContactCodec, error) {
	switch f {
	case VCF:
		return c.VCard{Policy: policy}, nil
	case CSV:
		return c.CSV{Policy: policy}, nil
	case JSON:
		return c.JSON{}, nil
	case Msgpack:
		return c.Msgpack{}, nil
	case CBOR:
		return c.NewCBOR(true)
	case PB:
		return c.Protobuf{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Mode is one source -> target conversion.
type Mode struct {
	From Format
	To   Format
}

func (m Mode) String() string { return string(m.From) + "2" + string(m.To) }

// ParseMode accepts "<src>2<dst>" tokens with or without leading dashes,
// e.g. "vcf2csv" or "--json2vcf".
func ParseMode(token string) (Mode, error) {
	t := strings.TrimLeft(token, "-")
	src, dst, ok := strings.Cut(t, "2")
	if !ok {
		return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, token)
	}
	from, err := ParseFormat(src)
	if err != nil {
		return Mode{}, fmt.Errorf("%w: %q: %w", ErrUnknownMode, token, err)
	}
	to, err := ParseFormat(dst)
	if err != nil {
		return Mode{}, fmt.Errorf("%w: %q: %w", ErrUnknownMode, token, err)
	}
	if from == to {
		return Mode{}, fmt.Errorf("%w: %q converts to itself", ErrUnknownMode, token)
	}
	return Mode{From: from, To: to}, nil
}

// Modes lists every valid conversion in display order.
func Modes() []Mode {
	out := make([]Mode, 0, len(Formats)*(len(Formats)-1))
	for _, from := range Formats {
		for _, to := range Formats {
			if from != to {
				out = append(out, Mode{From: from, To: to})
			}
		}
	}
	return out
}
