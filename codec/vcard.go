package codec

import (
	"regexp"
	"strings"

	"github.com/unkn0wn-root/contactconv/contact"
)

const (
	vcardBegin = "BEGIN:VCARD"
	vcardEnd   = "END:VCARD"
)

// Blocks may be separated by arbitrary text; matching is non-greedy and
// spans newlines.
var vcardBlock = regexp.MustCompile(`(?s)BEGIN:VCARD(.*?)END:VCARD`)

// VCard reads and writes the line-oriented "key:value" VCard layout.
// Values are written verbatim: a ':' or newline inside a value does not
// survive a round trip.
// The zero value keeps the first occurrence of a repeated key.
type VCard struct {
	Policy contact.Policy
}

var _ ContactCodec = VCard{}

func (VCard) Encode(l contact.List) ([]byte, error) {
	var b strings.Builder
	for _, c := range l {
		b.WriteString(vcardBegin)
		b.WriteByte('\n')
		c.Each(func(k, v string) {
			b.WriteString(k)
			b.WriteByte(':')
			b.WriteString(v)
			b.WriteByte('\n')
		})
		b.WriteString(vcardEnd)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

// Decode returns one contact per BEGIN:VCARD/END:VCARD block. Any non-empty
// line without ':' fails the whole decode with a *MalformedLineError.
func (v VCard) Decode(b []byte) (contact.List, error) {
	text := normalizeNewlines(string(b))
	blocks := vcardBlock.FindAllStringSubmatch(text, -1)

	out := make(contact.List, 0, len(blocks))
	for i, m := range blocks {
		c := &contact.Contact{}
		for n, line := range strings.Split(m[1], "\n") {
			if line == "" {
				continue
			}
			key, value, ok := strings.Cut(line, ":")
			if !ok {
				return nil, &MalformedLineError{Block: i, Line: n, Text: line}
			}
			c.Put(key, value, v.Policy)
		}
		out = append(out, c)
	}
	return out, nil
}

// normalizeNewlines folds CRLF and lone CR into LF.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
