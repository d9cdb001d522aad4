package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotFlat is returned when a JSON contact is not an object of scalar values.
var ErrNotFlat = errors.New("contact: not a flat object")

// MarshalJSON writes the contact as an object in insertion order.
// HTML escaping is up to the caller: json.Marshal escapes, an Encoder with
// SetEscapeHTML(false) does not.
func (c *Contact) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		trimNL(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(c.values[k]); err != nil {
			return nil, err
		}
		trimNL(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Encoder.Encode terminates every value with '\n'.
func trimNL(b *bytes.Buffer) { b.Truncate(b.Len() - 1) }

// UnmarshalJSON reads a flat object keeping key order. String values are
// taken as-is, numbers as their literal text. A repeated key keeps its first
// position and its last value. Anything else yields ErrNotFlat.
func (c *Contact) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	out := Contact{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: unexpected key %v", ErrNotFlat, tok)
		}
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case string:
			out.Set(key, v)
		case json.Number:
			out.Set(key, v.String())
		default:
			return fmt.Errorf("%w: key %q has non-string value %v", ErrNotFlat, key, tok)
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("%w: trailing data", ErrNotFlat)
	}
	*c = out
	return nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("%w: expected %q, got %v", ErrNotFlat, want, tok)
	}
	return nil
}
