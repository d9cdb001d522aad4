package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/unkn0wn-root/contactconv/contact"
)

const defaultJSONIndent = "    "

// JSON maps a contact list onto an array of flat string objects.
// Key order inside each object is preserved in both directions.
// The zero value indents with four spaces.
type JSON struct {
	Indent string
}

var _ ContactCodec = JSON{}

func (j JSON) Encode(l contact.List) ([]byte, error) {
	if l == nil {
		l = contact.List{} // "[]", not "null"
	}
	l = withoutNil(l)
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", coalesce(j.Indent, defaultJSONIndent))
	if err := enc.Encode(l); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (JSON) Decode(b []byte) (contact.List, error) {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, malformed("json", errors.New("top level is not an array"))
	}
	var l contact.List
	if err := json.Unmarshal(trimmed, &l); err != nil {
		return nil, malformed("json", err)
	}
	for i, c := range l {
		if c == nil {
			return nil, malformed("json", fmt.Errorf("element %d is null", i))
		}
	}
	return l, nil
}

func coalesce(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// withoutNil replaces nil contacts with empty ones so they encode as "{}".
func withoutNil(l contact.List) contact.List {
	for i, c := range l {
		if c != nil {
			continue
		}
		cp := make(contact.List, len(l))
		copy(cp, l)
		for j := i; j < len(cp); j++ {
			if cp[j] == nil {
				cp[j] = &contact.Contact{}
			}
		}
		return cp
	}
	return l
}
