package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/contactconv/contact"
)

// cborAttr is one attribute, encoded as a two-element array [key, value].
type cborAttr struct {
	_     struct{} `cbor:",toarray"`
	Key   string
	Value string
}

// CBOR archives a contact list as an array of contacts, each an array of
// [key, value] pairs so attribute order is kept.
// The zero value is NOT ready to use. Construct with NewCBOR.
//
// Use deterministic=true for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable outputs.
type CBOR struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ ContactCodec = CBOR{}

// NewCBOR constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions.
func NewCBOR(deterministic bool) (CBOR, error) {
	var eo cbor.EncOptions
	if deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	em, err := eo.EncMode()
	if err != nil {
		return CBOR{}, err
	}
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR{}, err
	}
	return CBOR{enc: em, dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
func MustCBOR(deterministic bool) CBOR {
	c, err := NewCBOR(deterministic)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR) Encode(l contact.List) ([]byte, error) {
	rows := make([][]cborAttr, len(l))
	for i, ct := range l {
		row := make([]cborAttr, 0, ct.Len())
		ct.Each(func(k, v string) {
			row = append(row, cborAttr{Key: k, Value: v})
		})
		rows[i] = row
	}
	return c.enc.Marshal(rows)
}

func (c CBOR) Decode(b []byte) (contact.List, error) {
	var rows [][]cborAttr
	if err := c.dec.Unmarshal(b, &rows); err != nil {
		return nil, malformed("cbor", err)
	}
	out := make(contact.List, len(rows))
	for i, row := range rows {
		ct := &contact.Contact{}
		for _, a := range row {
			ct.Set(a.Key, a.Value)
		}
		out[i] = ct
	}
	return out, nil
}
