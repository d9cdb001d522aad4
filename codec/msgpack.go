package codec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/contactconv/contact"
)

// Msgpack archives a contact list as a msgpack array of maps, written
// key by key so attribute order survives a round trip.
// The zero value is ready to use.
type Msgpack struct{}

var _ ContactCodec = Msgpack{}

func (Msgpack) Encode(l contact.List) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeArrayLen(len(l)); err != nil {
		return nil, err
	}
	for _, c := range l {
		if err := enc.EncodeMapLen(c.Len()); err != nil {
			return nil, err
		}
		var err error
		c.Each(func(k, v string) {
			if err != nil {
				return
			}
			if err = enc.EncodeString(k); err == nil {
				err = enc.EncodeString(v)
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

func (Msgpack) Decode(b []byte) (contact.List, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(b))
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return nil, malformed("msgpack", err)
	}
	// lengths come from the input; cap the hint by what b could hold.
	out := make(contact.List, 0, min(max(n, 0), len(b)))
	for i := 0; i < n; i++ {
		m, err := dec.DecodeMapLen()
		if err != nil {
			return nil, malformed("msgpack", err)
		}
		c := &contact.Contact{}
		for j := 0; j < m; j++ {
			k, err := dec.DecodeString()
			if err != nil {
				return nil, malformed("msgpack", err)
			}
			v, err := dec.DecodeString()
			if err != nil {
				return nil, malformed("msgpack", err)
			}
			c.Set(k, v)
		}
		out = append(out, c)
	}
	return out, nil
}
