// Package codec converts contact lists to and from their on-disk formats.
//
// Every format implements Codec[contact.List]. Text formats (VCard, CSV,
// JSON) follow the address-book conventions of their ecosystems; the binary
// formats (Msgpack, CBOR, Protobuf) are compact archives of the same model.
package codec

import "github.com/unkn0wn-root/contactconv/contact"

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

// ContactCodec is a Codec over contact lists.
type ContactCodec = Codec[contact.List]
