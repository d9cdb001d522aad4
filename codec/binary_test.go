package codec

import (
	"errors"
	"testing"

	"github.com/unkn0wn-root/contactconv/contact"
)

func sampleList() contact.List {
	return contact.List{
		contact.New("FN", "Jane", "TEL;CELL;PREF", "555", "EMAIL", "jane@example.org"),
		contact.New(),
		contact.New("N", "Doe;John;;;", "ADR", "line1\nline2"),
	}
}

func TestOrderedArchivesRoundTrip(t *testing.T) {
	codecs := map[string]ContactCodec{
		"msgpack":  Msgpack{},
		"cbor":     MustCBOR(false),
		"cbor-det": MustCBOR(true),
	}
	for name, c := range codecs {
		b, err := c.Encode(sampleList())
		if err != nil {
			t.Fatalf("%s encode: %v", name, err)
		}
		back, err := c.Decode(b)
		if err != nil {
			t.Fatalf("%s decode: %v", name, err)
		}
		if !back.Equal(sampleList()) {
			t.Fatalf("%s: round trip mismatch", name)
		}
	}
}

func TestProtobufRoundTripSortsKeys(t *testing.T) {
	b, err := Protobuf{}.Encode(sampleList())
	if err != nil {
		t.Fatal(err)
	}
	back, err := Protobuf{}.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	want := contact.List{
		contact.New("EMAIL", "jane@example.org", "FN", "Jane", "TEL;CELL;PREF", "555"),
		contact.New(),
		contact.New("ADR", "line1\nline2", "N", "Doe;John;;;"),
	}
	if !back.Equal(want) {
		t.Fatalf("protobuf round trip mismatch: %v", back[0].Keys())
	}
}

func TestArchivesRejectGarbage(t *testing.T) {
	garbage := []byte{0xff, 0x00, 0x13}
	for name, c := range map[string]ContactCodec{"msgpack": Msgpack{}, "cbor": MustCBOR(false)} {
		if _, err := c.Decode(garbage); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestMsgpackHugeLengthHeaders(t *testing.T) {
	inputs := map[string][]byte{
		"array32": {0xdd, 0x7f, 0xff, 0xff, 0xff},
		"map32":   {0x91, 0xdf, 0x7f, 0xff, 0xff, 0xff},
	}
	for name, in := range inputs {
		if _, err := (Msgpack{}).Decode(in); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%s: expected ErrMalformed, got %v", name, err)
		}
	}
}

func TestLimitRejectsOversizedInput(t *testing.T) {
	c := Limit[contact.List]{Inner: JSON{}, MaxDecode: 8}
	if _, err := c.Decode([]byte(`[{"FN":"too long"}]`)); !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	l, err := c.Decode([]byte(`[]`))
	if err != nil || len(l) != 0 {
		t.Fatalf("small input: len=%d err=%v", len(l), err)
	}

	unlimited := Limit[contact.List]{Inner: JSON{}}
	if _, err := unlimited.Decode([]byte(`[{"FN":"anything goes"}]`)); err != nil {
		t.Fatalf("MaxDecode=0 should disable limit: %v", err)
	}
}
