package codec

import (
	"errors"
	"testing"

	"github.com/unkn0wn-root/contactconv/contact"
)

func TestJSONEncodeIndented(t *testing.T) {
	l := contact.List{contact.New("FN", "Jane & Co", "TEL;CELL", "1")}
	b, err := JSON{}.Encode(l)
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n    {\n        \"FN\": \"Jane & Co\",\n        \"TEL;CELL\": \"1\"\n    }\n]"
	if string(b) != want {
		t.Fatalf("encode:\n%s\nwant\n%s", b, want)
	}

	empty, err := JSON{}.Encode(nil)
	if err != nil || string(empty) != "[]" {
		t.Fatalf("empty encode=%q err=%v", empty, err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	cases := []contact.List{
		{},
		{contact.New()},
		{contact.New("Z", "z", "A", "a", "M", "José"), contact.New("NOTE", "line1\nline2", "X", `"quoted"`)},
	}
	for i, l := range cases {
		b, err := JSON{}.Encode(l)
		if err != nil {
			t.Fatalf("case %d encode: %v", i, err)
		}
		back, err := JSON{}.Decode(b)
		if err != nil {
			t.Fatalf("case %d decode: %v", i, err)
		}
		if !back.Equal(l) {
			t.Fatalf("case %d: round trip mismatch:\n%s", i, b)
		}
	}
}

func TestJSONDecodeRejectsNonFlat(t *testing.T) {
	bad := []string{
		``,
		`{"FN":"x"}`,
		`null`,
		`[null]`,
		`[{"FN":{"given":"x"}}]`,
		`[{"FN":["x"]}]`,
		`[{"FN":"x"}] trailing`,
		`["FN"]`,
	}
	for _, in := range bad {
		if _, err := (JSON{}).Decode([]byte(in)); !errors.Is(err, ErrMalformed) {
			t.Fatalf("%q: expected ErrMalformed, got %v", in, err)
		}
	}
}

func TestJSONDecodeNumbers(t *testing.T) {
	l, err := JSON{}.Decode([]byte(`[{"TEL": 5551234}]`))
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := l[0].Get("TEL"); v != "5551234" {
		t.Fatalf("TEL=%q", v)
	}
}

func TestEncodeNilContact(t *testing.T) {
	l := contact.List{contact.New("FN", "Ada"), nil}
	codecs := map[string]ContactCodec{
		"vcard":    VCard{},
		"csv":      CSV{},
		"json":     JSON{},
		"msgpack":  Msgpack{},
		"cbor":     MustCBOR(false),
		"protobuf": Protobuf{},
	}
	want := contact.List{contact.New("FN", "Ada"), contact.New()}
	for name, c := range codecs {
		b, err := c.Encode(l)
		if err != nil {
			t.Fatalf("%s encode: %v", name, err)
		}
		back, err := c.Decode(b)
		if err != nil {
			t.Fatalf("%s decode: %v", name, err)
		}
		if !back.Equal(want) {
			t.Fatalf("%s: nil contact did not come back empty: %d contacts", name, len(back))
		}
	}
	if l[1] != nil {
		t.Fatalf("encode mutated input list")
	}
}
