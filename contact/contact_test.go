package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestPutPolicy(t *testing.T) {
	c := &Contact{}
	if !c.Put("FN", "Ada", FirstWins) {
		t.Fatalf("first Put should store")
	}
	if c.Put("FN", "Grace", FirstWins) {
		t.Fatalf("FirstWins should drop repeated key")
	}
	if v, _ := c.Get("FN"); v != "Ada" {
		t.Fatalf("FN=%q want Ada", v)
	}

	c.Set("TEL", "1")
	if !c.Put("FN", "Grace", LastWins) {
		t.Fatalf("LastWins should store")
	}
	if v, _ := c.Get("FN"); v != "Grace" {
		t.Fatalf("FN=%q want Grace", v)
	}
	if got := c.Keys(); !reflect.DeepEqual(got, []string{"FN", "TEL"}) {
		t.Fatalf("overwrite moved key: %v", got)
	}
}

func TestPolicyFor(t *testing.T) {
	if PolicyFor(false) != FirstWins || PolicyFor(true) != LastWins {
		t.Fatalf("PolicyFor mapping wrong")
	}
}

func TestHeadersFirstSeenOrder(t *testing.T) {
	l := List{
		New("FN", "A", "TEL", "1"),
		New("FN", "B", "EMAIL", "x"),
	}
	want := []string{"FN", "TEL", "EMAIL"}
	if got := l.Headers(); !reflect.DeepEqual(got, want) {
		t.Fatalf("headers=%v want %v", got, want)
	}
	if got := (List{}).Headers(); got == nil || len(got) != 0 {
		t.Fatalf("empty list headers=%v", got)
	}
}

func TestEqual(t *testing.T) {
	a := New("A", "1", "B", "2")
	b := New("B", "2", "A", "1")
	if a.Equal(b) {
		t.Fatalf("order must matter")
	}
	if !a.Equal(New("A", "1", "B", "2")) {
		t.Fatalf("identical contacts should be equal")
	}
	if !(List{}).Equal(nil) {
		t.Fatalf("empty and nil lists should be equal")
	}
}

func TestJSONKeepsOrder(t *testing.T) {
	c := New("Z", "last<&>", "A", "first")
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(c); err != nil {
		t.Fatal(err)
	}
	b := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if string(b) != `{"Z":"last<&>","A":"first"}` {
		t.Fatalf("marshal=%s", b)
	}

	escaped, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if string(escaped) != `{"Z":"last\u003c\u0026\u003e","A":"first"}` {
		t.Fatalf("json.Marshal=%s", escaped)
	}

	var back Contact
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(c) {
		t.Fatalf("round trip lost order: %v", back.Keys())
	}
}

func TestUnmarshalJSONValues(t *testing.T) {
	var c Contact
	if err := json.Unmarshal([]byte(`{"TEL":5551234,"FN":"a","FN":"b"}`), &c); err != nil {
		t.Fatal(err)
	}
	if v, _ := c.Get("TEL"); v != "5551234" {
		t.Fatalf("number literal=%q", v)
	}
	if v, _ := c.Get("FN"); v != "b" {
		t.Fatalf("duplicate key value=%q want b", v)
	}

	for _, in := range []string{`{"a":{"b":"c"}}`, `{"a":["x"]}`, `{"a":true}`, `{"a":null}`, `["a"]`} {
		var c Contact
		err := json.Unmarshal([]byte(in), &c)
		if !errors.Is(err, ErrNotFlat) {
			t.Fatalf("%s: err=%v want ErrNotFlat", in, err)
		}
	}
}
