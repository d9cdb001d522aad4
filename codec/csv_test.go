package codec

import (
	"reflect"
	"strings"
	"testing"

	"github.com/unkn0wn-root/contactconv/contact"
)

func TestCSVHeaderSynthesis(t *testing.T) {
	l := contact.List{
		contact.New("FN", "A", "TEL", "1"),
		contact.New("FN", "B", "EMAIL", "x"),
	}
	b, err := CSV{}.Encode(l)
	if err != nil {
		t.Fatal(err)
	}
	want := "FN,TEL,EMAIL\r\nA,1,\r\nB,,x\r\n"
	if string(b) != want {
		t.Fatalf("encode=%q want %q", b, want)
	}
}

func TestCSVEmptyCellsDropped(t *testing.T) {
	l := contact.List{
		contact.New("FN", "A", "TEL", "1"),
		contact.New("FN", "B", "EMAIL", "x"),
	}
	b, err := CSV{}.Encode(l)
	if err != nil {
		t.Fatal(err)
	}
	back, err := CSV{}.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(l) {
		t.Fatalf("round trip: %v / %v", back[0].Keys(), back[1].Keys())
	}
	if back[1].Has("TEL") {
		t.Fatalf("empty cell reintroduced TEL")
	}
}

func TestCSVMinimalQuoting(t *testing.T) {
	l := contact.List{contact.New("NOTE", "a,b", "QUOTE", `say "hi"`, "ADR", "line1\nline2", "FN", "plain")}
	b, err := CSV{}.Encode(l)
	if err != nil {
		t.Fatal(err)
	}
	want := "NOTE,QUOTE,ADR,FN\r\n\"a,b\",\"say \"\"hi\"\"\",\"line1\r\nline2\",plain\r\n"
	if string(b) != want {
		t.Fatalf("encode=%q want %q", b, want)
	}
	back, err := CSV{}.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(l) {
		t.Fatalf("quoted round trip mismatch")
	}
}

func TestCSVSingleEmptyColumnSurvives(t *testing.T) {
	l := contact.List{contact.New("FN", "A"), contact.New()}
	b, err := CSV{}.Encode(l)
	if err != nil {
		t.Fatal(err)
	}
	back, err := CSV{}.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != 2 || back[1].Len() != 0 {
		t.Fatalf("contacts=%d, csv=%q", len(back), b)
	}
}

func TestCSVDecodeRaggedRows(t *testing.T) {
	in := "FN,TEL,EMAIL\nA,1\nB,2,b@x,extra\n\nC,,c@x\n"
	l, err := CSV{}.Decode([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(l) != 3 {
		t.Fatalf("rows=%d want 3", len(l))
	}
	if got := l[0].Keys(); !reflect.DeepEqual(got, []string{"FN", "TEL"}) {
		t.Fatalf("short row keys=%v", got)
	}
	if got := l[1].Keys(); !reflect.DeepEqual(got, []string{"FN", "TEL", "EMAIL"}) {
		t.Fatalf("long row keys=%v", got)
	}
	if got := l[2].Keys(); !reflect.DeepEqual(got, []string{"FN", "EMAIL"}) {
		t.Fatalf("gap row keys=%v", got)
	}
}

func TestCSVDuplicateHeaders(t *testing.T) {
	in := []byte("FN,FN\nfirst,second\n")
	l, err := CSV{}.Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := l[0].Get("FN"); v != "first" {
		t.Fatalf("FirstWins FN=%q", v)
	}
	l, err = CSV{Policy: contact.LastWins}.Decode(in)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := l[0].Get("FN"); v != "second" {
		t.Fatalf("LastWins FN=%q", v)
	}
}

func TestCSVEmptyAndLenient(t *testing.T) {
	l, err := CSV{}.Decode(nil)
	if err != nil || len(l) != 0 {
		t.Fatalf("empty: len=%d err=%v", len(l), err)
	}
	l, err = CSV{}.Decode([]byte("FN\nJo\"e\n"))
	if err != nil {
		t.Fatalf("bare quote: %v", err)
	}
	if v, _ := l[0].Get("FN"); v != `Jo"e` {
		t.Fatalf("bare quote FN=%q", v)
	}
}

func TestCSVFromVCard(t *testing.T) {
	l, err := VCard{}.Decode([]byte("BEGIN:VCARD\nFN:Jane\nTEL;CELL:1\nEND:VCARD\n"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := CSV{}.Encode(l)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(b), "\r\n"), "\r\n")
	if !reflect.DeepEqual(lines, []string{"FN,TEL;CELL", "Jane,1"}) {
		t.Fatalf("lines=%q", lines)
	}
}
