package codec

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"

	"github.com/unkn0wn-root/contactconv/contact"
)

// CSV reads and writes comma-separated contacts with a header row.
//
// Decode zips each row with the header and drops empty cells, so a contact
// never carries a key with an empty value. Encode synthesizes the header from
// every key seen across the list (first-seen order) and quotes minimally.
type CSV struct {
	Policy contact.Policy
}

var _ ContactCodec = CSV{}

func (CSV) Encode(l contact.List) ([]byte, error) {
	headers := l.Headers()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.UseCRLF = true

	if err := w.Write(headers); err != nil {
		return nil, err
	}
	row := make([]string, len(headers))
	for _, c := range l {
		for i, h := range headers {
			row[i], _ = c.Get(h)
		}
		if len(row) == 1 && row[0] == "" {
			// encoding/csv writes a lone empty field as a blank line,
			// which readers skip; quote it so the contact survives.
			w.Flush()
			buf.WriteString("\"\"\r\n")
			continue
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode treats the first record as the header. Cells past the header width
// are ignored; short rows simply lack the trailing keys.
func (c CSV) Decode(b []byte) (contact.List, error) {
	r := csv.NewReader(bytes.NewReader(b))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	headers, err := r.Read()
	if errors.Is(err, io.EOF) {
		return contact.List{}, nil
	}
	if err != nil {
		return nil, malformed("csv header", err)
	}

	out := contact.List{}
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, malformed("csv", err)
		}
		ct := &contact.Contact{}
		for i, v := range rec {
			if i >= len(headers) {
				break
			}
			if v == "" {
				continue
			}
			ct.Put(headers[i], v, c.Policy)
		}
		out = append(out, ct)
	}
	return out, nil
}
