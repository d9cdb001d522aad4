package contactconv

import (
	"os"

	"github.com/facebookgo/atomicfile"

	"github.com/unkn0wn-root/contactconv/contact"
)

// Read decodes the contacts stored at path in format f.
// replaceSameKey makes the last of repeated keys win instead of the first.
func Read(f Format, path string, replaceSameKey bool) (contact.List, error) {
	codec, err := f.codec(contact.PolicyFor(replaceSameKey))
	if err != nil {
		return nil, wrapErr("decode", path, err)
	}
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	l, err := codec.Decode(b)
	if err != nil {
		return nil, wrapErr("decode", path, err)
	}
	return l, nil
}

// Write encodes l in format f to path + f.Ext() and returns that path.
// Nothing is written when encoding fails.
func Write(f Format, path string, l contact.List) (string, error) {
	codec, err := f.codec(contact.FirstWins)
	if err != nil {
		return "", wrapErr("encode", path, err)
	}
	b, err := codec.Encode(l)
	if err != nil {
		return "", wrapErr("encode", path, err)
	}
	dst := f.OutputPath(path)
	if err := writeFile(dst, b); err != nil {
		return "", err
	}
	return dst, nil
}

// readFile loads the whole source; the handle is released before parsing.
func readFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConvertError{Op: "read", Path: path, Kind: KindIO, Err: err}
	}
	return b, nil
}

// writeFile replaces path atomically: data goes to a temp file in the same
// directory which is renamed over path only after a complete write.
func writeFile(path string, data []byte) error {
	f, err := atomicfile.New(path, 0o644)
	if err != nil {
		return &ConvertError{Op: "write", Path: path, Kind: KindIO, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Abort()
		return &ConvertError{Op: "write", Path: path, Kind: KindIO, Err: err}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return &ConvertError{Op: "write", Path: path, Kind: KindIO, Err: err}
	}
	return nil
}
