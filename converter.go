package contactconv

import (
	"fmt"

	c "github.com/unkn0wn-root/contactconv/codec"
	"github.com/unkn0wn-root/contactconv/contact"
	"github.com/unkn0wn-root/contactconv/normalize"
)

type converter struct {
	log      Logger
	policy   contact.Policy
	maxInput int
	passes   []normalize.Pass
}

func newConverter(opts Options) (*converter, error) {
	if opts.MaxInputBytes < 0 {
		return nil, fmt.Errorf("contactconv: negative max input size %d", opts.MaxInputBytes)
	}
	cv := &converter{
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		policy:   contact.PolicyFor(opts.ReplaceSameKey),
		maxInput: opts.MaxInputBytes,
	}

	// quoted-printable must precede reduction: phone values compare as decoded text.
	if opts.Decode {
		qp, err := normalize.NewQuotedPrintable(opts.QuotedPrintableCharset)
		if err != nil {
			return nil, err
		}
		cv.passes = append(cv.passes, qp)
	}
	if opts.Reduce {
		r, err := normalize.NewPhoneReducer(opts.PhoneKeys, opts.PhoneConflict, cv.phoneConflict)
		if err != nil {
			return nil, err
		}
		cv.passes = append(cv.passes, r)
	}
	return cv, nil
}

func (cv *converter) Convert(mode Mode, path string) (string, error) {
	in, err := readFile(path)
	if err != nil {
		return "", err
	}
	out, err := cv.convert(mode, path, in)
	if err != nil {
		return "", err
	}
	dst := mode.To.OutputPath(path)
	if err := writeFile(dst, out); err != nil {
		return "", err
	}
	cv.log.Info("converted", Fields{"mode": mode.String(), "src": path, "dst": dst, "bytes": len(out)})
	return dst, nil
}

func (cv *converter) ConvertBytes(mode Mode, in []byte) ([]byte, error) {
	return cv.convert(mode, "", in)
}

func (cv *converter) Normalize(l contact.List) (contact.List, error) {
	for _, p := range cv.passes {
		before := len(l)
		out, err := p.Apply(l)
		if err != nil {
			return nil, err
		}
		if len(out) != before {
			return nil, fmt.Errorf("contactconv: pass %s changed contact count %d -> %d", p.Name(), before, len(out))
		}
		cv.log.Debug("pass applied", Fields{"pass": p.Name(), "contacts": len(out)})
		l = out
	}
	return l, nil
}

func (cv *converter) convert(mode Mode, path string, in []byte) ([]byte, error) {
	src, err := cv.codecFor(mode.From)
	if err != nil {
		return nil, wrapErr("decode", path, err)
	}
	dst, err := cv.codecFor(mode.To)
	if err != nil {
		return nil, wrapErr("encode", path, err)
	}

	l, err := src.Decode(in)
	if err != nil {
		return nil, wrapErr("decode", path, err)
	}
	cv.log.Debug("decoded", Fields{"format": string(mode.From), "contacts": len(l), "bytes": len(in)})

	l, err = cv.Normalize(l)
	if err != nil {
		return nil, wrapErr("normalize", path, err)
	}

	out, err := dst.Encode(l)
	if err != nil {
		return nil, wrapErr("encode", path, err)
	}
	cv.log.Debug("encoded", Fields{"format": string(mode.To), "contacts": len(l), "bytes": len(out)})
	return out, nil
}

func (cv *converter) codecFor(f Format) (c.ContactCodec, error) {
	inner, err := f.codec(cv.policy)
	if err != nil {
		return nil, err
	}
	if cv.maxInput <= 0 {
		return inner, nil
	}
	return c.Limit[contact.List]{Inner: inner, MaxDecode: cv.maxInput}, nil
}

func (cv *converter) phoneConflict(idx int, key, previous, value string, policy normalize.Conflict) {
	if policy == normalize.ConflictOverwrite {
		cv.log.Warn("phone value overwritten", Fields{"contact": idx, "key": key, "lost": previous, "kept": value})
		return
	}
	cv.log.Debug("phone value kept under alternate key", Fields{"contact": idx, "key": key})
}

// coalesce returns def when v is the zero value of T.
func coalesce[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
