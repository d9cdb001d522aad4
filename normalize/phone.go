package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/unkn0wn-root/contactconv/contact"
)

// DefaultPhoneKeys returns the default priority list; the first entry is
// the key alternates collapse into. Each call returns a fresh slice.
func DefaultPhoneKeys() []string {
	return []string{"TEL;CELL;PREF", "TEL;CELL", "TEL;WORK"}
}

// Conflict decides what happens to an alternate phone value that differs
// from the value already held under the default key.
type Conflict int

const (
	// ConflictOverwrite keeps the alternate under the default key whichever
	// comes first. The default key's own value is lost.
	ConflictOverwrite Conflict = iota
	// ConflictKeep leaves the alternate under its original key.
	ConflictKeep
)

// ParseConflict accepts "overwrite" or "keep" ("" => overwrite).
func ParseConflict(s string) (Conflict, error) {
	switch strings.ToLower(s) {
	case "", "overwrite":
		return ConflictOverwrite, nil
	case "keep":
		return ConflictKeep, nil
	default:
		return 0, fmt.Errorf("normalize: unknown phone conflict policy %q", s)
	}
}

func (c Conflict) String() string {
	switch c {
	case ConflictOverwrite:
		return "overwrite"
	case ConflictKeep:
		return "keep"
	default:
		return "unknown"
	}
}

// ConflictFunc observes a conflicting alternate before the policy runs.
// key is the alternate, value its value, previous the default key's value.
type ConflictFunc func(contactIdx int, key, previous, value string, policy Conflict)

// PhoneReducer collapses alternate phone keys into the default one.
// The zero value is NOT ready to use. Construct with NewPhoneReducer.
type PhoneReducer struct {
	defaultKey string
	alternates map[string]struct{}
	policy     Conflict
	observe    ConflictFunc
}

var _ Pass = PhoneReducer{}

// NewPhoneReducer builds a reducer over keys (nil => DefaultPhoneKeys()).
// keys[0] is the default key. observe may be nil.
func NewPhoneReducer(keys []string, policy Conflict, observe ConflictFunc) (PhoneReducer, error) {
	if len(keys) == 0 {
		keys = DefaultPhoneKeys()
	}
	if keys[0] == "" {
		return PhoneReducer{}, errors.New("normalize: empty phone key")
	}
	r := PhoneReducer{
		defaultKey: keys[0],
		alternates: make(map[string]struct{}, len(keys)-1),
		policy:     policy,
		observe:    observe,
	}
	for _, k := range keys[1:] {
		if k == "" {
			return PhoneReducer{}, errors.New("normalize: empty phone key")
		}
		if k != r.defaultKey {
			r.alternates[k] = struct{}{}
		}
	}
	return r, nil
}

// DefaultKey returns the key alternates collapse into.
func (r PhoneReducer) DefaultKey() string { return r.defaultKey }

func (PhoneReducer) Name() string { return "phone-reduce" }

// Apply rewrites each alternate phone attribute under the default key when
// the output contact has no default value yet or already holds the same
// value. Conflicts follow the reducer's policy regardless of which key comes
// first. Everything else passes through in source order.
func (r PhoneReducer) Apply(l contact.List) (contact.List, error) {
	out := make(contact.List, len(l))
	for i, c := range l {
		nc := &contact.Contact{}
		// from is the alternate whose value sits under the default key.
		from := ""
		c.Each(func(k, v string) {
			if k == r.defaultKey {
				r.applyDefault(i, nc, from, v)
				from = ""
				return
			}
			if _, alt := r.alternates[k]; !alt {
				nc.Set(k, v)
				return
			}
			prev, has := nc.Get(r.defaultKey)
			if !has || prev == v {
				if !has {
					from = k
				}
				nc.Set(r.defaultKey, v)
				return
			}
			if r.observe != nil {
				r.observe(i, k, prev, v, r.policy)
			}
			if r.policy == ConflictKeep {
				nc.Set(k, v)
				return
			}
			from = k
			nc.Set(r.defaultKey, v)
		})
		out[i] = nc
	}
	return out, nil
}

// applyDefault stores the default key's own value v. from names the
// alternate already moved under the default key, if any.
func (r PhoneReducer) applyDefault(i int, nc *contact.Contact, from, v string) {
	prev, has := nc.Get(r.defaultKey)
	if !has || from == "" {
		nc.Set(r.defaultKey, v)
		return
	}
	if prev == v {
		return
	}
	if r.observe != nil {
		r.observe(i, from, v, prev, r.policy)
	}
	if r.policy == ConflictKeep {
		nc.Set(r.defaultKey, v)
		nc.Set(from, prev)
	}
}
