// Package contact holds the canonical record model shared by every codec:
// an ordered list of contacts, each an ordered attribute-key -> value map.
package contact

// Policy decides which value is kept when a key repeats while a contact is
// being built. The zero value is FirstWins.
type Policy int

const (
	// FirstWins keeps the first value seen for a key; later ones are dropped.
	FirstWins Policy = iota
	// LastWins overwrites in place; the key keeps its original position.
	LastWins
)

// PolicyFor maps the replaceSameKey switch onto a Policy.
func PolicyFor(replaceSameKey bool) Policy {
	if replaceSameKey {
		return LastWins
	}
	return FirstWins
}

func (p Policy) String() string {
	switch p {
	case FirstWins:
		return "first-wins"
	case LastWins:
		return "last-wins"
	default:
		return "unknown"
	}
}

// Contact maps attribute keys (e.g. "FN", "TEL;CELL") to values and remembers
// insertion order. Keys are case-sensitive and unique.
// The zero value is ready to use. The read methods treat a nil *Contact as
// an empty contact.
type Contact struct {
	keys   []string
	values map[string]string
}

// New returns a contact holding the given key/value pairs in order.
// pairs must have even length; a repeated key overwrites in place.
func New(pairs ...string) *Contact {
	c := &Contact{}
	for i := 0; i+1 < len(pairs); i += 2 {
		c.Set(pairs[i], pairs[i+1])
	}
	return c
}

// Set stores value under key. An existing key keeps its position.
func (c *Contact) Set(key, value string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	if _, ok := c.values[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Put stores value under key according to p and reports whether it was stored.
func (c *Contact) Put(key, value string, p Policy) bool {
	if p == FirstWins && c.Has(key) {
		return false
	}
	c.Set(key, value)
	return true
}

// Get returns the value for key.
func (c *Contact) Get(key string) (string, bool) {
	if c == nil {
		return "", false
	}
	v, ok := c.values[key]
	return v, ok
}

// Has reports whether key is present.
func (c *Contact) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.values[key]
	return ok
}

// Len returns the number of attributes.
func (c *Contact) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns a copy of the keys in insertion order.
func (c *Contact) Keys() []string {
	if c == nil {
		return []string{}
	}
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Each calls fn for every attribute in insertion order.
func (c *Contact) Each(fn func(key, value string)) {
	if c == nil {
		return
	}
	for _, k := range c.keys {
		fn(k, c.values[k])
	}
}

// Equal reports whether both contacts hold the same pairs in the same order.
func (c *Contact) Equal(o *Contact) bool {
	if c.Len() != o.Len() {
		return false
	}
	if c.Len() == 0 {
		return true
	}
	for i, k := range c.keys {
		if o.keys[i] != k || o.values[k] != c.values[k] {
			return false
		}
	}
	return true
}

// List is an ordered sequence of contacts. Contacts are purely positional.
type List []*Contact

// Equal reports whether both lists hold equal contacts in the same order.
func (l List) Equal(o List) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Headers returns every distinct key in l, in first-seen order across
// contacts in sequence.
func (l List) Headers() []string {
	var hs HeaderSet
	for _, c := range l {
		if c != nil {
			hs.AddAll(c.keys)
		}
	}
	return hs.Keys()
}

// HeaderSet is an insertion-ordered set of keys.
type HeaderSet struct {
	order []string
	seen  map[string]struct{}
}

// Add appends key unless it was seen before.
func (h *HeaderSet) Add(key string) {
	if h.seen == nil {
		h.seen = make(map[string]struct{})
	}
	if _, ok := h.seen[key]; ok {
		return
	}
	h.seen[key] = struct{}{}
	h.order = append(h.order, key)
}

func (h *HeaderSet) AddAll(keys []string) {
	for _, k := range keys {
		h.Add(k)
	}
}

// Keys returns the accumulated keys; never nil.
func (h *HeaderSet) Keys() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}
