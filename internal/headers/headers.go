// Package headers stores the owned header section of a collected message.
// Keys keep their wire spelling while lookups are case-insensitive, the way
// header matching works everywhere else in the parser: the fold happens once
// when a pair is inserted, not on every probe.
package headers

type Pair struct {
	Key, Value string
}

// Headers is an ordered header multimap. Ordering and duplicate keys both
// survive collection, which a plain map cannot provide.
type Headers struct {
	pairs      []Pair
	folded     []string
	valuesBuff []string
	uniqueBuff []string
}

// NewPreAlloc returns an instance of Headers with pre-allocated underlying
// storage.
func NewPreAlloc(n int) *Headers {
	return &Headers{
		pairs:  make([]Pair, 0, n),
		folded: make([]string, 0, n),
	}
}

func New() *Headers {
	return NewPreAlloc(0)
}

// Add appends a pair, keeping the key as it appeared on the wire.
func (h *Headers) Add(key, value string) *Headers {
	h.pairs = append(h.pairs, Pair{
		Key:   key,
		Value: value,
	})
	h.folded = append(h.folded, fold(key))

	return h
}

// Value returns the first value corresponding to the key. Otherwise, empty
// string is returned.
func (h *Headers) Value(key string) string {
	value, _ := h.Get(key)
	return value
}

// Get returns a value corresponding to the key and a bool, indicating
// whether the key exists.
func (h *Headers) Get(key string) (string, bool) {
	needle := fold(key)

	for i, folded := range h.folded {
		if folded == needle {
			return h.pairs[i].Value, true
		}
	}

	return "", false
}

// Values returns all values by the key. Returns nil if key doesn't exist.
//
// WARNING: calling it twice will override values, returned by the first
// call. Consider copying the returned slice for safe use.
func (h *Headers) Values(key string) []string {
	needle := fold(key)
	h.valuesBuff = h.valuesBuff[:0]

	for i, folded := range h.folded {
		if folded == needle {
			h.valuesBuff = append(h.valuesBuff, h.pairs[i].Value)
		}
	}

	if len(h.valuesBuff) == 0 {
		return nil
	}

	return h.valuesBuff
}

// Keys returns all unique presented keys, in their wire spelling.
//
// WARNING: calling it twice will override values, returned by the first
// call. Consider copying the returned slice for safe use.
func (h *Headers) Keys() []string {
	h.uniqueBuff = h.uniqueBuff[:0]

	for i, folded := range h.folded {
		if containsFolded(h.folded[:i], folded) {
			continue
		}

		h.uniqueBuff = append(h.uniqueBuff, h.pairs[i].Key)
	}

	return h.uniqueBuff
}

// Has indicates, whether there's an entry of the key.
func (h *Headers) Has(key string) bool {
	_, found := h.Get(key)
	return found
}

// Len returns the number of stored pairs, duplicates included.
func (h *Headers) Len() int {
	return len(h.pairs)
}

// Pairs reveals the stored pairs in insertion order, keys in their wire
// spelling. The slice stays valid until the next Add.
func (h *Headers) Pairs() []Pair {
	return h.pairs
}

// fold lowercases an ASCII header name. Names are tokens, so the ASCII fold
// is exact; the common all-lowercase case allocates nothing.
func fold(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] |= 0x20
				}
			}

			return string(b)
		}
	}

	return s
}

func containsFolded(folded []string, needle string) bool {
	for _, element := range folded {
		if element == needle {
			return true
		}
	}

	return false
}
