package assoc

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Map is the raw ordered store behind an [Array]: a mapping from [Key] to
// arbitrary values that remembers insertion order.
//
// Overwriting an existing key keeps its position. Appending uses the next
// sequential key, which is one more than the largest integer key ever stored
// (0 for a fresh map) and never decreases when keys are deleted.
//
// Values that are raw Go collections (slices, arrays, maps) are converted to
// nested *Map values on the way in, so a Map never holds unordered data.
// The zero Map is empty and ready to use.
type Map struct {
	keys []Key
	vals map[Key]any
	next int
}

// NewMap creates a Map holding entries in order.
func NewMap(entries ...Entry) *Map {
	m := &Map{vals: make(map[Key]any, len(entries))}
	for _, e := range entries {
		m.Set(e.Key, e.Value)
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Has reports whether k is present, even when its value is nil.
func (m *Map) Has(k Key) bool {
	if m == nil {
		return false
	}
	_, ok := m.vals[k]
	return ok
}

// Get returns the value stored at k and a presence flag.
func (m *Map) Get(k Key) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.vals[k]
	return v, ok
}

// Set stores v at k.
func (m *Map) Set(k Key, v any) {
	if m.vals == nil {
		m.vals = make(map[Key]any)
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = normalize(v)
	if k.isInt && k.num >= m.next {
		m.next = k.num + 1
	}
}

// Append stores v at the next sequential key and returns that key.
func (m *Map) Append(v any) Key {
	k := Int(m.next)
	m.Set(k, v)
	return k
}

// Delete removes k and reports whether it was present.
func (m *Map) Delete(k Key) bool {
	if !m.Has(k) {
		return false
	}
	delete(m.vals, k)
	if i := slices.Index(m.keys, k); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return true
}

// At returns the entry at position i in iteration order.
func (m *Map) At(i int) (Key, any, bool) {
	if i < 0 || i >= m.Len() {
		return Key{}, nil, false
	}
	k := m.keys[i]
	return k, m.vals[k], true
}

// Keys returns a copy of the keys in order.
func (m *Map) Keys() []Key {
	if m == nil {
		return []Key{}
	}
	return slices.Clone(m.keys)
}

// Values returns the values in order.
func (m *Map) Values() []any {
	out := make([]any, 0, m.Len())
	for _, k := range m.Keys() {
		out = append(out, m.vals[k])
	}
	return out
}

// Entries returns the key/value pairs in order.
func (m *Map) Entries() []Entry {
	out := make([]Entry, 0, m.Len())
	for _, k := range m.Keys() {
		out = append(out, Entry{Key: k, Value: m.vals[k]})
	}
	return out
}

// Range calls fn for every entry in order until fn returns false.
func (m *Map) Range(fn func(Key, any) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.vals[k]) {
			return
		}
	}
}

// Clone returns a shallow copy. Nested values are shared, which is safe
// because nested maps are only ever replaced, never modified in place.
func (m *Map) Clone() *Map {
	if m == nil {
		return NewMap()
	}
	out := &Map{
		keys: slices.Clone(m.keys),
		vals: make(map[Key]any, len(m.vals)),
		next: m.next,
	}
	for k, v := range m.vals {
		out.vals[k] = v
	}
	return out
}

// ToArray returns a copy of m. It makes *Map an [Arrayable].
func (m *Map) ToArray() *Map { return m.Clone() }

// IsList reports whether the keys are exactly 0 … Len()-1 in order.
func (m *Map) IsList() bool {
	for i, k := range m.Keys() {
		if !k.isInt || k.num != i {
			return false
		}
	}
	return true
}

// Equal reports whether m and other hold the same keys in the same order
// with strictly equal values. Nested maps are compared entry by entry.
func (m *Map) Equal(other *Map) bool {
	return mapsEqual(m.Clone(), other.Clone(), strictEqual, true)
}

// MarshalJSON encodes lists as JSON arrays and every other map as a JSON
// object whose members keep the insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m.IsList() {
		return json.Marshal(m.Values())
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k.String())
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
