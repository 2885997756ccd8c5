package assoc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Array is a mutable, ordered key-value container with chainable
// higher-order operations, modelled on associative arrays of dynamic
// languages.
//
// Keys are integers or strings ([Key]); values are arbitrary. Raw nested
// collections are exposed as child Arrays when read through [Array.Offset],
// [Array.GetOrCreate] or [Array.All]. Every such read materialises a fresh
// child over a copy of the nested data, so writes to a child never reach the
// parent.
//
// # Creating an Array
//
//	a, err := assoc.New(map[string]any{"a": 1, "b": 2})
//	a := assoc.MustNew([]string{"x", "y"})
//	a := assoc.Explode("1,2,3")
//
// # Method chaining
//
// Bulk transforms modify the receiver and return it:
//
//	a.Filter(func(v any, _ assoc.Key) bool { return v.(int) > 1 }).
//	    Map(func(v any, _ assoc.Key) any { return v.(int) * 10 })
//
// [Array.Keys], [Array.Each], [Array.Fetch] and the package constructors
// return new Arrays instead.
//
// An Array is not safe for concurrent use. The cursor ([Array.Next],
// [Array.Prev], …) is per-instance state and expects a single user at a
// time.
type Array struct {
	data   *Map
	cursor int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an Array from src.
//
// Accepted sources: nil (empty), *Map, any [Arrayable] (including *Array),
// []Entry, slices and arrays (sequential keys), Go maps with integer or
// string keys (sorted by key, since Go maps are unordered), iter.Seq[any],
// iter.Seq2[Key, any], iter.Seq2[any, any], and structs or pointers to
// structs (exported fields in declaration order). Any other source yields
// [ErrInvalidInput].
func New(src any) (*Array, error) {
	m, err := toMap(src)
	if err != nil {
		return nil, err
	}
	return &Array{data: m}, nil
}

// MustNew is like [New] but panics on invalid input.
func MustNew(src any) *Array {
	a, err := New(src)
	if err != nil {
		panic(err)
	}
	return a
}

// Empty creates an empty Array.
func Empty() *Array { return &Array{data: NewMap()} }

// FromKeys creates an Array whose sequential values are the keys of src.
func FromKeys(src any) (*Array, error) {
	m, err := toMap(src)
	if err != nil {
		return nil, err
	}
	out := NewMap()
	for _, k := range m.keys {
		out.Append(k.Value())
	}
	return &Array{data: out}, nil
}

// FromValues creates an Array whose sequential values are the values of src.
func FromValues(src any) (*Array, error) {
	m, err := toMap(src)
	if err != nil {
		return nil, err
	}
	out := NewMap()
	for _, v := range m.Values() {
		out.Append(v)
	}
	return &Array{data: out}, nil
}

// Explode splits s around separator (default ",") into a sequential Array of
// strings. An explicitly empty separator splits s into UTF-8 characters.
//
//	assoc.Explode("a|b", "|") // → [a b]
func Explode(s string, separator ...string) *Array {
	sep := ","
	if len(separator) > 0 {
		sep = separator[0]
	}
	out := NewMap()
	for _, part := range strings.Split(s, sep) {
		out.Append(part)
	}
	return &Array{data: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToArray returns a shallow copy of the backing store. Nested values are
// returned in the shape they are stored in. A nil *Array yields an empty Map.
func (a *Array) ToArray() *Map {
	if a == nil {
		return NewMap()
	}
	return a.data.Clone()
}

// ToJSON serialises the Array: lists become JSON arrays, everything else an
// ordered JSON object.
func (a *Array) ToJSON() ([]byte, error) { return json.Marshal(a.data) }

// MarshalJSON implements [json.Marshaler].
func (a *Array) MarshalJSON() ([]byte, error) { return a.data.MarshalJSON() }

// String returns a JSON representation of the Array.
// It implements [fmt.Stringer].
func (a *Array) String() string {
	b, err := a.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", a.data.Entries())
	}
	return string(b)
}

// Dump prints the Array to stdout and returns a for chaining.
func (a *Array) Dump() *Array {
	fmt.Println(a.String())
	return a
}

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

// Has reports whether key is present. A key holding nil is present.
func (a *Array) Has(key Key) bool { return a.data.Has(key) }

// Get returns the raw value at key, or def[0] (nil when omitted) if the key
// is absent. Nested data is returned as stored, not wrapped.
func (a *Array) Get(key Key, def ...any) any {
	if v, ok := a.data.Get(key); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Offset reads key the way index access does: raw nested data is returned
// as a fresh child *Array. The Array is never modified.
func (a *Array) Offset(key Key) (any, bool) {
	v, ok := a.data.Get(key)
	if !ok {
		return nil, false
	}
	return child(v), true
}

// GetOrCreate is the auto-vivifying index read. When key is absent an empty
// child Array is stored at key and returned, so deep writes can be chained:
//
//	a.GetOrCreate(assoc.Str("user")).(*assoc.Array).Set(assoc.Str("name"), "Ann")
//
// When key is present it behaves like [Array.Offset].
func (a *Array) GetOrCreate(key Key) any {
	v, ok := a.data.Get(key)
	if !ok {
		c := Empty()
		a.store().Set(key, c)
		return c
	}
	return child(v)
}

// Set stores value at key. Collection-shaped values (slices, maps, *Map,
// Arrayables, iterators) are wrapped into a new child Array first.
func (a *Array) Set(key Key, value any) *Array {
	a.store().Set(key, wrapCollection(value))
	return a
}

// Push appends values at the next sequential keys, wrapping
// collection-shaped values like [Array.Set].
func (a *Array) Push(values ...any) *Array {
	for _, v := range values {
		a.store().Append(wrapCollection(v))
	}
	return a
}

// store returns the backing map, allocating it for a zero Array.
func (a *Array) store() *Map {
	if a.data == nil {
		a.data = NewMap()
	}
	return a.data
}

func wrapCollection(v any) any {
	if m, ok := asCollection(v); ok {
		return &Array{data: m}
	}
	return v
}

// Forget removes key. Absent keys are ignored.
func (a *Array) Forget(key Key) *Array {
	a.data.Delete(key)
	return a
}

// Pull removes key and returns its value as [Array.Offset] would. When key
// is absent it returns def[0] (nil when omitted) and leaves a unchanged.
func (a *Array) Pull(key Key, def ...any) any {
	v, ok := a.Offset(key)
	if !ok {
		if len(def) > 0 {
			return def[0]
		}
		return nil
	}
	a.data.Delete(key)
	return v
}

// RenameKey moves the value at from to to. Nothing happens when from is
// absent.
func (a *Array) RenameKey(from, to Key) *Array {
	if a.Has(from) {
		a.Set(to, a.Pull(from))
	}
	return a
}

// Replace swaps the whole backing store for src, accepting the same sources
// as [New]. On error a is left unchanged.
func (a *Array) Replace(src any) (*Array, error) {
	m, err := toMap(src)
	if err != nil {
		return a, err
	}
	return a.replace(m), nil
}

// replace installs m as the new store and rewinds the cursor.
func (a *Array) replace(m *Map) *Array {
	a.data = m
	a.cursor = 0
	return a
}

// Clear removes every entry.
func (a *Array) Clear() *Array { return a.replace(NewMap()) }

// Count returns the number of top-level entries.
func (a *Array) Count() int { return a.data.Len() }

// IsEmpty reports whether the Array has no entries.
func (a *Array) IsEmpty() bool { return a.data.Len() == 0 }

// IsNotEmpty reports whether the Array has at least one entry.
func (a *Array) IsNotEmpty() bool { return a.data.Len() > 0 }

// FirstKey returns the first key, or false when the Array is empty.
func (a *Array) FirstKey() (Key, bool) {
	k, _, ok := a.data.At(0)
	return k, ok
}

// LastKey returns the last key, or false when the Array is empty.
func (a *Array) LastKey() (Key, bool) {
	k, _, ok := a.data.At(a.data.Len() - 1)
	return k, ok
}

// FirstItem returns the first raw value, or false when the Array is empty.
func (a *Array) FirstItem() (any, bool) {
	_, v, ok := a.data.At(0)
	return v, ok
}

// LastItem returns the last raw value, or false when the Array is empty.
func (a *Array) LastItem() (any, bool) {
	_, v, ok := a.data.At(a.data.Len() - 1)
	return v, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Cursor
//
// The cursor is an internal position independent of All(). Moving past either
// end invalidates it until Rewind or End is called. Values are raw.
// ─────────────────────────────────────────────────────────────────────────────

const cursorInvalid = -1

// Rewind moves the cursor to the first entry.
func (a *Array) Rewind() { a.cursor = 0 }

// Current returns the value under the cursor without moving it.
func (a *Array) Current() (any, bool) {
	_, v, ok := a.data.At(a.cursor)
	return v, ok
}

// Key returns the key under the cursor without moving it.
func (a *Array) Key() (Key, bool) {
	k, _, ok := a.data.At(a.cursor)
	return k, ok
}

// Next advances the cursor and returns the new current value.
func (a *Array) Next() (any, bool) {
	if a.cursor == cursorInvalid || a.cursor >= a.data.Len() {
		a.cursor = cursorInvalid
		return nil, false
	}
	a.cursor++
	return a.settle()
}

// Prev moves the cursor back and returns the new current value.
func (a *Array) Prev() (any, bool) {
	if a.cursor == cursorInvalid || a.cursor >= a.data.Len() {
		a.cursor = cursorInvalid
		return nil, false
	}
	a.cursor--
	return a.settle()
}

// End moves the cursor to the last entry and returns its value.
func (a *Array) End() (any, bool) {
	a.cursor = a.data.Len() - 1
	return a.settle()
}

func (a *Array) settle() (any, bool) {
	v, ok := a.Current()
	if !ok {
		a.cursor = cursorInvalid
	}
	return v, ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// Tap calls fn(a) for side-effects and returns a unchanged.
func (a *Array) Tap(fn func(*Array)) *Array {
	fn(a)
	return a
}

// When calls fn(a) if condition is true and returns the result.
// Otherwise returns a unchanged.
func (a *Array) When(condition bool, fn func(*Array) *Array) *Array {
	if condition {
		return fn(a)
	}
	return a
}

// Unless calls fn(a) if condition is false; otherwise returns a.
func (a *Array) Unless(condition bool, fn func(*Array) *Array) *Array {
	return a.When(!condition, fn)
}
