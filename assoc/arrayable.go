package assoc

import "iter"

// Arrayable is implemented by values that can present themselves as a raw
// ordered [Map]. [New], [Array.Set] and [Array.IntersectKeys] accept any
// Arrayable, and both [*Map] and [*Array] implement it.
//
// ToArray must return data the caller may keep; implementations should not
// hand out their internal map.
type Arrayable interface {
	ToArray() *Map
}

// Enumerable is the read-only surface of [Array].
//
// Accept Enumerable in your own functions so that callers can pass any
// implementation without depending on the concrete *Array type.
type Enumerable interface {
	Arrayable

	// All returns a restartable iterator over (key, value) pairs.
	All() iter.Seq2[Key, any]

	// Count returns the number of top-level entries.
	Count() int

	// Get returns the raw value at key, or def[0] (nil) when absent.
	Get(key Key, def ...any) any

	// Has reports whether key is present.
	Has(key Key) bool

	// IsEmpty reports whether there are no entries.
	IsEmpty() bool
}

var (
	_ Enumerable = (*Array)(nil)
	_ Arrayable  = (*Map)(nil)
)
