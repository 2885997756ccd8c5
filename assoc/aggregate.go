package assoc

import (
	"iter"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All returns an iterator over the (key, value) pairs in order. Raw nested
// values are yielded as fresh child Arrays. Each call starts a new
// iteration; modifying the Array while iterating is not supported.
//
//	for k, v := range a.All() {
//	    fmt.Println(k, v)
//	}
func (a *Array) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		a.data.Range(func(k Key, v any) bool {
			return yield(k, child(v))
		})
	}
}

// FitResult tells [Array.Fit] how to proceed after a callback.
type FitResult int

const (
	// Continue moves on to the next entry.
	Continue FitResult = iota
	// Stop ends the scan successfully.
	Stop
	// Abort ends the scan as a failure.
	Abort
)

// Fit scans the entries until fn asks to stop. It returns false as soon as
// fn returns [Abort] and true when fn returns [Stop] or every entry has
// been visited.
func (a *Array) Fit(fn func(any, Key) FitResult) bool {
	ok := true
	a.data.Range(func(k Key, v any) bool {
		switch fn(v, k) {
		case Abort:
			ok = false
			return false
		case Stop:
			return false
		}
		return true
	})
	return ok
}

// ─────────────────────────────────────────────────────────────────────────────
// Search
//
// A needle of type func(any) bool is a predicate; any other needle is
// compared with the stored values.
// ─────────────────────────────────────────────────────────────────────────────

// Search returns the key of the first value loosely equal to needle
// ("1" matches 1, nil matches "" and false), or false when nothing matches.
func (a *Array) Search(needle any) (Key, bool) {
	return a.search(matcher(needle, looseEqual))
}

// SearchStrict is like [Array.Search] but requires the same type and value.
func (a *Array) SearchStrict(needle any) (Key, bool) {
	return a.search(matcher(needle, strictEqual))
}

// SearchAll returns the keys of every value loosely equal to needle.
func (a *Array) SearchAll(needle any) []Key {
	return a.searchAll(matcher(needle, looseEqual))
}

// SearchAllStrict returns the keys of every value strictly equal to needle.
func (a *Array) SearchAllStrict(needle any) []Key {
	return a.searchAll(matcher(needle, strictEqual))
}

func matcher(needle any, eq func(x, y any) bool) func(any) bool {
	if fn, ok := needle.(func(any) bool); ok {
		return fn
	}
	needle = normalize(needle)
	return func(v any) bool { return eq(v, needle) }
}

func (a *Array) search(match func(any) bool) (Key, bool) {
	var (
		found Key
		ok    bool
	)
	a.data.Range(func(k Key, v any) bool {
		if match(v) {
			found, ok = k, true
			return false
		}
		return true
	})
	return found, ok
}

func (a *Array) searchAll(match func(any) bool) []Key {
	keys := make([]Key, 0)
	a.data.Range(func(k Key, v any) bool {
		if match(v) {
			keys = append(keys, k)
		}
		return true
	})
	return keys
}

// ─────────────────────────────────────────────────────────────────────────────
// String helpers
// ─────────────────────────────────────────────────────────────────────────────

// Implode joins the values with glue. Nested values are imploded in place
// with the same glue; empty nested values and values that cannot be
// converted to a string are skipped. nil and false become "", true
// becomes "1".
func (a *Array) Implode(glue string) string {
	s, _ := implodeData(a.data, glue, false)
	return s
}

// ImplodeStrict is like [Array.Implode] but fails with a [*ConversionError]
// naming the first value that cannot be converted to a string.
func (a *Array) ImplodeStrict(glue string) (string, error) {
	return implodeData(a.data, glue, true)
}

func implodeData(m *Map, glue string, strict bool) (string, error) {
	parts := make([]string, 0, m.Len())
	var err error
	m.Range(func(k Key, v any) bool {
		if sub, ok := nested(v); ok {
			if sub.Len() == 0 {
				return true
			}
			var s string
			if s, err = implodeData(sub, glue, strict); err != nil {
				return false
			}
			parts = append(parts, s)
			return true
		}
		s, convErr := stringify(v)
		if convErr != nil {
			if strict {
				err = &ConversionError{Key: k, Value: v, Err: convErr}
				return false
			}
			return true
		}
		parts = append(parts, s)
		return true
	})
	if err != nil {
		return "", err
	}
	return strings.Join(parts, glue), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

// CountRecursive returns the number of leaf values, descending into nested
// values. An empty nested value contributes nothing.
//
//	{x: {y: 1, z: 2}} → Count() == 1, CountRecursive() == 2
func (a *Array) CountRecursive() int { return countLeaves(a.data) }

func countLeaves(m *Map) int {
	n := 0
	m.Range(func(_ Key, v any) bool {
		if sub, ok := nested(v); ok {
			n += countLeaves(sub)
		} else {
			n++
		}
		return true
	})
	return n
}
