package assoc

// This file holds the bulk transforms. Each one builds a new store and
// installs it on the receiver, so the Array keeps its identity across a
// chain of calls.
//
// The *Recursive variants treat every nested value (raw *Map or child *Array)
// as a sub-collection and apply the same operation to it; the transformed
// nested data is stored back as a raw *Map.

// ─────────────────────────────────────────────────────────────────────────────
// Map / Each
// ─────────────────────────────────────────────────────────────────────────────

// Map replaces every value with fn(value, key).
func (a *Array) Map(fn func(any, Key) any) *Array {
	return a.replace(mapData(a.data, fn, false))
}

// MapRecursive is like [Array.Map] but descends into nested values instead
// of passing them to fn.
func (a *Array) MapRecursive(fn func(any, Key) any) *Array {
	return a.replace(mapData(a.data, fn, true))
}

func mapData(m *Map, fn func(any, Key) any, recursive bool) *Map {
	out := NewMap()
	m.Range(func(k Key, v any) bool {
		if sub, ok := nested(v); ok && recursive {
			out.Set(k, mapData(sub, fn, true))
		} else {
			out.Set(k, fn(v, k))
		}
		return true
	})
	return out
}

// Each returns a new Array holding fn(value, key) for every entry. Unlike
// [Array.Map] the receiver is left untouched.
func (a *Array) Each(fn func(any, Key) any) *Array {
	return &Array{data: mapData(a.data, fn, false)}
}

// ─────────────────────────────────────────────────────────────────────────────
// Filter / Reject
// ─────────────────────────────────────────────────────────────────────────────

// Filter keeps the entries for which fn(value, key) returns true.
func (a *Array) Filter(fn func(any, Key) bool) *Array {
	return a.replace(filterData(a.data, fn, false))
}

// FilterRecursive is like [Array.Filter] but filters nested values in place
// of testing them, dropping nested values that end up empty.
func (a *Array) FilterRecursive(fn func(any, Key) bool) *Array {
	return a.replace(filterData(a.data, fn, true))
}

// Reject removes the entries for which fn(value, key) returns true.
// It is the complement of [Array.Filter].
func (a *Array) Reject(fn func(any, Key) bool) *Array {
	return a.replace(filterData(a.data, not(fn), false))
}

// RejectRecursive is the recursive complement of [Array.FilterRecursive].
func (a *Array) RejectRecursive(fn func(any, Key) bool) *Array {
	return a.replace(filterData(a.data, not(fn), true))
}

func not(fn func(any, Key) bool) func(any, Key) bool {
	return func(v any, k Key) bool { return !fn(v, k) }
}

func filterData(m *Map, keep func(any, Key) bool, recursive bool) *Map {
	out := NewMap()
	m.Range(func(k Key, v any) bool {
		if sub, ok := nested(v); ok && recursive {
			if filtered := filterData(sub, keep, true); filtered.Len() > 0 {
				out.Set(k, filtered)
			}
		} else if keep(v, k) {
			out.Set(k, v)
		}
		return true
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduce
// ─────────────────────────────────────────────────────────────────────────────

// Reduce folds the values left to right: carry = fn(carry, value).
func (a *Array) Reduce(fn func(carry, value any) any, initial any) any {
	carry := initial
	a.data.Range(func(_ Key, v any) bool {
		carry = fn(carry, v)
		return true
	})
	return carry
}

// ReduceMode selects how [Array.ReduceRecursive] folds nested values.
type ReduceMode int

const (
	// ReduceCombine folds a nested value with an independent sub-reduction
	// seeded with the current carry, then combines that result with the
	// carry through fn: carry = fn(carry, subResult).
	ReduceCombine ReduceMode = iota
	// ReduceThread passes one carry through every nested level, so the
	// result equals a fold over the flattened leaves.
	ReduceThread
	// ReduceSkipNested leaves the carry unchanged for nested values: the
	// sub-reduction runs over an empty container seeded with the carry.
	ReduceSkipNested
)

// ReduceRecursive folds like [Array.Reduce] but gives nested values their
// own reduction. mode defaults to [ReduceCombine].
//
//	[1, [2, 3], 4] with + and 0:
//	    ReduceCombine    → 11  (1, then 1+(1+2+3), then +4)
//	    ReduceThread     → 10
//	    ReduceSkipNested → 5
func (a *Array) ReduceRecursive(fn func(carry, value any) any, initial any, mode ...ReduceMode) any {
	m := ReduceCombine
	if len(mode) > 0 {
		m = mode[0]
	}
	return reduceData(a.data, fn, initial, m)
}

func reduceData(data *Map, fn func(carry, value any) any, carry any, mode ReduceMode) any {
	data.Range(func(_ Key, v any) bool {
		sub, ok := nested(v)
		switch {
		case !ok:
			carry = fn(carry, v)
		case mode == ReduceThread:
			carry = reduceData(sub, fn, carry, mode)
		case mode == ReduceCombine:
			carry = fn(carry, reduceData(sub, fn, carry, mode))
		}
		return true
	})
	return carry
}

// ─────────────────────────────────────────────────────────────────────────────
// Transform
// ─────────────────────────────────────────────────────────────────────────────

// Transform rebuilds the Array from fn(value, key), which returns the new
// key, the new value and whether to keep the entry. Later entries overwrite
// earlier ones that map to the same key.
func (a *Array) Transform(fn func(any, Key) (Key, any, bool)) *Array {
	return a.replace(transformData(a.data, fn, false))
}

// TransformRecursive is like [Array.Transform] but descends into nested
// values, keeping them under their original key unless they end up empty.
func (a *Array) TransformRecursive(fn func(any, Key) (Key, any, bool)) *Array {
	return a.replace(transformData(a.data, fn, true))
}

func transformData(m *Map, fn func(any, Key) (Key, any, bool), recursive bool) *Map {
	out := NewMap()
	m.Range(func(k Key, v any) bool {
		if sub, ok := nested(v); ok && recursive {
			if t := transformData(sub, fn, true); t.Len() > 0 {
				out.Set(k, t)
			}
			return true
		}
		if nk, nv, keep := fn(v, k); keep {
			out.Set(nk, nv)
		}
		return true
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Reordering & re-keying
// ─────────────────────────────────────────────────────────────────────────────

// Reverse reverses the order of the entries. String keys are always kept;
// integer keys are renumbered from 0 unless preserveKeys is set.
func (a *Array) Reverse(preserveKeys bool) *Array {
	return a.replace(reverseData(a.data, preserveKeys, false))
}

// ReverseRecursive reverses nested values as well, with the same key policy.
func (a *Array) ReverseRecursive(preserveKeys bool) *Array {
	return a.replace(reverseData(a.data, preserveKeys, true))
}

func reverseData(m *Map, preserveKeys, recursive bool) *Map {
	out := NewMap()
	for i := m.Len() - 1; i >= 0; i-- {
		k, v, _ := m.At(i)
		if sub, ok := nested(v); ok && recursive {
			v = reverseData(sub, preserveKeys, true)
		}
		if k.isInt && !preserveKeys {
			out.Append(v)
		} else {
			out.Set(k, v)
		}
	}
	return out
}

// Values renumbers the keys 0 … Count()-1, keeping order and values.
func (a *Array) Values() *Array {
	out := NewMap()
	for _, v := range a.data.Values() {
		out.Append(v)
	}
	return a.replace(out)
}

// Keys returns a new sequential Array holding the keys of a as ints and
// strings.
func (a *Array) Keys() *Array {
	out := NewMap()
	for _, k := range a.data.Keys() {
		out.Append(k.Value())
	}
	return &Array{data: out}
}

// Flip swaps keys and values. Values that cannot serve as keys (anything but
// strings and integers) are skipped; when several values collide the last
// one wins.
func (a *Array) Flip() *Array {
	out := NewMap()
	a.data.Range(func(k Key, v any) bool {
		if nk, ok := flipKey(v); ok {
			out.Set(nk, k.Value())
		}
		return true
	})
	return a.replace(out)
}

func flipKey(v any) (Key, bool) {
	switch v.(type) {
	case string, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return KeyOf(v)
	}
	return Key{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Key selection
// ─────────────────────────────────────────────────────────────────────────────

// Only keeps the listed keys, in the order they are listed.
func (a *Array) Only(keys ...Key) *Array {
	out := NewMap()
	for _, k := range keys {
		if v, ok := a.data.Get(k); ok {
			out.Set(k, v)
		}
	}
	return a.replace(out)
}

// Except removes the listed keys.
func (a *Array) Except(keys ...Key) *Array {
	out := a.data.Clone()
	for _, k := range keys {
		out.Delete(k)
	}
	return a.replace(out)
}

// IntersectKeys keeps the entries whose key also exists in other, in the
// order of other. other may be any source [New] accepts; anything else
// intersects with nothing.
//
//	a.IntersectKeys(map[string]bool{"id": true, "name": true})
func (a *Array) IntersectKeys(other any) *Array {
	out := NewMap()
	if keys, err := toMap(other); err == nil {
		for _, k := range keys.Keys() {
			if v, ok := a.data.Get(k); ok {
				out.Set(k, v)
			}
		}
	}
	return a.replace(out)
}

// Fetch returns a new sequential Array holding value[key] for every nested
// value. Nested values without key contribute nil; other values are skipped.
//
//	users.Fetch(assoc.Str("name")) // → ["Ann", "Bob"]
func (a *Array) Fetch(key Key) *Array {
	out := NewMap()
	a.data.Range(func(_ Key, v any) bool {
		if sub, ok := nested(v); ok {
			val, _ := sub.Get(key)
			out.Append(val)
		}
		return true
	})
	return &Array{data: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Combining
// ─────────────────────────────────────────────────────────────────────────────

// Merge appends the entries of others. String keys overwrite existing
// entries; integer keys are appended and every integer key, including those
// already in a, is renumbered from 0.
func (a *Array) Merge(others ...Arrayable) *Array {
	out := NewMap()
	merge := func(m *Map) {
		m.Range(func(k Key, v any) bool {
			if k.isInt {
				out.Append(v)
			} else {
				out.Set(k, v)
			}
			return true
		})
	}
	merge(a.data)
	for _, o := range others {
		if o != nil {
			merge(o.ToArray())
		}
	}
	return a.replace(out)
}

// Unique drops every value loosely equal to an earlier one, keeping the
// first key.
func (a *Array) Unique() *Array {
	out := NewMap()
	seen := make([]any, 0, a.data.Len())
	a.data.Range(func(k Key, v any) bool {
		for _, s := range seen {
			if looseEqual(s, v) {
				return true
			}
		}
		seen = append(seen, v)
		out.Set(k, v)
		return true
	})
	return a.replace(out)
}
