package assoc

import "strings"

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation access
//
// These methods read and write values in nested data using dot-separated
// key paths, mirroring Laravel's Arr::dot, Arr::get, Arr::set, Arr::has and
// Arr::forget.
//
//	a := assoc.MustNew(map[string]any{
//	    "user": map[string]any{
//	        "name":    "Alice",
//	        "address": map[string]any{"city": "London"},
//	    },
//	})
//
//	a.DotGet("user.address.city")    → "London"
//	a.DotSet("user.age", 30)
//	a.DotHas("user.name")            → true
//	a.DotForget("user.address")
//
// Writes copy every nested map along the path, so children materialised
// earlier never observe them.
// ─────────────────────────────────────────────────────────────────────────────

const dotSeparator = "."

// Dot returns a new Array flattening nested values into a single level whose
// keys are dot-notation paths. Empty nested values are kept as leaves.
//
//	{a: {b: 1}, c: []} → {"a.b": 1, "c": []}
func (a *Array) Dot() *Array {
	out := NewMap()
	dotFlatten("", a.data, out)
	return &Array{data: out}
}

func dotFlatten(prefix string, m *Map, out *Map) {
	m.Range(func(k Key, v any) bool {
		path := k.String()
		if prefix != "" {
			path = prefix + dotSeparator + path
		}
		if sub, ok := nested(v); ok && sub.Len() > 0 {
			dotFlatten(path, sub, out)
		} else {
			out.Set(Str(path), v)
		}
		return true
	})
}

// Undot returns a new Array expanding dot-notation keys into nested data.
//
//	{"a.b": 1, "a.c": 2} → {a: {b: 1, c: 2}}
func (a *Array) Undot() *Array {
	out := NewMap()
	a.data.Range(func(k Key, v any) bool {
		dotSet(out, strings.Split(k.String(), dotSeparator), v)
		return true
	})
	return &Array{data: out}
}

// DotGet returns the raw value at the dot-notation path, or def[0] (nil when
// omitted) if any segment is missing. A key that literally contains dots is
// matched before the path is split.
func (a *Array) DotGet(path string, def ...any) any {
	if v, ok := dotLookup(a.data, path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

func dotLookup(m *Map, path string) (any, bool) {
	if v, ok := m.Get(Str(path)); ok {
		return v, true
	}
	current := m
	segments := strings.Split(path, dotSeparator)
	for i, seg := range segments {
		v, ok := current.Get(Str(seg))
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		if current, ok = nested(v); !ok {
			return nil, false
		}
	}
	return nil, false
}

// DotSet writes value at the dot-notation path, creating intermediate nested
// maps as needed and replacing scalars that stand in the way.
//
//	a.DotSet("user.address.postcode", "EC1")
func (a *Array) DotSet(path string, value any) *Array {
	dotSet(a.store(), strings.Split(path, dotSeparator), value)
	return a
}

func dotSet(m *Map, segments []string, value any) {
	k := Str(segments[0])
	if len(segments) == 1 {
		m.Set(k, value)
		return
	}
	var next *Map
	if v, ok := m.Get(k); ok {
		if sub, ok := nested(v); ok {
			next = sub.Clone()
		}
	}
	if next == nil {
		next = NewMap()
	}
	dotSet(next, segments[1:], value)
	m.Set(k, next)
}

// DotHas reports whether every dot-notation path exists. It returns false
// when no path is given.
func (a *Array) DotHas(paths ...string) bool {
	if len(paths) == 0 {
		return false
	}
	for _, p := range paths {
		if _, ok := dotLookup(a.data, p); !ok {
			return false
		}
	}
	return true
}

// DotHasAny reports whether any of the dot-notation paths exists.
func (a *Array) DotHasAny(paths ...string) bool {
	for _, p := range paths {
		if _, ok := dotLookup(a.data, p); ok {
			return true
		}
	}
	return false
}

// DotForget removes the value at the dot-notation path. Intermediate maps
// are kept even when they become empty.
func (a *Array) DotForget(path string) *Array {
	if a.data.Has(Str(path)) {
		a.data.Delete(Str(path))
		return a
	}
	dotForget(a.data, strings.Split(path, dotSeparator))
	return a
}

func dotForget(m *Map, segments []string) {
	k := Str(segments[0])
	if len(segments) == 1 {
		m.Delete(k)
		return
	}
	v, ok := m.Get(k)
	if !ok {
		return
	}
	sub, ok := nested(v)
	if !ok || !hasPath(sub, segments[1:]) {
		return
	}
	next := sub.Clone()
	dotForget(next, segments[1:])
	m.Set(k, next)
}

func hasPath(m *Map, segments []string) bool {
	for i, seg := range segments {
		v, ok := m.Get(Str(seg))
		if !ok {
			return false
		}
		if i == len(segments)-1 {
			return true
		}
		if m, ok = nested(v); !ok {
			return false
		}
	}
	return false
}
