package assoc

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/spf13/cast"
)

// Kind is the closed classification of values held by a [Map].
type Kind int

const (
	// KindNone is the nil value.
	KindNone Kind = iota
	// KindScalar covers bools, numbers, strings and byte slices.
	KindScalar
	// KindNested covers raw nested maps (*Map) and child containers (*Array).
	KindNested
	// KindOpaque covers every other value: structs, pointers, funcs, …
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindScalar:
		return "scalar"
	case KindNested:
		return "nested"
	}
	return "opaque"
}

// KindOf classifies v as it would be classified once stored in a [Map].
func KindOf(v any) Kind {
	switch normalize(v).(type) {
	case nil:
		return KindNone
	case *Map, *Array:
		return KindNested
	case bool, string, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return KindScalar
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindScalar
	}
	return KindOpaque
}

// ─────────────────────────────────────────────────────────────────────────────
// Source normalisation
// ─────────────────────────────────────────────────────────────────────────────

// normalize turns raw Go collections into *Map. Everything else, including
// *Map and *Array, is returned unchanged.
func normalize(v any) any {
	switch v.(type) {
	case nil, *Map, *Array, string, []byte, bool, int, int64, float64:
		return v
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		if m, ok := asCollection(v); ok {
			return m
		}
	}
	return v
}

// asCollection converts collection-shaped values (maps, slices, arrays,
// iterators, Arrayables) into a fresh *Map. Byte slices, structs and scalars
// are not collections.
func asCollection(src any) (*Map, bool) {
	switch s := src.(type) {
	case nil, []byte, string:
		return nil, false
	case *Map:
		return s.Clone(), true
	case Arrayable:
		return s.ToArray().Clone(), true
	case []Entry:
		return NewMap(s...), true
	case []any:
		m := NewMap()
		for _, v := range s {
			m.Append(v)
		}
		return m, true
	case iter.Seq[any]:
		return fromSeq(s), true
	case func(func(any) bool):
		return fromSeq(s), true
	case iter.Seq2[Key, any]:
		return fromSeq2(s), true
	case func(func(Key, any) bool):
		return fromSeq2(s), true
	case iter.Seq2[any, any]:
		return fromAnySeq2(s), true
	case func(func(any, any) bool):
		return fromAnySeq2(s), true
	}

	rv := reflect.ValueOf(src)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		m := NewMap()
		for i := 0; i < rv.Len(); i++ {
			m.Append(rv.Index(i).Interface())
		}
		return m, true
	case reflect.Map:
		return fromGoMap(rv)
	}
	return nil, false
}

// toMap is the full construction path: collections, nil (empty) and
// structs. Anything else is ErrInvalidInput.
func toMap(src any) (*Map, error) {
	if src == nil {
		return NewMap(), nil
	}
	if m, ok := asCollection(src); ok {
		return m, nil
	}
	rv := reflect.ValueOf(src)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		return fromStruct(rv), nil
	}
	return nil, fmt.Errorf("%w: cannot build a collection from %T", ErrInvalidInput, src)
}

func fromSeq(seq func(func(any) bool)) *Map {
	m := NewMap()
	for v := range seq {
		m.Append(v)
	}
	return m
}

func fromSeq2(seq func(func(Key, any) bool)) *Map {
	m := NewMap()
	for k, v := range seq {
		m.Set(k, v)
	}
	return m
}

func fromAnySeq2(seq func(func(any, any) bool)) *Map {
	m := NewMap()
	for k, v := range seq {
		if key, ok := KeyOf(k); ok && k != nil {
			m.Set(key, v)
			continue
		}
		m.Append(v)
	}
	return m
}

// fromGoMap sorts the entries by key: Go maps carry no order of their own.
func fromGoMap(rv reflect.Value) (*Map, bool) {
	entries := make([]Entry, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		k, ok := KeyOf(it.Key().Interface())
		if !ok {
			return nil, false
		}
		entries = append(entries, Entry{Key: k, Value: it.Value().Interface()})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int { return compareKeys(a.Key, b.Key) })
	return NewMap(entries...), true
}

// fromStruct copies the exported fields in declaration order. The field
// name can be overridden with an `assoc:"name"` tag; `assoc:"-"` skips it.
func fromStruct(rv reflect.Value) *Map {
	m := NewMap()
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("assoc"); ok {
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		m.Set(Str(name), rv.Field(i).Interface())
	}
	return m
}

// nested returns the raw data behind a nested value.
func nested(v any) (*Map, bool) {
	switch n := v.(type) {
	case *Map:
		if n == nil {
			return new(Map), true
		}
		return n, true
	case *Array:
		if n == nil {
			return new(Map), true
		}
		return n.data, true
	}
	return nil, false
}

// child materialises raw nested data as a fresh container. Stored child
// containers are returned as they are.
func child(v any) any {
	if m, ok := v.(*Map); ok {
		return &Array{data: m.Clone()}
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion & comparison
// ─────────────────────────────────────────────────────────────────────────────

// stringify converts a scalar the way string interpolation does in loosely
// typed languages: nil is "", true is "1" and false is "".
func stringify(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case bool:
		if x {
			return "1", nil
		}
		return "", nil
	case *Map, *Array:
		return "", fmt.Errorf("%w: nested collection", ErrConversion)
	}
	return cast.ToStringE(v)
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != "" && x != "0"
	case []byte:
		return len(x) > 0 && string(x) != "0"
	case *Map:
		return x.Len() > 0
	case *Array:
		return x.Count() > 0
	}
	if f, ok := number(v); ok {
		return f != 0
	}
	return true
}

// number reports the numeric value of numbers and numeric strings.
func number(v any) (float64, bool) {
	switch x := v.(type) {
	case bool, nil:
		return 0, false
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := cast.ToFloat64E(s)
		return f, err == nil
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			f = reflect.ValueOf(v).Convert(reflect.TypeOf(float64(0))).Float()
		}
		return f, true
	}
	return 0, false
}

// strictEqual is identity/type-exact equality: same dynamic type and equal
// value. Nested maps compare entry by entry in order; containers and other
// pointers compare by identity.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if am, ok := a.(*Map); ok {
		bm, ok := b.(*Map)
		return ok && mapsEqual(am, bm, strictEqual, true)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if reflect.ValueOf(a).Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

// looseEqual follows the loose comparison rules of dynamic languages:
// nil equals any falsy value except strings, where only "" matches (so nil
// does not equal "0"), bools compare by truthiness, numbers and
// numeric strings compare numerically, and anything stringable falls back
// to comparing string forms.
func looseEqual(a, b any) bool {
	if strictEqual(a, b) {
		return true
	}
	am, aNested := nested(a)
	bm, bNested := nested(b)
	switch {
	case aNested && bNested:
		return mapsEqual(am, bm, looseEqual, false)
	case a == nil || b == nil:
		if s, ok := a.(string); ok {
			return s == ""
		}
		if s, ok := b.(string); ok {
			return s == ""
		}
		return truthy(a) == truthy(b)
	}
	if _, ok := a.(bool); ok {
		return truthy(a) == truthy(b)
	}
	if _, ok := b.(bool); ok {
		return truthy(a) == truthy(b)
	}
	if aNested || bNested {
		return false
	}
	af, aNum := number(a)
	bf, bNum := number(b)
	if aNum && bNum {
		return af == bf
	}
	as, aErr := stringify(a)
	bs, bErr := stringify(b)
	return aErr == nil && bErr == nil && as == bs
}

func mapsEqual(a, b *Map, eq func(x, y any) bool, ordered bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	for i, k := range a.keys {
		if ordered && b.keys[i] != k {
			return false
		}
		bv, ok := b.vals[k]
		if !ok || !eq(a.vals[k], bv) {
			return false
		}
	}
	return true
}
