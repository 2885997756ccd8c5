// Package assoc provides Array, an ordered associative container with a
// fluent, chainable API for mapping, filtering, reducing, searching and
// reshaping key-value data, inspired by PHP arrays and Laravel's Arr helpers.
//
// # Overview
//
// An [Array] wraps a raw ordered store, [Map], whose keys are integers or
// strings ([Key]) and whose values are arbitrary:
//
//	a := assoc.MustNew(map[string]any{"a": 1, "b": 2, "c": 3})
//	a.Filter(func(v any, _ assoc.Key) bool { return v.(int) > 1 })
//	fmt.Println(a) // {"b":2,"c":3}
//
// Raw Go slices and maps handed to the package are converted to nested *Map
// values. Go maps have no order, so their entries are sorted by key; use
// []assoc.Entry, *Map or an iterator when insertion order matters.
//
// # Nested data
//
// Nested values are raw *Map data or child *Array containers. Reading a
// nested raw value through [Array.Offset], [Array.GetOrCreate] or
// [Array.All] yields a fresh child Array over a copy of that data.
// [Array.GetOrCreate] is the only read that changes the Array: a missing
// key is filled with an empty child so deep writes can be chained.
//
// The *Recursive methods ([Array.MapRecursive], [Array.FilterRecursive],
// [Array.CountRecursive], …) apply the same operation to every nested level.
// Dot-notation helpers ([Array.DotGet], [Array.DotSet], …) address nested
// values by path.
//
// # Mutation
//
// Bulk transforms replace the backing store and return the receiver, so an
// Array keeps its identity across a chain. [Array.Keys], [Array.Each],
// [Array.Fetch], [Array.Dot], [Array.Undot] and the constructors return new
// Arrays.
//
// # Iteration
//
// There are two independent ways to walk an Array: the stateless
// [Array.All] iterator for range loops, and a stateful cursor
// ([Array.Rewind], [Array.Current], [Array.Next], [Array.Prev],
// [Array.End], [Array.Key]) that mirrors pointer-style iteration.
//
// # Errors
//
// Absence is never an error: lookups return defaults or a false flag. Only
// invalid construction input ([ErrInvalidInput]) and strict string
// conversion ([ErrConversion]) fail.
//
// An Array is not safe for concurrent use.
package assoc
