package assoc_test

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-arraywrap/assoc"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

var (
	s = assoc.Str
	i = assoc.Int
)

// keysOf returns the keys of a as ints and strings.
func keysOf(a *assoc.Array) []any { return a.Keys().ToArray().Values() }

func valuesOf(a *assoc.Array) []any { return a.ToArray().Values() }

func abc() *assoc.Array {
	return assoc.MustNew(map[string]any{"a": 1, "b": 2, "c": 3})
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNew_FromGoMapSortsKeys(t *testing.T) {
	a := assoc.MustNew(map[string]any{"c": 3, "a": 1, "b": 2})
	assert.Equal(t, []any{"a", "b", "c"}, keysOf(a))
	assert.Equal(t, []any{1, 2, 3}, valuesOf(a))

	ints := assoc.MustNew(map[int]string{10: "x", 2: "y"})
	assert.Equal(t, []any{2, 10}, keysOf(ints))
}

func TestNew_FromSlice(t *testing.T) {
	a := assoc.MustNew([]string{"x", "y"})
	assert.Equal(t, []any{0, 1}, keysOf(a))
	assert.Equal(t, []any{"x", "y"}, valuesOf(a))

	arr := assoc.MustNew([2]int{4, 5})
	assert.Equal(t, []any{4, 5}, valuesOf(arr))
}

func TestNew_FromEntriesKeepsOrder(t *testing.T) {
	a := assoc.MustNew([]assoc.Entry{
		{Key: s("z"), Value: 1},
		{Key: i(3), Value: 2},
		{Key: s("a"), Value: 3},
	})
	assert.Equal(t, []any{"z", 3, "a"}, keysOf(a))
}

func TestNew_FromIterators(t *testing.T) {
	var seq iter.Seq[any] = func(yield func(any) bool) {
		for _, v := range []any{"p", "q"} {
			if !yield(v) {
				return
			}
		}
	}
	a := assoc.MustNew(seq)
	assert.Equal(t, []any{"p", "q"}, valuesOf(a))

	pairs := func(yield func(assoc.Key, any) bool) {
		_ = yield(s("k"), 1) && yield(i(7), 2)
	}
	b := assoc.MustNew(pairs)
	assert.Equal(t, []any{"k", 7}, keysOf(b))

	anyPairs := func(yield func(any, any) bool) {
		_ = yield("x", 1) && yield(nil, 2)
	}
	c := assoc.MustNew(anyPairs)
	assert.Equal(t, []any{"x", 0}, keysOf(c), "nil keys append")
}

func TestNew_FromStruct(t *testing.T) {
	type user struct {
		Name    string
		Email   string `assoc:"mail"`
		Secret  string `assoc:"-"`
		private int
	}
	a := assoc.MustNew(&user{Name: "Ann", Email: "ann@example.com", Secret: "x", private: 1})
	assert.Equal(t, []any{"Name", "mail"}, keysOf(a))
	assert.Equal(t, []any{"Ann", "ann@example.com"}, valuesOf(a))
}

func TestNew_FromArrayable(t *testing.T) {
	src := abc()
	a := assoc.MustNew(src)
	a.Set(s("d"), 4)

	assert.Equal(t, 3, src.Count(), "the source must be copied")
	assert.Equal(t, 4, a.Count())
}

func TestNew_NestedCollectionsBecomeMaps(t *testing.T) {
	a := assoc.MustNew(map[string]any{"x": []any{1, 2}})
	assert.Equal(t, assoc.KindNested, assoc.KindOf(a.Get(s("x"))))
	assert.IsType(t, &assoc.Map{}, a.Get(s("x")))
}

func TestNew_InvalidInput(t *testing.T) {
	for _, src := range []any{42, "text", 3.5, true, []byte("raw")} {
		_, err := assoc.New(src)
		assert.ErrorIs(t, err, assoc.ErrInvalidInput, "New(%#v)", src)
	}
	assert.Panics(t, func() { assoc.MustNew(42) })
}

func TestNew_Nil(t *testing.T) {
	a, err := assoc.New(nil)
	require.NoError(t, err)
	assert.True(t, a.IsEmpty())
}

func TestFromKeysAndFromValues(t *testing.T) {
	keys, err := assoc.FromKeys(map[string]int{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, valuesOf(keys))
	assert.Equal(t, []any{0, 1}, keysOf(keys))

	values, err := assoc.FromValues(map[string]int{"a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, valuesOf(values))
	assert.Equal(t, []any{0, 1}, keysOf(values))

	_, err = assoc.FromKeys(1)
	assert.ErrorIs(t, err, assoc.ErrInvalidInput)
	_, err = assoc.FromValues("nope")
	assert.ErrorIs(t, err, assoc.ErrInvalidInput)
}

func TestExplode(t *testing.T) {
	a := assoc.Explode("1,2,3")
	assert.Equal(t, []any{0, 1, 2}, keysOf(a))
	assert.Equal(t, []any{"1", "2", "3"}, valuesOf(a))

	assert.Equal(t, []any{"a", "b"}, valuesOf(assoc.Explode("a|b", "|")))
	assert.Equal(t, []any{""}, valuesOf(assoc.Explode("")))
}

// ─────────────────────────────────────────────────────────────────────────────
// Access
// ─────────────────────────────────────────────────────────────────────────────

func TestAbsentKeys(t *testing.T) {
	a := abc()
	assert.False(t, a.Has(s("zz")))
	assert.Equal(t, "def", a.Get(s("zz"), "def"))
	assert.Nil(t, a.Get(s("zz")))

	v, ok := a.Offset(s("zz"))
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, a.Has(s("zz")), "Offset must not create the key")
}

func TestHas_DistinguishesNilFromAbsent(t *testing.T) {
	a := assoc.Empty().Set(s("k"), nil)
	assert.True(t, a.Has(s("k")))
	assert.Nil(t, a.Get(s("k"), "def"))
}

func TestGet_ReturnsRawNestedData(t *testing.T) {
	a := assoc.MustNew(map[string]any{"x": map[string]any{"y": 1}})
	assert.IsType(t, &assoc.Map{}, a.Get(s("x")))
}

func TestOffset_MaterialisesFreshChildren(t *testing.T) {
	a := assoc.MustNew(map[string]any{"x": map[string]any{"y": 1}})

	first, ok := a.Offset(s("x"))
	require.True(t, ok)
	second, _ := a.Offset(s("x"))
	require.IsType(t, &assoc.Array{}, first)
	assert.NotSame(t, first, second)

	first.(*assoc.Array).Set(s("y"), 99)
	assert.Equal(t, 1, second.(*assoc.Array).Get(s("y")))
	assert.Equal(t, 1, a.DotGet("x.y"), "child writes must not reach the parent")

	scalar, _ := abc().Offset(s("a"))
	assert.Equal(t, 1, scalar)
}

func TestGetOrCreate_AutoVivifies(t *testing.T) {
	a := abc()
	v := a.GetOrCreate(s("new"))

	require.IsType(t, &assoc.Array{}, v)
	assert.True(t, v.(*assoc.Array).IsEmpty())
	assert.True(t, a.Has(s("new")))
	assert.Same(t, v, a.Get(s("new")))

	v.(*assoc.Array).Set(s("deep"), 1)
	assert.Equal(t, 1, a.DotGet("new.deep"))

	assert.Equal(t, 1, a.GetOrCreate(s("a")))
}

func TestSet_WrapsCollections(t *testing.T) {
	a := assoc.Empty().
		Set(s("list"), []int{1, 2}).
		Set(s("n"), 5)

	list := a.Get(s("list"))
	require.IsType(t, &assoc.Array{}, list)
	assert.Equal(t, []any{1, 2}, valuesOf(list.(*assoc.Array)))
	assert.Equal(t, 5, a.Get(s("n")))

	src := abc()
	a.Set(s("copy"), src)
	assert.NotSame(t, src, a.Get(s("copy")))
}

func TestNilArraySources(t *testing.T) {
	var none *assoc.Array

	a, err := assoc.New(none)
	require.NoError(t, err)
	assert.True(t, a.IsEmpty())

	b := assoc.Empty().Set(s("child"), none).Push(none)
	assert.Equal(t, 2, b.Count())
	assert.True(t, b.Get(s("child")).(*assoc.Array).IsEmpty())
	assert.Zero(t, b.CountRecursive())

	assert.Equal(t, 3, abc().Merge(none).Count())
	assert.NotNil(t, none.ToArray())
}

func TestPush(t *testing.T) {
	a := assoc.MustNew([]assoc.Entry{{Key: i(5), Value: "x"}, {Key: s("k"), Value: "y"}})
	a.Push("p", []string{"q"})

	assert.Equal(t, []any{5, "k", 6, 7}, keysOf(a))
	assert.IsType(t, &assoc.Array{}, a.Get(i(7)))
}

func TestZeroArrayIsUsable(t *testing.T) {
	var a assoc.Array
	assert.True(t, a.IsEmpty())
	a.Push(1).Set(s("k"), 2)
	assert.Equal(t, 2, a.Count())
}

func TestForget(t *testing.T) {
	a := abc().Forget(s("b")).Forget(s("missing"))
	assert.Equal(t, []any{"a", "c"}, keysOf(a))
}

func TestPull(t *testing.T) {
	a := abc()
	assert.Equal(t, "def", a.Pull(s("zz"), "def"))
	assert.Equal(t, 3, a.Count())

	assert.Equal(t, 2, a.Pull(s("b")))
	assert.False(t, a.Has(s("b")))

	nested := assoc.MustNew(map[string]any{"n": []int{1}})
	assert.IsType(t, &assoc.Array{}, nested.Pull(s("n")))
}

func TestRenameKey(t *testing.T) {
	a := abc().RenameKey(s("a"), s("z")).RenameKey(s("missing"), s("y"))
	assert.Equal(t, []any{"b", "c", "z"}, keysOf(a))
	assert.Equal(t, 1, a.Get(s("z")))
}

func TestReplace(t *testing.T) {
	a := abc()
	_, err := a.Replace(7)
	assert.ErrorIs(t, err, assoc.ErrInvalidInput)
	assert.Equal(t, 3, a.Count(), "failed replace leaves the store alone")

	got, err := a.Replace([]string{"x"})
	require.NoError(t, err)
	assert.Same(t, a, got)
	assert.Equal(t, []any{"x"}, valuesOf(a))
}

func TestClearAndEmptiness(t *testing.T) {
	a := abc()
	assert.True(t, a.IsNotEmpty())
	a.Clear()
	assert.True(t, a.IsEmpty())
	assert.Equal(t, 0, a.Count())
}

func TestToArrayIsACopy(t *testing.T) {
	a := abc()
	m := a.ToArray()
	m.Set(s("z"), 26)
	assert.False(t, a.Has(s("z")))
}

func TestFirstAndLast(t *testing.T) {
	a := abc()
	k, ok := a.FirstKey()
	require.True(t, ok)
	assert.Equal(t, s("a"), k)
	k, _ = a.LastKey()
	assert.Equal(t, s("c"), k)
	v, _ := a.FirstItem()
	assert.Equal(t, 1, v)
	v, _ = a.LastItem()
	assert.Equal(t, 3, v)

	e := assoc.Empty()
	_, ok = e.FirstKey()
	assert.False(t, ok)
	_, ok = e.LastKey()
	assert.False(t, ok)
	_, ok = e.FirstItem()
	assert.False(t, ok)
	_, ok = e.LastItem()
	assert.False(t, ok)
}

func TestStringAndJSON(t *testing.T) {
	assert.Equal(t, `{"a":1,"b":2,"c":3}`, abc().String())
	assert.Equal(t, `[1,[2,3]]`, assoc.MustNew([]any{1, []any{2, 3}}).String())

	b, err := assoc.Empty().Set(s("k"), []int{1}).ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"k":[1]}`, string(b))
}

// ─────────────────────────────────────────────────────────────────────────────
// Cursor
// ─────────────────────────────────────────────────────────────────────────────

func TestCursor(t *testing.T) {
	a := assoc.MustNew([]int{10, 20, 30})

	v, ok := a.Current()
	require.True(t, ok)
	assert.Equal(t, 10, v)

	v, _ = a.Next()
	assert.Equal(t, 20, v)
	k, _ := a.Key()
	assert.Equal(t, i(1), k)

	v, _ = a.Next()
	assert.Equal(t, 30, v)

	_, ok = a.Next()
	assert.False(t, ok)
	_, ok = a.Current()
	assert.False(t, ok)
	_, ok = a.Prev()
	assert.False(t, ok, "the cursor stays invalid once it left the array")

	a.Rewind()
	v, _ = a.Current()
	assert.Equal(t, 10, v)

	v, ok = a.End()
	require.True(t, ok)
	assert.Equal(t, 30, v)
	v, _ = a.Prev()
	assert.Equal(t, 20, v)
	v, _ = a.Prev()
	assert.Equal(t, 10, v)
	_, ok = a.Prev()
	assert.False(t, ok)
	_, ok = a.Key()
	assert.False(t, ok)
}

func TestCursor_EmptyAndReset(t *testing.T) {
	e := assoc.Empty()
	_, ok := e.Current()
	assert.False(t, ok)
	_, ok = e.End()
	assert.False(t, ok)
	_, ok = e.Next()
	assert.False(t, ok)

	a := abc()
	a.End()
	a.Filter(func(any, assoc.Key) bool { return true })
	k, _ := a.Key()
	assert.Equal(t, s("a"), k, "replacing the store rewinds the cursor")
}

func TestCursor_IndependentOfAll(t *testing.T) {
	a := abc()
	a.Next()
	for range a.All() {
	}
	k, _ := a.Key()
	assert.Equal(t, s("b"), k)
}

// ─────────────────────────────────────────────────────────────────────────────
// Pipeline
// ─────────────────────────────────────────────────────────────────────────────

func TestTapWhenUnless(t *testing.T) {
	var seen int
	a := abc().
		Tap(func(a *assoc.Array) { seen = a.Count() }).
		When(true, func(a *assoc.Array) *assoc.Array { return a.Forget(s("a")) }).
		When(false, func(a *assoc.Array) *assoc.Array { return a.Clear() }).
		Unless(false, func(a *assoc.Array) *assoc.Array { return a.Forget(s("b")) })

	assert.Equal(t, 3, seen)
	assert.Equal(t, []any{"c"}, keysOf(a))
}

func TestErrorsAreSentinels(t *testing.T) {
	_, err := assoc.New(1)
	assert.True(t, errors.Is(err, assoc.ErrInvalidInput))
	assert.Contains(t, err.Error(), "int")
}

// countPositive only needs the read-only surface.
func countPositive(e assoc.Enumerable) int {
	n := 0
	for _, v := range e.All() {
		if x, ok := v.(int); ok && x > 0 {
			n++
		}
	}
	return n
}

func TestEnumerable(t *testing.T) {
	var e assoc.Enumerable = assoc.MustNew([]int{-1, 2, 3})
	assert.Equal(t, 2, countPositive(e))
	assert.Equal(t, 3, e.Count())
	assert.True(t, e.Has(i(0)))
	assert.Equal(t, "none", e.Get(i(9), "none"))
	assert.False(t, e.IsEmpty())
	assert.True(t, e.ToArray().IsList())
}
