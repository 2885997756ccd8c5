package assoc

import (
	"cmp"
	"reflect"
	"strconv"
)

// Key identifies an entry in a [Map]. A key is either an integer or a
// string; the zero Key is the empty string key.
//
// Keys are comparable and may be used as Go map keys.
type Key struct {
	str   string
	num   int
	isInt bool
}

// Int returns an integer key.
func Int(i int) Key { return Key{num: i, isInt: true} }

// Str returns a string key. Strings holding a canonical decimal integer
// ("7", "-3", but not "07", "+1" or " 1") become integer keys, so
// Str("1") == Int(1).
func Str(s string) Key {
	if n, ok := canonicalInt(s); ok {
		return Int(n)
	}
	return Key{str: s}
}

func canonicalInt(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(n) != s {
		return 0, false
	}
	return n, true
}

// KeyOf converts v to a Key. Integers of any width, strings, bools (0 or 1),
// floats (truncated toward zero) and nil (the empty string) are accepted;
// every other type reports false.
func KeyOf(v any) (Key, bool) {
	switch x := v.(type) {
	case Key:
		return x, true
	case nil:
		return Str(""), true
	case bool:
		if x {
			return Int(1), true
		}
		return Int(0), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(int(rv.Int())), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Int(int(rv.Uint())), true
	case reflect.Float32, reflect.Float64:
		return Int(int(rv.Float())), true
	case reflect.String:
		return Str(rv.String()), true
	}
	return Key{}, false
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer value of k, or 0 for string keys.
func (k Key) Int() int { return k.num }

// String returns the key as text.
func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.num)
	}
	return k.str
}

// Value returns the key as an int or a string.
func (k Key) Value() any {
	if k.isInt {
		return k.num
	}
	return k.str
}

// compareKeys orders integer keys before string keys.
func compareKeys(a, b Key) int {
	switch {
	case a.isInt && b.isInt:
		return cmp.Compare(a.num, b.num)
	case a.isInt:
		return -1
	case b.isInt:
		return 1
	}
	return cmp.Compare(a.str, b.str)
}
