package assoc

import "fmt"

// Entry is one key/value pair of a [Map]. It is the element type of
// [Map.Entries] and an accepted source for [New] and [NewMap].
type Entry struct {
	Key   Key
	Value any
}

// String returns a human-readable representation: "(key, value)".
func (e Entry) String() string {
	return fmt.Sprintf("(%s, %v)", e.Key, e.Value)
}
