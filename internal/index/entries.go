package index

import "cmp"

type Entry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Entries is an ordered key to value mapping returned by slice queries.
// Order and duplicate keys are preserved.
type Entries[K cmp.Ordered, V any] []Entry[K, V]

func (e Entries[K, V]) Len() int { return len(e) }

func (e Entries[K, V]) Keys() []K {
	keys := make([]K, len(e))
	for i, en := range e {
		keys[i] = en.Key
	}
	return keys
}

func (e Entries[K, V]) Values() []V {
	vals := make([]V, len(e))
	for i, en := range e {
		vals[i] = en.Value
	}
	return vals
}

// Lookup returns the value of the first entry with the given key.
func (e Entries[K, V]) Lookup(key K) (V, bool) {
	for _, en := range e {
		if en.Key == key {
			return en.Value, true
		}
	}
	var zero V
	return zero, false
}
