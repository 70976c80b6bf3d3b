package index

import (
	"cmp"
	"fmt"
	"slices"
)

type Config[V any] struct {
	// Ascending keeps entries sorted by key. When false entries keep
	// recording order and only the slice backend is available.
	Ascending bool
	Backend   Backend
	// Clone copies a value on insertion so the stack never aliases
	// caller-owned data. Nil stores values as given.
	Clone func(V) V
}

type Stack[K cmp.Ordered, V any] struct {
	ascending bool
	backend   Backend
	clone     func(V) V
	store     store[K, V]
}

func New[K cmp.Ordered, V any](cfg Config[V]) (*Stack[K, V], error) {
	if err := cfg.Backend.Validate(); err != nil {
		return nil, err
	}
	backend := cfg.Backend
	if backend == "" {
		backend = SliceBackend
	}

	s := &Stack[K, V]{ascending: cfg.Ascending, backend: backend, clone: cfg.Clone}
	switch backend {
	case BTreeBackend:
		if !cfg.Ascending {
			return nil, ErrUnsupported
		}
		s.store = newTreeStore[K, V]()
	default:
		s.store = &sliceStore[K, V]{}
	}
	return s, nil
}

func (s *Stack[K, V]) Len() int         { return s.store.Len() }
func (s *Stack[K, V]) Ascending() bool  { return s.ascending }
func (s *Stack[K, V]) Backend() Backend { return s.backend }

func (s *Stack[K, V]) copyOf(v V) V {
	if s.clone == nil {
		return v
	}
	return s.clone(v)
}

// Insert records v under key. Equal keys are kept as separate entries.
func (s *Stack[K, V]) Insert(key K, v V) {
	e := Entry[K, V]{Key: key, Value: s.copyOf(v)}
	if s.ascending {
		s.store.InsertLeft(e)
		return
	}
	s.store.Append(e)
}

// InsertAll records values[i] under keys[i] in order. Nothing is recorded
// when the lengths differ.
func (s *Stack[K, V]) InsertAll(keys []K, values []V) error {
	if len(keys) != len(values) {
		return fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(values))
	}
	for i := range keys {
		s.Insert(keys[i], values[i])
	}
	return nil
}

// Get returns the value recorded under key: the leftmost match in
// ascending mode, the first recorded match otherwise.
func (s *Stack[K, V]) Get(key K) (V, error) {
	var (
		found V
		ok    bool
	)
	from := &key
	if !s.ascending {
		from = nil
	}
	s.store.Scan(from, func(e Entry[K, V]) bool {
		if e.Key == key {
			found, ok = e.Value, true
			return false
		}
		return !s.ascending
	})
	if !ok {
		return found, ErrKeyNotFound
	}
	return found, nil
}

// Slice returns the entries in the interval between start and stop. A nil
// bound leaves that side open.
//
// In ascending mode the interval is [start, stop) and step strides over
// the matched positions; zero means 1 and a negative step walks
// backwards from the position of start towards the position of stop.
// Both bounds are located by bisection and only the matched entries are
// visited.
//
// In unordered mode the interval is (min, max) with both ends excluded,
// the bounds may be given in either order and step is ignored.
func (s *Stack[K, V]) Slice(start, stop *K, step int) Entries[K, V] {
	if !s.ascending {
		return s.filter(start, stop)
	}
	if step == 0 {
		step = 1
	}
	if step > 0 {
		return stride(s.forward(start, stop), step)
	}
	out := s.backward(start, stop)
	slices.Reverse(out)
	return stride(out, -step)
}

// forward collects the entries from the leftmost key >= start up to the
// first key >= stop.
func (s *Stack[K, V]) forward(start, stop *K) Entries[K, V] {
	out := Entries[K, V]{}
	s.store.Scan(start, func(e Entry[K, V]) bool {
		if stop != nil && !(e.Key < *stop) {
			return false
		}
		out = append(out, e)
		return true
	})
	return out
}

// backward collects, in ascending order, the positions a negative step
// walks: after the leftmost key >= stop, through the leftmost key >= start.
func (s *Stack[K, V]) backward(start, stop *K) Entries[K, V] {
	out := Entries[K, V]{}
	s.store.Scan(stop, func(e Entry[K, V]) bool {
		out = append(out, e)
		return start == nil || e.Key < *start
	})
	if stop != nil && len(out) > 0 {
		out = out[1:]
	}
	return out
}

func (s *Stack[K, V]) filter(start, stop *K) Entries[K, V] {
	lo, hi := start, stop
	if lo != nil && hi != nil && *hi < *lo {
		lo, hi = hi, lo
	}

	out := Entries[K, V]{}
	s.store.Scan(nil, func(e Entry[K, V]) bool {
		if (lo == nil || *lo < e.Key) && (hi == nil || e.Key < *hi) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// Last returns the entry in the last position.
func (s *Stack[K, V]) Last() (Entry[K, V], bool) {
	return s.store.Last()
}

func (s *Stack[K, V]) Entries() Entries[K, V] {
	out := make(Entries[K, V], 0, s.store.Len())
	s.store.Scan(nil, func(e Entry[K, V]) bool {
		out = append(out, e)
		return true
	})
	return out
}

func (s *Stack[K, V]) Keys() []K {
	return s.Entries().Keys()
}

func (s *Stack[K, V]) Values() []V {
	return s.Entries().Values()
}

// stride keeps every step-th entry starting with the first.
func stride[K cmp.Ordered, V any](in Entries[K, V], step int) Entries[K, V] {
	if step == 1 {
		return in
	}
	out := make(Entries[K, V], 0, (len(in)+step-1)/step)
	for i := 0; i < len(in); i += step {
		out = append(out, in[i])
	}
	return out
}
