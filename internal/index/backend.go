package index

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/google/btree"
)

type Backend string

const (
	SliceBackend Backend = "slice"
	BTreeBackend Backend = "btree"
)

func (b Backend) Validate() error {
	switch b {
	case "", SliceBackend, BTreeBackend:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
}

// store holds entries by position. Positions are sorted order in
// ascending mode and recording order otherwise.
type store[K cmp.Ordered, V any] interface {
	Len() int
	// InsertLeft places e before any entries with an equal key.
	InsertLeft(e Entry[K, V])
	Append(e Entry[K, V])
	// Scan calls visit on entries in position order until it returns
	// false. A non-nil from starts at the leftmost entry with a key >= *from
	// and is only meaningful in ascending mode.
	Scan(from *K, visit func(Entry[K, V]) bool)
	Last() (Entry[K, V], bool)
}

type sliceStore[K cmp.Ordered, V any] struct {
	entries []Entry[K, V]
}

func (s *sliceStore[K, V]) Len() int { return len(s.entries) }

func (s *sliceStore[K, V]) InsertLeft(e Entry[K, V]) {
	s.entries = slices.Insert(s.entries, s.search(e.Key), e)
}

func (s *sliceStore[K, V]) Append(e Entry[K, V]) {
	s.entries = append(s.entries, e)
}

// search returns the number of entries with a key less than k.
func (s *sliceStore[K, V]) search(k K) int {
	i, _ := slices.BinarySearchFunc(s.entries, k, func(e Entry[K, V], k K) int {
		return cmp.Compare(e.Key, k)
	})
	return i
}

func (s *sliceStore[K, V]) Scan(from *K, visit func(Entry[K, V]) bool) {
	i := 0
	if from != nil {
		i = s.search(*from)
	}
	for ; i < len(s.entries); i++ {
		if !visit(s.entries[i]) {
			return
		}
	}
}

func (s *sliceStore[K, V]) Last() (Entry[K, V], bool) {
	if len(s.entries) == 0 {
		return Entry[K, V]{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// treeItem orders by key, then by descending insertion sequence so that
// the newest of several equal keys comes first.
type treeItem[K cmp.Ordered, V any] struct {
	entry Entry[K, V]
	seq   uint64
}

// pivotSeq sorts a pivot before every stored item with the same key.
const pivotSeq = ^uint64(0)

type treeStore[K cmp.Ordered, V any] struct {
	tree *btree.BTreeG[treeItem[K, V]]
	seq  uint64
}

func newTreeStore[K cmp.Ordered, V any]() *treeStore[K, V] {
	return &treeStore[K, V]{
		tree: btree.NewG[treeItem[K, V]](16, func(a, b treeItem[K, V]) bool {
			if c := cmp.Compare(a.entry.Key, b.entry.Key); c != 0 {
				return c < 0
			}
			return a.seq > b.seq
		}),
	}
}

func (s *treeStore[K, V]) pivot(k K) treeItem[K, V] {
	return treeItem[K, V]{entry: Entry[K, V]{Key: k}, seq: pivotSeq}
}

func (s *treeStore[K, V]) Len() int { return s.tree.Len() }

func (s *treeStore[K, V]) InsertLeft(e Entry[K, V]) {
	s.seq++
	s.tree.ReplaceOrInsert(treeItem[K, V]{entry: e, seq: s.seq})
}

func (s *treeStore[K, V]) Append(Entry[K, V]) {
	panic("index: append on btree backend")
}

func (s *treeStore[K, V]) Scan(from *K, visit func(Entry[K, V]) bool) {
	iter := func(it treeItem[K, V]) bool { return visit(it.entry) }
	if from == nil {
		s.tree.Ascend(iter)
		return
	}
	s.tree.AscendGreaterOrEqual(s.pivot(*from), iter)
}

func (s *treeStore[K, V]) Last() (Entry[K, V], bool) {
	it, ok := s.tree.Max()
	return it.entry, ok
}
