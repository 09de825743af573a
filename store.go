package signals

import (
	"sync"

	"github.com/google/btree"
)

// store is the ordered sparse mapping from time to Sample that backs every
// Signal. Once a store is attached to a Signal it is never written again;
// operators clone it (copy-on-write) or build a fresh one
type store[T Time, K Tag, V any] struct {
	tree *btree.BTreeG[Item[T, K, V]]

	// guards tree.Clone, which swaps the copy-on-write context of the
	// source tree and so may not run concurrently with itself
	mu sync.Mutex
}

func newStore[T Time, K Tag, V any](degree int) *store[T, K, V] {
	return &store[T, K, V]{
		tree: btree.NewG[Item[T, K, V]](degree, lessItem[T, K, V]),
	}
}

func lessItem[T Time, K Tag, V any](a, b Item[T, K, V]) bool {
	return a.Time < b.Time
}

func (s *store[T, K, V]) clone() *store[T, K, V] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &store[T, K, V]{tree: s.tree.Clone()}
}

func (s *store[T, K, V]) put(t T, sample Sample[K, V]) {
	s.tree.ReplaceOrInsert(Item[T, K, V]{Time: t, Sample: sample})
}

func (s *store[T, K, V]) get(t T) (Sample[K, V], bool) {
	it, ok := s.tree.Get(Item[T, K, V]{Time: t})
	return it.Sample, ok
}

func (s *store[T, K, V]) len() int {
	return s.tree.Len()
}

func (s *store[T, K, V]) ascend(fn func(Item[T, K, V]) bool) {
	s.tree.Ascend(fn)
}

// ascendRange visits every entry with lo <= t < hi in ascending order
func (s *store[T, K, V]) ascendRange(lo, hi T, fn func(Item[T, K, V]) bool) {
	if hi < lo {
		return
	}
	s.tree.AscendRange(Item[T, K, V]{Time: lo}, Item[T, K, V]{Time: hi}, fn)
}

// floor returns the entry with the greatest time <= t
func (s *store[T, K, V]) floor(t T) (Item[T, K, V], bool) {
	var res Item[T, K, V]
	var found bool
	s.tree.DescendLessOrEqual(Item[T, K, V]{Time: t},
		func(it Item[T, K, V]) bool {
			res, found = it, true
			return false
		},
	)
	return res, found
}
