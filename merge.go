package signals

// Merge composes two Signals in parallel. Times recorded in only one
// operand keep that operand's Sample. Where both operands record the same
// time, the Samples are unioned and other's value wins on a shared tag. The
// result spans the smallest domain containing both operands
func (s *Signal[T, K, V]) Merge(other *Signal[T, K, V]) *Signal[T, K, V] {
	st := s.store.clone()
	other.store.ascend(func(it Item[T, K, V]) bool {
		if mine, ok := st.get(it.Time); ok {
			st.put(it.Time, mine.union(it.Sample))
			return true
		}
		st.put(it.Time, it.Sample)
		return true
	})
	return s.derive(st, min(s.start, other.start), max(s.end, other.end))
}
