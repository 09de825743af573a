package signals

// Map applies fn to every Sample and collapses the results into a
// single-tag Signal over the same domain
func Map[T Time, K Tag, V, W any](
	s *Signal[T, K, V], fn func(Sample[K, V]) W, tag K,
) *Signal[T, K, W] {
	st := newStore[T, K, W](s.config.Degree)
	s.store.ascend(func(it Item[T, K, V]) bool {
		st.put(it.Time, Sample[K, W]{tag: fn(it.Sample.Clone())})
		return true
	})
	return newSignal(s.config, st, s.start, s.end)
}

// Transform replaces every Sample with the result of fn. The recorded
// times are preserved exactly, even when fn returns an empty Sample
func Transform[T Time, K Tag, V, W any](
	s *Signal[T, K, V], fn func(Sample[K, V]) Sample[K, W],
) *Signal[T, K, W] {
	st := newStore[T, K, W](s.config.Degree)
	s.store.ascend(func(it Item[T, K, V]) bool {
		st.put(it.Time, fn(it.Sample.Clone()).Clone())
		return true
	})
	return newSignal(s.config, st, s.start, s.end)
}

// Filter keeps only the times whose Sample satisfies pred. The bounds are
// unchanged
func (s *Signal[T, K, V]) Filter(pred func(Sample[K, V]) bool) *Signal[T, K, V] {
	st := s.emptyStore()
	s.store.ascend(func(it Item[T, K, V]) bool {
		if pred(it.Sample.Clone()) {
			st.put(it.Time, it.Sample)
		}
		return true
	})
	return s.derive(st, s.start, s.end)
}

// Project restricts every Sample to the given tags. A time whose Sample
// ends up empty is still recorded
func (s *Signal[T, K, V]) Project(tags ...K) *Signal[T, K, V] {
	st := s.emptyStore()
	s.store.ascend(func(it Item[T, K, V]) bool {
		res := make(Sample[K, V], len(tags))
		for _, k := range tags {
			if v, ok := it.Sample[k]; ok {
				res[k] = v
			}
		}
		st.put(it.Time, res)
		return true
	})
	return s.derive(st, s.start, s.end)
}

// Retag renames tags according to mapping. Tags missing from mapping keep
// their name. When several tags of one Sample land on the same name, the
// value of the greatest original tag is kept
func (s *Signal[T, K, V]) Retag(mapping map[K]K) *Signal[T, K, V] {
	st := s.emptyStore()
	s.store.ascend(func(it Item[T, K, V]) bool {
		res := make(Sample[K, V], len(it.Sample))
		for _, k := range it.Sample.Tags() {
			to := k
			if m, ok := mapping[k]; ok {
				to = m
			}
			res[to] = it.Sample[k]
		}
		st.put(it.Time, res)
		return true
	})
	return s.derive(st, s.start, s.end)
}
