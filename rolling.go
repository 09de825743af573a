package signals

// Rolling aggregates a sliding window around every recorded time. For an
// anchor t, each tag collects the values recorded at times u with
// t+winStart <= u < t+winEnd, in ascending order of u. Tags with nothing
// in the window are absent from that anchor's Sample.
//
// A non-zero winStart is the zero-start window of the same width, shifted
// backward by winStart. Every anchor keeps its window, but the result's
// domain ends at End - winEnd, so anchors whose window reads past End lie
// beyond the result's End. If that bound collapses below Start, it is
// clamped to Start
func Rolling[T Time, K Tag, V any](
	s *Signal[T, K, V], winStart, winEnd T,
) *Signal[T, K, []V] {
	if winStart != 0 {
		return Rolling(s, 0, winEnd-winStart).ShiftBackward(winStart)
	}

	start, end := s.start, s.end-winEnd
	if end < start {
		end = start
	}
	st := newStore[T, K, []V](s.config.Degree)
	s.store.ascend(func(it Item[T, K, V]) bool {
		st.put(it.Time, s.window(it.Time, it.Time+winEnd))
		return true
	})
	return newSignal(s.config, st, start, end)
}

// window gathers, per tag, the values recorded in [lo, hi)
func (s *Signal[T, K, V]) window(lo, hi T) Sample[K, []V] {
	res := Sample[K, []V]{}
	s.store.ascendRange(lo, hi, func(it Item[T, K, V]) bool {
		for k, v := range it.Sample {
			res[k] = append(res[k], v)
		}
		return true
	})
	return res
}
