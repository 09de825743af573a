package signals

import "fmt"

// Range describes a half-open range lookup. A nil Lo or Hi defaults to the
// Signal's own Start or End. Step exists so that stepped lookups can be
// rejected explicitly; it must be nil
type Range[T Time] struct {
	Lo   *T
	Hi   *T
	Step *T
}

// Between returns the Range [lo, hi)
func Between[T Time](lo, hi T) Range[T] {
	return Range[T]{Lo: &lo, Hi: &hi}
}

// From returns the Range [lo, End)
func From[T Time](lo T) Range[T] {
	return Range[T]{Lo: &lo}
}

// Until returns the Range [Start, hi)
func Until[T Time](hi T) Range[T] {
	return Range[T]{Hi: &hi}
}

// Slice restricts the Signal to the times t with lo <= t < hi. The result's
// bounds are exactly [lo, hi), even when that widens the domain
func (s *Signal[T, K, V]) Slice(lo, hi T) (*Signal[T, K, V], error) {
	if lo > hi {
		return nil, rangeError(lo, hi)
	}
	return s.restrict(lo, hi), nil
}

// Range performs a Slice, filling omitted bounds from the Signal
func (s *Signal[T, K, V]) Range(r Range[T]) (*Signal[T, K, V], error) {
	if r.Step != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, *r.Step)
	}
	lo, hi := s.start, s.end
	if r.Lo != nil {
		lo = *r.Lo
	}
	if r.Hi != nil {
		hi = *r.Hi
	}
	return s.Slice(lo, hi)
}

func (s *Signal[T, K, V]) restrict(lo, hi T) *Signal[T, K, V] {
	st := s.emptyStore()
	s.store.ascendRange(lo, hi, func(it Item[T, K, V]) bool {
		st.put(it.Time, it.Sample)
		return true
	})
	return s.derive(st, lo, hi)
}

// ShiftForward moves every recorded time and both bounds later by delta
func (s *Signal[T, K, V]) ShiftForward(delta T) *Signal[T, K, V] {
	if delta == 0 {
		return s
	}
	st := s.emptyStore()
	s.store.ascend(func(it Item[T, K, V]) bool {
		st.put(it.Time+delta, it.Sample)
		return true
	})
	return s.derive(st, s.start+delta, s.end+delta)
}

// ShiftBackward moves every recorded time and both bounds earlier by delta
func (s *Signal[T, K, V]) ShiftBackward(delta T) *Signal[T, K, V] {
	return s.ShiftForward(-delta)
}

// Concat appends other after this Signal: other's times are shifted
// forward by this Signal's End. Where a shifted time coincides with one of
// this Signal's times, other's Sample wins. The result spans
// [Start, End + other.End - other.Start)
func (s *Signal[T, K, V]) Concat(other *Signal[T, K, V]) *Signal[T, K, V] {
	start, end := s.start, s.end+(other.end-other.start)
	st := s.store.clone()
	other.store.ascend(func(it Item[T, K, V]) bool {
		st.put(it.Time+s.end, it.Sample)
		return true
	})
	return s.derive(st, start, end)
}
