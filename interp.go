package signals

import "fmt"

// Interp performs a zero-order hold: it returns the Sample recorded at the
// greatest time at or before t
func (s *Signal[T, K, V]) Interp(t T) (Sample[K, V], error) {
	it, ok := s.store.floor(t)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoSample, t)
	}
	return it.Sample.Clone(), nil
}
