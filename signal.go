package signals

import (
	"fmt"
	"iter"
	"strings"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
)

// Signal is an immutable, sparse, discrete-time signal. It maps recorded
// times to Samples and carries a half-open validity interval [start, end).
// Construction and slicing keep every recorded time inside that interval;
// Rolling and Concat may leave times past End, as their documentation
// describes. Every operator returns a new Signal, so a Signal may be shared
// freely between goroutines
type Signal[T Time, K Tag, V any] struct {
	store  *store[T, K, V]
	config *Config
	start  T
	end    T
}

// New builds a single-tag Signal from raw points. The points may be
// unsorted; when a time repeats, the last point wins. Points outside
// [start, end) are dropped
func New[T Time, K Tag, V any](
	data []Point[T, V], start, end T, tag K, opts ...Option,
) (*Signal[T, K, V], error) {
	if start > end {
		return nil, rangeError(start, end)
	}
	cfg := makeConfig(opts...)
	st := newStore[T, K, V](cfg.Degree)
	dropped := 0
	for _, p := range data {
		if p.Time < start || p.Time >= end {
			dropped++
			continue
		}
		st.put(p.Time, Sample[K, V]{tag: p.Value})
	}
	if dropped > 0 {
		cfg.Logger.Debug("Dropped points outside signal bounds",
			zap.Any("tag", tag),
			zap.Any("start", start),
			zap.Any("end", end),
			zap.Int("dropped", dropped),
		)
	}
	return newSignal(cfg, st, start, end), nil
}

// Empty returns a Signal with no recorded samples over [start, end)
func Empty[T Time, K Tag, V any](
	start, end T, opts ...Option,
) (*Signal[T, K, V], error) {
	if start > end {
		return nil, rangeError(start, end)
	}
	cfg := makeConfig(opts...)
	return newSignal(cfg, newStore[T, K, V](cfg.Degree), start, end), nil
}

func newSignal[T Time, K Tag, V any](
	cfg *Config, st *store[T, K, V], start, end T,
) *Signal[T, K, V] {
	return &Signal[T, K, V]{
		store:  st,
		config: cfg,
		start:  start,
		end:    end,
	}
}

func (s *Signal[T, K, V]) derive(st *store[T, K, V], start, end T) *Signal[T, K, V] {
	return newSignal(s.config, st, start, end)
}

func (s *Signal[T, K, V]) emptyStore() *store[T, K, V] {
	return newStore[T, K, V](s.config.Degree)
}

// Start returns the inclusive lower bound of the Signal's domain
func (s *Signal[T, _, _]) Start() T {
	return s.start
}

// End returns the exclusive upper bound of the Signal's domain
func (s *Signal[T, _, _]) End() T {
	return s.end
}

// Len returns the number of recorded times
func (s *Signal[_, _, _]) Len() int {
	return s.store.len()
}

// Times returns the recorded times in ascending order
func (s *Signal[T, K, V]) Times() []T {
	res := make([]T, 0, s.Len())
	s.store.ascend(func(it Item[T, K, V]) bool {
		res = append(res, it.Time)
		return true
	})
	return res
}

// Values returns the recorded Samples in ascending time order
func (s *Signal[T, K, V]) Values() []Sample[K, V] {
	res := make([]Sample[K, V], 0, s.Len())
	s.store.ascend(func(it Item[T, K, V]) bool {
		res = append(res, it.Sample.Clone())
		return true
	})
	return res
}

// Items returns the recorded (time, Sample) pairs in ascending time order
func (s *Signal[T, K, V]) Items() []Item[T, K, V] {
	res := make([]Item[T, K, V], 0, s.Len())
	for t, sample := range s.All() {
		res = append(res, Item[T, K, V]{Time: t, Sample: sample})
	}
	return res
}

// All iterates the recorded (time, Sample) pairs in ascending time order
func (s *Signal[T, K, V]) All() iter.Seq2[T, Sample[K, V]] {
	return func(yield func(T, Sample[K, V]) bool) {
		s.store.ascend(func(it Item[T, K, V]) bool {
			return yield(it.Time, it.Sample.Clone())
		})
	}
}

// Tags returns every tag that appears in any Sample, in ascending order
func (s *Signal[T, K, V]) Tags() []K {
	seen := map[K]struct{}{}
	s.store.ascend(func(it Item[T, K, V]) bool {
		for k := range it.Sample {
			seen[k] = struct{}{}
		}
		return true
	})
	return Sample[K, struct{}](seen).Tags()
}

// Get returns the Sample recorded at exactly time t
func (s *Signal[T, K, V]) Get(t T) (Sample[K, V], error) {
	sample, ok := s.store.get(t)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, t)
	}
	return sample.Clone(), nil
}

// Equal reports whether both Signals have the same bounds and the same
// Samples at the same times. Values are compared deeply
func (s *Signal[T, K, V]) Equal(other *Signal[T, K, V]) bool {
	if s == other {
		return true
	}
	if s == nil || other == nil {
		return false
	}
	if s.start != other.start || s.end != other.end || s.Len() != other.Len() {
		return false
	}
	theirs := other.rawItems()
	i := 0
	eq := true
	s.store.ascend(func(it Item[T, K, V]) bool {
		o := theirs[i]
		i++
		eq = it.Time == o.Time && cmp.Equal(it.Sample, o.Sample)
		return eq
	})
	return eq
}

// String renders the Signal as its bounds followed by its (time, Sample)
// pairs. Tags within each Sample appear in ascending order
func (s *Signal[T, K, V]) String() string {
	var buf strings.Builder
	_, _ = fmt.Fprintf(&buf, "start, end: [%v, %v)\ndata: [", s.start, s.end)
	first := true
	s.store.ascend(func(it Item[T, K, V]) bool {
		if !first {
			buf.WriteString(", ")
		}
		first = false
		_, _ = fmt.Fprintf(&buf, "(%v, {", it.Time)
		for i, k := range it.Sample.Tags() {
			if i > 0 {
				buf.WriteString(", ")
			}
			_, _ = fmt.Fprintf(&buf, "%v: %v", k, it.Sample[k])
		}
		buf.WriteString("})")
		return true
	})
	buf.WriteString("]")
	return buf.String()
}

// rawItems returns the stored entries without copying their Samples
func (s *Signal[T, K, V]) rawItems() []Item[T, K, V] {
	res := make([]Item[T, K, V], 0, s.Len())
	s.store.ascend(func(it Item[T, K, V]) bool {
		res = append(res, it)
		return true
	})
	return res
}

func rangeError[T Time](start, end T) error {
	return fmt.Errorf("%w: [%v, %v)", ErrInvalidRange, start, end)
}
