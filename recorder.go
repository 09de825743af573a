package signals

import (
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// Recorder accumulates sampled observations, one channel per tag, and
// turns them into Signals. Unlike a Signal, a Recorder is mutable; it is
// safe for concurrent use
type Recorder[T Time, K Tag, V any] struct {
	points map[K][]Point[T, V]
	config *Config
	mu     sync.Mutex
}

// NewRecorder creates an empty Recorder. The options also apply to every
// Signal the Recorder builds
func NewRecorder[T Time, K Tag, V any](opts ...Option) *Recorder[T, K, V] {
	return &Recorder[T, K, V]{
		points: map[K][]Point[T, V]{},
		config: makeConfig(opts...),
	}
}

// Record adds one observation of tag at time t
func (r *Recorder[T, K, V]) Record(tag K, t T, v V) {
	r.RecordAll(tag, MakePoint(t, v))
}

// RecordAll adds a batch of observations of tag
func (r *Recorder[T, K, V]) RecordAll(tag K, pts ...Point[T, V]) {
	if len(pts) == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.points[tag] = append(r.points[tag], pts...)
}

// Len returns the number of observations recorded so far
func (r *Recorder[_, _, _]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := 0
	for _, pts := range r.points {
		res += len(pts)
	}
	return res
}

// Tags returns the tags observed so far, in ascending order
func (r *Recorder[T, K, V]) Tags() []K {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Sorted(maps.Keys(r.points))
}

// Reset discards every recorded observation
func (r *Recorder[T, K, V]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.points = map[K][]Point[T, V]{}
}

// Signal builds a Signal over [start, end) from the observations recorded
// so far. Each tag becomes its own channel; when a tag was observed more
// than once at the same time, the latest observation wins
func (r *Recorder[T, K, V]) Signal(start, end T) (*Signal[T, K, V], error) {
	snap := r.snapshot()
	res, err := Empty[T, K, V](start, end, WithConfig(*r.config))
	if err != nil {
		return nil, err
	}
	for _, tag := range slices.Sorted(maps.Keys(snap)) {
		sig, err := New(snap[tag], start, end, tag, WithConfig(*r.config))
		if err != nil {
			return nil, err
		}
		res = res.Merge(sig)
	}
	r.config.Logger.Debug("Signal built from recorder",
		zap.Int("tags", len(snap)),
		zap.Int("samples", res.Len()),
	)
	return res, nil
}

func (r *Recorder[T, K, V]) snapshot() map[K][]Point[T, V] {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make(map[K][]Point[T, V], len(r.points))
	for k, pts := range r.points {
		res[k] = slices.Clone(pts)
	}
	return res
}
