package signals

import (
	"cmp"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"
)

type (
	// Time is any totally ordered scalar that supports addition and
	// subtraction
	Time interface {
		constraints.Integer | constraints.Float
	}

	// Tag names one channel of a multi-channel signal. Tags are ordered so
	// that retagging and diagnostics can iterate them canonically
	Tag interface {
		cmp.Ordered
	}

	// Sample maps each Tag recorded at a single time to its Value. A Tag
	// that was not recorded has no entry
	Sample[K Tag, V any] map[K]V

	// Point is a raw observation used to construct a Signal
	Point[T Time, V any] struct {
		Time  T
		Value V
	}

	// Item pairs a recorded time with its Sample
	Item[T Time, K Tag, V any] struct {
		Time   T
		Sample Sample[K, V]
	}
)

// MakePoint returns a Point for the time and value
func MakePoint[T Time, V any](t T, v V) Point[T, V] {
	return Point[T, V]{Time: t, Value: v}
}

// Get returns the value recorded for the tag and whether it was present
func (s Sample[K, V]) Get(tag K) (V, bool) {
	v, ok := s[tag]
	return v, ok
}

// Has reports whether the tag was recorded in the Sample
func (s Sample[K, V]) Has(tag K) bool {
	_, ok := s[tag]
	return ok
}

// Tags returns the Sample's tags in ascending order
func (s Sample[K, _]) Tags() []K {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns a shallow copy of the Sample. The result is never nil
func (s Sample[K, V]) Clone() Sample[K, V] {
	res := make(Sample[K, V], len(s))
	maps.Copy(res, s)
	return res
}

// union returns a new Sample holding the entries of both Samples. On a tag
// collision the value from other wins
func (s Sample[K, V]) union(other Sample[K, V]) Sample[K, V] {
	res := make(Sample[K, V], len(s)+len(other))
	maps.Copy(res, s)
	maps.Copy(res, other)
	return res
}
