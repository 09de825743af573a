package signals

type (
	// Reducer folds the values collected in one rolling window into a
	// single value
	Reducer[V, W any] func([]V) W

	// Reducers maps each tag to the Reducer applied to its windows
	Reducers[K Tag, V, W any] map[K]Reducer[V, W]
)

// MakeReducer builds a Reducer from a left fold that starts at init
func MakeReducer[V, W any](init W, fn func(W, V) W) Reducer[V, W] {
	return func(vals []V) W {
		res := init
		for _, v := range vals {
			res = fn(res, v)
		}
		return res
	}
}

// First returns a Reducer that keeps the earliest value of a window
func First[V any]() Reducer[V, V] {
	return func(vals []V) V {
		var zero V
		if len(vals) == 0 {
			return zero
		}
		return vals[0]
	}
}

// Last returns a Reducer that keeps the latest value of a window
func Last[V any]() Reducer[V, V] {
	return func(vals []V) V {
		var zero V
		if len(vals) == 0 {
			return zero
		}
		return vals[len(vals)-1]
	}
}

// Count returns a Reducer that counts the values of a window
func Count[V any]() Reducer[V, int] {
	return func(vals []V) int {
		return len(vals)
	}
}

// Reduce folds every window of a rolled Signal using the Reducer
// registered for its tag. Tags without a Reducer are dropped from the
// result; the recorded times are kept
func Reduce[T Time, K Tag, V, W any](
	s *Signal[T, K, []V], reducers Reducers[K, V, W],
) *Signal[T, K, W] {
	return Transform(s, func(sample Sample[K, []V]) Sample[K, W] {
		res := make(Sample[K, W], len(sample))
		for k, vals := range sample {
			if fn, ok := reducers[k]; ok {
				res[k] = fn(vals)
			}
		}
		return res
	})
}
