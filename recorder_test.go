package signals_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kode4food/signals"
)

func TestRecorder(t *testing.T) {
	t.Run("builds a multi-tag signal", func(t *testing.T) {
		rec := signals.NewRecorder[float64, string, float64]()
		rec.RecordAll("x", data1...)
		rec.Record("y", 1, -1)
		rec.Record("y", 5, 100)

		assert.Equal(t, 5, rec.Len())
		assert.Equal(t, []string{"x", "y"}, rec.Tags())

		sig, err := rec.Signal(0, 4)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 1, 2}, sig.Times())
		assert.Equal(t, []string{"x", "y"}, sig.Tags())

		s, err := sig.Get(1)
		require.NoError(t, err)
		assert.Equal(t, Sample{"x": 1.1, "y": -1}, s)

		expected := mustSignal(t, data1, 0, 4, "x").Merge(
			mustSignal(t, []Point{{Time: 1, Value: -1}}, 0, 4, "y"),
		)
		assert.True(t, expected.Equal(sig))
	})

	t.Run("latest observation wins", func(t *testing.T) {
		rec := signals.NewRecorder[int, string, string]()
		rec.Record("x", 1, "old")
		rec.Record("x", 1, "new")

		sig, err := rec.Signal(0, 2)
		require.NoError(t, err)
		s, err := sig.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "new", s["x"])
	})

	t.Run("empty and reset", func(t *testing.T) {
		rec := signals.NewRecorder[float64, string, float64]()
		sig, err := rec.Signal(0, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, sig.Len())
		assert.Equal(t, 1.0, sig.End())

		rec.RecordAll("x")
		assert.Equal(t, 0, rec.Len())

		rec.Record("x", 0, 1)
		rec.Reset()
		assert.Equal(t, 0, rec.Len())
		assert.Empty(t, rec.Tags())
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		rec := signals.NewRecorder[float64, string, float64]()
		rec.Record("x", 0, 1)
		_, err := rec.Signal(1, 0)
		assert.ErrorIs(t, err, signals.ErrInvalidRange)
	})

	t.Run("concurrent recording", func(t *testing.T) {
		rec := signals.NewRecorder[int, string, int]()
		tags := []string{"a", "b", "c", "d"}

		var wg sync.WaitGroup
		for _, tag := range tags {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range 100 {
					rec.Record(tag, i, i)
				}
			}()
		}
		wg.Wait()

		sig, err := rec.Signal(0, 100)
		require.NoError(t, err)
		assert.Equal(t, 400, rec.Len())
		assert.Equal(t, 100, sig.Len())
		assert.Equal(t, tags, sig.Tags())
	})

	t.Run("logs builds", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		rec := signals.NewRecorder[float64, string, float64](
			signals.WithLogger(zap.New(core)),
		)
		rec.RecordAll("x", data1...)

		_, err := rec.Signal(0, 2)
		require.NoError(t, err)
		assert.Equal(t, 1,
			logs.FilterMessage("Signal built from recorder").Len(),
		)
		assert.Equal(t, 1,
			logs.FilterMessage("Dropped points outside signal bounds").Len(),
		)
	})
}
