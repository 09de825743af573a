package signals_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kode4food/signals"
)

func TestInterp(t *testing.T) {
	sig := mustSignal(t, data1, 0, 4, "x")
	first, err := sig.Get(0)
	require.NoError(t, err)

	for i := range 3 {
		s, err := sig.Interp(float64(i) / 3)
		assert.NoError(t, err)
		assert.Equal(t, first, s)
	}

	s, err := sig.Interp(1)
	assert.NoError(t, err)
	assert.Equal(t, Sample{"x": 1.1}, s)

	s, err = sig.Interp(100)
	assert.NoError(t, err)
	assert.Equal(t, Sample{"x": 3}, s)

	_, err = sig.Interp(-0.5)
	assert.ErrorIs(t, err, signals.ErrNoSample)

	empty, err := signals.Empty[float64, string, float64](0, 4)
	require.NoError(t, err)
	_, err = empty.Interp(2)
	assert.ErrorIs(t, err, signals.ErrNoSample)
}
