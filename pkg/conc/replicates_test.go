package conc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeReplicates(t *testing.T) {
	t.Parallel()

	t.Run("mean and sample standard deviation", func(t *testing.T) {
		t.Parallel()
		mean, stddev, err := SummarizeReplicates([]float64{1, 2, 3, 4})
		require.NoError(t, err)
		assert.InDelta(t, 2.5, mean, 1e-12)
		assert.InDelta(t, math.Sqrt(5.0/3.0), stddev, 1e-12)
	})

	t.Run("single reading has zero scatter", func(t *testing.T) {
		t.Parallel()
		mean, stddev, err := SummarizeReplicates([]float64{0.123})
		require.NoError(t, err)
		assert.Equal(t, 0.123, mean)
		assert.Zero(t, stddev)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		_, _, err := SummarizeReplicates(nil)
		assert.ErrorIs(t, err, ErrNoReplicates)
	})
}
