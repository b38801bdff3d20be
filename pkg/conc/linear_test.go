package conc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearCurveConcentration(t *testing.T) {
	t.Parallel()

	t.Run("exact inverse when error inputs are zero", func(t *testing.T) {
		t.Parallel()
		curve := LinearCurve{Slope: 0.02345, Intercept: 0.0012}

		res, err := curve.Concentration(0.4702, 0)
		require.NoError(t, err)
		assert.Equal(t, (0.4702-0.0012)/0.02345, res.Conc)
		assert.Zero(t, res.Uncertainty)
	})

	t.Run("combines three terms in quadrature", func(t *testing.T) {
		t.Parallel()
		// slope 2, intercept 1, abs 5: conc 2, each term contributes 0.1.
		curve := LinearCurve{
			Slope:        2,
			Intercept:    1,
			SlopeErr:     0.1,
			InterceptErr: 0.2,
		}

		res, err := curve.Concentration(5, 0.2)
		require.NoError(t, err)
		assert.InDelta(t, 2.0, res.Conc, 1e-12)
		assert.InDelta(t, 0.17320508075688773, res.Uncertainty, 1e-12)
	})

	t.Run("uncertainty never negative", func(t *testing.T) {
		t.Parallel()
		curves := []LinearCurve{
			{Slope: -0.5, Intercept: 1.2, SlopeErr: 0.3, InterceptErr: 0.1},
			{Slope: 0.001, Intercept: -4, SlopeErr: 0.002, InterceptErr: 0.5},
			{Slope: 12, Intercept: 0, SlopeErr: 0, InterceptErr: 0},
		}
		for _, curve := range curves {
			res, err := curve.Concentration(-0.7, 0.05)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.Uncertainty, 0.0)
		}
	})

	t.Run("zero slope is a domain error", func(t *testing.T) {
		t.Parallel()
		curve := LinearCurve{Slope: 0, Intercept: 0.5}

		_, err := curve.Concentration(0.3, 0.01)
		assert.ErrorIs(t, err, ErrZeroSlope)
	})
}
