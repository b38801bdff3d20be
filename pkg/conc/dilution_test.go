package conc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func TestSolveDilution(t *testing.T) {
	t.Parallel()

	t.Run("spike volume from stock concentration", func(t *testing.T) {
		t.Parallel()
		// Worked example: 4000.65 umol/L stock diluted to 5 umol/L in
		// 50 mL needs a 0.0625 mL spike.
		solved, v1, err := SolveDilution(ptr(4000.65), nil, ptr(5), ptr(50))
		require.NoError(t, err)
		assert.Equal(t, VarV1, solved)
		assert.InDelta(t, 250.0/4000.65, v1, 1e-12)
		assert.InDelta(t, 0.0625, v1, 1e-4)
	})

	t.Run("round-trips through the identity", func(t *testing.T) {
		t.Parallel()
		known := map[DilutionVar]float64{
			VarC1: 4000.65,
			VarV1: 0.0624898,
			VarC2: 5,
			VarV2: 50,
		}
		for _, unknown := range []DilutionVar{VarC1, VarV1, VarC2, VarV2} {
			unknown := unknown
			t.Run(unknown.String(), func(t *testing.T) {
				t.Parallel()
				args := map[DilutionVar]*float64{}
				for v, val := range known {
					if v != unknown {
						args[v] = ptr(val)
					}
				}

				solved, val, err := SolveDilution(args[VarC1], args[VarV1], args[VarC2], args[VarV2])
				require.NoError(t, err)
				assert.Equal(t, unknown, solved)

				full := map[DilutionVar]float64{unknown: val}
				for v, p := range args {
					full[v] = *p
				}
				assert.InDelta(t, full[VarC1]*full[VarV1], full[VarC2]*full[VarV2], 1e-6)
			})
		}
	})

	t.Run("supplied zero is a value, not an omission", func(t *testing.T) {
		t.Parallel()
		// A genuinely zero stock concentration dilutes to zero.
		solved, c2, err := SolveDilution(ptr(0), ptr(10), nil, ptr(50))
		require.NoError(t, err)
		assert.Equal(t, VarC2, solved)
		assert.Zero(t, c2)
	})

	t.Run("all four supplied", func(t *testing.T) {
		t.Parallel()
		_, _, err := SolveDilution(ptr(1), ptr(2), ptr(3), ptr(4))
		assert.ErrorIs(t, err, ErrDilutionOverspecified)
	})

	t.Run("two absent", func(t *testing.T) {
		t.Parallel()
		_, _, err := SolveDilution(ptr(1), nil, nil, ptr(4))
		assert.ErrorIs(t, err, ErrDilutionUnderspecified)
	})

	t.Run("zero divisor", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name           string
			c1, v1, c2, v2 *float64
		}{
			{"solve c1 with zero v1", nil, ptr(0), ptr(5), ptr(50)},
			{"solve v1 with zero c1", ptr(0), nil, ptr(5), ptr(50)},
			{"solve c2 with zero v2", ptr(4000.65), ptr(0.0625), nil, ptr(0)},
			{"solve v2 with zero c2", ptr(4000.65), ptr(0.0625), ptr(0), nil},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				_, _, err := SolveDilution(tt.c1, tt.v1, tt.c2, tt.v2)
				assert.ErrorIs(t, err, ErrZeroDivisor)
			})
		}
	})
}
