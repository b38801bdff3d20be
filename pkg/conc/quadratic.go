package conc

import "math"

// QuadraticCurve is a fitted quadratic calibration,
// absorbance = A*conc^2 + B*conc + C.
type QuadraticCurve struct {
	A float64
	B float64
	C float64
}

// Invert solves the calibration for concentration at a single
// absorbance using the quadratic formula.
//
// Only the "+" branch is returned. For the calibration shapes this
// package targets the "-" branch is a negative concentration, which is
// not physical.
//
// Returns ErrDegenerateCurve when A is zero and ErrNoRealRoot when the
// discriminant is negative.
func (c QuadraticCurve) Invert(abs float64) (float64, error) {
	if c.A == 0 {
		return 0, ErrDegenerateCurve
	}

	// Solving A*conc^2 + B*conc + (C - abs) = 0.
	disc := c.B*c.B - 4*c.A*(c.C-abs)
	if disc < 0 {
		return 0, ErrNoRealRoot
	}

	return (-c.B + math.Sqrt(disc)) / (2 * c.A), nil
}

// Concentration inverts the calibration at the measured average
// absorbance and estimates the combined uncertainty.
//
// The sensitivity to absorbance noise is taken numerically: the curve
// is inverted at avgAbs ± blankScatter and half the spread is the
// sample uncertainty term, which combines in quadrature with the blank
// scatter itself.
//
// All three inversions must succeed; the first Invert error is
// returned as-is.
func (c QuadraticCurve) Concentration(avgAbs, blankScatter float64) (Result, error) {
	conc, err := c.Invert(avgAbs)
	if err != nil {
		return Result{}, err
	}

	plus, err := c.Invert(avgAbs + blankScatter)
	if err != nil {
		return Result{}, err
	}
	minus, err := c.Invert(avgAbs - blankScatter)
	if err != nil {
		return Result{}, err
	}

	uSample := math.Abs(plus-minus) / 2

	return Result{
		Conc:        conc,
		Uncertainty: math.Sqrt(blankScatter*blankScatter + uSample*uSample),
	}, nil
}
