package conc

import "math"

// Result is the outcome of an absorbance-to-concentration conversion.
// Conc and Uncertainty share the calibration's concentration units
// (micromol/L for the standard silicate and phosphate curves).
type Result struct {
	Conc        float64
	Uncertainty float64
}

// LinearCurve is a fitted linear calibration, absorbance = Slope*conc + Intercept.
// SlopeErr and InterceptErr are the standard errors of the fit and feed
// the uncertainty propagation; leave them zero if unknown.
type LinearCurve struct {
	Slope        float64
	Intercept    float64
	SlopeErr     float64
	InterceptErr float64
}

// Concentration inverts the calibration for a measured average
// absorbance and propagates uncertainty to first order.
//
// Three independent error sources combine in quadrature: instrument
// scatter on the blank (blankScatter), the standard error of the slope,
// and the standard error of the intercept, each scaled by the partial
// derivative of the inverse with respect to that input.
//
// Returns ErrZeroSlope if the curve has no inverse.
func (c LinearCurve) Concentration(avgAbs, blankScatter float64) (Result, error) {
	if c.Slope == 0 {
		return Result{}, ErrZeroSlope
	}

	conc := (avgAbs - c.Intercept) / c.Slope

	uAbs := blankScatter / c.Slope
	uSlope := (avgAbs - c.Intercept) / (c.Slope * c.Slope) * c.SlopeErr
	uIntercept := c.InterceptErr / c.Slope

	return Result{
		Conc:        conc,
		Uncertainty: math.Sqrt(uAbs*uAbs + uSlope*uSlope + uIntercept*uIntercept),
	}, nil
}
