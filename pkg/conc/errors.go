package conc

import "errors"

// Domain errors returned by the conversion and dilution functions.
// These are returned by the public API and can be checked with errors.Is.
var (
	// ErrZeroSlope is returned when a linear calibration has slope zero,
	// which has no inverse.
	ErrZeroSlope = errors.New("conc: calibration slope is zero")

	// ErrDegenerateCurve is returned when a quadratic calibration has a
	// zero leading coefficient; the curve degenerates to a line and the
	// quadratic inverse is undefined.
	ErrDegenerateCurve = errors.New("conc: quadratic coefficient a is zero")

	// ErrNoRealRoot is returned when the quadratic discriminant is
	// negative, meaning the absorbance lies outside the range the
	// calibration curve can produce.
	ErrNoRealRoot = errors.New("conc: absorbance outside calibration range (no real root)")

	// ErrDilutionUnderspecified is returned when more than one dilution
	// variable is absent.
	ErrDilutionUnderspecified = errors.New("conc: dilution needs three known values")

	// ErrDilutionOverspecified is returned when all four dilution
	// variables are supplied and there is nothing to solve for.
	ErrDilutionOverspecified = errors.New("conc: all four dilution values supplied")

	// ErrZeroDivisor is returned when the dilution rearrangement would
	// divide by a supplied zero value.
	ErrZeroDivisor = errors.New("conc: dilution divisor is zero")

	// ErrNoReplicates is returned by SummarizeReplicates for an empty
	// input slice.
	ErrNoReplicates = errors.New("conc: no replicate readings")
)
