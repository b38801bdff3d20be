// Package conc converts spectrophotometric absorbance readings into
// analyte concentrations using already-fitted calibration curves, and
// propagates measurement uncertainty through the conversion.
//
// Two curve shapes are supported: [LinearCurve] (silicate-style
// calibrations) and [QuadraticCurve] (phosphate-style calibrations).
// Both return a [Result] carrying the concentration together with its
// combined uncertainty, obtained by combining the independent error
// sources in quadrature.
//
// The package also provides [SolveDilution], which rearranges the
// dilution identity c1*v1 = c2*v2 for whichever variable is absent, and
// [SummarizeReplicates] for reducing repeated absorbance readings to a
// mean and sample standard deviation.
//
// Every function is pure: no I/O, no shared state, no goroutines.
// Invalid inputs surface as sentinel errors checkable with errors.Is;
// a nil error guarantees the returned values are finite.
package conc
