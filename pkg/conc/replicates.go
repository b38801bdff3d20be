package conc

import "gonum.org/v1/gonum/stat"

// SummarizeReplicates reduces repeated absorbance readings to the mean
// and the sample standard deviation (Bessel-corrected). The mean is
// what the calibration curves take as avgAbs; the standard deviation of
// blank replicates is the blank scatter input.
//
// A single reading has zero standard deviation. An empty slice returns
// ErrNoReplicates.
func SummarizeReplicates(readings []float64) (mean, stddev float64, err error) {
	switch len(readings) {
	case 0:
		return 0, 0, ErrNoReplicates
	case 1:
		return readings[0], 0, nil
	}

	mean = stat.Mean(readings, nil)
	stddev = stat.StdDev(readings, nil)
	return mean, stddev, nil
}
