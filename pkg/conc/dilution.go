package conc

// DilutionVar identifies one of the four variables in the dilution
// identity c1*v1 = c2*v2.
type DilutionVar int

const (
	VarC1 DilutionVar = iota // stock concentration
	VarV1                    // stock (spike) volume
	VarC2                    // diluted concentration
	VarV2                    // diluted volume
)

// String returns the conventional short name for the variable.
func (v DilutionVar) String() string {
	switch v {
	case VarC1:
		return "c1"
	case VarV1:
		return "v1"
	case VarC2:
		return "c2"
	case VarV2:
		return "v2"
	}
	return "unknown"
}

// SolveDilution rearranges the dilution identity c1*v1 = c2*v2 for the
// absent variable. A nil pointer marks the unknown; exactly one of the
// four must be nil. A supplied zero is a legitimate value, not an
// omission, so a zero concentration on the known side is accepted
// wherever it is not a divisor.
//
// Concentrations must share units, as must volumes.
//
// Returns ErrDilutionUnderspecified when more than one value is absent,
// ErrDilutionOverspecified when none is, and ErrZeroDivisor when the
// rearrangement would divide by a supplied zero.
func SolveDilution(c1, v1, c2, v2 *float64) (DilutionVar, float64, error) {
	missing := 0
	for _, p := range []*float64{c1, v1, c2, v2} {
		if p == nil {
			missing++
		}
	}
	switch {
	case missing == 0:
		return 0, 0, ErrDilutionOverspecified
	case missing > 1:
		return 0, 0, ErrDilutionUnderspecified
	}

	switch {
	case c1 == nil:
		if *v1 == 0 {
			return VarC1, 0, ErrZeroDivisor
		}
		return VarC1, (*c2 * *v2) / *v1, nil
	case v1 == nil:
		if *c1 == 0 {
			return VarV1, 0, ErrZeroDivisor
		}
		return VarV1, (*c2 * *v2) / *c1, nil
	case c2 == nil:
		if *v2 == 0 {
			return VarC2, 0, ErrZeroDivisor
		}
		return VarC2, (*c1 * *v1) / *v2, nil
	default:
		if *c2 == 0 {
			return VarV2, 0, ErrZeroDivisor
		}
		return VarV2, (*c1 * *v1) / *c2, nil
	}
}
