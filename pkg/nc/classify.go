package nc

// Result holds the outcome of classifying one measurement.
type Result struct {
	// Curve is the row index of the assigned curve (0 = NC-15).
	Curve int
	// Level is the assigned curve name, e.g. "NC-20".
	Level string
	// DrivingBands lists the band indices that meet or exceed the
	// threshold at the highest curve row with any exceedance: the bands
	// responsible for violating the loosest still-violated curve. Empty
	// when the measurement is strictly below every curve.
	DrivingBands []int
	// Exceeds marks every (curve, band) cell where the measured level is
	// greater than or equal to the threshold.
	Exceeds [NumCurves][NumBands]bool
}

// Classify assigns an NC level to a measured spectrum of NumBands sound
// pressure levels in dB, ordered by ascending band frequency.
//
// A curve is satisfied when the measurement is strictly below its
// threshold in every band; the assigned curve is the first satisfied one
// in ascending order. Equality counts as exceedance, never satisfaction.
//
// It returns ErrMissingData for a nil or empty measurement, a *ShapeError
// for any other length mismatch, and ErrNoSatisfyingCurve when the
// spectrum exceeds even NC-60.
func Classify(measured []float64) (Result, error) {
	if len(measured) == 0 {
		return Result{}, ErrMissingData
	}
	if len(measured) != NumBands {
		return Result{}, &ShapeError{Got: len(measured), Want: NumBands}
	}

	var res Result
	assigned := -1
	for i := range thresholds {
		below := true
		for j, th := range thresholds[i] {
			if measured[j] >= th {
				res.Exceeds[i][j] = true
				below = false
			}
		}
		if below && assigned < 0 {
			assigned = i
		}
	}
	if assigned < 0 {
		return Result{}, ErrNoSatisfyingCurve
	}
	res.Curve = assigned
	res.Level = levels[assigned]

	// Diagnostic, decoupled from the classification decision: report the
	// exceeding bands of the highest row that still has any exceedance.
	for i := NumCurves - 1; i >= 0; i-- {
		var driving []int
		for j := range res.Exceeds[i] {
			if res.Exceeds[i][j] {
				driving = append(driving, j)
			}
		}
		if len(driving) > 0 {
			res.DrivingBands = driving
			break
		}
	}
	return res, nil
}
