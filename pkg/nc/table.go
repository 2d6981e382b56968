// Package nc classifies octave-band noise spectra against the Beranek
// Noise Criteria curve family.
//
// Reference: L.L. Beranek, J. Acoust. Soc. Amer. 25, 313-321 (1953).
package nc

const (
	// NumBands is the number of standard octave bands.
	NumBands = 8
	// NumCurves is the number of NC curves in the reference table.
	NumCurves = 10
)

// bands holds the octave-band center frequencies in Hz, ascending.
var bands = [NumBands]float64{63, 125, 250, 500, 1000, 2000, 4000, 8000}

// levels names the NC curves, quietest first.
var levels = [NumCurves]string{
	"NC-15", "NC-20", "NC-25", "NC-30", "NC-35",
	"NC-40", "NC-45", "NC-50", "NC-55", "NC-60",
}

// thresholds is the Beranek reference matrix: one row per NC curve
// (quietest first), one column per octave band, values in dB.
var thresholds = [NumCurves][NumBands]float64{
	{47, 36, 29, 22, 17, 14, 12, 11},
	{51, 40, 33, 26, 22, 19, 17, 16},
	{54, 44, 37, 31, 27, 24, 22, 21},
	{57, 48, 41, 35, 31, 29, 28, 27},
	{60, 52, 45, 40, 36, 34, 33, 32},
	{64, 56, 50, 45, 41, 39, 38, 37},
	{67, 60, 54, 49, 46, 44, 43, 42},
	{71, 64, 58, 54, 51, 49, 48, 47},
	{74, 67, 62, 58, 56, 54, 53, 52},
	{77, 71, 67, 63, 61, 59, 58, 57},
}

// Bands returns the octave-band center frequencies in Hz, ascending.
func Bands() []float64 {
	out := make([]float64, NumBands)
	copy(out, bands[:])
	return out
}

// Levels returns the NC curve names, quietest first.
func Levels() []string {
	out := make([]string, NumCurves)
	copy(out, levels[:])
	return out
}

// Curve returns the threshold row for the curve at index i (0 = NC-15).
// It panics if i is out of range, matching slice indexing semantics.
func Curve(i int) []float64 {
	out := make([]float64, NumBands)
	copy(out, thresholds[i][:])
	return out
}

// CurveByName returns the threshold row for the named curve, e.g. "NC-30".
func CurveByName(name string) ([]float64, bool) {
	for i, l := range levels {
		if l == name {
			return Curve(i), true
		}
	}
	return nil, false
}

// Threshold returns the dB threshold for a single (curve, band) cell.
func Threshold(curve, band int) float64 {
	return thresholds[curve][band]
}
