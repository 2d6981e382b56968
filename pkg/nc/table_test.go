package nc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandsAscending(t *testing.T) {
	b := Bands()
	require.Len(t, b, NumBands)
	for i := 1; i < len(b); i++ {
		assert.Greater(t, b[i], b[i-1])
		// Octave bands double in frequency.
		assert.InDelta(t, 2*b[i-1], b[i], 1e-9)
	}
}

func TestLevelsOrderedByStrictness(t *testing.T) {
	l := Levels()
	require.Len(t, l, NumCurves)
	assert.Equal(t, "NC-15", l[0])
	assert.Equal(t, "NC-60", l[NumCurves-1])
}

func TestThresholdsMonotonicAcrossCurves(t *testing.T) {
	// Quieter curves have lower-or-equal thresholds at every band.
	for i := 1; i < NumCurves; i++ {
		for j := 0; j < NumBands; j++ {
			assert.GreaterOrEqual(t, Threshold(i, j), Threshold(i-1, j),
				"curve %d band %d", i, j)
		}
	}
}

func TestCurveByName(t *testing.T) {
	row, ok := CurveByName("NC-30")
	require.True(t, ok)
	assert.Equal(t, []float64{57, 48, 41, 35, 31, 29, 28, 27}, row)

	_, ok = CurveByName("NC-99")
	assert.False(t, ok)
}

func TestCurveReturnsCopy(t *testing.T) {
	row := Curve(0)
	row[0] = -1
	assert.Equal(t, 47.0, Threshold(0, 0))
}
