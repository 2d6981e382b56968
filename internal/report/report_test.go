package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acoustiq/nccriteria/pkg/nc"
)

func TestWriteExactNC15Row(t *testing.T) {
	levels := []float64{47, 36, 29, 22, 17, 14, 12, 11}
	res, err := nc.Classify(levels)
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, levels, res)
	out := buf.String()

	assert.Contains(t, out, "    63")
	assert.Contains(t, out, "  8000")
	assert.Contains(t, out, "   Data")
	assert.Contains(t, out, "NC level: NC-20")

	// Every NC-15 cell is met exactly, so every cell carries a marker.
	lines := strings.Split(out, "\n")
	var nc15 string
	for _, l := range lines {
		if strings.HasPrefix(l, "  NC-15") {
			nc15 = l
			break
		}
	}
	require.NotEmpty(t, nc15)
	assert.Equal(t, nc.NumBands, strings.Count(nc15, "*"))
	assert.Contains(t, nc15, "  47.0*")

	// The bounding NC-20 row carries none.
	for _, l := range lines {
		if strings.HasPrefix(l, "  NC-20") {
			assert.NotContains(t, l, "*")
		}
	}

	// All eight bands drive the NC-15 exceedance.
	for _, b := range []string{"63", "125", "250", "500", "1000", "2000", "4000", "8000"} {
		assert.Contains(t, out, "  Maximum level at "+b+" Hz")
	}
}

func TestWriteQuietSpectrumHasNoMarkers(t *testing.T) {
	levels := []float64{30, 25, 20, 15, 10, 8, 6, 5}
	res, err := nc.Classify(levels)
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, levels, res)
	out := buf.String()

	assert.Contains(t, out, "NC level: NC-15")
	assert.NotContains(t, out, "*")
	assert.NotContains(t, out, "Maximum level at")
}

func TestWriteSeparatorWidth(t *testing.T) {
	levels := []float64{47, 36, 29, 22, 17, 14, 12, 11}
	res, err := nc.Classify(levels)
	require.NoError(t, err)

	var buf bytes.Buffer
	Write(&buf, levels, res)

	assert.Contains(t, buf.String(), strings.Repeat("-", 72))
}
