package dataio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acoustiq/nccriteria/pkg/nc"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "measurement.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSaveLoadRoundTrip(t *testing.T) {
	levels := []float64{47.25, 36.5, 29.75, 22.1, 17.99, 14.01, 12.34, 11.0}
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, Save(path, levels))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, nc.NumBands)
	for i := range levels {
		// Values survive to the stored two-decimal precision.
		assert.InDelta(t, levels[i], got[i], 0.005, "band %d", i)
	}
}

func TestSaveFormat(t *testing.T) {
	levels := []float64{47, 36, 29, 22, 17, 14, 12, 11}
	path := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, Save(path, levels))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "freq Hz,Noise dB\n" +
		"63.00,47.00\n" +
		"125.00,36.00\n" +
		"250.00,29.00\n" +
		"500.00,22.00\n" +
		"1000.00,17.00\n" +
		"2000.00,14.00\n" +
		"4000.00,12.00\n" +
		"8000.00,11.00\n"
	assert.Equal(t, want, string(data))
}

func TestSaveRejectsMissingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	assert.ErrorIs(t, Save(path, nil), nc.ErrMissingData)
}

func TestSaveRejectsShortMeasurement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	assert.ErrorIs(t, Save(path, []float64{47, 36, 29}), nc.ErrShape)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadWrongRowCount(t *testing.T) {
	path := writeFile(t, "freq Hz,Noise dB\n63.00,47.00\n125.00,36.00\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, nc.ErrMalformedFile)
}

func TestLoadMissingColumn(t *testing.T) {
	path := writeFile(t, "freq Hz,Noise dB\n"+
		"63.00,47.00\n125.00,36.00\n250.00,29.00\n500.00\n"+
		"1000.00,17.00\n2000.00,14.00\n4000.00,12.00\n8000.00,11.00\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, nc.ErrMalformedFile)
}

func TestLoadNonNumericLevel(t *testing.T) {
	path := writeFile(t, "freq Hz,Noise dB\n"+
		"63.00,47.00\n125.00,loud\n250.00,29.00\n500.00,22.00\n"+
		"1000.00,17.00\n2000.00,14.00\n4000.00,12.00\n8000.00,11.00\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, nc.ErrMalformedFile)
}

func TestLoadValidatesBandFrequencies(t *testing.T) {
	// Rows out of band order must be rejected, not trusted positionally.
	path := writeFile(t, "freq Hz,Noise dB\n"+
		"125.00,36.00\n63.00,47.00\n250.00,29.00\n500.00,22.00\n"+
		"1000.00,17.00\n2000.00,14.00\n4000.00,12.00\n8000.00,11.00\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, nc.ErrMalformedFile)
}

func TestTimestampBase(t *testing.T) {
	ts := time.Date(2024, time.April, 26, 15, 30, 5, 0, time.UTC)
	assert.Equal(t, "20240426-153005-NC-criteria", TimestampBase(ts))
}
