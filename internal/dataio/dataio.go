// Package dataio reads and writes measurement CSV files.
//
// The format is a two-column comma-delimited table with the header line
// "freq Hz,Noise dB" followed by one row per octave band in ascending
// band order, both columns formatted to two decimal places.
package dataio

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/acoustiq/nccriteria/pkg/nc"
)

// bandTolerance bounds the accepted deviation between a file's frequency
// column and the canonical band list, matching the %.2f storage precision.
const bandTolerance = 0.01

var header = []string{"freq Hz", "Noise dB"}

// Save writes the measurement to path in the two-column CSV format.
func Save(path string, levels []float64) error {
	if len(levels) == 0 {
		return nc.ErrMissingData
	}
	if len(levels) != nc.NumBands {
		return &nc.ShapeError{Got: len(levels), Want: nc.NumBands}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	for i, band := range nc.Bands() {
		rec := []string{
			strconv.FormatFloat(band, 'f', 2, 64),
			strconv.FormatFloat(levels[i], 'f', 2, 64),
		}
		if err := w.Write(rec); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// Load reads a measurement from path and returns the level column in band
// order. The file must contain a header line, exactly one row per octave
// band, and frequency values matching the canonical band list; any
// violation fails with an error wrapping nc.ErrMalformedFile.
func Load(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", nc.ErrMalformedFile, path, err)
	}
	if len(rows) != nc.NumBands+1 {
		return nil, fmt.Errorf("%w: %s has %d data rows, want %d",
			nc.ErrMalformedFile, path, len(rows)-1, nc.NumBands)
	}
	if len(rows[0]) < 2 {
		return nil, fmt.Errorf("%w: %s header has %d columns, want 2",
			nc.ErrMalformedFile, path, len(rows[0]))
	}

	bands := nc.Bands()
	levels := make([]float64, nc.NumBands)
	for i, row := range rows[1:] {
		if len(row) < 2 {
			return nil, fmt.Errorf("%w: %s row %d has %d columns, want 2",
				nc.ErrMalformedFile, path, i+2, len(row))
		}
		freq, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s row %d: bad frequency %q",
				nc.ErrMalformedFile, path, i+2, row[0])
		}
		if math.Abs(freq-bands[i]) > bandTolerance {
			return nil, fmt.Errorf("%w: %s row %d: frequency %g does not match band %g Hz",
				nc.ErrMalformedFile, path, i+2, freq, bands[i])
		}
		level, err := strconv.ParseFloat(row[1], 64)
		if err != nil || math.IsNaN(level) || math.IsInf(level, 0) {
			return nil, fmt.Errorf("%w: %s row %d: bad level %q",
				nc.ErrMalformedFile, path, i+2, row[1])
		}
		levels[i] = level
	}
	return levels, nil
}

// TimestampBase returns the timestamped basename used for interactive
// session artifacts, e.g. "20240426-153005-NC-criteria".
func TimestampBase(t time.Time) string {
	return t.Format("20060102-150405") + "-NC-criteria"
}
