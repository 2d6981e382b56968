// Package input collects a measurement from an interactive terminal
// session, one octave band at a time.
package input

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/acoustiq/nccriteria/pkg/nc"
)

// Reader prompts for one sound level per octave band.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer

	// LegacyDropNegative preserves the historical quirk of silently
	// skipping a band when a negative level is entered, leaving a short
	// measurement that classification then rejects. When false (the
	// default) invalid entries are re-prompted until a valid
	// non-negative value is read.
	LegacyDropNegative bool
}

// New returns a Reader prompting on out and reading lines from in.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{scanner: bufio.NewScanner(in), out: out}
}

// ReadLevels prompts for each band in ascending band order and returns
// the collected levels. It fails when the input ends before all bands
// are read, or, in legacy mode, on an unparseable entry.
func (r *Reader) ReadLevels() ([]float64, error) {
	fmt.Fprintln(r.out, "Input noise level.")

	levels := make([]float64, 0, nc.NumBands)
	for _, band := range nc.Bands() {
		for {
			fmt.Fprintf(r.out, "Level at %gHz: ", band)
			if !r.scanner.Scan() {
				if err := r.scanner.Err(); err != nil {
					return nil, fmt.Errorf("read level: %w", err)
				}
				return nil, fmt.Errorf("read level at %g Hz: %w", band, io.ErrUnexpectedEOF)
			}
			text := strings.TrimSpace(r.scanner.Text())

			v, err := strconv.ParseFloat(text, 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				if r.LegacyDropNegative {
					return nil, fmt.Errorf("level at %g Hz: invalid value %q", band, text)
				}
				fmt.Fprintln(r.out, "Please enter a number in dB.")
				continue
			}
			if v < 0 {
				if r.LegacyDropNegative {
					break // skip this band, historical behavior
				}
				fmt.Fprintln(r.out, "Please enter a non-negative level in dB.")
				continue
			}
			levels = append(levels, v)
			break
		}
	}
	return levels, nil
}
