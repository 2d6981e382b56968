// Package report renders the textual comparison grid for a classified
// measurement.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/acoustiq/nccriteria/pkg/nc"
)

const ruleWidth = 72

// Write renders the comparison table: a header of band frequencies, the
// measured Data row, one row per NC curve with "*" marking each cell the
// measurement meets or exceeds, and the summary lines naming the assigned
// level and the driving bands.
func Write(w io.Writer, levels []float64, res nc.Result) {
	bands := nc.Bands()

	fmt.Fprintf(w, "%7s", "")
	for i, b := range bands {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%6d", int(b))
	}
	fmt.Fprintln(w)

	hr(w)
	fmt.Fprintf(w, "%7s", "Data")
	for i, v := range levels {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%6.1f", v)
	}
	fmt.Fprintln(w)
	hr(w)

	for i, level := range nc.Levels() {
		fmt.Fprintf(w, "%7s", level)
		for j := 0; j < nc.NumBands; j++ {
			marker := ' '
			if res.Exceeds[i][j] {
				marker = '*'
			}
			fmt.Fprintf(w, "%6.1f%c", nc.Threshold(i, j), marker)
		}
		fmt.Fprintln(w)
	}

	hr(w)
	fmt.Fprintf(w, "NC level: %s\n", res.Level)
	for _, b := range res.DrivingBands {
		fmt.Fprintf(w, "  Maximum level at %d Hz\n", int(bands[b]))
	}
	hr(w)
}

func hr(w io.Writer) {
	fmt.Fprintln(w, strings.Repeat("-", ruleWidth))
}
