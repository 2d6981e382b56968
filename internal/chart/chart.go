// Package chart renders the NC curve comparison chart.
//
// A Builder is an explicit, reusable object: each Render call produces an
// independent plot, so multiple classifications can draw without sharing
// canvas state.
package chart

import (
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/acoustiq/nccriteria/pkg/nc"
)

// labelOffset places each curve name to the right of its last point, as a
// multiple of the highest band frequency.
const labelOffset = 1.4

// Builder renders NC comparison charts with fixed geometry.
type Builder struct {
	width  vg.Length
	height vg.Length
	dpi    int
}

// Option configures a Builder.
type Option func(*Builder)

// WithSize sets the canvas size in inches.
func WithSize(width, height float64) Option {
	return func(b *Builder) {
		b.width = vg.Length(width) * vg.Inch
		b.height = vg.Length(height) * vg.Inch
	}
}

// WithDPI sets the raster resolution.
func WithDPI(dpi int) Option {
	return func(b *Builder) {
		b.dpi = dpi
	}
}

// New returns a Builder with a 6x4.5 inch, 300 DPI canvas unless
// overridden by options.
func New(opts ...Option) *Builder {
	b := &Builder{
		width:  6 * vg.Inch,
		height: 4.5 * vg.Inch,
		dpi:    300,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Render builds the comparison plot: one line per NC curve on a
// log-scaled frequency axis, each curve named at its rightmost point,
// plus the measurement as a square-marked overlay when levels is
// non-nil.
func (b *Builder) Render(levels []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "NC curves"
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Sound level (dB)"
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = bandTicks{}
	p.Add(dashedGrid())

	bands := nc.Bands()
	last := bands[nc.NumBands-1]

	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, nc.NumCurves),
		Labels: nc.Levels(),
	}
	for i := 0; i < nc.NumCurves; i++ {
		line, err := plotter.NewLine(curveXYs(i, bands))
		if err != nil {
			return nil, fmt.Errorf("curve %s: %w", nc.Levels()[i], err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)

		labels.XYs[i].X = last * labelOffset
		labels.XYs[i].Y = nc.Threshold(i, nc.NumBands-1)
	}
	curveNames, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, fmt.Errorf("curve labels: %w", err)
	}
	p.Add(curveNames)

	yVals := append(nc.Curve(0), nc.Curve(nc.NumCurves-1)...)
	if levels != nil {
		if len(levels) != nc.NumBands {
			return nil, &nc.ShapeError{Got: len(levels), Want: nc.NumBands}
		}
		xys := make(plotter.XYs, nc.NumBands)
		for j, v := range levels {
			xys[j].X = bands[j]
			xys[j].Y = v
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("measurement overlay: %w", err)
		}
		points.Shape = draw.BoxGlyph{}
		p.Add(line, points)
		yVals = append(yVals, levels...)
	}

	p.X.Min = bands[0]
	p.X.Max = last * 2 // room for the right-edge labels
	p.Y.Min = floats.Min(yVals) - 5
	p.Y.Max = floats.Max(yVals) + 5
	return p, nil
}

// WritePNG renders the chart and writes it to path.
func (b *Builder) WritePNG(path string, levels []float64) error {
	p, err := b.Render(levels)
	if err != nil {
		return err
	}

	c := vgimg.NewWith(vgimg.UseWH(b.width, b.height), vgimg.UseDPI(b.dpi))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func curveXYs(i int, bands []float64) plotter.XYs {
	xys := make(plotter.XYs, nc.NumBands)
	for j := 0; j < nc.NumBands; j++ {
		xys[j].X = bands[j]
		xys[j].Y = nc.Threshold(i, j)
	}
	return xys
}

func dashedGrid() *plotter.Grid {
	g := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(2), vg.Points(2)}
	g.Vertical.Dashes = dashes
	g.Horizontal.Dashes = dashes
	return g
}

// bandTicks puts a labeled tick at each octave-band center frequency.
type bandTicks struct{}

func (bandTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for _, b := range nc.Bands() {
		if b < min || b > max {
			continue
		}
		ticks = append(ticks, plot.Tick{
			Value: b,
			Label: strconv.Itoa(int(b)),
		})
	}
	return ticks
}
