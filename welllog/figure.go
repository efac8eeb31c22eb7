// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package welllog

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Figure is a rendered multi-track well log plot, holding everything
// needed to draw it: see [Figure.Draw], [Figure.WriterTo] and [Figure.Save].
// It is produced by [Render].
type Figure struct {

	// Width and Height are the size of the figure.
	Width, Height vg.Length

	// TopMargin is the fraction of the height below which the
	// track data areas are drawn.
	TopMargin float64

	// Depth is the depth axis shared by all tracks.
	Depth DepthAxis

	// Tracks are the tracks, from left to right.
	Tracks []*Track
}

// DepthAxis is the vertical depth axis shared by all tracks.
// Depth increases downward, so Min is at the top.
type DepthAxis struct {

	// Label is shown on the leftmost track only.
	Label string

	// Min and Max are the top and bottom depths.
	Min, Max float64

	// Major and Minor are the depth tick intervals.
	// A zero interval has no ticks.
	Major, Minor float64
}

// Ticks returns the major and minor depth ticks, where only
// major ticks have a label.
func (da *DepthAxis) Ticks() []plot.Tick {
	return depthTicks{Major: da.Major, Minor: da.Minor}.Ticks(da.Min, da.Max)
}

// Track is one vertical plotting region of a [Figure].
type Track struct {

	// Title is shown above the curve axes.
	Title string

	// TitlePad is the distance of the title above the data area.
	TitlePad vg.Length

	// DepthLabel is true for the track that shows the depth axis label.
	DepthLabel bool

	// Curves are the curves rendered in this track, in order.
	Curves []*Curve

	// Skipped are the columns of configured curves that were not found.
	Skipped []string

	// Formations are the formation markers within the depth range.
	Formations []FormationLine
}

// Curve is one rendered log curve with its own horizontal axis.
type Curve struct {

	// Column is the table column of the curve values.
	Column string

	// Label is shown on the curve axis.
	Label string

	// Color of the line, axis and tick labels.
	Color color.Color

	// LineStyle of the line.
	LineStyle LineStyles

	// Width of the line.
	Width vg.Length

	// Axis is the horizontal axis of the curve.
	Axis CurveAxis

	// XYs are the (value, depth) points of the curve, in depth order.
	// Missing values are NaN, and break the line.
	XYs plotter.XYs
}

// CurveAxis is the independent horizontal axis of one curve,
// sharing the vertical depth axis of its track.
type CurveAxis struct {

	// Min and Max are the axis bounds. Min > Max is allowed,
	// and reverses the direction of the axis.
	Min, Max float64

	// Log is true for a logarithmic axis.
	Log bool

	// Inverted reverses the direction of the axis.
	Inverted bool

	// Offset moves the axis line up from the top of the data area.
	Offset vg.Length

	// Grid determines whether the gridlines at the Ticks are drawn.
	Grid bool

	// Ticks are the gridline positions, of which there are always
	// the configured number regardless of the scale.
	Ticks []plot.Tick
}

// Normalizer returns the [plot.Normalizer] for the axis scale and direction.
func (ca *CurveAxis) Normalizer() plot.Normalizer {
	var nm plot.Normalizer = plot.LinearScale{}
	if ca.Log {
		nm = plot.LogScale{}
	}
	if ca.Inverted {
		nm = plot.InvertedScale{Normalizer: nm}
	}
	return nm
}

// Norm returns the value normalized to the axis, where 0 is the left
// edge and 1 the right edge of the track. It returns false for values
// that cannot be placed on the axis: missing values, non-positive values
// on a log axis, and any value on an empty axis.
func (ca *CurveAxis) Norm(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || ca.Min == ca.Max {
		return 0, false
	}
	if ca.Log && (v <= 0 || ca.Min <= 0 || ca.Max <= 0) {
		return 0, false
	}
	n := ca.Normalizer().Normalize(ca.Min, ca.Max, v)
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// FormationLine is a named depth marker.
type FormationLine struct {
	Name  string
	Depth float64
}

var (
	_ plot.Ticker = depthTicks{}
	_ plot.Ticker = gridTicks{}
)

// maxTicks limits the number of depth ticks for very small intervals.
const maxTicks = 10000

// depthTicks is a [plot.Ticker] for the depth ruler, with major ticks
// at multiples of Major and minor ticks at the other multiples of Minor.
type depthTicks struct {
	Major, Minor float64
}

func (dt depthTicks) Ticks(mn, mx float64) []plot.Tick {
	var ticks []plot.Tick
	if dt.Major > 0 && (mx-mn)/dt.Major < maxTicks {
		for _, v := range multiples(mn, mx, dt.Major) {
			ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
		}
	}
	if dt.Minor > 0 && (mx-mn)/dt.Minor < maxTicks {
		for _, v := range multiples(mn, mx, dt.Minor) {
			if dt.Major > 0 && isMultiple(v, dt.Major) {
				continue
			}
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}

// multiples returns the multiples of step within [mn, mx].
func multiples(mn, mx, step float64) []float64 {
	var vals []float64
	for k := math.Ceil(mn / step); k*step <= mx; k++ {
		vals = append(vals, k*step)
	}
	return vals
}

// isMultiple returns true if v is a multiple of step, within rounding error.
func isMultiple(v, step float64) bool {
	r := math.Abs(math.Remainder(v, step))
	return r < 1e-9*math.Max(1, math.Abs(step))
}

// gridTicks is a [plot.Ticker] that always returns exactly N ticks,
// evenly spaced on a linear axis and geometrically spaced on a log axis,
// so that curves of different scales have the same gridline density.
type gridTicks struct {
	N   int
	Log bool
}

func (gt gridTicks) Ticks(mn, mx float64) []plot.Tick {
	if gt.N <= 0 {
		return nil
	}
	vals := make([]float64, gt.N)
	switch {
	case gt.N == 1:
		vals[0] = mn
	case gt.Log:
		floats.LogSpan(vals, mn, mx)
	default:
		floats.Span(vals, mn, mx)
	}
	ticks := make([]plot.Tick, gt.N)
	for i, v := range vals {
		ticks[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 3, 64)}
	}
	return ticks
}
