// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package welllog

import (
	"fmt"
	"log/slog"
	"math"

	"cogentcore.org/welllog/base/errors"
	"cogentcore.org/welllog/minmax"
	"cogentcore.org/welllog/smooth"
	"cogentcore.org/welllog/table"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	// TrackWidth is the width of each track in the figure.
	TrackWidth = 4 * vg.Inch

	// TitleMargin is the space between the highest curve axis
	// and the track title.
	TitleMargin vg.Length = 60

	// SmoothingWindow is the window length of the Savitzky-Golay filter.
	// Curves with no more than this many values are not smoothed.
	SmoothingWindow = 5

	// SmoothingOrder is the polynomial order of the Savitzky-Golay filter.
	SmoothingOrder = 3

	// CurveLineWidth is the width of the curve lines.
	CurveLineWidth = vg.Length(1)
)

// Render renders the given table as a multi-track well log [Figure],
// with one track per [TrackConfig], from left to right, all sharing
// a depth axis from params.TopDepth at the top to params.BottomDepth
// at the bottom. Only the rows within that depth range are plotted.
// Curves whose column is not in the table are skipped with a warning.
// The given table and configurations are not modified.
func Render(dt *table.Table, tracks []TrackConfig, params RenderParams) *Figure {
	params.Defaults()
	fig := &Figure{
		Width:     TrackWidth * vg.Length(max(1, len(tracks))),
		Height:    vg.Length(params.FigureHeight) * vg.Inch,
		TopMargin: params.TopMargin,
		Depth: DepthAxis{
			Label: "Depth",
			Min:   params.TopDepth,
			Max:   params.BottomDepth,
			Major: params.MajorTickInterval,
			Minor: params.MinorTickInterval,
		},
	}

	logs, err := dt.FilterRange(params.DepthColumn, params.TopDepth, params.BottomDepth)
	if err != nil {
		errors.Log(fmt.Errorf("welllog.Render: %w", err))
		logs = table.NewTable(dt.Name)
	}

	configs := make([]TrackConfig, len(tracks))
	for i := range tracks {
		configs[i] = tracks[i].Defaults()
		if configs[i].Title == "" {
			configs[i].Title = fmt.Sprintf("Track %d", i+1)
		}
	}

	for i := range configs {
		if configs[i].Smoothing == SmoothingOn {
			smoothTrack(logs, &configs[i])
		}
	}

	depth := logs.Column(params.DepthColumn)
	for i := range configs {
		tc := &configs[i]
		tr := &Track{
			Title:      tc.Title,
			TitlePad:   vg.Length(tc.MaxPositionOffset()) + TitleMargin,
			DepthLabel: i == 0,
		}
		for _, cc := range tc.Curves {
			if !logs.HasColumn(cc.Column) || depth == nil {
				slog.Warn("welllog: column not found, skipping curve", "column", cc.Column, "track", tc.Title)
				tr.Skipped = append(tr.Skipped, cc.Column)
				continue
			}
			tr.Curves = append(tr.Curves, newCurve(logs.Column(cc.Column), depth, &cc, tc.GridOn(), params.NumVerticalGridlines))
		}
		tr.Formations = formationLines(&params)
		fig.Tracks = append(fig.Tracks, tr)
	}
	return fig
}

// smoothTrack smooths the values of each curve column of the track
// in the working table, in place.
func smoothTrack(logs *table.Table, tc *TrackConfig) {
	for _, cc := range tc.Curves {
		cl := logs.Column(cc.Column)
		if cl == nil {
			continue
		}
		sm, n, err := smooth.SavGolValid(table.Floats(cl), SmoothingWindow, SmoothingOrder)
		if errors.Log(err) != nil || n <= SmoothingWindow {
			continue
		}
		for i, v := range sm {
			if !math.IsNaN(v) {
				cl.SetFloat1D(v, i)
			}
		}
	}
}

// newCurve returns the rendered curve for the given column values
// and configuration.
func newCurve(vals, depth table.Column, cc *CurveConfig, trackGrid bool, nGrid int) *Curve {
	clr, err := ParseColor(cc.Color)
	if err != nil {
		slog.Warn("welllog: invalid curve color, using black", "column", cc.Column, "color", cc.Color)
	}
	cv := &Curve{
		Column:    cc.Column,
		Label:     cc.Label,
		Color:     clr,
		LineStyle: cc.LineStyle,
		Width:     CurveLineWidth,
		XYs:       make(plotter.XYs, vals.Len()),
	}
	for i := range cv.XYs {
		cv.XYs[i].X = vals.Float1D(i)
		cv.XYs[i].Y = depth.Float1D(i)
	}
	ax := &cv.Axis
	ax.Log = cc.LogScale
	ax.Inverted = cc.InvertAxis
	ax.Offset = vg.Length(cc.PositionOffset)
	ax.Grid = cc.GridOn(trackGrid)
	ax.Min, ax.Max = axisRange(cv.XYs, cc)
	ax.Ticks = gridTicks{N: nGrid, Log: ax.Log}.Ticks(ax.Min, ax.Max)
	return cv
}

// axisRange returns the axis bounds for the curve: the configured
// fixed bounds where set, and otherwise the range of the data.
// Log axes only use positive values.
func axisRange(xys plotter.XYs, cc *CurveConfig) (mn, mx float64) {
	var dr minmax.F64
	dr.SetInfinity()
	for _, xy := range xys {
		if cc.LogScale && xy.X <= 0 {
			continue
		}
		dr.FitValInRange(xy.X)
	}
	if !dr.IsValid() {
		dr.Set(0, 1)
		if cc.LogScale {
			dr.Set(1, 10)
		}
	}
	if dr.Min == dr.Max {
		if cc.LogScale {
			dr.Set(dr.Min/10, dr.Max*10)
		} else {
			dr.Set(dr.Min-0.5, dr.Max+0.5)
		}
	}
	rr := cc.Range()
	mn, mx = rr.Clamp(dr.Min, dr.Max)
	if cc.LogScale {
		if mn <= 0 {
			slog.Warn("welllog: non-positive log axis minimum, using data range", "column", cc.Column, "min_val", mn)
			mn = dr.Min
		}
		if mx <= 0 {
			slog.Warn("welllog: non-positive log axis maximum, using data range", "column", cc.Column, "max_val", mx)
			mx = dr.Max
		}
	}
	return mn, mx
}

// formationLines returns the formation markers within the depth range.
func formationLines(params *RenderParams) []FormationLine {
	var fl []FormationLine
	if params.Formations == nil {
		return fl
	}
	for i, d := range params.Formations.Values {
		if d >= params.TopDepth && d <= params.BottomDepth {
			fl = append(fl, FormationLine{Name: params.Formations.Keys[i], Depth: d})
		}
	}
	return fl
}
