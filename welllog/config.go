// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package welllog

import (
	"log/slog"

	"cogentcore.org/welllog/base/errors"
	"cogentcore.org/welllog/base/keylist"
	"cogentcore.org/welllog/minmax"
	"github.com/jinzhu/copier"
)

const (
	// DefaultDepthColumn is the conventional name of the depth column.
	DefaultDepthColumn = "DEPT"

	// DefaultColor is the color of a curve without a configured color.
	DefaultColor = "black"

	// DefaultNumVerticalGridlines is the number of vertical gridlines
	// drawn for each curve when not otherwise specified.
	DefaultNumVerticalGridlines = 5
)

// TrackConfig configures one track: a vertical plotting region
// sharing the depth axis, that hosts one or more curves.
type TrackConfig struct {

	// Title is shown above the track. Defaults to "Track N".
	Title string `toml:"title" yaml:"title" json:"title"`

	// ShowGrid determines whether the curves of this track draw their
	// vertical gridlines, unless overridden per curve. Defaults to true.
	ShowGrid *bool `toml:"show_grid,omitempty" yaml:"show_grid,omitempty" json:"show_grid,omitempty"`

	// Smoothing applies a Savitzky-Golay filter to all of the
	// curves of this track.
	Smoothing Smoothing `toml:"smoothing" yaml:"smoothing" json:"smoothing"`

	// Curves are the curves plotted in this track, in order.
	Curves []CurveConfig `toml:"curves" yaml:"curves" json:"curves"`
}

// CurveConfig configures one curve: a single log measurement
// series rendered as a line against depth, on its own horizontal axis.
type CurveConfig struct {

	// Column is the name of the table column holding the curve values.
	Column string `toml:"column" yaml:"column" json:"column"`

	// Label is shown on the curve axis. Defaults to Column.
	Label string `toml:"label" yaml:"label" json:"label"`

	// Color of the line and axis: a color name (e.g., "red") or
	// hex value (e.g., "#1f77b4"). Defaults to black.
	Color string `toml:"color" yaml:"color" json:"color"`

	// LineStyle of the curve line.
	LineStyle LineStyles `toml:"linestyle" yaml:"linestyle" json:"linestyle"`

	// MinVal fixes the minimum of the curve axis, if set.
	MinVal *float64 `toml:"min_val,omitempty" yaml:"min_val,omitempty" json:"min_val,omitempty"`

	// MaxVal fixes the maximum of the curve axis, if set.
	MaxVal *float64 `toml:"max_val,omitempty" yaml:"max_val,omitempty" json:"max_val,omitempty"`

	// LogScale uses a logarithmic curve axis.
	LogScale bool `toml:"log_scale" yaml:"log_scale" json:"log_scale"`

	// InvertAxis reverses the direction of the curve axis,
	// so that values increase to the left.
	InvertAxis bool `toml:"invert_axis" yaml:"invert_axis" json:"invert_axis"`

	// PositionOffset moves the curve axis outward (up) by this many
	// points, so that the axes of stacked curves are distinguishable.
	// Typical values are 0, 40, 80, ...
	PositionOffset int `toml:"position_offset" yaml:"position_offset" json:"position_offset"`

	// ShowGrid overrides the track ShowGrid setting for this curve, if set.
	ShowGrid *bool `toml:"show_grid,omitempty" yaml:"show_grid,omitempty" json:"show_grid,omitempty"`
}

// Defaults returns a copy of the track configuration with defaults
// filled in for all unset values, including all of its curves.
// The receiver is not modified.
func (tc *TrackConfig) Defaults() TrackConfig {
	var cp TrackConfig
	errors.Log(copier.CopyWithOption(&cp, tc, copier.Option{DeepCopy: true}))
	if cp.ShowGrid == nil {
		cp.ShowGrid = Bool(true)
	}
	if cp.Smoothing < 0 || cp.Smoothing >= SmoothingN {
		slog.Warn("welllog: invalid smoothing value, using no smoothing", "track", cp.Title, "smoothing", int32(cp.Smoothing))
		cp.Smoothing = NoSmoothing
	}
	for i := range cp.Curves {
		cp.Curves[i].defaults()
	}
	return cp
}

// GridOn returns the effective track-level grid setting.
func (tc *TrackConfig) GridOn() bool {
	if tc.ShowGrid == nil {
		return true
	}
	return *tc.ShowGrid
}

// MaxPositionOffset returns the largest PositionOffset among the curves.
func (tc *TrackConfig) MaxPositionOffset() int {
	mx := 0
	for _, cc := range tc.Curves {
		mx = max(mx, cc.PositionOffset)
	}
	return mx
}

func (cc *CurveConfig) defaults() {
	if cc.Label == "" {
		cc.Label = cc.Column
	}
	if cc.Color == "" {
		cc.Color = DefaultColor
	}
	if cc.LineStyle < 0 || cc.LineStyle >= LineStylesN {
		slog.Warn("welllog: invalid line style, using solid", "column", cc.Column, "linestyle", int32(cc.LineStyle))
		cc.LineStyle = Solid
	}
	if cc.PositionOffset < 0 {
		slog.Warn("welllog: negative position offset, using 0", "column", cc.Column, "position_offset", cc.PositionOffset)
		cc.PositionOffset = 0
	}
}

// GridOn returns the effective grid setting for the curve,
// given the grid setting of its track.
func (cc *CurveConfig) GridOn(track bool) bool {
	if cc.ShowGrid == nil {
		return track
	}
	return *cc.ShowGrid
}

// Range returns the fixed axis bounds of the curve.
func (cc *CurveConfig) Range() minmax.Range64 {
	var rr minmax.Range64
	if cc.MinVal != nil {
		rr.SetMin(*cc.MinVal)
	}
	if cc.MaxVal != nil {
		rr.SetMax(*cc.MaxVal)
	}
	return rr
}

// RenderParams are the parameters of a multi-track log plot
// that apply across all of the tracks.
type RenderParams struct {

	// DepthColumn is the name of the depth column. Defaults to DEPT.
	DepthColumn string `toml:"depth_column" yaml:"depth_column" json:"depth_column"`

	// TopDepth is the shallowest depth shown, at the top of the plot.
	TopDepth float64 `toml:"top_depth" yaml:"top_depth" json:"top_depth"`

	// BottomDepth is the deepest depth shown, at the bottom of the plot.
	BottomDepth float64 `toml:"bottom_depth" yaml:"bottom_depth" json:"bottom_depth"`

	// FigureHeight is the height of the figure in inches. Defaults to 10.
	FigureHeight float64 `toml:"figure_height" yaml:"figure_height" json:"figure_height"`

	// TopMargin is the fraction of the figure height below which the
	// tracks are drawn, leaving the rest for curve axes and titles.
	// Defaults to 0.9.
	TopMargin float64 `toml:"top_margin" yaml:"top_margin" json:"top_margin"`

	// MajorTickInterval is the depth interval between major depth ticks,
	// drawn as solid gridlines.
	MajorTickInterval float64 `toml:"major_tick_interval" yaml:"major_tick_interval" json:"major_tick_interval"`

	// MinorTickInterval is the depth interval between minor depth ticks,
	// drawn as dotted gridlines.
	MinorTickInterval float64 `toml:"minor_tick_interval" yaml:"minor_tick_interval" json:"minor_tick_interval"`

	// NumVerticalGridlines is the number of vertical gridlines of every
	// curve, regardless of its scale. Defaults to 5.
	NumVerticalGridlines int `toml:"num_vertical_gridlines" yaml:"num_vertical_gridlines" json:"num_vertical_gridlines"`

	// Formations are optional named depth markers, drawn as horizontal
	// lines across all tracks, in order.
	Formations *keylist.List[string, float64] `toml:"-" yaml:"-" json:"-"`
}

// Defaults sets defaults if unset values are present.
func (rp *RenderParams) Defaults() {
	if rp.DepthColumn == "" {
		rp.DepthColumn = DefaultDepthColumn
	}
	if rp.TopDepth > rp.BottomDepth {
		slog.Warn("welllog: top depth is below bottom depth, swapping", "top_depth", rp.TopDepth, "bottom_depth", rp.BottomDepth)
		rp.TopDepth, rp.BottomDepth = rp.BottomDepth, rp.TopDepth
	}
	if rp.FigureHeight <= 0 {
		rp.FigureHeight = 10
	}
	if rp.TopMargin <= 0 || rp.TopMargin > 1 {
		rp.TopMargin = 0.9
	}
	if rp.NumVerticalGridlines <= 0 {
		rp.NumVerticalGridlines = DefaultNumVerticalGridlines
	}
	if rp.MajorTickInterval < 0 {
		rp.MajorTickInterval = 0
	}
	if rp.MinorTickInterval < 0 {
		rp.MinorTickInterval = 0
	}
}

// Bool returns a pointer to the given value, for optional
// configuration fields.
func Bool(v bool) *bool { return &v }

// Float returns a pointer to the given value, for optional
// configuration fields.
func Float(v float64) *float64 { return &v }
