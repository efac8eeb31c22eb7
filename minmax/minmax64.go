// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values.
package minmax

import "math"

const (
	MaxFloat64 float64 = 1.7976931348623158e+308
	MinFloat64 float64 = 2.2250738585072014e-308
)

// F64 represents a min / max range for float64 values.
// Supports clipping, renormalizing, etc
type F64 struct {
	Min float64
	Max float64
}

// Set sets the min and max values
func (mr *F64) Set(mn, mx float64) {
	mr.Min = mn
	mr.Max = mx
}

// SetInfinity sets the Min to +MaxFloat, Max to -MaxFloat -- suitable for
// iteratively calling Fit*InRange
func (mr *F64) SetInfinity() {
	mr.Min = MaxFloat64
	mr.Max = -MaxFloat64
}

// IsValid returns true if Min <= Max
func (mr *F64) IsValid() bool {
	return mr.Min <= mr.Max
}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr *F64) InRange(val float64) bool {
	return ((val >= mr.Min) && (val <= mr.Max))
}

// Range returns Max - Min
func (mr *F64) Range() float64 {
	return mr.Max - mr.Min
}

// Scale returns 1 / Range -- if Range = 0 then returns 0
func (mr *F64) Scale() float64 {
	r := mr.Range()
	if r != 0 {
		return 1 / r
	}
	return 0
}

// FitValInRange adjusts our Min, Max to fit given value within Min, Max range
// returns true if we had to adjust to fit. NaN and Inf values are ignored.
func (mr *F64) FitValInRange(val float64) bool {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return false
	}
	adj := false
	if val < mr.Min {
		mr.Min = val
		adj = true
	}
	if val > mr.Max {
		mr.Max = val
		adj = true
	}
	return adj
}

// NormValue normalizes value to 0-1 unit range relative to current Min / Max range
// Clips the value within Min-Max range first.
func (mr *F64) NormValue(val float64) float64 {
	return (mr.ClipValue(val) - mr.Min) * mr.Scale()
}

// ClipValue clips given value within Min / Max range
// Note: a NaN will remain as a NaN
func (mr *F64) ClipValue(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}

// Range64 represents a range of values for plotting, where the min or max
// can optionally be fixed to a specific value.
type Range64 struct {
	// Min is the minimum value, used if FixMin is true.
	Min float64

	// Max is the maximum value, used if FixMax is true.
	Max float64

	// FixMin fixes the minimum end of the range.
	FixMin bool

	// FixMax fixes the maximum end of the range.
	FixMax bool
}

// SetMin sets a fixed min value.
func (rr *Range64) SetMin(mn float64) *Range64 {
	rr.FixMin = true
	rr.Min = mn
	return rr
}

// SetMax sets a fixed max value.
func (rr *Range64) SetMax(mx float64) *Range64 {
	rr.FixMax = true
	rr.Max = mx
	return rr
}

// Clamp returns the given min and max values, replaced by
// the fixed Min and Max values where those are set.
func (rr *Range64) Clamp(mnIn, mxIn float64) (mn, mx float64) {
	mn, mx = mnIn, mxIn
	if rr.FixMin {
		mn = rr.Min
	}
	if rr.FixMax {
		mx = rr.Max
	}
	return
}
