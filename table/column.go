// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"
	"slices"
	"strconv"
)

// Column is the data interface for one named column of a [Table].
// All values are accessible as float64, with NaN representing
// a missing value in floating point columns.
type Column interface {
	// Len returns the number of values (rows).
	Len() int

	// Float1D returns the value at given row as a float64.
	Float1D(i int) float64

	// SetFloat1D sets the value at given row from a float64.
	SetFloat1D(val float64, i int)

	// String1D returns the value at given row as a string.
	String1D(i int) string

	// SetNumRows resizes the column to the given number of rows,
	// filling new rows with the missing value for the column type.
	SetNumRows(rows int)

	// Clone returns a deep copy of the column.
	Clone() Column

	// Sliced returns a new column holding copies of the values at the
	// given row indexes, in the order given.
	Sliced(rows []int) Column
}

// Float64 is a [Column] of float64 values, where NaN
// is a missing value.
type Float64 struct {
	Values []float64
}

// NewFloat64 returns a new [Float64] column holding the given values.
// The values slice is used directly, not copied.
func NewFloat64(vals ...float64) *Float64 {
	return &Float64{Values: vals}
}

func (cl *Float64) Len() int                      { return len(cl.Values) }
func (cl *Float64) Float1D(i int) float64         { return cl.Values[i] }
func (cl *Float64) SetFloat1D(val float64, i int) { cl.Values[i] = val }

func (cl *Float64) String1D(i int) string {
	return strconv.FormatFloat(cl.Values[i], 'g', -1, 64)
}

func (cl *Float64) SetNumRows(rows int) {
	n := len(cl.Values)
	if rows <= n {
		cl.Values = cl.Values[:rows]
		return
	}
	for i := 0; i < rows-n; i++ {
		cl.Values = append(cl.Values, math.NaN())
	}
}

func (cl *Float64) Clone() Column {
	return &Float64{Values: slices.Clone(cl.Values)}
}

func (cl *Float64) Sliced(rows []int) Column {
	vals := make([]float64, len(rows))
	for i, r := range rows {
		vals[i] = cl.Values[r]
	}
	return &Float64{Values: vals}
}

// NumValid returns the number of non-missing (non-NaN) values.
func (cl *Float64) NumValid() int {
	n := 0
	for _, v := range cl.Values {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// Int is a [Column] of int values, used for class labels and counts.
// Int columns have no missing value; new rows are zero.
type Int struct {
	Values []int
}

// NewInt returns a new [Int] column holding the given values.
// The values slice is used directly, not copied.
func NewInt(vals ...int) *Int {
	return &Int{Values: vals}
}

func (cl *Int) Len() int              { return len(cl.Values) }
func (cl *Int) Float1D(i int) float64 { return float64(cl.Values[i]) }
func (cl *Int) String1D(i int) string { return strconv.Itoa(cl.Values[i]) }

// SetFloat1D sets the value at given row, truncating toward zero.
// NaN is stored as 0.
func (cl *Int) SetFloat1D(val float64, i int) {
	if math.IsNaN(val) {
		val = 0
	}
	cl.Values[i] = int(val)
}

func (cl *Int) SetNumRows(rows int) {
	n := len(cl.Values)
	if rows <= n {
		cl.Values = cl.Values[:rows]
		return
	}
	cl.Values = append(cl.Values, make([]int, rows-n)...)
}

func (cl *Int) Clone() Column {
	return &Int{Values: slices.Clone(cl.Values)}
}

func (cl *Int) Sliced(rows []int) Column {
	vals := make([]int, len(rows))
	for i, r := range rows {
		vals[i] = cl.Values[r]
	}
	return &Int{Values: vals}
}

// Floats returns a copy of all of the column values as float64.
func Floats(cl Column) []float64 {
	vals := make([]float64, cl.Len())
	for i := range vals {
		vals[i] = cl.Float1D(i)
	}
	return vals
}
