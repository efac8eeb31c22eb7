// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogTable(t *testing.T) *Table {
	t.Helper()
	dt := NewTable("well-1")
	require.NoError(t, dt.AddColumn("DEPT", NewFloat64(3690, 3700, 3750, 3999, 4010)))
	require.NoError(t, dt.AddColumn("GR", NewFloat64(45, math.NaN(), 80, 120, 60)))
	return dt
}

func TestAddColumn(t *testing.T) {
	dt := newLogTable(t)
	assert.Equal(t, 5, dt.NumRows())
	assert.Equal(t, 2, dt.NumColumns())
	assert.Equal(t, []string{"DEPT", "GR"}, dt.ColumnNames())
	assert.Equal(t, "GR", dt.ColumnName(1))

	assert.Error(t, dt.AddColumn("GR", NewFloat64(1, 2, 3, 4, 5)))
	assert.Error(t, dt.AddColumn("RHOB", NewFloat64(1, 2)))

	cls := dt.AddIntColumn("class")
	require.NotNil(t, cls)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, cls.Values)
	assert.Nil(t, dt.AddIntColumn("class"))

	nc := dt.AddFloat64Column("NPHI")
	require.NotNil(t, nc)
	assert.Equal(t, 0, nc.NumValid())
	assert.Equal(t, 5, nc.Len())
}

func TestColumnLookup(t *testing.T) {
	dt := newLogTable(t)
	assert.True(t, dt.HasColumn("GR"))
	assert.False(t, dt.HasColumn("RHOB"))
	assert.Nil(t, dt.Column("RHOB"))

	_, err := dt.ColumnTry("RHOB")
	assert.Error(t, err)
	gr, err := dt.ColumnTry("GR")
	require.NoError(t, err)
	assert.Equal(t, 80.0, gr.Float1D(2))
	assert.Equal(t, "120", gr.String1D(3))

	assert.True(t, dt.DeleteColumnName("GR"))
	assert.False(t, dt.HasColumn("GR"))
	assert.NoError(t, dt.IsValidRow(4))
	assert.Error(t, dt.IsValidRow(5))
}

func TestClone(t *testing.T) {
	dt := newLogTable(t)
	cp := dt.Clone()
	cp.Column("GR").SetFloat1D(999, 0)
	cp.AddIntColumn("class")
	assert.Equal(t, 45.0, dt.Column("GR").Float1D(0))
	assert.False(t, dt.HasColumn("class"))
	assert.Equal(t, dt.NumRows(), cp.NumRows())
	assert.Equal(t, "well-1", cp.Name)
}

func TestFilterRange(t *testing.T) {
	dt := newLogTable(t)
	rows, err := dt.RowsInRange("DEPT", 3700, 4000)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, rows)

	ft, err := dt.FilterRange("DEPT", 3700, 4000)
	require.NoError(t, err)
	assert.Equal(t, 3, ft.NumRows())
	assert.Equal(t, []float64{3700, 3750, 3999}, Floats(ft.Column("DEPT")))
	assert.True(t, math.IsNaN(ft.Column("GR").Float1D(0)))

	ft.Column("DEPT").SetFloat1D(0, 0)
	assert.Equal(t, 3700.0, dt.Column("DEPT").Float1D(1))

	_, err = dt.FilterRange("MD", 0, 1)
	assert.Error(t, err)

	empty, err := dt.FilterRange("DEPT", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.NumRows())
	assert.Equal(t, 2, empty.NumColumns())
}

func TestSetColumn(t *testing.T) {
	dt := newLogTable(t)
	dt.SetColumn("class", NewInt(1, 1))
	assert.Equal(t, []int{1, 1, 0, 0, 0}, dt.Column("class").(*Int).Values)
	dt.SetColumn("class", NewInt(1, 0, 1, 0, 1, 1, 1))
	assert.Equal(t, 5, dt.Column("class").Len())
	assert.Equal(t, 3, dt.NumColumns())

	it := NewInt(3)
	it.SetFloat1D(math.NaN(), 0)
	assert.Equal(t, 0, it.Values[0])
	it.SetFloat1D(2.7, 0)
	assert.Equal(t, 2, it.Values[0])
}
