// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package welllog

import (
	"math"
	"math/rand"
	"testing"

	"cogentcore.org/welllog/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func depthTable(t *testing.T, depths ...float64) *table.Table {
	t.Helper()
	dt := table.NewTable()
	require.NoError(t, dt.AddColumn("DEPT", table.NewFloat64(depths...)))
	gr := make([]float64, len(depths))
	for i := range gr {
		gr[i] = float64(40 + i)
	}
	require.NoError(t, dt.AddColumn("GR", table.NewFloat64(gr...)))
	return dt
}

func classes(t *testing.T, dt *table.Table) []int {
	t.Helper()
	cl, err := dt.ColumnTry(FormationClassColumn)
	require.NoError(t, err)
	require.IsType(t, &table.Int{}, cl)
	return cl.(*table.Int).Values
}

func TestLabelProductiveZones(t *testing.T) {
	dt := depthTable(t, 3690, 3700, 3750, 3999, 4010)
	res, err := LabelProductiveZones(dt, "DEPT", Interval{Top: 3700, Base: 4000})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 1, 0}, classes(t, res))
	assert.Equal(t, []string{"DEPT", "GR", FormationClassColumn}, res.ColumnNames())
	assert.False(t, dt.HasColumn(FormationClassColumn))
}

func TestLabelOverlapping(t *testing.T) {
	dt := depthTable(t, 100, 110, 120, 130, 140, 150, 160)
	res, err := LabelProductiveZones(dt, "", Interval{110, 130}, Interval{120, 140}, Interval{160, 170})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 1, 1, 0, 1}, classes(t, res))
}

func TestLabelEdgeCases(t *testing.T) {
	dt := depthTable(t, 100, math.NaN(), 120)

	res, err := LabelProductiveZones(dt, "DEPT")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, classes(t, res))

	res, err = LabelProductiveZones(dt, "DEPT", Interval{500, 600}, Interval{130, 110})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, classes(t, res))

	res, err = LabelProductiveZones(dt, "DEPT", Interval{0, 1000})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1}, classes(t, res))

	_, err = LabelProductiveZones(dt, "MD", Interval{0, 1000})
	assert.Error(t, err)
}

func TestLabelReplacesExisting(t *testing.T) {
	dt := depthTable(t, 100, 110)
	require.NoError(t, dt.AddColumn(FormationClassColumn, table.NewInt(7, 7)))
	res, err := LabelProductiveZones(dt, "DEPT", Interval{105, 115})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, classes(t, res))
	assert.Equal(t, []int{7, 7}, classes(t, dt))
}

func TestLabelProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for k := 0; k < 20; k++ {
		depths := make([]float64, 50)
		for i := range depths {
			depths[i] = 3000 + rnd.Float64()*2000
		}
		dt := depthTable(t, depths...)
		saved := dt.Clone()

		ivs := make([]Interval, rnd.Intn(4))
		for i := range ivs {
			top := 3000 + rnd.Float64()*2000
			ivs[i] = Interval{Top: top, Base: top + rnd.Float64()*300}
		}
		res, err := LabelProductiveZones(dt, "DEPT", ivs...)
		require.NoError(t, err)
		got := classes(t, res)
		for i, d := range depths {
			in := 0
			for _, iv := range ivs {
				if d >= iv.Top && d <= iv.Base {
					in = 1
				}
			}
			assert.Equal(t, in, got[i], "depth %g", d)
		}

		again, err := LabelProductiveZones(dt, "DEPT", ivs...)
		require.NoError(t, err)
		assert.Equal(t, got, classes(t, again))

		assert.Equal(t, saved.ColumnNames(), dt.ColumnNames())
		assert.Equal(t, table.Floats(saved.Column("DEPT")), table.Floats(dt.Column("DEPT")))
		assert.Equal(t, table.Floats(saved.Column("GR")), table.Floats(dt.Column("GR")))
	}
}
