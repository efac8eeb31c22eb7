// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package welllog

import (
	"fmt"

	"cogentcore.org/welllog/table"
)

// FormationClassColumn is the name of the column added by
// [LabelProductiveZones]: 1 within a productive zone, 0 otherwise.
const FormationClassColumn = "formation_class"

// Interval is a depth interval, from Top to Base inclusive,
// where Top <= Base. An interval with Top > Base contains no depths.
type Interval struct {
	Top  float64 `toml:"top" yaml:"top" json:"top"`
	Base float64 `toml:"base" yaml:"base" json:"base"`
}

// Contains returns true if the depth is within the interval.
func (iv Interval) Contains(depth float64) bool {
	return depth >= iv.Top && depth <= iv.Base
}

// LabelProductiveZones returns a copy of the table with an added
// [FormationClassColumn] int column, which is 1 for each row whose depth
// is within any of the given productive zone intervals, and 0 otherwise.
// Intervals may overlap. The depth column defaults to [DefaultDepthColumn]
// if empty; an error is returned only if it is not in the table.
// The given table is not modified.
func LabelProductiveZones(dt *table.Table, depthColumn string, intervals ...Interval) (*table.Table, error) {
	if depthColumn == "" {
		depthColumn = DefaultDepthColumn
	}
	depth, err := dt.ColumnTry(depthColumn)
	if err != nil {
		return nil, fmt.Errorf("welllog.LabelProductiveZones: %w", err)
	}
	res := dt.Clone()
	class := table.NewInt(make([]int, dt.NumRows())...)
	for _, iv := range intervals {
		for i := range class.Values {
			if iv.Contains(depth.Float1D(i)) {
				class.Values[i] = 1
			}
		}
	}
	res.SetColumn(FormationClassColumn, class)
	return res, nil
}
