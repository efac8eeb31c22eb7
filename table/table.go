// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table provides a simple in-memory data table of named
// columns aligned by a common row index, as used for well log data
// where each row is one depth sample.
package table

import (
	"fmt"

	"cogentcore.org/welllog/base/keylist"
)

// Table is a table of [Column]s aligned by a common row dimension.
// Use the [Table.Column] (by name) and [Table.ColumnTry] methods to obtain
// a column, and [Table.HasColumn] for an explicit existence check.
type Table struct {
	// Columns has the list of column data for this table, in order.
	Columns *keylist.List[string, Column]

	// Name is an optional name for the table, e.g., the well name.
	Name string

	// rows is the number of rows, shared across all columns.
	rows int
}

// NewTable returns a new Table with its own (empty) set of Columns.
// Can pass an optional name.
func NewTable(name ...string) *Table {
	dt := &Table{Columns: keylist.New[string, Column]()}
	if len(name) > 0 {
		dt.Name = name[0]
	}
	return dt
}

// IsValidRow returns error if the row is invalid, if error checking is needed.
func (dt *Table) IsValidRow(row int) error {
	if row < 0 || row >= dt.NumRows() {
		return fmt.Errorf("table.Table IsValidRow: row %d is out of valid range [0..%d]", row, dt.NumRows())
	}
	return nil
}

// NumRows returns the number of rows.
func (dt *Table) NumRows() int { return dt.rows }

// NumColumns returns the number of columns.
func (dt *Table) NumColumns() int { return dt.Columns.Len() }

// HasColumn returns true if a column with the given name exists.
func (dt *Table) HasColumn(name string) bool {
	return dt.Columns.IndexByKey(name) >= 0
}

// Column returns the column with given name, or nil if not found.
func (dt *Table) Column(name string) Column {
	return dt.Columns.At(name)
}

// ColumnTry is a version of [Table.Column] that also returns an error
// if the column name is not found, for cases when error is needed.
func (dt *Table) ColumnTry(name string) (Column, error) {
	if cl := dt.Column(name); cl != nil {
		return cl, nil
	}
	return nil, fmt.Errorf("table.Table: Column named %q not found", name)
}

// ColumnName returns the name of given column
func (dt *Table) ColumnName(i int) string {
	return dt.Columns.Keys[i]
}

// ColumnNames returns a copy of the column names, in order.
func (dt *Table) ColumnNames() []string {
	return append([]string(nil), dt.Columns.Keys...)
}

// AddColumn adds the given column to the table, returning an error
// and not adding if the name is not unique, or if the column length
// does not match the number of rows in a table that already has columns.
// The first column added to an empty table sets the number of rows.
func (dt *Table) AddColumn(name string, cl Column) error {
	if dt.HasColumn(name) {
		return fmt.Errorf("table.Table AddColumn: column named %q already exists", name)
	}
	if dt.NumColumns() == 0 {
		dt.rows = cl.Len()
	} else if cl.Len() != dt.rows {
		return fmt.Errorf("table.Table AddColumn: column %q has %d rows, table has %d", name, cl.Len(), dt.rows)
	}
	return dt.Columns.Add(name, cl)
}

// SetColumn adds or replaces the column of given name,
// resizing it to the current number of rows if the table
// already has other columns.
func (dt *Table) SetColumn(name string, cl Column) {
	if dt.NumColumns() == 0 || (dt.NumColumns() == 1 && dt.HasColumn(name)) {
		dt.rows = cl.Len()
	} else {
		cl.SetNumRows(dt.rows)
	}
	dt.Columns.Set(name, cl)
}

// AddFloat64Column adds a new float64 column with given name,
// with all rows set to missing (NaN). Returns nil if the name exists.
func (dt *Table) AddFloat64Column(name string) *Float64 {
	cl := &Float64{}
	cl.SetNumRows(dt.rows)
	if dt.AddColumn(name, cl) != nil {
		return nil
	}
	return cl
}

// AddIntColumn adds a new int column with given name,
// with all rows set to 0. Returns nil if the name exists.
func (dt *Table) AddIntColumn(name string) *Int {
	cl := &Int{}
	cl.SetNumRows(dt.rows)
	if dt.AddColumn(name, cl) != nil {
		return nil
	}
	return cl
}

// DeleteColumnName deletes column of given name.
// returns false if not found.
func (dt *Table) DeleteColumnName(name string) bool {
	return dt.Columns.DeleteByKey(name)
}

// Clone returns a complete copy of this table, including cloning
// the underlying Column data.
func (dt *Table) Clone() *Table {
	cp := NewTable(dt.Name)
	cp.rows = dt.rows
	for i, cl := range dt.Columns.Values {
		cp.Columns.Set(dt.Columns.Keys[i], cl.Clone())
	}
	return cp
}

// Sliced returns a new table holding copies of the given rows,
// in the order given, across all columns.
func (dt *Table) Sliced(rows []int) *Table {
	cp := NewTable(dt.Name)
	cp.rows = len(rows)
	for i, cl := range dt.Columns.Values {
		cp.Columns.Set(dt.Columns.Keys[i], cl.Sliced(rows))
	}
	return cp
}

// RowsInRange returns the indexes of the rows where the value of the
// given column is within [lo, hi], inclusive. Rows with a missing (NaN)
// value are never included.
func (dt *Table) RowsInRange(column string, lo, hi float64) ([]int, error) {
	cl, err := dt.ColumnTry(column)
	if err != nil {
		return nil, err
	}
	var rows []int
	for i := 0; i < cl.Len(); i++ {
		v := cl.Float1D(i)
		if v >= lo && v <= hi {
			rows = append(rows, i)
		}
	}
	return rows, nil
}

// FilterRange returns a new table holding only the rows where the
// given column is within [lo, hi], inclusive. See [Table.RowsInRange].
func (dt *Table) FilterRange(column string, lo, hi float64) (*Table, error) {
	rows, err := dt.RowsInRange(column, lo, hi)
	if err != nil {
		return nil, err
	}
	return dt.Sliced(rows), nil
}
