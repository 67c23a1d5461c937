// Package table provides the columnar table returned by the stats parsers.
//
// A Table is a named, ordered set of columns with rows of loosely typed cells.
// A nil cell is a null. Tables support append, vertical concatenation, column
// rename, stable sort and column insertion; every operation that changes the
// shape returns a new Table so callers can keep sharing returned values.
package table

import (
	"encoding/json"
	"fmt"
)

// Table is a columnar result set.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]any
}

// New creates an empty table with the given columns.
func New(columns ...string) *Table {
	t := &Table{index: make(map[string]int, len(columns))}
	for _, c := range columns {
		t.addColumn(c)
	}
	return t
}

// FromRecords builds a table from records, in order.
func FromRecords(records []*Record) *Table {
	t := New()
	for _, r := range records {
		t.Append(r)
	}
	return t
}

// Columns returns the column names in order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return t.Len() == 0
}

// HasColumn reports whether the column exists.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[name]
	return ok
}

// Append adds a row. Columns unknown to the table are added and back-filled
// with nil for existing rows.
func (t *Table) Append(r *Record) {
	if r == nil {
		return
	}
	for _, k := range r.keys {
		if _, ok := t.index[k]; !ok {
			t.addColumn(k)
		}
	}
	row := make([]any, len(t.columns))
	for _, k := range r.keys {
		row[t.index[k]] = r.values[k]
	}
	t.rows = append(t.rows, row)
}

// Value returns the cell at row i for column name.
func (t *Table) Value(i int, name string) (any, bool) {
	if t == nil || i < 0 || i >= len(t.rows) {
		return nil, false
	}
	col, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.rows[i][col], true
}

// String returns the cell at row i as a string, or "" when absent or not a string.
func (t *Table) String(i int, name string) string {
	v, _ := t.Value(i, name)
	s, _ := v.(string)
	return s
}

// Column returns a copy of the named column.
func (t *Table) Column(name string) []any {
	if t == nil {
		return nil
	}
	col, ok := t.index[name]
	if !ok {
		return nil
	}
	out := make([]any, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[col]
	}
	return out
}

// Row returns row i as a record.
func (t *Table) Row(i int) *Record {
	if t == nil || i < 0 || i >= len(t.rows) {
		return nil
	}
	r := NewRecord()
	for c, name := range t.columns {
		r.Set(name, t.rows[i][c])
	}
	return r
}

// Clone returns a deep copy of the table structure. Cell values are shared.
func (t *Table) Clone() *Table {
	out := New()
	if t == nil {
		return out
	}
	for _, c := range t.columns {
		out.addColumn(c)
	}
	out.rows = make([][]any, len(t.rows))
	for i, row := range t.rows {
		cp := make([]any, len(row))
		copy(cp, row)
		out.rows[i] = cp
	}
	return out
}

// Concat stacks tables vertically. The result carries the union of columns in
// order of first appearance; missing cells are nil.
func Concat(tables ...*Table) *Table {
	out := New()
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, c := range t.columns {
			if _, ok := out.index[c]; !ok {
				out.addColumn(c)
			}
		}
	}
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, row := range t.rows {
			cp := make([]any, len(out.columns))
			for c, name := range t.columns {
				cp[out.index[name]] = row[c]
			}
			out.rows = append(out.rows, cp)
		}
	}
	return out
}

// Rename returns a copy with columns renamed through names. Columns without an
// entry keep their name. Renaming onto an existing column is an error.
func (t *Table) Rename(names map[string]string) (*Table, error) {
	out := t.Clone()
	if len(names) == 0 {
		return out, nil
	}
	renamed := make([]string, len(out.columns))
	seen := make(map[string]int, len(out.columns))
	for i, c := range out.columns {
		n := c
		if to, ok := names[c]; ok && to != "" {
			n = to
		}
		if prev, dup := seen[n]; dup {
			return nil, fmt.Errorf("table: rename collides on %q (columns %q and %q)", n, out.columns[prev], c)
		}
		seen[n] = i
		renamed[i] = n
	}
	out.columns = renamed
	out.index = seen
	return out, nil
}

// InsertColumn returns a copy with a new column at position pos. values must
// have one entry per row.
func (t *Table) InsertColumn(pos int, name string, values []any) (*Table, error) {
	if t.HasColumn(name) {
		return nil, fmt.Errorf("table: column %q already exists", name)
	}
	if len(values) != t.Len() {
		return nil, fmt.Errorf("table: column %q has %d values for %d rows", name, len(values), t.Len())
	}
	src := t.Clone()
	if pos < 0 {
		pos = 0
	}
	if pos > len(src.columns) {
		pos = len(src.columns)
	}
	cols := make([]string, 0, len(src.columns)+1)
	cols = append(cols, src.columns[:pos]...)
	cols = append(cols, name)
	cols = append(cols, src.columns[pos:]...)

	out := New(cols...)
	out.rows = make([][]any, len(src.rows))
	for i, row := range src.rows {
		cp := make([]any, 0, len(row)+1)
		cp = append(cp, row[:pos]...)
		cp = append(cp, values[i])
		cp = append(cp, row[pos:]...)
		out.rows[i] = cp
	}
	return out, nil
}

// MarshalJSON encodes the table as {"columns": [...], "rows": [[...], ...]}.
func (t *Table) MarshalJSON() ([]byte, error) {
	payload := struct {
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}{
		Columns: []string{},
		Rows:    [][]any{},
	}
	if t != nil {
		if t.columns != nil {
			payload.Columns = t.columns
		}
		if t.rows != nil {
			payload.Rows = t.rows
		}
	}
	return json.Marshal(payload)
}

func (t *Table) addColumn(name string) {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	t.index[name] = len(t.columns)
	t.columns = append(t.columns, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], nil)
	}
}
