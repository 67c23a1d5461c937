package table

import (
	"sort"
	"strings"
	"time"
)

// SortBy returns a copy sorted by column name. The sort is stable; nil cells
// sort last in either direction. A missing column returns an unsorted copy.
func (t *Table) SortBy(name string, desc bool) *Table {
	out := t.Clone()
	col, ok := out.index[name]
	if !ok {
		return out
	}
	sort.SliceStable(out.rows, func(i, j int) bool {
		a, b := out.rows[i][col], out.rows[j][col]
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		c := compare(a, b)
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(a, b any) int {
	if fa, ok := number(a); ok {
		if fb, ok := number(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	return strings.Compare(toString(a), toString(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case interface{ String() string }:
		return s.String()
	case bool:
		if s {
			return "true"
		}
		return "false"
	}
	return ""
}
