package table

import (
	"fmt"
	"sort"
)

// Row maps column names to scalar values (string, int64, float64, bool or
// nil) as normalized by the backend scan.
type Row map[string]any

// Table is one result set. Columns carries the backend's column order; every
// row conforms to it.
type Table struct {
	Columns []string
	Rows    []Row
}

// New creates an empty table with the given column order.
func New(columns ...string) *Table {
	return &Table{Columns: columns}
}

// Append adds a row to the table.
func (t *Table) Append(r Row) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ValueSet is the collapsed form of a non-key cell: the distinct non-null
// observations collected across all raw rows of a group. Only membership is
// part of the contract; Values sorts for stable rendering.
type ValueSet map[any]struct{}

// NewValueSet creates a set pre-populated with the given values.
func NewValueSet(values ...any) ValueSet {
	s := make(ValueSet, len(values))
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts a value. Nil observations are never added: a set holds only
// collected non-null values. Adding a ValueSet unions its members, which
// keeps collapsing an already-collapsed table a no-op.
func (s ValueSet) Add(v any) {
	switch val := v.(type) {
	case nil:
		return
	case ValueSet:
		for member := range val {
			s[member] = struct{}{}
		}
	default:
		s[v] = struct{}{}
	}
}

// Has reports membership.
func (s ValueSet) Has(v any) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of distinct members.
func (s ValueSet) Len() int {
	return len(s)
}

// Values returns the members ordered by their rendered form.
func (s ValueSet) Values() []any {
	out := make([]any, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		return FormatValue(out[i]) < FormatValue(out[j])
	})
	return out
}

// FormatValue renders a single cell value. Floats carry exactly two decimal
// places; nil renders empty.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		return fmt.Sprintf("%.2f", val)
	case float32:
		return fmt.Sprintf("%.2f", val)
	case ValueSet:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// String renders the set as {a, b, c} in sorted member order.
func (s ValueSet) String() string {
	out := "{"
	for i, v := range s.Values() {
		if i > 0 {
			out += ", "
		}
		out += FormatValue(v)
	}
	return out + "}"
}
