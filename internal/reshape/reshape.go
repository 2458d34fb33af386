// Package reshape collapses raw result tables into display tables. Rows
// sharing the same group-key values merge into one output row whose non-key
// columns hold the set of distinct non-null values seen across the group.
package reshape

import (
	"fmt"
	"strings"

	"gamelens/internal/table"
)

// Collapse groups t by keyCols and folds each column in setCols into a
// table.ValueSet of the distinct non-null observations per group.
//
// Output rows appear in first-occurrence order of their group key, not
// sorted. A nil key value groups with other nil values of that column.
// The output column schema is keyCols followed by setCols, also when the
// input is empty.
func Collapse(t *table.Table, keyCols, setCols []string) *table.Table {
	out := table.New(append(append([]string{}, keyCols...), setCols...)...)

	groups := make(map[string]table.Row)
	var order []string

	for _, raw := range t.Rows {
		key := groupKey(raw, keyCols)
		row, ok := groups[key]
		if !ok {
			row = make(table.Row, len(keyCols)+len(setCols))
			for _, col := range keyCols {
				row[col] = raw[col]
			}
			for _, col := range setCols {
				row[col] = table.NewValueSet()
			}
			groups[key] = row
			order = append(order, key)
		}
		for _, col := range setCols {
			row[col].(table.ValueSet).Add(raw[col])
		}
	}

	for _, key := range order {
		out.Append(groups[key])
	}
	return out
}

// Identity returns the table unchanged. The pass-through branches go through
// here so every query takes the same shaping step.
func Identity(t *table.Table) *table.Table {
	return t
}

// groupKey serializes the key column values into a collision-safe string.
// Parts are length-prefixed so value boundaries cannot be forged, and nil
// uses a dedicated marker so null == null for grouping.
func groupKey(r table.Row, keyCols []string) string {
	var sb strings.Builder
	for _, col := range keyCols {
		v, ok := r[col]
		if !ok || v == nil {
			sb.WriteString("N;")
			continue
		}
		s := fmt.Sprintf("%v", v)
		fmt.Fprintf(&sb, "%d:%s;", len(s), s)
	}
	return sb.String()
}
