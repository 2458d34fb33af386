package gamesdb

import (
	"database/sql"
	"fmt"
	"time"

	"gamelens/internal/table"
)

// scanTable reads all rows from *sql.Rows into a table.Table. Column names
// and order come from the result-set metadata.
func scanTable(rows *sql.Rows) (*table.Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("get columns: %w", err)
	}

	result := table.New(columns...)
	for rows.Next() {
		row, err := scanRow(rows, columns)
		if err != nil {
			return nil, err
		}
		result.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return result, nil
}

func scanRow(rows *sql.Rows, columns []string) (table.Row, error) {
	values := make([]any, len(columns))
	scanTargets := make([]any, len(columns))
	for i := range values {
		scanTargets[i] = &values[i]
	}

	if err := rows.Scan(scanTargets...); err != nil {
		return nil, fmt.Errorf("scan row: %w", err)
	}

	row := make(table.Row, len(columns))
	for i, name := range columns {
		row[name] = normalizeValue(values[i])
	}
	return row, nil
}

// normalizeValue converts database/sql scanned values to standard Go types.
// The driver returns text protocol values as []byte, so dates and numeric
// strings arrive as strings here; shaping layers parse what they need.
func normalizeValue(v any) any {
	if v == nil {
		return nil
	}

	switch val := v.(type) {
	case []byte:
		return string(val)
	case time.Time:
		return val.Format("2006-01-02 15:04:05")
	case int64, float64, bool, string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}
