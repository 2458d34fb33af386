package table

import (
	"strings"
)

// Markdown renders the table as a markdown table. Rows are not numbered and
// float cells carry two decimal places, matching the display contract.
func (t *Table) Markdown() string {
	var sb strings.Builder

	sb.WriteString("|")
	for _, col := range t.Columns {
		sb.WriteString(" ")
		sb.WriteString(escapeCell(col))
		sb.WriteString(" |")
	}
	sb.WriteString("\n|")
	for range t.Columns {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		sb.WriteString("|")
		for _, col := range t.Columns {
			sb.WriteString(" ")
			sb.WriteString(escapeCell(FormatValue(row[col])))
			sb.WriteString(" |")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// escapeCell keeps cell content from breaking the markdown table grid.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
