package mcp

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gamelens/internal/charts"
	"gamelens/internal/table"
)

// renderResult builds the tool response text: the display table followed by
// the rendered chart blocks, if any.
func renderResult(t *table.Table, cs ...charts.Chart) string {
	var sb strings.Builder
	sb.WriteString(t.Markdown())
	for _, c := range cs {
		block := charts.RenderBar(c)
		if block == "" {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(block)
		sb.WriteString("\n")
	}
	return sb.String()
}

func formatResult(data interface{}) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}

func asString(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func asFloat(v interface{}) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, _ := strconv.ParseFloat(val, 64)
		return f
	default:
		return 0
	}
}

func asStringList(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, asString(item))
	}
	return out
}
