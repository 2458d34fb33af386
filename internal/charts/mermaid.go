package charts

import (
	"fmt"
	"math"
	"strings"
)

// RenderBar creates a Mermaid xychart-beta bar block for a chart. Multiple
// series emit multiple bar lines over the shared category axis.
func RenderBar(c Chart) string {
	if len(c.Series) == 0 || len(c.Series[0].Points) == 0 {
		return ""
	}

	var labels []string
	maxVal := 0.0
	for _, p := range c.Series[0].Points {
		labels = append(labels, fmt.Sprintf("%q", p.Category))
	}
	for _, s := range c.Series {
		for _, p := range s.Points {
			if p.Value > maxVal {
				maxVal = p.Value
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title %q\n", c.Title))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))

	// Headroom above the tallest bar so it does not touch the frame
	ceiling := int(math.Ceil(maxVal + math.Max(1, maxVal*0.2)))
	sb.WriteString(fmt.Sprintf("    y-axis %q 0 --> %d\n", c.YAxis, ceiling))

	for _, s := range c.Series {
		var values []string
		for _, p := range s.Points {
			values = append(values, fmt.Sprintf("%.2f", p.Value))
		}
		sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	}
	sb.WriteString("```")
	return sb.String()
}
