// Package charts derives bar-chart projections from already-shaped display
// tables. It never re-queries the backend and never drops rows: a cell that
// cannot be read as a number fails the whole projection.
package charts

import (
	"fmt"
	"strconv"
	"strings"

	"gamelens/internal/catalog"
	"gamelens/internal/table"
)

// Point is one category/value pair of a series.
type Point struct {
	Category string
	Value    float64
}

// Series is one named value column of a chart.
type Series struct {
	Name   string
	Points []Point
}

// Chart is a renderable bar chart: one category axis shared by one or more
// series.
type Chart struct {
	Title  string
	YAxis  string
	Series []Series
}

// ParseError indicates a cell that could not be read as a number where the
// projection requires one.
type ParseError struct {
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %s: cannot parse %q as a number: %v", e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReleaseVolume derives the release-count chart for the date-range query.
// The category label is composite per interval ("2024 Q1", "2024-03"), and
// points dedupe on (label, count) because the group key repeats across
// display rows. Category order follows the shaped table; no re-sort.
func ReleaseVolume(t *table.Table, iv catalog.Interval) (Chart, error) {
	chart := Chart{
		Title: "Games Released per " + periodNoun(iv),
		YAxis: "Games Released",
	}

	var points []Point
	seen := make(map[string]bool)

	for _, row := range t.Rows {
		label, err := categoryLabel(row, iv)
		if err != nil {
			return Chart{}, err
		}
		count, err := cellFloat(row["count"], "count")
		if err != nil {
			return Chart{}, err
		}

		key := label + "\x1f" + strconv.FormatFloat(count, 'g', -1, 64)
		if seen[key] {
			continue
		}
		seen[key] = true
		points = append(points, Point{Category: label, Value: count})
	}

	chart.Series = []Series{{Name: "count", Points: points}}
	return chart, nil
}

// reviewMetrics are the numeric columns of the reviews-by-price result; the
// remaining column is the price-range category.
var reviewMetrics = map[string]bool{
	"avg_positive_reviews": true,
	"avg_negative_reviews": true,
	"avg_recommendations":  true,
}

// ReviewAverages derives the two charts of the reviews-by-price query: one
// with the positive/negative review averages, one with the recommendation
// average, both keyed by the table's price-range column.
func ReviewAverages(t *table.Table) ([]Chart, error) {
	category := ""
	for _, col := range t.Columns {
		if !reviewMetrics[col] {
			category = col
			break
		}
	}
	if category == "" {
		return nil, fmt.Errorf("review table has no price-range category column (columns: %s)", strings.Join(t.Columns, ", "))
	}

	reviews := Chart{
		Title:  "Average Reviews by Price Range",
		YAxis:  "Average Reviews",
		Series: []Series{{Name: "avg_positive_reviews"}, {Name: "avg_negative_reviews"}},
	}
	recos := Chart{
		Title:  "Average Recommendations by Price Range",
		YAxis:  "Average Recommendations",
		Series: []Series{{Name: "avg_recommendations"}},
	}

	for _, row := range t.Rows {
		label := cellString(row[category])
		pos, err := cellFloat(row["avg_positive_reviews"], "avg_positive_reviews")
		if err != nil {
			return nil, err
		}
		neg, err := cellFloat(row["avg_negative_reviews"], "avg_negative_reviews")
		if err != nil {
			return nil, err
		}
		rec, err := cellFloat(row["avg_recommendations"], "avg_recommendations")
		if err != nil {
			return nil, err
		}

		reviews.Series[0].Points = append(reviews.Series[0].Points, Point{Category: label, Value: pos})
		reviews.Series[1].Points = append(reviews.Series[1].Points, Point{Category: label, Value: neg})
		recos.Series[0].Points = append(recos.Series[0].Points, Point{Category: label, Value: rec})
	}

	return []Chart{reviews, recos}, nil
}

// PriceIntervalCounts re-aggregates the price-pivot table by summing count
// within each full_price_interval category, then orders the categories by
// the numeric lower bound parsed from the "<min>-<max>" range string, so
// "9.99-19.99" sorts before "100.00-150.00".
func PriceIntervalCounts(t *table.Table) (Chart, error) {
	sums := make(map[string]float64)
	bounds := make(map[string]float64)
	var order []string

	for _, row := range t.Rows {
		category := cellString(row["full_price_interval"])
		count, err := cellFloat(row["count"], "count")
		if err != nil {
			return Chart{}, err
		}
		if _, ok := sums[category]; !ok {
			lower, err := rangeLowerBound(category)
			if err != nil {
				return Chart{}, err
			}
			bounds[category] = lower
			order = append(order, category)
		}
		sums[category] += count
	}

	// Insertion sort by lower bound keeps equal bounds in first-seen order.
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && bounds[order[j]] < bounds[order[j-1]]; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	points := make([]Point, 0, len(order))
	for _, category := range order {
		points = append(points, Point{Category: category, Value: sums[category]})
	}

	return Chart{
		Title:  "Games per Price Interval",
		YAxis:  "Games",
		Series: []Series{{Name: "count", Points: points}},
	}, nil
}

// rangeLowerBound parses the numeric lower bound of a "<min>-<max>" label.
func rangeLowerBound(category string) (float64, error) {
	first, _, _ := strings.Cut(category, "-")
	lower, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return 0, &ParseError{Column: "full_price_interval", Value: category, Err: err}
	}
	return lower, nil
}

func categoryLabel(row table.Row, iv catalog.Interval) (string, error) {
	switch iv {
	case catalog.IntervalQuarterly:
		return fmt.Sprintf("%s Q%s", cellString(row["Year"]), cellString(row["Quarter"])), nil
	case catalog.IntervalMonthly:
		month, err := cellInt(row["Month"], "Month")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s-%02d", cellString(row["Year"]), month), nil
	case catalog.IntervalDaily:
		return cellString(row["Date"]), nil
	default:
		return cellString(row["Year"]), nil
	}
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}

func cellFloat(v any, column string) (float64, error) {
	switch val := v.(type) {
	case float64:
		return val, nil
	case float32:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case int:
		return float64(val), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, &ParseError{Column: column, Value: val, Err: err}
		}
		return f, nil
	default:
		return 0, &ParseError{Column: column, Value: cellString(v), Err: fmt.Errorf("unsupported type %T", v)}
	}
}

func cellInt(v any, column string) (int, error) {
	f, err := cellFloat(v, column)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}

func periodNoun(iv catalog.Interval) string {
	switch iv {
	case catalog.IntervalQuarterly:
		return "Quarter"
	case catalog.IntervalMonthly:
		return "Month"
	case catalog.IntervalDaily:
		return "Day"
	default:
		return "Year"
	}
}
