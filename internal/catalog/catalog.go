// Package catalog is the static registry of the analytical queries: their
// backend stored-procedure names, the shape of each procedure's positional
// parameter list, and the branch data (group keys, chart label rules) the
// shaping layer selects on.
package catalog

import (
	"fmt"
	"strings"
	"time"
)

// Query labels. These are the four registered analytical queries.
const (
	LabelGamesByReleaseDate  = "Get games released within a certain date range"
	LabelReviewsByPriceRange = "See how reviews and recommendations are affected by price range"
	LabelGenreLanguage       = "See the relationship between genre and language to reviews and recommendations"
	LabelPriceDeveloper      = "See the relationship between game price and developers"
)

// procedures maps a query label to its backend stored-procedure name.
var procedures = map[string]string{
	LabelGamesByReleaseDate:  "get_games_by_price_and_date",
	LabelReviewsByPriceRange: "get_reco_by_price_range",
	LabelGenreLanguage:       "analyze_genre_language_to_reviews_recommendations",
	LabelPriceDeveloper:      "sp_analyze_game_price_developer_relationship",
}

// UnknownQueryError indicates a label outside the registry. With a
// well-formed caller this never happens; it must abort before any backend
// call.
type UnknownQueryError struct {
	Label string
}

func (e *UnknownQueryError) Error() string {
	return fmt.Sprintf("unknown query label %q", e.Label)
}

// Lookup resolves a query label to its stored-procedure name.
func Lookup(label string) (string, error) {
	proc, ok := procedures[label]
	if !ok {
		return "", &UnknownQueryError{Label: label}
	}
	return proc, nil
}

// Labels returns the registered query labels.
func Labels() []string {
	return []string{
		LabelGamesByReleaseDate,
		LabelReviewsByPriceRange,
		LabelGenreLanguage,
		LabelPriceDeveloper,
	}
}

// CollapsedColumns are the non-key columns folded into distinct-value sets
// for every interval branch of the date-range query.
var CollapsedColumns = []string{"developer", "genre", "website", "platform"}

// Interval is the granularity of the date-range query. Each value carries
// its own group key, so the branch data lives here instead of string
// comparisons scattered through the shaping layer.
type Interval string

const (
	IntervalYearly    Interval = "yearly"
	IntervalQuarterly Interval = "quarterly"
	IntervalMonthly   Interval = "monthly"
	IntervalDaily     Interval = "daily"
)

// ParseInterval validates an interval selection.
func ParseInterval(s string) (Interval, error) {
	switch Interval(s) {
	case IntervalYearly, IntervalQuarterly, IntervalMonthly, IntervalDaily:
		return Interval(s), nil
	}
	return "", fmt.Errorf("invalid interval %q: must be one of yearly, quarterly, monthly, daily", s)
}

// GroupKey returns the key columns of the interval's collapse branch.
func (iv Interval) GroupKey() []string {
	switch iv {
	case IntervalQuarterly:
		return []string{"Year", "Quarter", "count", "name", "price"}
	case IntervalMonthly:
		return []string{"Year", "Month", "count", "name", "price"}
	case IntervalDaily:
		return []string{"Date", "count", "name", "price"}
	default:
		return []string{"Year", "count", "name", "price"}
	}
}

// GenreLanguageAxis is the pivot axis of the genre/language query.
type GenreLanguageAxis string

const (
	AxisGenre    GenreLanguageAxis = "genre"
	AxisLanguage GenreLanguageAxis = "language"
)

// ParseGenreLanguageAxis validates a genre/language pivot selection.
func ParseGenreLanguageAxis(s string) (GenreLanguageAxis, error) {
	switch GenreLanguageAxis(s) {
	case AxisGenre, AxisLanguage:
		return GenreLanguageAxis(s), nil
	}
	return "", fmt.Errorf("invalid pivot axis %q: must be genre or language", s)
}

// PriceDeveloperAxis is the pivot axis of the price/developer query.
type PriceDeveloperAxis string

const (
	AxisPrice     PriceDeveloperAxis = "price"
	AxisDeveloper PriceDeveloperAxis = "developer"
)

// ParsePriceDeveloperAxis validates a price/developer pivot selection.
func ParsePriceDeveloperAxis(s string) (PriceDeveloperAxis, error) {
	switch PriceDeveloperAxis(s) {
	case AxisPrice, AxisDeveloper:
		return PriceDeveloperAxis(s), nil
	}
	return "", fmt.Errorf("invalid pivot axis %q: must be price or developer", s)
}

const isoDate = "2006-01-02"

// DateRangeParams builds the ordered parameter list for
// get_games_by_price_and_date: [start, end, interval].
func DateRangeParams(startDate, endDate string, iv Interval) ([]any, error) {
	start, err := time.Parse(isoDate, startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := time.Parse(isoDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s precedes start date %s", endDate, startDate)
	}
	return []any{startDate, endDate, string(iv)}, nil
}

// ReviewParams builds the ordered parameter list for get_reco_by_price_range:
// [price_interval].
func ReviewParams(priceInterval float64) ([]any, error) {
	if priceInterval <= 0 {
		return nil, fmt.Errorf("price interval must be positive, got %v", priceInterval)
	}
	return []any{priceInterval}, nil
}

// GenreLanguageParams builds the ordered parameter list for
// analyze_genre_language_to_reviews_recommendations:
// [genres csv, languages csv, pivot axis]. Both selections must be
// non-empty; the backend contract takes comma-joined lists.
func GenreLanguageParams(genres, languages []string, axis GenreLanguageAxis) ([]any, error) {
	if len(genres) == 0 {
		return nil, fmt.Errorf("at least one genre must be selected")
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("at least one language must be selected")
	}
	return []any{strings.Join(genres, ","), strings.Join(languages, ","), string(axis)}, nil
}

// PriceDeveloperParams builds the ordered parameter list for
// sp_analyze_game_price_developer_relationship: [price_interval, pivot axis].
func PriceDeveloperParams(priceInterval float64, axis PriceDeveloperAxis) ([]any, error) {
	if priceInterval <= 0 {
		return nil, fmt.Errorf("price interval must be positive, got %v", priceInterval)
	}
	return []any{priceInterval, string(axis)}, nil
}
