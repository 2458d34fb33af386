package mcp

import (
	"context"
	"encoding/json"

	"gamelens/internal/catalog"
	"gamelens/internal/charts"
	"gamelens/internal/reshape"
)

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	ctx := context.Background()
	args := call.Arguments

	var text string
	var err error

	switch call.Name {
	case "games_by_release_date":
		text, err = s.handleGamesByReleaseDate(ctx, asString(args["start_date"]), asString(args["end_date"]), asString(args["interval"]))
	case "reviews_by_price_range":
		text, err = s.handleReviewsByPriceRange(ctx, asFloat(args["price_interval"]))
	case "genre_language_breakdown":
		text, err = s.handleGenreLanguageBreakdown(ctx, asStringList(args["genres"]), asStringList(args["languages"]), asString(args["pivot_axis"]))
	case "price_developer_relationship":
		text, err = s.handlePriceDeveloperRelationship(ctx, asFloat(args["price_interval"]), asString(args["pivot_axis"]))
	case "list_filter_options":
		text, err = s.handleListFilterOptions(ctx)
	default:
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	if err != nil {
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": text,
			},
		},
	}, nil
}

func (s *Server) handleGamesByReleaseDate(ctx context.Context, startDate, endDate, interval string) (string, error) {
	iv, err := catalog.ParseInterval(interval)
	if err != nil {
		return "", err
	}
	proc, err := catalog.Lookup(catalog.LabelGamesByReleaseDate)
	if err != nil {
		return "", err
	}
	params, err := catalog.DateRangeParams(startDate, endDate, iv)
	if err != nil {
		return "", err
	}

	raw, err := s.db.CallProcedure(ctx, proc, params)
	if err != nil {
		return "", err
	}

	shaped := reshape.Collapse(raw, iv.GroupKey(), catalog.CollapsedColumns)
	chart, err := charts.ReleaseVolume(shaped, iv)
	if err != nil {
		return "", err
	}
	return renderResult(shaped, chart), nil
}

func (s *Server) handleReviewsByPriceRange(ctx context.Context, priceInterval float64) (string, error) {
	proc, err := catalog.Lookup(catalog.LabelReviewsByPriceRange)
	if err != nil {
		return "", err
	}
	params, err := catalog.ReviewParams(priceInterval)
	if err != nil {
		return "", err
	}

	raw, err := s.db.CallProcedure(ctx, proc, params)
	if err != nil {
		return "", err
	}

	shaped := reshape.Identity(raw)
	projected, err := charts.ReviewAverages(shaped)
	if err != nil {
		return "", err
	}
	return renderResult(shaped, projected...), nil
}

func (s *Server) handleGenreLanguageBreakdown(ctx context.Context, genres, languages []string, pivotAxis string) (string, error) {
	axis, err := catalog.ParseGenreLanguageAxis(pivotAxis)
	if err != nil {
		return "", err
	}
	proc, err := catalog.Lookup(catalog.LabelGenreLanguage)
	if err != nil {
		return "", err
	}
	params, err := catalog.GenreLanguageParams(genres, languages, axis)
	if err != nil {
		return "", err
	}

	raw, err := s.db.CallProcedure(ctx, proc, params)
	if err != nil {
		return "", err
	}

	// Table only; no chart is defined for this query.
	return renderResult(reshape.Identity(raw)), nil
}

func (s *Server) handlePriceDeveloperRelationship(ctx context.Context, priceInterval float64, pivotAxis string) (string, error) {
	axis, err := catalog.ParsePriceDeveloperAxis(pivotAxis)
	if err != nil {
		return "", err
	}
	proc, err := catalog.Lookup(catalog.LabelPriceDeveloper)
	if err != nil {
		return "", err
	}
	params, err := catalog.PriceDeveloperParams(priceInterval, axis)
	if err != nil {
		return "", err
	}

	raw, err := s.db.CallProcedure(ctx, proc, params)
	if err != nil {
		return "", err
	}

	shaped := reshape.Identity(raw)
	if axis != catalog.AxisPrice {
		// The developer pivot shows the table only.
		return renderResult(shaped), nil
	}

	chart, err := charts.PriceIntervalCounts(shaped)
	if err != nil {
		return "", err
	}
	return renderResult(shaped, chart), nil
}

func (s *Server) handleListFilterOptions(ctx context.Context) (string, error) {
	opts, err := s.db.FilterOptions(ctx)
	if err != nil {
		return "", err
	}
	return formatResult(opts), nil
}
