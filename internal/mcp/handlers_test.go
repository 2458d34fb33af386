package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gamelens/internal/gamesdb"
	"gamelens/internal/table"
)

type mockDBClient struct {
	callProcedure func(procedure string, params []any) (*table.Table, error)
	filterOptions func() (*gamesdb.Options, error)

	calls         int
	lastProcedure string
	lastParams    []any
}

func (m *mockDBClient) CallProcedure(ctx context.Context, procedure string, params []any) (*table.Table, error) {
	m.calls++
	m.lastProcedure = procedure
	m.lastParams = params
	if m.callProcedure != nil {
		return m.callProcedure(procedure, params)
	}
	return table.New("Year", "count"), nil
}

func (m *mockDBClient) FilterOptions(ctx context.Context) (*gamesdb.Options, error) {
	if m.filterOptions != nil {
		return m.filterOptions()
	}
	return &gamesdb.Options{}, nil
}

func TestHandleGamesByReleaseDate(t *testing.T) {
	mock := &mockDBClient{
		callProcedure: func(procedure string, params []any) (*table.Table, error) {
			raw := table.New("Year", "count", "name", "price", "developer", "genre", "website", "platform")
			raw.Append(table.Row{"Year": int64(2020), "count": int64(5), "name": "A", "price": 9.99, "developer": "X", "genre": "Action", "website": nil, "platform": "win"})
			raw.Append(table.Row{"Year": int64(2020), "count": int64(5), "name": "A", "price": 9.99, "developer": "Y", "genre": "Action", "website": nil, "platform": "win"})
			return raw, nil
		},
	}
	s := NewServer(mock)

	text, err := s.handleGamesByReleaseDate(context.Background(), "2020-01-01", "2020-12-31", "yearly")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.lastProcedure != "get_games_by_price_and_date" {
		t.Errorf("Expected registry-resolved procedure, got %s", mock.lastProcedure)
	}
	wantParams := []any{"2020-01-01", "2020-12-31", "yearly"}
	for i, p := range wantParams {
		if mock.lastParams[i] != p {
			t.Errorf("Param %d: expected %v, got %v", i, p, mock.lastParams[i])
		}
	}

	// Duplicate rows collapsed into one row with a developer set.
	if !strings.Contains(text, "{X, Y}") {
		t.Errorf("Expected collapsed developer set in table, got:\n%s", text)
	}
	if strings.Count(text, "| 2020 |") != 1 {
		t.Errorf("Expected one collapsed display row, got:\n%s", text)
	}
	if !strings.Contains(text, "```mermaid") {
		t.Errorf("Expected a chart block, got:\n%s", text)
	}
}

func TestHandleGamesByReleaseDate_InvalidInterval(t *testing.T) {
	mock := &mockDBClient{}
	s := NewServer(mock)

	_, err := s.handleGamesByReleaseDate(context.Background(), "2020-01-01", "2020-12-31", "weekly")
	if err == nil {
		t.Fatal("Expected error for unsupported interval, got nil")
	}
	if mock.calls != 0 {
		t.Errorf("Expected no backend call on parameter failure, got %d", mock.calls)
	}
}

func TestHandleReviewsByPriceRange(t *testing.T) {
	mock := &mockDBClient{
		callProcedure: func(procedure string, params []any) (*table.Table, error) {
			raw := table.New("price_range", "avg_positive_reviews", "avg_negative_reviews", "avg_recommendations")
			raw.Append(table.Row{"price_range": "10-20", "avg_positive_reviews": "12.5", "avg_negative_reviews": "3.0", "avg_recommendations": "7"})
			return raw, nil
		},
	}
	s := NewServer(mock)

	text, err := s.handleReviewsByPriceRange(context.Background(), 10.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.lastProcedure != "get_reco_by_price_range" {
		t.Errorf("Expected get_reco_by_price_range, got %s", mock.lastProcedure)
	}
	if strings.Count(text, "```mermaid") != 2 {
		t.Errorf("Expected two chart blocks, got:\n%s", text)
	}
	// Pass-through shaping: the raw row survives unchanged.
	if !strings.Contains(text, "| 10-20 |") {
		t.Errorf("Expected price range row in table, got:\n%s", text)
	}
}

func TestHandleReviewsByPriceRange_RejectsNonPositive(t *testing.T) {
	mock := &mockDBClient{}
	s := NewServer(mock)

	if _, err := s.handleReviewsByPriceRange(context.Background(), 0); err == nil {
		t.Fatal("Expected error for zero price interval, got nil")
	}
	if mock.calls != 0 {
		t.Errorf("Expected no backend call, got %d", mock.calls)
	}
}

func TestHandleGenreLanguageBreakdown(t *testing.T) {
	mock := &mockDBClient{
		callProcedure: func(procedure string, params []any) (*table.Table, error) {
			raw := table.New("genre", "avg_positive_reviews")
			raw.Append(table.Row{"genre": "Action", "avg_positive_reviews": 12.5})
			return raw, nil
		},
	}
	s := NewServer(mock)

	text, err := s.handleGenreLanguageBreakdown(context.Background(), []string{"Action", "RPG"}, []string{"English"}, "genre")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.lastParams[0] != "Action,RPG" || mock.lastParams[1] != "English" || mock.lastParams[2] != "genre" {
		t.Errorf("Expected comma-joined selections, got %v", mock.lastParams)
	}
	if strings.Contains(text, "```mermaid") {
		t.Errorf("Expected no chart for the genre/language query, got:\n%s", text)
	}
}

func TestHandlePriceDeveloperRelationship(t *testing.T) {
	mock := &mockDBClient{
		callProcedure: func(procedure string, params []any) (*table.Table, error) {
			raw := table.New("full_price_interval", "count")
			raw.Append(table.Row{"full_price_interval": "100.00-150.00", "count": int64(1)})
			raw.Append(table.Row{"full_price_interval": "9.99-19.99", "count": int64(2)})
			return raw, nil
		},
	}
	s := NewServer(mock)

	text, err := s.handlePriceDeveloperRelationship(context.Background(), 10.0, "price")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "```mermaid") {
		t.Errorf("Expected chart for price pivot, got:\n%s", text)
	}
	// Numeric-aware category order, not lexicographic.
	if !strings.Contains(text, `x-axis ["9.99-19.99", "100.00-150.00"]`) {
		t.Errorf("Expected numerically sorted categories, got:\n%s", text)
	}

	text, err = s.handlePriceDeveloperRelationship(context.Background(), 10.0, "developer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(text, "```mermaid") {
		t.Errorf("Expected table only for developer pivot, got:\n%s", text)
	}
}

func TestHandleListFilterOptions(t *testing.T) {
	mock := &mockDBClient{
		filterOptions: func() (*gamesdb.Options, error) {
			return &gamesdb.Options{Genres: []string{"Action"}, Languages: []string{"English"}}, nil
		},
	}
	s := NewServer(mock)

	text, err := s.handleListFilterOptions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Action") || !strings.Contains(text, "English") {
		t.Errorf("Expected options in response, got:\n%s", text)
	}
}

func TestCallTool_UnknownTool(t *testing.T) {
	mock := &mockDBClient{}
	s := NewServer(mock)

	params, _ := json.Marshal(map[string]interface{}{"name": "drop_tables", "arguments": map[string]interface{}{}})
	result, errRes := s.callTool(params)
	if result != nil || errRes == nil {
		t.Fatal("Expected error result for unknown tool")
	}
	if mock.calls != 0 {
		t.Errorf("Expected no backend call for unknown tool, got %d", mock.calls)
	}
}

func TestCallTool_ArgumentCoercion(t *testing.T) {
	mock := &mockDBClient{
		callProcedure: func(procedure string, params []any) (*table.Table, error) {
			return table.New("full_price_interval", "count"), nil
		},
	}
	s := NewServer(mock)

	params, _ := json.Marshal(map[string]interface{}{
		"name": "price_developer_relationship",
		"arguments": map[string]interface{}{
			"price_interval": 12.5,
			"pivot_axis":     "developer",
		},
	})
	result, errRes := s.callTool(params)
	if errRes != nil {
		t.Fatalf("unexpected error: %v", errRes)
	}
	if result == nil {
		t.Fatal("Expected a result")
	}
	if mock.lastParams[0] != 12.5 || mock.lastParams[1] != "developer" {
		t.Errorf("Expected coerced arguments, got %v", mock.lastParams)
	}
}
