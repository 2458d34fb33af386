package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name": "games_by_release_date",
				"description": "List games released within a date range, grouped by release period. " +
					"Rows sharing the same period, release count, name and price collapse into one row whose " +
					"developer/genre/website/platform cells hold the set of distinct values. " +
					"Returns the table and a bar chart of release counts per period.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"start_date": map[string]interface{}{"type": "string", "description": "Start of the range (YYYY-MM-DD)"},
						"end_date":   map[string]interface{}{"type": "string", "description": "End of the range (YYYY-MM-DD)"},
						"interval":   map[string]interface{}{"type": "string", "enum": []string{"yearly", "quarterly", "monthly", "daily"}, "description": "Grouping granularity"},
					},
					"required": []string{"start_date", "end_date", "interval"},
				},
			},
			map[string]interface{}{
				"name": "reviews_by_price_range",
				"description": "Show how review and recommendation averages vary across price buckets of the given width. " +
					"Returns the table plus two bar charts: positive/negative review averages and recommendation averages per price range.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"price_interval": map[string]interface{}{"type": "number", "description": "Width of each price bucket (must be positive)"},
					},
					"required": []string{"price_interval"},
				},
			},
			map[string]interface{}{
				"name": "genre_language_breakdown",
				"description": "Relate genres and supported languages to reviews and recommendations, pivoted by genre or by language. " +
					"Use 'list_filter_options' first to discover valid genre and language names. Returns the table only.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"genres":     map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}, "description": "Genres to include (at least one)"},
						"languages":  map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}, "description": "Languages to include (at least one)"},
						"pivot_axis": map[string]interface{}{"type": "string", "enum": []string{"genre", "language"}, "description": "Axis to pivot the breakdown on"},
					},
					"required": []string{"genres", "languages", "pivot_axis"},
				},
			},
			map[string]interface{}{
				"name": "price_developer_relationship",
				"description": "Relate game prices to developers, pivoted by price interval or by developer. " +
					"With pivot_axis=price the result includes a bar chart of game counts per price interval, " +
					"ordered by the interval's numeric lower bound.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"price_interval": map[string]interface{}{"type": "number", "description": "Width of each price bucket (must be positive)"},
						"pivot_axis":     map[string]interface{}{"type": "string", "enum": []string{"price", "developer"}, "description": "Axis to pivot the relationship on"},
					},
					"required": []string{"price_interval", "pivot_axis"},
				},
			},
			map[string]interface{}{
				"name":        "list_filter_options",
				"description": "List the distinct genre and language names available for 'genre_language_breakdown'.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
		},
	}
}
