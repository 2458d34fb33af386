// Package gamesdb is the I/O boundary to the games database. It invokes
// stored procedures and reads back result sets; no transformation logic
// lives here.
package gamesdb

import (
	"context"

	"gamelens/internal/table"
)

// Config holds the connection settings for the games database.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	Database string
}

// Options are the selectable filter values offered to the user.
type Options struct {
	Genres    []string
	Languages []string
}

// Client is the interface for interacting with the games database.
type Client interface {
	// CallProcedure invokes a stored procedure with positional parameters
	// and returns its result set. Column order follows the backend's
	// result-set metadata.
	CallProcedure(ctx context.Context, procedure string, params []any) (*table.Table, error)

	// FilterOptions returns the distinct genre and language names.
	FilterOptions(ctx context.Context) (*Options, error)
}

// NewClient creates a MySQL-backed client for the given configuration.
func NewClient(cfg Config) Client {
	return &mysqlClient{cfg: cfg}
}
