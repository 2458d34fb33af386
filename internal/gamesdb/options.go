package gamesdb

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// FilterOptions fetches the distinct genre and language names. The two
// lookups run concurrently; each uses its own connection, consistent with
// the fresh-connection-per-call model.
func (c *mysqlClient) FilterOptions(ctx context.Context) (*Options, error) {
	var opts Options

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		genres, err := c.listDistinctNames(ctx, "genres")
		opts.Genres = genres
		return err
	})
	g.Go(func() error {
		languages, err := c.listDistinctNames(ctx, "languages")
		opts.Languages = languages
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// listDistinctNames reads SELECT DISTINCT name from one of the two fixed
// lookup tables. tbl is a compile-time constant, never user input.
func (c *mysqlClient) listDistinctNames(ctx context.Context, tbl string) ([]string, error) {
	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := fmt.Sprintf("SELECT DISTINCT name FROM `%s`", tbl)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &ProcedureError{Procedure: query, Err: err}
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, &ProcedureError{Procedure: query, Err: err}
		}
		if name.Valid {
			names = append(names, name.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, &ProcedureError{Procedure: query, Err: err}
	}
	return names, nil
}
