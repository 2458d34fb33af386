package gamesdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"gamelens/internal/table"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

// mysqlClient talks to the games database over go-sql-driver/mysql. Every
// call opens a fresh connection and closes it before returning, on every
// exit path; there is no pooling and no state between invocations.
type mysqlClient struct {
	cfg Config
}

func (c *mysqlClient) dsn() string {
	port := c.cfg.Port
	if port <= 0 {
		port = 3306
	}

	dcfg := mysqldriver.NewConfig()
	dcfg.User = c.cfg.Username
	dcfg.Passwd = c.cfg.Password
	dcfg.Net = "tcp"
	dcfg.Addr = fmt.Sprintf("%s:%d", c.cfg.Host, port)
	dcfg.DBName = c.cfg.Database
	dcfg.AllowNativePasswords = true
	return dcfg.FormatDSN()
}

// open establishes and verifies a fresh connection. Failures here are
// ConnectError: the backend is unreachable or rejected the credentials.
func (c *mysqlClient) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("mysql", c.dsn())
	if err != nil {
		return nil, &ConnectError{Host: c.cfg.Host, Err: err}
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &ConnectError{Host: c.cfg.Host, Err: err}
	}
	return db, nil
}

func (c *mysqlClient) CallProcedure(ctx context.Context, procedure string, params []any) (*table.Table, error) {
	db, err := c.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	start := time.Now()
	rows, err := db.QueryContext(ctx, callStatement(procedure, len(params)), params...)
	if err != nil {
		return nil, &ProcedureError{Procedure: procedure, Err: err}
	}
	defer rows.Close()

	result, err := scanTable(rows)
	if err != nil {
		return nil, &ProcedureError{Procedure: procedure, Err: err}
	}

	log.Debug().
		Str("procedure", procedure).
		Int("rows", result.Len()).
		Dur("elapsed", time.Since(start)).
		Msg("Procedure call completed")
	return result, nil
}

// callStatement builds "CALL `proc`(?, ?, ?)" for argc parameters.
func callStatement(procedure string, argc int) string {
	placeholders := make([]string, argc)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf("CALL `%s`(%s)", procedure, strings.Join(placeholders, ", "))
}
