// Package warehouse owns the single Snowflake connection and query execution.
//
// A Session holds at most one live connection. The connection is opened
// lazily on the first query and reused by every subsequent one; a failed
// open leaves the slot empty so the next call retries fresh. All queries
// issued through a Session serialize on that one warehouse connection.
package warehouse

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/snowflakedb/gosnowflake"

	"github.com/frostline-labs/snowflake-mcp/internal/config"
)

// Executor runs SQL text against the warehouse and returns the rows.
// Session is the live implementation; tests substitute fakes.
type Executor interface {
	Execute(ctx context.Context, query string) (*Result, error)
}

// opener establishes a new warehouse connection. Injectable for tests.
type opener func(ctx context.Context) (*sqlx.DB, error)

// Session manages the single shared Snowflake connection.
// It provides thread-safe lazy establishment and query execution.
type Session struct {
	mu   sync.Mutex
	db   *sqlx.DB
	open opener
}

// NewSession creates a Session for the given configuration. No connection
// is opened until the first Execute call.
func NewSession(cfg *config.Config) *Session {
	return &Session{open: snowflakeOpener(cfg)}
}

// snowflakeOpener returns an opener that dials Snowflake with the driver's
// connector and verifies the session with a ping before handing it out.
func snowflakeOpener(cfg *config.Config) opener {
	return func(ctx context.Context) (*sqlx.DB, error) {
		connector := gosnowflake.NewConnector(gosnowflake.SnowflakeDriver{}, cfg.SnowflakeConfig())
		db := sqlx.NewDb(sql.OpenDB(connector), "snowflake").Unsafe()

		// One warehouse session per process; every statement queues on it.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to connect to Snowflake: %w", err)
		}

		return db, nil
	}
}

// ensureConnected returns the live connection, opening it if none exists.
// Idempotent: an existing connection is returned as-is. An open failure
// leaves the slot empty, so the next call attempts a fresh open.
func (s *Session) ensureConnected(ctx context.Context) (*sqlx.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}

	s.db = db
	return db, nil
}

// Execute runs the literal SQL text on the shared connection and collects
// every row. The connection is established on first use. Driver errors are
// returned with their message intact; zero rows is a valid empty Result.
func (s *Session) Execute(ctx context.Context, query string) (*Result, error) {
	db, err := s.ensureConnected(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns: %w", err)
	}

	result := &Result{
		Columns: columns,
		Rows:    make([]map[string]any, 0),
	}

	for rows.Next() {
		values, err := rows.SliceScan()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, col := range columns {
			val := values[i]
			// Snowflake returns text columns as []byte.
			if b, ok := val.([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = val
			}
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	result.Count = len(result.Rows)
	return result, nil
}

// Close releases the connection if one was established. Safe to call
// multiple times and before any connection exists.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}
