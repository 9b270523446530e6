package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"homescout/internal/model"
)

// SearchLogRepository persists one row per search request for offline
// analysis. It is optional infrastructure: the search pipeline works without
// it and all writes are fail-soft at the call site.
type SearchLogRepository struct {
	db *sqlx.DB
}

// NewSearchLogRepository connects to PostgreSQL.
func NewSearchLogRepository(dsn string, maxConn, maxIdleConn int) (*SearchLogRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement
	// does not exist" errors behind pgbouncer.
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SearchLogRepository{db: db}, nil
}

// Close closes the database connection.
func (r *SearchLogRepository) Close() error {
	return r.db.Close()
}

// LogSearch records a search: raw query, extracted filters, result count and
// response time.
func (r *SearchLogRepository) LogSearch(ctx context.Context, query string, filters *model.Filters, resultCount, responseTimeMs int) error {
	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return fmt.Errorf("failed to marshal filters: %w", err)
	}

	logQuery := `
		INSERT INTO search_logs (query, filters, result_count, response_time_ms)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, logQuery, query, filtersJSON, resultCount, responseTimeMs); err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}
