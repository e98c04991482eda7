package postgres

import (
	"context"
	"database/sql"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"digitlens/domain/core"
	"digitlens/ports"
)

// QuerySource adapts a Postgres query to the AmountSource port.
// The query must return a single numeric column; NULLs are counted
// like blank cells. A scan failure means the query shape is wrong and
// fails the load.
type QuerySource struct {
	db    *sqlx.DB
	query string
}

// Open connects to the database and returns a query-backed amount source
func Open(dsn, query string) (*QuerySource, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, core.NewDataSourceError("postgres", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, core.NewDataSourceError("postgres", err)
	}
	return &QuerySource{db: db, query: query}, nil
}

// NewQuerySource wraps an existing connection. The caller keeps
// ownership of the connection.
func NewQuerySource(db *sqlx.DB, query string) *QuerySource {
	return &QuerySource{db: db, query: query}
}

// Close releases the underlying connection
func (s *QuerySource) Close() error {
	return s.db.Close()
}

// Describe returns static information about the configured source.
// The DSN is withheld because it can carry credentials.
func (s *QuerySource) Describe() ports.SourceInfo {
	return ports.SourceInfo{Kind: "postgres", Name: s.query}
}

// Amounts loads the raw amount values in query order
func (s *QuerySource) Amounts(ctx context.Context) ([]float64, ports.LoadStats, error) {
	stats := ports.LoadStats{}

	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, stats, core.NewDataSourceError("postgres", err)
	}
	defer rows.Close()

	if columns, err := rows.Columns(); err == nil && len(columns) > 0 {
		stats.Column = columns[0]
	}

	var amounts []float64
	for rows.Next() {
		stats.RowsScanned++
		var value sql.NullFloat64
		if err := rows.Scan(&value); err != nil {
			return nil, stats, core.NewDataSourceError("postgres", err)
		}
		if !value.Valid {
			stats.SkippedBlank++
			continue
		}
		amounts = append(amounts, value.Float64)
		stats.ValuesLoaded++
	}
	if err := rows.Err(); err != nil {
		return nil, stats, core.NewDataSourceError("postgres", err)
	}

	log.Printf("[AmountSource] Loaded %d amounts from postgres (%d rows scanned, %d NULL)",
		stats.ValuesLoaded, stats.RowsScanned, stats.SkippedBlank)

	return amounts, stats, nil
}
