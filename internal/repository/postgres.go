package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"hotelfinder/internal/model"
)

// PostgresRepository records search and feedback telemetry per session.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
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

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LogSearchTurn records one completed search: the request that was issued,
// how many records came back and how long the scrape took.
func (r *PostgresRepository) LogSearchTurn(ctx context.Context, sessionID string, req model.SearchRequest, resultCount int, tookMs int) error {
	query := `
		INSERT INTO search_turns (session_id, location, check_in_date, check_out_date, num_adults, result_count, took_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		sessionID, req.Location, req.CheckInDate, req.CheckOutDate, req.NumAdults, resultCount, tookMs)
	if err != nil {
		return fmt.Errorf("failed to log search turn: %w", err)
	}
	return nil
}

// LogFeedback records one classified feedback turn.
func (r *PostgresRepository) LogFeedback(ctx context.Context, sessionID, feedback string, decision model.Decision) error {
	query := `
		INSERT INTO feedback_turns (session_id, feedback, decision)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, sessionID, feedback, string(decision))
	if err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}
