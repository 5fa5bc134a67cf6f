package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rentello/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresRepository stores request history for predictions and
// suggestions
type PostgresRepository struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS rent_predictions (
	id BIGSERIAL PRIMARY KEY,
	bedrooms DOUBLE PRECISION NOT NULL,
	bathrooms DOUBLE PRECISION NOT NULL,
	lot_area DOUBLE PRECISION NOT NULL,
	grade DOUBLE PRECISION NOT NULL,
	condition DOUBLE PRECISION NOT NULL,
	waterfront DOUBLE PRECISION NOT NULL,
	views DOUBLE PRECISION NOT NULL,
	prediction DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS suggestion_requests (
	id BIGSERIAL PRIMARY KEY,
	price DOUBLE PRECISION NOT NULL,
	source TEXT NOT NULL,
	suggestion_count INT NOT NULL,
	debug TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
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

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to ensure history tables: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// LogPrediction records a served rent prediction
func (r *PostgresRepository) LogPrediction(ctx context.Context, req *model.PredictRequest, prediction float64) error {
	query := `
		INSERT INTO rent_predictions
			(bedrooms, bathrooms, lot_area, grade, condition, waterfront, views, prediction)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		*req.Bedrooms, *req.Bathrooms, *req.LotArea,
		*req.Grade, *req.Condition, *req.Waterfront, *req.Views,
		prediction,
	)
	if err != nil {
		return fmt.Errorf("failed to log prediction: %w", err)
	}
	return nil
}

// LogSuggestion records a served suggestion request
func (r *PostgresRepository) LogSuggestion(ctx context.Context, price float64, source string, count int, debug string) error {
	query := `
		INSERT INTO suggestion_requests (price, source, suggestion_count, debug)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, price, source, count, debug); err != nil {
		return fmt.Errorf("failed to log suggestion request: %w", err)
	}
	return nil
}

// RecentPredictions returns the most recent rent predictions
func (r *PostgresRepository) RecentPredictions(ctx context.Context, limit int) ([]model.PredictionRecord, error) {
	query := `
		SELECT id, bedrooms, bathrooms, lot_area, grade, condition, waterfront, views, prediction, created_at
		FROM rent_predictions
		ORDER BY created_at DESC
		LIMIT $1
	`
	var records []model.PredictionRecord
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch predictions: %w", err)
	}
	return records, nil
}

// RecentSuggestions returns the most recent suggestion requests
func (r *PostgresRepository) RecentSuggestions(ctx context.Context, limit int) ([]model.SuggestionRecord, error) {
	query := `
		SELECT id, price, source, suggestion_count, debug, created_at
		FROM suggestion_requests
		ORDER BY created_at DESC
		LIMIT $1
	`
	var records []model.SuggestionRecord
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch suggestion requests: %w", err)
	}
	return records, nil
}
