package repository

import (
	"context"
	"fmt"

	"legalgpt-portal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConsultationsSchema creates the consultations table and its index
const ConsultationsSchema = `
CREATE TABLE IF NOT EXISTS consultations (
    id UUID PRIMARY KEY,
    query TEXT NOT NULL CHECK (length(query) > 0),
    answer TEXT NOT NULL,

    -- generation parameters the answer was produced with
    temperature DOUBLE PRECISION NOT NULL,
    top_p DOUBLE PRECISION NOT NULL,
    top_k INTEGER NOT NULL,
    num_beams INTEGER NOT NULL,
    max_tokens INTEGER NOT NULL,
    stream BOOLEAN NOT NULL DEFAULT false,

    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_consultations_created_at ON consultations(created_at DESC);`

// ConsultationRepository handles database operations for answered consultations
type ConsultationRepository struct {
	db *pgxpool.Pool
}

// NewConsultationRepository creates a new consultation repository
func NewConsultationRepository(db *pgxpool.Pool) *ConsultationRepository {
	return &ConsultationRepository{db: db}
}

// Create stores an answered consultation
func (r *ConsultationRepository) Create(ctx context.Context, c *models.Consultation) error {
	query := `
		INSERT INTO consultations (
			id, query, answer, temperature, top_p, top_k,
			num_beams, max_tokens, stream, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)`

	_, err := r.db.Exec(
		ctx, query,
		c.ID,
		c.Query,
		c.Answer,
		c.Params.Temperature,
		c.Params.TopP,
		c.Params.TopK,
		c.Params.NumBeams,
		c.Params.MaxTokens,
		c.Params.Stream,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert consultation: %w", err)
	}
	return nil
}

// ListRecent returns the most recent consultations, newest first
func (r *ConsultationRepository) ListRecent(ctx context.Context, limit int) ([]*models.Consultation, error) {
	query := `
		SELECT id, query, answer, temperature, top_p, top_k,
			num_beams, max_tokens, stream, created_at
		FROM consultations
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query consultations: %w", err)
	}

	consultations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Consultation, error) {
		c := &models.Consultation{}
		err := row.Scan(
			&c.ID,
			&c.Query,
			&c.Answer,
			&c.Params.Temperature,
			&c.Params.TopP,
			&c.Params.TopK,
			&c.Params.NumBeams,
			&c.Params.MaxTokens,
			&c.Params.Stream,
			&c.CreatedAt,
		)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan consultations: %w", err)
	}
	return consultations, nil
}
