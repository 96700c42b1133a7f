package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"resumeiq/internal/domain"
)

type analysisRepo struct {
	db *sqlx.DB
}

// NewAnalysisRepo creates a PostgreSQL-backed AnalysisRepository.
func NewAnalysisRepo(db *sqlx.DB) *analysisRepo {
	return &analysisRepo{db: db}
}

func (r *analysisRepo) Create(ctx context.Context, rec *domain.AnalysisRecord) error {
	query := `
		INSERT INTO analyses (
			id, filename, kind, predicted_role, ml_confidence,
			gemini_role, review_score, created_at
		) VALUES (
			:id, :filename, :kind, :predicted_role, :ml_confidence,
			:gemini_role, :review_score, NOW()
		)`
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("inserting analysis record: %w", err)
	}
	return nil
}

func (r *analysisRepo) List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM analyses`); err != nil {
		return nil, 0, fmt.Errorf("counting analysis records: %w", err)
	}

	records := []domain.AnalysisRecord{}
	query := `
		SELECT id, filename, kind, predicted_role, ml_confidence,
		       gemini_role, review_score, created_at
		FROM analyses
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`
	err := r.db.SelectContext(ctx, &records, query, offset, limit)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, 0, fmt.Errorf("listing analysis records: %w", err)
	}
	return records, total, nil
}
