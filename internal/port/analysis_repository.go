package port

import (
	"context"

	"resumeiq/internal/domain"
)

// AnalysisRepository stores summaries of completed analyses.
type AnalysisRepository interface {
	Create(ctx context.Context, rec *domain.AnalysisRecord) error
	List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, int, error)
}
