package service

import (
	"context"

	"resumeiq/internal/domain"
	"resumeiq/internal/export"
	"resumeiq/internal/port"
)

// HistoryService exposes the persisted analysis history.
type HistoryService interface {
	List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, int, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type historyService struct {
	repo port.AnalysisRepository // nil when history is disabled
}

// NewHistoryService creates a HistoryService. repo may be nil, in which case
// every call reports domain.ErrHistoryUnavailable.
func NewHistoryService(repo port.AnalysisRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, int, error) {
	if s.repo == nil {
		return nil, 0, domain.ErrHistoryUnavailable
	}
	return s.repo.List(ctx, offset, limit)
}

// ExportXLSX renders the full history as an XLSX workbook.
func (s *historyService) ExportXLSX(ctx context.Context) ([]byte, error) {
	if s.repo == nil {
		return nil, domain.ErrHistoryUnavailable
	}

	const pageSize = 500
	var records []domain.AnalysisRecord
	for offset := 0; ; offset += pageSize {
		page, total, err := s.repo.List(ctx, offset, pageSize)
		if err != nil {
			return nil, err
		}
		records = append(records, page...)
		if offset+pageSize >= total || len(page) == 0 {
			break
		}
	}

	return export.AnalysesXLSX(records)
}
