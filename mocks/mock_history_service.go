package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeiq/internal/domain"
)

type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.AnalysisRecord), args.Int(1), args.Error(2)
}

func (m *MockHistoryService) ExportXLSX(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
