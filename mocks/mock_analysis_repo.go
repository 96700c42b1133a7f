package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeiq/internal/domain"
)

type MockAnalysisRepo struct {
	mock.Mock
}

func (m *MockAnalysisRepo) Create(ctx context.Context, rec *domain.AnalysisRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockAnalysisRepo) List(ctx context.Context, offset, limit int) ([]domain.AnalysisRecord, int, error) {
	args := m.Called(ctx, offset, limit)
	return args.Get(0).([]domain.AnalysisRecord), args.Int(1), args.Error(2)
}
