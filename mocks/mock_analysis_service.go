package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumeiq/internal/domain"
	"resumeiq/internal/service"
)

type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) ReviewResume(ctx context.Context, doc *domain.UploadedDocument) (*service.ReviewAnalysis, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ReviewAnalysis), args.Error(1)
}

func (m *MockAnalysisService) PredictJobRole(ctx context.Context, doc *domain.UploadedDocument) (*service.RolePredictionResult, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RolePredictionResult), args.Error(1)
}

func (m *MockAnalysisService) AnalyzeSkills(ctx context.Context, doc *domain.UploadedDocument) (map[string]any, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAnalysisService) ClassifierAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}
