package mocks

import (
	"github.com/stretchr/testify/mock"

	"resumeiq/internal/domain"
)

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) Extract(doc *domain.UploadedDocument) (string, error) {
	args := m.Called(doc)
	return args.String(0), args.Error(1)
}
