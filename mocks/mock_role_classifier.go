package mocks

import (
	"github.com/stretchr/testify/mock"

	"resumeiq/internal/domain"
)

type MockRoleClassifier struct {
	mock.Mock
}

func (m *MockRoleClassifier) Available() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockRoleClassifier) Predict(normalizedText string) (domain.RolePrediction, error) {
	args := m.Called(normalizedText)
	return args.Get(0).(domain.RolePrediction), args.Error(1)
}
