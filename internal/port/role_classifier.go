package port

import "resumeiq/internal/domain"

// RoleClassifier maps normalized resume text to a job-role prediction.
// Available reports whether the underlying model artifacts loaded at startup;
// Predict must only be called when Available is true.
type RoleClassifier interface {
	Available() bool
	Predict(normalizedText string) (domain.RolePrediction, error)
}
