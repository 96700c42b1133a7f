package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UploadedDocument is a resume as received from the client. It lives only for
// the duration of one request and is never persisted.
type UploadedDocument struct {
	Filename string
	Format   DocumentFormat
	Size     int64
	Raw      []byte
}

// RolePrediction is the local classifier's output for one resume.
type RolePrediction struct {
	RoleLabel  string
	Confidence float64
}

// ConfidencePercent renders the confidence as a two-decimal percent string,
// e.g. "78.50%".
func (p RolePrediction) ConfidencePercent() string {
	return fmt.Sprintf("%.2f%%", p.Confidence)
}

// AnalysisRecord is the persisted summary of one completed analysis. It holds
// derived results only, never document bytes or extracted text.
type AnalysisRecord struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	Filename      string       `db:"filename" json:"filename"`
	Kind          AnalysisKind `db:"kind" json:"kind"`
	PredictedRole string       `db:"predicted_role" json:"predicted_role"`
	MLConfidence  string       `db:"ml_confidence" json:"ml_confidence"`
	GeminiRole    string       `db:"gemini_role" json:"gemini_role"`
	ReviewScore   int          `db:"review_score" json:"review_score"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
}
