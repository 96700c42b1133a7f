package extractor

import (
	"fmt"

	"resumeiq/internal/domain"
)

// Extractor converts uploaded resumes into plain text, dispatching on the
// declared document format. It implements port.TextExtractor.
type Extractor struct{}

// New creates a document text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract returns the document's plain text. Unsupported formats fail with
// domain.ErrUnsupportedFormat; unreadable documents fail with an error
// wrapping domain.ErrExtractionFailed.
func (e *Extractor) Extract(doc *domain.UploadedDocument) (string, error) {
	switch doc.Format {
	case domain.FormatPDF:
		text, err := extractPDF(doc.Raw)
		if err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
		}
		return text, nil
	case domain.FormatDOCX:
		text, err := extractDOCX(doc.Raw)
		if err != nil {
			return "", fmt.Errorf("%w: %w", domain.ErrExtractionFailed, err)
		}
		return text, nil
	default:
		return "", domain.ErrUnsupportedFormat
	}
}
