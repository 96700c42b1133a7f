package port

import "resumeiq/internal/domain"

// TextExtractor turns an uploaded document into plain text.
// Implementations return domain.ErrUnsupportedFormat for formats they cannot
// handle and domain.ErrExtractionFailed (wrapped) when the document is
// unreadable.
type TextExtractor interface {
	Extract(doc *domain.UploadedDocument) (string, error)
}
