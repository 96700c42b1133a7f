package domain

import "errors"

var (
	ErrMissingFile           = errors.New("file field is required")
	ErrUnsupportedFormat     = errors.New("unsupported file format")
	ErrPayloadTooLarge       = errors.New("file exceeds maximum allowed size")
	ErrExtractionFailed      = errors.New("text extraction failed")
	ErrClassifierUnavailable = errors.New("prediction service not available")
	ErrInsightUnavailable    = errors.New("insight generator unavailable")
	ErrHistoryUnavailable    = errors.New("analysis history not available")
	ErrNotFound              = errors.New("resource not found")
)
