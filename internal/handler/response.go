package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumeiq/internal/domain"
)

// APIError holds error details in an error response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for all error responses. Success payloads
// are endpoint-specific shapes written directly.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, ErrorResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "MISSING_FILE", "file field is required"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "UNSUPPORTED_FORMAT", "unsupported file format; use PDF or DOCX"
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return http.StatusBadRequest, "PAYLOAD_TOO_LARGE", "file too large (max 5MB)"
	case errors.Is(err, domain.ErrClassifierUnavailable):
		return http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "prediction service not available; please try again later"
	case errors.Is(err, domain.ErrExtractionFailed):
		return http.StatusBadRequest, "EXTRACTION_FAILED", "could not extract text from the document"
	case errors.Is(err, domain.ErrHistoryUnavailable):
		return http.StatusServiceUnavailable, "HISTORY_UNAVAILABLE", "analysis history not available"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred during processing"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
