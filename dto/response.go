package dto

import "errors"

// Request validation errors
var (
	ErrNoInput             = errors.New("either number or at least one file is required")
	ErrTooManyFiles        = errors.New("too many files")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("invalid file type. Supported: PDF, PNG, JPEG")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse is returned by the health endpoint
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
