package dto

import (
	"fmt"
	"mime/multipart"
	"strings"
)

// Document is one uploaded file handed to the document reader
type Document struct {
	Filename string
	MimeType string
	Data     []byte
	Password string
}

// IsPDF reports whether the document should go through the PDF path
func (d Document) IsPDF() bool {
	return strings.Contains(d.MimeType, "pdf") || strings.HasSuffix(strings.ToLower(d.Filename), ".pdf")
}

// VerifyRequest represents an incoming verification request. Either Number
// or Files must be set; Number wins when both are present.
type VerifyRequest struct {
	Number   string                  `form:"number"`
	Files    []*multipart.FileHeader `form:"file"`
	Password string                  `form:"password"`
}

// Validate validates the verification request against upload limits
func (r *VerifyRequest) Validate(maxFiles int, maxFileSize int64) error {
	if strings.TrimSpace(r.Number) != "" {
		return nil
	}
	if len(r.Files) == 0 {
		return ErrNoInput
	}
	if maxFiles > 0 && len(r.Files) > maxFiles {
		return fmt.Errorf("%w: got %d, limit %d", ErrTooManyFiles, len(r.Files), maxFiles)
	}
	for _, f := range r.Files {
		if maxFileSize > 0 && f.Size > maxFileSize {
			return fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, f.Filename, f.Size)
		}
	}
	return nil
}
