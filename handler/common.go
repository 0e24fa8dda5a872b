package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/id-verification/config"
	"github.com/Aashish23092/id-verification/dto"
	"github.com/Aashish23092/id-verification/service"
)

// Verifier is what the handlers need from a verification service
type Verifier interface {
	VerifyNumber(ctx context.Context, number string) dto.VerificationResult
	VerifyDocuments(ctx context.Context, docs []dto.Document) (dto.VerificationResult, error)
}

var allowedMimeTypes = []string{"application/pdf", "image/png", "image/jpeg"}

// verify serves both identifiers: typed number first, otherwise uploads
func verify(c *gin.Context, v Verifier, limits config.UploadConfig, logger *slog.Logger) {
	var req dto.VerifyRequest
	if err := c.ShouldBind(&req); err != nil {
		sendError(c, logger, http.StatusBadRequest, "invalid_request", "Failed to parse form", err)
		return
	}

	if err := req.Validate(limits.MaxFiles, limits.MaxFileSize); err != nil {
		sendError(c, logger, http.StatusBadRequest, "invalid_request", err.Error(), err)
		return
	}

	if strings.TrimSpace(req.Number) != "" {
		c.JSON(http.StatusOK, v.VerifyNumber(c.Request.Context(), req.Number))
		return
	}

	docs, err := loadDocuments(req.Files, req.Password)
	if err != nil {
		sendError(c, logger, http.StatusBadRequest, "invalid_file", err.Error(), err)
		return
	}

	res, err := v.VerifyDocuments(c.Request.Context(), docs)
	if err != nil {
		if errors.Is(err, service.ErrPDFPassword) {
			sendError(c, logger, http.StatusUnprocessableEntity, "pdf_password", "PDF password is missing or wrong", err)
			return
		}
		sendError(c, logger, http.StatusUnprocessableEntity, "document_unreadable", "Failed to read document", err)
		return
	}

	status := http.StatusOK
	if res.Outcome == dto.OutcomeServiceUnavailable {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, res)
}

// loadDocuments reads the uploads and sniffs their real content type
func loadDocuments(files []*multipart.FileHeader, password string) ([]dto.Document, error) {
	docs := make([]dto.Document, 0, len(files))
	for _, fh := range files {
		data, err := readUpload(fh)
		if err != nil {
			return nil, err
		}

		mt := mimetype.Detect(data)
		if !mimetype.EqualsAny(mt.String(), allowedMimeTypes...) {
			return nil, fmt.Errorf("%w: %s is %s", dto.ErrUnsupportedFileType, fh.Filename, mt.String())
		}

		docs = append(docs, dto.Document{
			Filename: fh.Filename,
			MimeType: mt.String(),
			Data:     data,
			Password: password,
		})
	}
	return docs, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", fh.Filename, err)
	}
	return data, nil
}

// sendError sends a structured error response
func sendError(c *gin.Context, logger *slog.Logger, statusCode int, code, message string, err error) {
	if err != nil {
		logger.WarnContext(c.Request.Context(), message,
			"error", err, "status", statusCode, "request_id", requestIDFrom(c))
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:     code,
		Message:   message,
		Code:      statusCode,
		RequestID: requestIDFrom(c),
	})
}
