package handler

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/id-verification/config"
)

type AadhaarHandler struct {
	service Verifier
	limits  config.UploadConfig
	logger  *slog.Logger
}

func NewAadhaarHandler(service Verifier, limits config.UploadConfig, logger *slog.Logger) *AadhaarHandler {
	return &AadhaarHandler{
		service: service,
		limits:  limits,
		logger:  logger,
	}
}

// VerifyAadhaar handles POST /api/v1/aadhaar/verify with either a "number"
// form field or one or more "file" uploads (card photos or e-Aadhaar PDFs,
// with an optional "password")
func (h *AadhaarHandler) VerifyAadhaar(c *gin.Context) {
	verify(c, h.service, h.limits, h.logger)
}
