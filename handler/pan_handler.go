package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/id-verification/config"
	"github.com/Aashish23092/id-verification/dto"
)

// PANVerifier adds the holder-type lookup to Verifier
type PANVerifier interface {
	Verifier
	HolderType(pan string) dto.HolderTypeResponse
}

type PANHandler struct {
	service PANVerifier
	limits  config.UploadConfig
	logger  *slog.Logger
}

func NewPANHandler(service PANVerifier, limits config.UploadConfig, logger *slog.Logger) *PANHandler {
	return &PANHandler{
		service: service,
		limits:  limits,
		logger:  logger,
	}
}

// VerifyPAN handles POST /api/v1/pan/verify
func (h *PANHandler) VerifyPAN(c *gin.Context) {
	verify(c, h.service, h.limits, h.logger)
}

// HolderType handles GET /api/v1/pan/:pan/holder-type
func (h *PANHandler) HolderType(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.HolderType(c.Param("pan")))
}
