package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Aashish23092/id-verification/dto"
)

// RouterDeps carries everything NewRouter wires
type RouterDeps struct {
	Aadhaar            *AadhaarHandler
	PAN                *PANHandler
	Gatherer           prometheus.Gatherer
	Logger             *slog.Logger
	MaxMultipartMemory int64
}

func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(deps.Logger))

	if deps.MaxMultipartMemory > 0 {
		router.MaxMultipartMemory = deps.MaxMultipartMemory
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "healthy",
			Service: "Identity Document Verification",
		})
	})

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := router.Group("/api/v1")
	{
		aadhaar := api.Group("/aadhaar")
		{
			aadhaar.POST("/verify", deps.Aadhaar.VerifyAadhaar)
		}

		pan := api.Group("/pan")
		{
			pan.POST("/verify", deps.PAN.VerifyPAN)
			pan.GET("/:pan/holder-type", deps.PAN.HolderType)
		}
	}

	// form endpoints kept for the original web front end
	router.POST("/aadharVerification", deps.Aadhaar.VerifyAadhaar)
	router.POST("/panVerification", deps.PAN.VerifyPAN)

	return router
}
