//go:build !ocr

package client

import (
	"context"
	"log/slog"

	"github.com/Aashish23092/id-verification/config"
)

// TesseractClient is the stand-in compiled without the ocr build tag. Every
// call returns ErrOCRNotEnabled.
type TesseractClient struct{}

// NewTesseractClient reports ErrOCRNotEnabled. To enable Tesseract, install
// libtesseract and rebuild with: go build -tags ocr
func NewTesseractClient(config.TesseractConfig, *slog.Logger) (*TesseractClient, error) {
	return nil, ErrOCRNotEnabled
}

func (tc *TesseractClient) Name() string { return "tesseract" }

func (tc *TesseractClient) DetectText(context.Context, []byte) (string, error) {
	return "", ErrOCRNotEnabled
}
