//go:build ocr

package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/otiai10/gosseract/v2"

	"github.com/Aashish23092/id-verification/config"
)

type TesseractClient struct {
	dataPath  string
	languages []string
	logger    *slog.Logger
}

func NewTesseractClient(cfg config.TesseractConfig, logger *slog.Logger) (*TesseractClient, error) {
	langs := cfg.Languages
	if len(langs) == 0 {
		langs = []string{"eng"}
	}
	return &TesseractClient{
		dataPath:  cfg.DataPath,
		languages: langs,
		logger:    logger,
	}, nil
}

func (tc *TesseractClient) Name() string { return "tesseract" }

// DetectText runs Tesseract on the image. gosseract cannot be interrupted, so
// ctx is only checked before the run.
func (tc *TesseractClient) DetectText(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}
	if err := client.SetLanguage(tc.languages...); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("%w: failed to set image: %w", ErrInvalidImage, err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to extract text: %w", err)
	}

	if tc.logger.Enabled(ctx, slog.LevelDebug) {
		tc.logger.DebugContext(ctx, "tesseract extracted text",
			"chars", len(text), "mean_word_confidence", meanWordConfidence(client))
	}
	return text, nil
}

// meanWordConfidence averages Tesseract's per-word confidence, 0 when unknown
func meanWordConfidence(client *gosseract.Client) float64 {
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil || len(boxes) == 0 {
		return 0
	}

	var total float64
	for _, box := range boxes {
		total += box.Confidence
	}
	return total / float64(len(boxes))
}
