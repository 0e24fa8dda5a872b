package client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Aashish23092/id-verification/config"
	"github.com/Aashish23092/id-verification/metrics"
)

// NewFromConfig builds the detector chain in the configured provider order.
// A provider that cannot be constructed stays in the chain as an Unavailable
// placeholder so every request still reports why it is missing.
func NewFromConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger, m *metrics.Metrics) *Chain {
	detectors := make([]TextDetector, 0, len(cfg.OCR.Providers))

	for _, name := range cfg.OCR.Providers {
		d, err := newProvider(ctx, name, cfg, logger)
		if err != nil {
			logger.Warn("ocr provider unavailable", "provider", name, "error", err)
			detectors = append(detectors, Unavailable(name, err))
			continue
		}

		// QR decoding is local and deterministic
		if cfg.OCR.MaxRetries > 0 && name != config.ProviderQR {
			d = WithRetry(d, cfg.OCR.MaxRetries)
		}
		detectors = append(detectors, d)
		logger.Info("ocr provider enabled", "provider", name)
	}

	return NewChain(logger, m, cfg.OCR.Timeout, detectors...)
}

func newProvider(ctx context.Context, name string, cfg *config.Config, logger *slog.Logger) (TextDetector, error) {
	switch name {
	case config.ProviderQR:
		return NewQRClient(logger), nil
	case config.ProviderVision:
		return NewVisionClient(ctx, cfg.OCR.Vision, logger)
	case config.ProviderTesseract:
		return NewTesseractClient(cfg.OCR.Tesseract, logger)
	case config.ProviderPaddle:
		return NewPaddleClient(cfg.OCR.Paddle, logger)
	default:
		return nil, fmt.Errorf("unknown OCR provider %q", name)
	}
}
