package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/Aashish23092/id-verification/metrics"
)

var (
	// ErrNoText means the provider ran but found no text in the image
	ErrNoText = errors.New("no text detected")
	// ErrServiceUnavailable means the provider could not be reached or is
	// not configured
	ErrServiceUnavailable = errors.New("ocr service unavailable")
	// ErrInvalidImage means the bytes could not be decoded as an image
	ErrInvalidImage = errors.New("invalid image")
	// ErrOCRNotEnabled is returned by the Tesseract client when the binary was
	// built without the ocr tag. Rebuild with -tags ocr to enable it.
	ErrOCRNotEnabled = errors.New("tesseract support not enabled; rebuild with -tags ocr")
)

//go:generate mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks

// TextDetector turns an encoded image (PNG or JPEG bytes) into raw text
type TextDetector interface {
	Name() string
	DetectText(ctx context.Context, image []byte) (string, error)
}

// Partial is implemented by detectors that read only one part of a document,
// such as a QR code. Finding nothing there is not a clean read of the page.
type Partial interface {
	Partial() bool
}

func isPartial(d TextDetector) bool {
	p, ok := d.(Partial)
	return ok && p.Partial()
}

// Chain tries each detector in order and returns the first non-empty text.
type Chain struct {
	detectors []TextDetector
	timeout   time.Duration
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// NewChain builds a chain. A zero timeout leaves the caller's deadline alone.
func NewChain(logger *slog.Logger, m *metrics.Metrics, timeout time.Duration, detectors ...TextDetector) *Chain {
	return &Chain{
		detectors: detectors,
		timeout:   timeout,
		logger:    logger,
		metrics:   m,
	}
}

func (c *Chain) Name() string {
	names := make([]string, len(c.detectors))
	for i, d := range c.detectors {
		names[i] = d.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

// DetectText returns ErrNoText when at least one full-page detector ran
// cleanly but none found text, and an error wrapping ErrServiceUnavailable
// when every full-page detector failed. Empty results from Partial detectors
// are not counted.
func (c *Chain) DetectText(ctx context.Context, image []byte) (string, error) {
	var (
		errs  []error
		empty int
	)

	for _, d := range c.detectors {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := c.detect(ctx, d, image)
		switch {
		case errors.Is(err, ErrNoText):
			if !isPartial(d) {
				empty++
			}
		case err != nil:
			c.logger.WarnContext(ctx, "ocr provider failed", "provider", d.Name(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", d.Name(), err))
		default:
			c.logger.DebugContext(ctx, "ocr provider returned text", "provider", d.Name(), "chars", len(text))
			return text, nil
		}
	}

	if empty > 0 || len(errs) == 0 {
		return "", ErrNoText
	}
	return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, errors.Join(errs...))
}

func (c *Chain) detect(ctx context.Context, d TextDetector, image []byte) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := d.DetectText(ctx, image)
	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrNoText
	}

	status := "ok"
	switch {
	case errors.Is(err, ErrNoText):
		status = "empty"
	case err != nil:
		status = "error"
	}
	c.metrics.ObserveOCR(d.Name(), status, time.Since(start))

	return text, err
}

// Close closes every detector that holds resources
func (c *Chain) Close() error {
	var errs []error
	for _, d := range c.detectors {
		if cl, ok := d.(io.Closer); ok {
			if err := cl.Close(); err != nil {
				errs = append(errs, fmt.Errorf("close %s: %w", d.Name(), err))
			}
		}
	}
	return errors.Join(errs...)
}

type unavailable struct {
	name  string
	cause error
}

// Unavailable stands in for a provider that could not be constructed, so the
// chain still reports why it is missing on every call.
func Unavailable(name string, cause error) TextDetector {
	return &unavailable{name: name, cause: cause}
}

func (u *unavailable) Name() string { return u.name }

func (u *unavailable) DetectText(context.Context, []byte) (string, error) {
	if errors.Is(u.cause, ErrServiceUnavailable) {
		return "", u.cause
	}
	return "", fmt.Errorf("%w: %w", ErrServiceUnavailable, u.cause)
}
