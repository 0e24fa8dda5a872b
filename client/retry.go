package client

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type retrying struct {
	next       TextDetector
	maxRetries int
	baseDelay  time.Duration
}

// WithRetry retries transient detector failures with exponential backoff.
// Empty results, undecodable images and a missing Tesseract build are not
// retried.
func WithRetry(d TextDetector, maxRetries int) TextDetector {
	return &retrying{next: d, maxRetries: maxRetries, baseDelay: 200 * time.Millisecond}
}

func (r *retrying) Name() string { return r.next.Name() }

func (r *retrying) DetectText(ctx context.Context, image []byte) (string, error) {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = r.baseDelay
	eb.MaxInterval = 5 * time.Second
	eb.MaxElapsedTime = 0 // bounded by maxRetries and ctx

	var text string
	op := func() error {
		t, err := r.next.DetectText(ctx, image)
		if err != nil {
			if isPermanent(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		text = t
		return nil
	}

	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(r.maxRetries)), ctx)
	if err := backoff.Retry(op, b); err != nil {
		return "", err
	}
	return text, nil
}

func (r *retrying) Close() error {
	if cl, ok := r.next.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

func isPermanent(err error) bool {
	return errors.Is(err, ErrNoText) ||
		errors.Is(err, ErrInvalidImage) ||
		errors.Is(err, ErrOCRNotEnabled) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
