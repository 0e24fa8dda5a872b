package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fastRetry(d TextDetector, maxRetries int) TextDetector {
	r := WithRetry(d, maxRetries).(*retrying)
	r.baseDelay = time.Millisecond
	return r
}

func TestWithRetry_RecoversFromTransientErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newMockDetector(ctrl, "paddle")

	gomock.InOrder(
		d.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("", errors.New("503")).Times(2),
		d.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("ABCPE1234F", nil),
	)

	text, err := fastRetry(d, 2).DetectText(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "ABCPE1234F", text)
}

func TestWithRetry_GivesUpAfterMaxRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newMockDetector(ctrl, "vision")

	d.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("", errors.New("unavailable")).Times(3)

	_, err := fastRetry(d, 2).DetectText(context.Background(), nil)
	assert.ErrorContains(t, err, "unavailable")
}

func TestWithRetry_PermanentErrorsAreNotRetried(t *testing.T) {
	for _, perm := range []error{ErrNoText, ErrInvalidImage, ErrOCRNotEnabled} {
		t.Run(perm.Error(), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			d := newMockDetector(ctrl, "tesseract")
			d.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("", perm).Times(1)

			_, err := fastRetry(d, 3).DetectText(context.Background(), nil)
			assert.ErrorIs(t, err, perm)
		})
	}
}

func TestWithRetry_KeepsName(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newMockDetector(ctrl, "vision")
	assert.Equal(t, "vision", WithRetry(d, 1).Name())
}
