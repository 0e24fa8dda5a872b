package client

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Aashish23092/id-verification/client/mocks"
	"github.com/Aashish23092/id-verification/logging"
	"github.com/Aashish23092/id-verification/metrics"
)

func newMockDetector(ctrl *gomock.Controller, name string) *mocks.MockTextDetector {
	d := mocks.NewMockTextDetector(ctrl)
	d.EXPECT().Name().Return(name).AnyTimes()
	return d
}

func TestChain_FirstNonEmptyTextWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	img := []byte("img")

	qr := newMockDetector(ctrl, "qr")
	vision := newMockDetector(ctrl, "vision")
	tesseract := newMockDetector(ctrl, "tesseract")

	qr.EXPECT().DetectText(gomock.Any(), img).Return("", ErrNoText)
	vision.EXPECT().DetectText(gomock.Any(), img).Return("Government of India\n2345 6789 1238", nil)
	// tesseract is never reached

	chain := NewChain(logging.Discard(), nil, 0, qr, vision, tesseract)
	text, err := chain.DetectText(context.Background(), img)

	require.NoError(t, err)
	assert.Equal(t, "Government of India\n2345 6789 1238", text)
}

func TestChain_WhitespaceTextCountsAsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)

	a := newMockDetector(ctrl, "a")
	b := newMockDetector(ctrl, "b")
	a.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return(" \n ", nil)
	b.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("ABCPE1234F", nil)

	text, err := NewChain(logging.Discard(), nil, 0, a, b).DetectText(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "ABCPE1234F", text)
}

func TestChain_AllErrorsIsServiceUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)

	vision := newMockDetector(ctrl, "vision")
	paddle := newMockDetector(ctrl, "paddle")
	vision.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))
	paddle.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("", errors.New("connection refused"))

	_, err := NewChain(logging.Discard(), nil, 0, vision, paddle).DetectText(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.NotErrorIs(t, err, ErrNoText)
	assert.ErrorContains(t, err, "vision: quota exceeded")
	assert.ErrorContains(t, err, "paddle: connection refused")
}

func TestChain_EmptyBeatsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)

	tesseract := newMockDetector(ctrl, "tesseract")
	vision := newMockDetector(ctrl, "vision")
	tesseract.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("", ErrNoText)
	vision.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

	_, err := NewChain(logging.Discard(), nil, 0, tesseract, vision).DetectText(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestChain_MissingQRCodeDoesNotHideOCROutage(t *testing.T) {
	ctrl := gomock.NewController(t)

	vision := newMockDetector(ctrl, "vision")
	vision.EXPECT().DetectText(gomock.Any(), gomock.Any()).
		Return("", fmt.Errorf("%w: credentials not found", ErrServiceUnavailable))

	chain := NewChain(logging.Discard(), nil, 0, NewQRClient(logging.Discard()), vision)
	_, err := chain.DetectText(context.Background(), blankPNG(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.NotErrorIs(t, err, ErrNoText)
}

func TestChain_OnlyPartialDetectorsEmpty(t *testing.T) {
	chain := NewChain(logging.Discard(), nil, 0, NewQRClient(logging.Discard()))
	_, err := chain.DetectText(context.Background(), blankPNG(t))
	assert.ErrorIs(t, err, ErrNoText)
}

func TestChain_NoDetectors(t *testing.T) {
	_, err := NewChain(logging.Discard(), nil, 0).DetectText(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestChain_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newMockDetector(ctrl, "vision")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewChain(logging.Discard(), nil, 0, d).DetectText(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChain_RecordsProviderMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := metrics.New(prometheus.NewRegistry())

	qr := newMockDetector(ctrl, "qr")
	vision := newMockDetector(ctrl, "vision")
	qr.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("", ErrNoText)
	vision.EXPECT().DetectText(gomock.Any(), gomock.Any()).Return("text", nil)

	_, err := NewChain(logging.Discard(), m, 0, qr, vision).DetectText(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, testutil.CollectAndCount(m.OCRDuration))
}

func TestUnavailable(t *testing.T) {
	d := Unavailable("vision", errors.New("no credentials"))
	assert.Equal(t, "vision", d.Name())

	_, err := d.DetectText(context.Background(), nil)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorContains(t, err, "no credentials")

	d = Unavailable("tesseract", ErrOCRNotEnabled)
	_, err = d.DetectText(context.Background(), nil)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, ErrOCRNotEnabled)
}

type closingDetector struct {
	TextDetector
	closed bool
}

func (c *closingDetector) Close() error {
	c.closed = true
	return nil
}

func TestChain_Close(t *testing.T) {
	inner := &closingDetector{TextDetector: NewQRClient(logging.Discard())}
	chain := NewChain(logging.Discard(), nil, 0, WithRetry(inner, 1), NewQRClient(logging.Discard()))

	require.NoError(t, chain.Close())
	assert.True(t, inner.closed)
}
