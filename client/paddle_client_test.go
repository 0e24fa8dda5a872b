package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/id-verification/config"
	"github.com/Aashish23092/id-verification/logging"
)

func newPaddle(t *testing.T, h http.HandlerFunc) *PaddleClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	p, err := NewPaddleClient(config.PaddleConfig{APIURL: srv.URL}, logging.Discard())
	require.NoError(t, err)
	return p
}

func TestPaddleClient_DetectText(t *testing.T) {
	p := newPaddle(t, func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Images []string `json:"images"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Images, 1)
		raw, err := base64.StdEncoding.DecodeString(req.Images[0])
		require.NoError(t, err)
		assert.Equal(t, "png-bytes", string(raw))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"msg":"","results":[[
			{"text":"INCOME TAX DEPARTMENT","confidence":0.98},
			{"text":"income tax department","confidence":0.71},
			{"text":" ABCPE1234F ","confidence":0.95}
		]]}`))
	})

	text, err := p.DetectText(context.Background(), []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "INCOME TAX DEPARTMENT\nABCPE1234F", text)
}

func TestPaddleClient_EmptyResults(t *testing.T) {
	p := newPaddle(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[[]]}`))
	})

	_, err := p.DetectText(context.Background(), []byte("x"))
	assert.ErrorIs(t, err, ErrNoText)
}

func TestPaddleClient_Status(t *testing.T) {
	p := newPaddle(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	})
	_, err := p.DetectText(context.Background(), []byte("x"))
	assert.ErrorContains(t, err, "status 503: model loading")
	assert.False(t, isPermanent(err))

	p = newPaddle(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad image", http.StatusBadRequest)
	})
	_, err = p.DetectText(context.Background(), []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestNewPaddleClient_RequiresURL(t *testing.T) {
	_, err := NewPaddleClient(config.PaddleConfig{}, logging.Discard())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
