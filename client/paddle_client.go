package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Aashish23092/id-verification/config"
)

// PaddleClient sends images to a PaddleOCR hub serving ocr_system over REST.
// The served model pipeline decides languages; Hindi and English lines come
// back interleaved and are deduplicated here.
type PaddleClient struct {
	apiURL     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewPaddleClient(cfg config.PaddleConfig, logger *slog.Logger) (*PaddleClient, error) {
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("%w: paddle api_url is not set", ErrServiceUnavailable)
	}
	return &PaddleClient{
		apiURL:     cfg.APIURL,
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

func (p *PaddleClient) Name() string { return "paddle" }

type paddleResponse struct {
	Msg     string `json:"msg"`
	Results [][]struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	} `json:"results"`
}

func (p *PaddleClient) DetectText(ctx context.Context, image []byte) (string, error) {
	payload := map[string]interface{}{
		"images": []string{base64.StdEncoding.EncodeToString(image)},
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiURL, bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to build PaddleOCR request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call PaddleOCR API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("PaddleOCR API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode == http.StatusBadRequest {
			return "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
		}
		return "", err
	}

	var result paddleResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode PaddleOCR response: %w", err)
	}

	var lines []string
	if len(result.Results) > 0 {
		for _, line := range result.Results[0] {
			lines = append(lines, line.Text)
		}
	}

	text := dedupeLines(lines)
	if text == "" {
		return "", ErrNoText
	}

	p.logger.DebugContext(ctx, "PaddleOCR extracted text", "chars", len(text), "lines", len(lines))
	return text, nil
}

// dedupeLines trims lines, drops blanks and case-insensitive repeats, and
// keeps first-seen order
func dedupeLines(lines []string) string {
	seen := make(map[string]bool, len(lines))
	var out []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key := strings.ToLower(line)
		if !seen[key] {
			seen[key] = true
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
