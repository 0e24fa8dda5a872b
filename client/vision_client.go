package client

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"

	"github.com/Aashish23092/id-verification/config"
)

type annotateFunc func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error)

// VisionClient calls Google Cloud Vision TEXT_DETECTION
type VisionClient struct {
	annotate      annotateFunc
	close         func() error
	languageHints []string
	logger        *slog.Logger
}

// NewVisionClient connects with the credentials file from cfg, or with
// application default credentials when none is set. A configured file that
// does not exist is reported as ErrServiceUnavailable.
func NewVisionClient(ctx context.Context, cfg config.VisionConfig, logger *slog.Logger) (*VisionClient, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		if _, err := os.Stat(cfg.CredentialsFile); err != nil {
			return nil, fmt.Errorf("%w: vision credentials file: %w", ErrServiceUnavailable, err)
		}
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	c, err := vision.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create vision client: %w", ErrServiceUnavailable, err)
	}

	return &VisionClient{
		annotate: func(ctx context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
			return c.BatchAnnotateImages(ctx, req)
		},
		close:         c.Close,
		languageHints: cfg.LanguageHints,
		logger:        logger,
	}, nil
}

func (v *VisionClient) Name() string { return "vision" }

func (v *VisionClient) DetectText(ctx context.Context, image []byte) (string, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:    &visionpb.Image{Content: image},
			Features: []*visionpb.Feature{{Type: visionpb.Feature_TEXT_DETECTION}},
		}},
	}
	if len(v.languageHints) > 0 {
		req.Requests[0].ImageContext = &visionpb.ImageContext{LanguageHints: v.languageHints}
	}

	resp, err := v.annotate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision request failed: %w", err)
	}
	if len(resp.GetResponses()) == 0 {
		return "", ErrNoText
	}

	r := resp.GetResponses()[0]
	if msg := r.GetError().GetMessage(); msg != "" {
		return "", fmt.Errorf("%w: vision api error: %s", ErrServiceUnavailable, msg)
	}

	// the first annotation holds the whole detected text block
	annotations := r.GetTextAnnotations()
	if len(annotations) == 0 || annotations[0].GetDescription() == "" {
		return "", ErrNoText
	}

	text := annotations[0].GetDescription()
	v.logger.DebugContext(ctx, "vision detected text", "chars", len(text), "annotations", len(annotations))
	return text, nil
}

func (v *VisionClient) Close() error {
	if v.close == nil {
		return nil
	}
	return v.close()
}
