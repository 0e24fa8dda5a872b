package client

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/id-verification/config"
	"github.com/Aashish23092/id-verification/logging"
)

func fakeVision(resp *visionpb.BatchAnnotateImagesResponse, err error, seen **visionpb.BatchAnnotateImagesRequest) *VisionClient {
	return &VisionClient{
		annotate: func(_ context.Context, req *visionpb.BatchAnnotateImagesRequest) (*visionpb.BatchAnnotateImagesResponse, error) {
			if seen != nil {
				*seen = req
			}
			return resp, err
		},
		languageHints: []string{"en", "hi"},
		logger:        logging.Discard(),
	}
}

func TestVisionClient_DetectText(t *testing.T) {
	var req *visionpb.BatchAnnotateImagesRequest
	v := fakeVision(&visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{{
			TextAnnotations: []*visionpb.EntityAnnotation{
				{Description: "Government of India\n2345 6789 1238\n"},
				{Description: "Government"},
			},
		}},
	}, nil, &req)

	text, err := v.DetectText(context.Background(), []byte("jpeg"))
	require.NoError(t, err)
	assert.Equal(t, "Government of India\n2345 6789 1238\n", text)

	require.Len(t, req.GetRequests(), 1)
	r := req.GetRequests()[0]
	assert.Equal(t, []byte("jpeg"), r.GetImage().GetContent())
	assert.Equal(t, visionpb.Feature_TEXT_DETECTION, r.GetFeatures()[0].GetType())
	assert.Equal(t, []string{"en", "hi"}, r.GetImageContext().GetLanguageHints())
}

func TestVisionClient_NoAnnotations(t *testing.T) {
	v := fakeVision(&visionpb.BatchAnnotateImagesResponse{
		Responses: []*visionpb.AnnotateImageResponse{{}},
	}, nil, nil)

	_, err := v.DetectText(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestVisionClient_TransportError(t *testing.T) {
	v := fakeVision(nil, errors.New("dial tcp: i/o timeout"), nil)

	_, err := v.DetectText(context.Background(), nil)
	assert.ErrorContains(t, err, "vision request failed")
	assert.False(t, isPermanent(err))
}

func TestNewVisionClient_MissingCredentialsFile(t *testing.T) {
	_, err := NewVisionClient(context.Background(), config.VisionConfig{
		CredentialsFile: filepath.Join(t.TempDir(), "missing.json"),
	}, logging.Discard())
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
