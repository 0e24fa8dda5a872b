package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/id-verification/logging"
	"github.com/Aashish23092/id-verification/service"
)

func newTools() *Tools {
	logger := logging.Discard()
	return &Tools{
		Aadhaar: service.NewAadhaarService(nil, logger, nil),
		PAN:     service.NewPANService(nil, logger, nil),
	}
}

func TestVerifyAadhaar(t *testing.T) {
	tools := newTools()

	tests := []struct {
		name      string
		input     InputVerify
		wantValid bool
		wantValue string
		wantConf  int
	}{
		{"typed", InputVerify{Number: "2345-6789-1238"}, true, "2345 6789 1238", 85},
		{"ocr text", InputVerify{OCRText: "Government of India\n2345 6789 1238\nVID"}, true, "2345 6789 1238", 85},
		{"number wins", InputVerify{Number: "234567891234", OCRText: "2345 6789 1238"}, false, "2345 6789 1234", 30},
		{"no candidate", InputVerify{OCRText: "Government of India"}, false, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := tools.VerifyAadhaar(context.Background(), nil, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, out.IsValid)
			assert.Equal(t, tt.wantValue, out.Value)
			assert.Equal(t, tt.wantConf, out.Confidence)
		})
	}
}

func TestVerifyRequiresInput(t *testing.T) {
	_, _, err := newTools().VerifyPAN(context.Background(), nil, InputVerify{})
	assert.ErrorIs(t, err, errNoInput)

	_, _, err = newTools().PANHolderType(context.Background(), nil, InputHolderType{PAN: " "})
	assert.Error(t, err)
}

func TestVerifyPANAndHolderType(t *testing.T) {
	tools := newTools()

	_, out, err := tools.VerifyPAN(context.Background(), nil, InputVerify{OCRText: "INCOME TAX DEPARTMENT\nABCPE1234F"})
	require.NoError(t, err)
	assert.True(t, out.IsValid)
	assert.Equal(t, "Individual", out.HolderType)

	_, ht, err := tools.PANHolderType(context.Background(), nil, InputHolderType{PAN: "AAATB1234C"})
	require.NoError(t, err)
	assert.Equal(t, "Trust (AOP)", ht.HolderType)
	assert.True(t, ht.Valid)
}

func TestServerListsTools(t *testing.T) {
	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	_, err := New(newTools(), "test").Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	c := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := c.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	res, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"verify_aadhaar", "verify_pan", "pan_holder_type"}, names)

	call, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "pan_holder_type",
		Arguments: map[string]any{"pan": "ABCPE1234F"},
	})
	require.NoError(t, err)
	assert.False(t, call.IsError)
}
