package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/id-verification/dto"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// keep tests off the network: QR decoding is the only local provider
	t.Setenv("IDVERIFY_OCR_PROVIDERS", "qr")
	t.Setenv("IDVERIFY_LOG_LEVEL", "error")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestAadhaarCommand_Number(t *testing.T) {
	out, err := run(t, "aadhaar", "2345-6789-1238")
	require.NoError(t, err)

	assert.Contains(t, out, "Status:     VALID")
	assert.Contains(t, out, "Value:      2345 6789 1238")
	assert.Contains(t, out, "Confidence: 85")
}

func TestAadhaarCommand_JSON(t *testing.T) {
	out, err := run(t, "aadhaar", "234567891234", "--json")
	require.NoError(t, err)

	var res dto.VerificationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.IsValid)
	assert.Equal(t, "2345 6789 1234", res.Value)
	assert.Equal(t, 30, res.Confidence)
	assert.Equal(t, dto.OutcomeChecksumFailed, res.Outcome)
}

func TestPANCommand_TextFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ocr.txt")
	require.NoError(t, os.WriteFile(path, []byte("INCOME TAX DEPARTMENT\nGOVT. OF INDIA\nABCPE1234F\n"), 0o600))

	out, err := run(t, "pan", "--text-file", path, "--json")
	require.NoError(t, err)

	var res dto.VerificationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.IsValid)
	assert.Equal(t, "ABCPE1234F", res.Value)
	assert.Equal(t, dto.SourceText, res.Source)
}

func TestVerifyCommand_NeedsExactlyOneInput(t *testing.T) {
	_, err := run(t, "pan")
	assert.ErrorContains(t, err, "exactly one of")

	_, err = run(t, "pan", "ABCPE1234F", "--text-file", "x.txt")
	assert.ErrorContains(t, err, "exactly one of")
}

func TestVerifyCommand_RejectsUnsupportedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	require.NoError(t, os.WriteFile(path, []byte("not really a png"), 0o600))

	_, err := run(t, "aadhaar", "--image", path)
	assert.ErrorIs(t, err, dto.ErrUnsupportedFileType)
}

func TestHolderTypeCommand(t *testing.T) {
	out, err := run(t, "holder-type", "AAACB1234C")
	require.NoError(t, err)
	assert.Contains(t, out, "PAN:        AAACB1234C")
	assert.Contains(t, out, "Holder:     Company")
}
