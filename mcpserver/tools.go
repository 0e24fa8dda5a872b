// Package mcpserver exposes identifier verification as MCP tools.
package mcpserver

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Aashish23092/id-verification/dto"
)

// TextVerifier verifies a typed number or OCR text produced elsewhere
type TextVerifier interface {
	VerifyNumber(ctx context.Context, number string) dto.VerificationResult
	VerifyText(ctx context.Context, text string) dto.VerificationResult
}

// PANVerifier adds the holder-type lookup
type PANVerifier interface {
	TextVerifier
	HolderType(pan string) dto.HolderTypeResponse
}

var errNoInput = errors.New("one of number or ocr_text is required")

// MetadataVerifyAadhaar describes the verify_aadhaar tool.
var MetadataVerifyAadhaar = &mcp.Tool{
	Name: "verify_aadhaar",
	Description: "Verify an Aadhaar number. Pass either a typed 12-digit number or raw OCR text " +
		"from a card photo. Returns is_valid, the number formatted as DDDD DDDD DDDD, and a 0-100 " +
		"confidence. Typed valid numbers score 85; numbers failing the Verhoeff checksum score 30.",
}

// MetadataVerifyPAN describes the verify_pan tool.
var MetadataVerifyPAN = &mcp.Tool{
	Name: "verify_pan",
	Description: "Verify a PAN. Pass either a typed 10-character PAN or raw OCR text from a card photo. " +
		"Returns is_valid, the upper-case PAN, the holder type and a 0-100 confidence.",
}

// MetadataPANHolderType describes the pan_holder_type tool.
var MetadataPANHolderType = &mcp.Tool{
	Name:        "pan_holder_type",
	Description: "Look up the holder category (Individual, Company, Trust...) encoded in the 4th character of a PAN.",
}

// InputVerify is the input of verify_aadhaar and verify_pan.
type InputVerify struct {
	Number  string `json:"number,omitempty" jsonschema:"the identifier as typed by a person; spaces and hyphens are ignored"`
	OCRText string `json:"ocr_text,omitempty" jsonschema:"raw OCR text of a card; used when number is empty"`
}

// InputHolderType is the input of pan_holder_type.
type InputHolderType struct {
	PAN string `json:"pan" jsonschema:"the PAN to classify"`
}

// Tools holds the services the tool handlers call
type Tools struct {
	Aadhaar TextVerifier
	PAN     PANVerifier
}

func verifyInput(ctx context.Context, v TextVerifier, input InputVerify) (dto.VerificationResult, error) {
	switch {
	case strings.TrimSpace(input.Number) != "":
		return v.VerifyNumber(ctx, input.Number), nil
	case strings.TrimSpace(input.OCRText) != "":
		return v.VerifyText(ctx, input.OCRText), nil
	default:
		return dto.VerificationResult{}, errNoInput
	}
}

// VerifyAadhaar handles verify_aadhaar
func (t *Tools) VerifyAadhaar(ctx context.Context, _ *mcp.CallToolRequest, input InputVerify) (*mcp.CallToolResult, dto.VerificationResult, error) {
	res, err := verifyInput(ctx, t.Aadhaar, input)
	return nil, res, err
}

// VerifyPAN handles verify_pan
func (t *Tools) VerifyPAN(ctx context.Context, _ *mcp.CallToolRequest, input InputVerify) (*mcp.CallToolResult, dto.VerificationResult, error) {
	res, err := verifyInput(ctx, t.PAN, input)
	return nil, res, err
}

// PANHolderType handles pan_holder_type
func (t *Tools) PANHolderType(_ context.Context, _ *mcp.CallToolRequest, input InputHolderType) (*mcp.CallToolResult, dto.HolderTypeResponse, error) {
	if strings.TrimSpace(input.PAN) == "" {
		return nil, dto.HolderTypeResponse{}, errors.New("pan is required")
	}
	return nil, t.PAN.HolderType(input.PAN), nil
}
