package utils

import (
	"strings"

	"github.com/Aashish23092/id-verification/dto"
)

var typedSeparators = strings.NewReplacer(" ", "", "-", "")

// EvaluateAadhaarNumber verifies an Aadhaar number typed in by a user.
// Spaces and hyphens are ignored.
func EvaluateAadhaarNumber(number string) dto.VerificationResult {
	res := dto.VerificationResult{Identifier: dto.IdentifierAadhaar, Source: dto.SourceNumber}

	clean := typedSeparators.Replace(strings.TrimSpace(number))
	if !IsAadhaarFormat(clean) {
		res.Outcome = dto.OutcomeFormatInvalid
		res.Message = "aadhaar number must be 12 digits starting with 2-9"
		return res
	}

	res.Value = FormatAadhaar(clean)
	if !ValidateAadhaarChecksum(clean) {
		res.Outcome = dto.OutcomeChecksumFailed
		res.Confidence = FailedCheckConfidence
		res.Message = "verhoeff checksum failed"
		return res
	}

	res.IsValid = true
	res.Outcome = dto.OutcomeValid
	res.Confidence = TypedNumberConfidence
	return res
}

// EvaluateAadhaarText locates and verifies an Aadhaar number in OCR text
func EvaluateAadhaarText(text string) dto.VerificationResult {
	res := dto.VerificationResult{Identifier: dto.IdentifierAadhaar, Source: dto.SourceText}
	if strings.TrimSpace(text) == "" {
		res.Outcome = dto.OutcomeNoCandidateFound
		res.Message = "no text found"
		return res
	}

	ex := ExtractIdentifier(text, AadhaarPattern)
	res.KeywordMatches = ex.KeywordMatches
	if !ex.Found {
		res.Outcome = dto.OutcomeNoCandidateFound
		res.Message = "no aadhaar number pattern found"
		return res
	}

	passed := ValidateAadhaarChecksum(ex.Candidate.Value)
	res.Value = FormatAadhaar(ex.Candidate.Value)
	res.Confidence = Score(true, passed, ex.KeywordMatches)
	if !passed {
		res.Outcome = dto.OutcomeChecksumFailed
		res.Message = "verhoeff checksum failed"
		return res
	}

	res.IsValid = true
	res.Outcome = dto.OutcomeValid
	return res
}

// EvaluatePANNumber verifies a PAN typed in by a user. Case, spaces and
// hyphens are ignored.
func EvaluatePANNumber(number string) dto.VerificationResult {
	res := dto.VerificationResult{Identifier: dto.IdentifierPAN, Source: dto.SourceNumber}

	clean := strings.ToUpper(typedSeparators.Replace(strings.TrimSpace(number)))
	if !IsPANFormat(clean) {
		res.Outcome = dto.OutcomeFormatInvalid
		res.Message = "pan must match AAAAA9999A"
		return res
	}

	res.Value = clean
	if !ValidatePANStructure(clean) {
		res.Outcome = dto.OutcomeStructureInvalid
		res.Confidence = FailedCheckConfidence
		res.Message = "unknown holder type code " + string(clean[3])
		return res
	}

	res.HolderType, _ = PANHolderType(clean)
	res.IsValid = true
	res.Outcome = dto.OutcomeValid
	res.Confidence = TypedNumberConfidence
	return res
}

// EvaluatePANText locates and verifies a PAN in OCR text
func EvaluatePANText(text string) dto.VerificationResult {
	res := dto.VerificationResult{Identifier: dto.IdentifierPAN, Source: dto.SourceText}
	if strings.TrimSpace(text) == "" {
		res.Outcome = dto.OutcomeNoCandidateFound
		res.Message = "no text found"
		return res
	}

	ex := ExtractIdentifier(text, PANPattern)
	res.KeywordMatches = ex.KeywordMatches
	if !ex.Found {
		res.Outcome = dto.OutcomeNoCandidateFound
		res.Message = "no pan pattern found"
		return res
	}

	pan := ex.Candidate.Value
	passed := ValidatePANStructure(pan)
	res.Value = pan
	res.Confidence = Score(true, passed, ex.KeywordMatches)
	if !passed {
		res.Outcome = dto.OutcomeStructureInvalid
		res.Message = "unknown holder type code " + string(pan[3])
		return res
	}

	res.HolderType, _ = PANHolderType(pan)
	res.IsValid = true
	res.Outcome = dto.OutcomeValid
	return res
}
