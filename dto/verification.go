package dto

// IdentifierKind names the government identifier being verified
type IdentifierKind string

const (
	IdentifierAadhaar IdentifierKind = "aadhaar"
	IdentifierPAN     IdentifierKind = "pan"
)

// Outcome is the reason attached to a verification result
type Outcome string

const (
	OutcomeValid              Outcome = "valid"
	OutcomeFormatInvalid      Outcome = "format_invalid"
	OutcomeChecksumFailed     Outcome = "checksum_failed"
	OutcomeStructureInvalid   Outcome = "structure_invalid"
	OutcomeNoCandidateFound   Outcome = "no_candidate_found"
	OutcomeServiceUnavailable Outcome = "service_unavailable"
)

// OutcomeExtractionFailed is reported when no candidate line was found in the OCR text.
const OutcomeExtractionFailed = OutcomeNoCandidateFound

// Source tells whether a result came from a typed number or from a document
type Source string

const (
	SourceNumber   Source = "number"
	SourceDocument Source = "document"
	SourceText     Source = "text"
)

// VerificationResult is the outcome of verifying one identifier.
//
// Value is empty unless the identifier is valid or failed only its
// checksum/structure rule, in which case it holds the canonical form.
type VerificationResult struct {
	IsValid        bool             `json:"is_valid"`
	Value          string           `json:"value"`
	Confidence     int              `json:"confidence"`
	Outcome        Outcome          `json:"outcome"`
	Identifier     IdentifierKind   `json:"identifier"`
	Source         Source           `json:"source"`
	KeywordMatches int              `json:"keyword_matches"`
	HolderType     string           `json:"holder_type,omitempty"`
	Message        string           `json:"message,omitempty"`
	Details        *DocumentDetails `json:"details,omitempty"`
}

// Tuple returns the (is_valid, value, confidence) triple callers of the
// original utility expect.
func (r VerificationResult) Tuple() (bool, string, int) {
	return r.IsValid, r.Value, r.Confidence
}

// DocumentDetails holds best-effort holder fields parsed from OCR text
type DocumentDetails struct {
	Name       string `json:"name,omitempty"`
	FatherName string `json:"father_name,omitempty"`
	DOB        string `json:"dob,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Address    string `json:"address,omitempty"`
}

// IsEmpty reports whether no field was parsed
func (d DocumentDetails) IsEmpty() bool {
	return d == DocumentDetails{}
}

// HolderTypeResponse is returned by the PAN holder-type lookup
type HolderTypeResponse struct {
	PAN        string `json:"pan"`
	HolderType string `json:"holder_type"`
	Valid      bool   `json:"valid"`
}
