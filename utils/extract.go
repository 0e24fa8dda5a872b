package utils

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/id-verification/dto"
)

// IdentifierPattern describes how an identifier looks inside OCR text.
// ExtractIdentifier is shared by every identifier and only this value varies.
type IdentifierPattern struct {
	Kind     dto.IdentifierKind
	Length   int
	Keywords []string

	// accept tests a separator-free line of exactly Length characters
	accept func(clean string) bool
	// search finds the identifier inside a raw line, whitespace allowed
	search *regexp.Regexp
	// upper folds the line to upper case before matching
	upper bool
}

var (
	// AadhaarPattern matches 12 digits led by 2-9, e.g. "2345 6789 1234"
	AadhaarPattern = IdentifierPattern{
		Kind:     dto.IdentifierAadhaar,
		Length:   12,
		Keywords: AadhaarKeywords,
		accept:   IsAadhaarFormat,
		search:   regexp.MustCompile(`[2-9][0-9]{3}\s*[0-9]{4}\s*[0-9]{4}`),
	}

	// PANPattern matches five letters, four digits and a letter
	PANPattern = IdentifierPattern{
		Kind:     dto.IdentifierPAN,
		Length:   10,
		Keywords: PANKeywords,
		accept:   IsPANFormat,
		search:   regexp.MustCompile(`[A-Z]{5}\s*[0-9]{4}\s*[A-Z]`),
		upper:    true,
	}
)

// Candidate is a possible identifier and the 0-based line it came from
type Candidate struct {
	Value string
	Line  int
}

// Extraction is what ExtractIdentifier found in a block of text
type Extraction struct {
	Candidate      Candidate
	Found          bool
	KeywordMatches int
}

// ExtractIdentifier scans text line by line and returns the first line that
// either reduces to an exact-length identifier once separators are removed,
// or contains the identifier with embedded whitespace. The first line in
// document order wins; later lines are never compared against it.
// Keyword matches are counted over the whole text.
func ExtractIdentifier(text string, p IdentifierPattern) Extraction {
	ex := Extraction{KeywordMatches: CountKeywords(text, p.Keywords)}

	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for i, line := range lines {
		if value, ok := p.matchLine(line); ok {
			ex.Candidate = Candidate{Value: value, Line: i}
			ex.Found = true
			break
		}
	}
	return ex
}

func (p IdentifierPattern) matchLine(line string) (string, bool) {
	if p.upper {
		line = strings.ToUpper(line)
	}

	clean := stripSeparators(line)
	if len(clean) == p.Length && p.accept(clean) {
		return clean, true
	}

	if m := p.search.FindString(line); m != "" {
		return stripSeparators(m), true
	}
	return "", false
}

// IsAadhaarFormat reports whether s is 12 ASCII digits not starting with 0 or 1
func IsAadhaarFormat(s string) bool {
	return len(s) == 12 && isASCIIDigits(s) && s[0] >= '2'
}
