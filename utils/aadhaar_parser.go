package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Aashish23092/id-verification/dto"
)

var (
	reLabelledDOB   = regexp.MustCompile(`(?i)(?:dob|date of birth|year of birth)\s*[:\-]?\s*([0-9]{2}[/-][0-9]{2}[/-][0-9]{4}|[0-9]{4})`)
	reAnyDate       = regexp.MustCompile(`\b([0-9]{2}[/-][0-9]{2}[/-][0-9]{4})\b`)
	reNonNameChars  = regexp.MustCompile(`[^A-Za-z\s]+`)
	reSpaces        = regexp.MustCompile(`\s+`)
	reAddressLabel  = regexp.MustCompile(`(?i)address\s*[:\-]?\s*(.+)`)
	reLeadingNoise  = regexp.MustCompile(`^[^A-Za-z0-9]+`)
	reCommaSpacing  = regexp.MustCompile(`\s*,\s*`)
	nonPersonTokens = []string{
		"government", "india", "authority", "unique", "identification",
		"aadhaar", "address", "pin", "code", "income", "tax", "department",
		"permanent", "account", "number", "signature", "father",
	}
	addressStopTokens = []string{
		"aadhaar is proof", "it should be used with verification", "authentication",
	}
	genericAddressTokens = []string{
		"aadhaar is proof", "date of birth", "it should be used",
		"authentication", "online", "offline xml", "unique and secure",
	}
)

// ParseAadhaarDetails pulls best-effort holder fields (name, DOB, gender,
// address) out of Aadhaar OCR text. The name is taken from the lines just
// above the DOB line, which is where UIDAI cards and letters print it.
func ParseAadhaarDetails(text string) dto.DocumentDetails {
	lines := normalizeLines(text)

	dob, dobIdx := findDOB(lines)
	return dto.DocumentDetails{
		Name:    nameAbove(lines, dobIdx),
		DOB:     dob,
		Gender:  genderNear(lines, dobIdx),
		Address: addressBlock(lines),
	}
}

// normalizeLines splits OCR text into trimmed, non-empty lines
func normalizeLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func findDOB(lines []string) (string, int) {
	for i, line := range lines {
		if m := reLabelledDOB.FindStringSubmatch(line); len(m) > 1 {
			return m[1], i
		}
	}
	for i, line := range lines {
		if m := reAnyDate.FindStringSubmatch(line); len(m) > 1 {
			return m[1], i
		}
	}
	return "", -1
}

// nameAbove looks up to 3 lines above the DOB line for a likely person name
func nameAbove(lines []string, dobIdx int) string {
	if dobIdx <= 0 || dobIdx >= len(lines) {
		return ""
	}
	for i := dobIdx - 1; i >= 0 && dobIdx-i <= 3; i-- {
		if name := cleanNameFromLine(lines[i]); isLikelyPersonName(name) {
			return name
		}
	}
	return ""
}

// cleanNameFromLine keeps letters and title-cases the first three words
func cleanNameFromLine(line string) string {
	line = reNonNameChars.ReplaceAllString(line, " ")
	parts := strings.Fields(reSpaces.ReplaceAllString(line, " "))
	if len(parts) > 3 {
		parts = parts[:3]
	}
	for i, p := range parts {
		parts[i] = titleWord(p)
	}
	return strings.Join(parts, " ")
}

func titleWord(w string) string {
	r := []rune(strings.ToLower(w))
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// isLikelyPersonName rejects card boilerplate such as "Government of India"
func isLikelyPersonName(name string) bool {
	words := strings.Fields(name)
	if len(words) < 2 || len(words) > 4 {
		return false
	}

	lower := strings.ToLower(name)
	for _, t := range nonPersonTokens {
		if strings.Contains(lower, t) {
			return false
		}
	}

	letters := 0
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters < 4 {
		return false
	}

	for _, w := range words {
		if len(w) < 2 {
			return false
		}
	}
	return true
}

func genderNear(lines []string, dobIdx int) string {
	start, end := 0, len(lines)
	if dobIdx >= 0 {
		start = dobIdx - 2
		if start < 0 {
			start = 0
		}
		if dobIdx+5 < end {
			end = dobIdx + 5
		}
	}

	for i := start; i < end; i++ {
		lower := strings.ToLower(lines[i])
		switch {
		case strings.Contains(lower, "female"), strings.Contains(lower, "महिला"):
			return "Female"
		case strings.Contains(lower, "male"), strings.Contains(lower, "पुरुष"):
			return "Male"
		case strings.Contains(lower, "transgender"):
			return "Transgender"
		}
	}
	return ""
}

// addressBlock collects up to six lines after an "Address" label (or a
// S/O, D/O, C/O, W/O line) and stops at the UIDAI disclaimer
func addressBlock(lines []string) string {
	start := -1
	for i, line := range lines {
		if strings.Contains(strings.ToLower(line), "address") {
			start = i
			break
		}
	}
	if start == -1 {
		for i, line := range lines {
			lower := strings.ToLower(line)
			if strings.Contains(lower, "s/o") || strings.Contains(lower, "d/o") ||
				strings.Contains(lower, "c/o") || strings.Contains(lower, "w/o") {
				start = i
				break
			}
		}
	}
	if start == -1 {
		return ""
	}

	var parts []string
	first := lines[start]
	if m := reAddressLabel.FindStringSubmatch(first); len(m) > 1 {
		if cl := cleanAddressLine(m[1]); cl != "" {
			parts = append(parts, cl)
		}
	} else if cl := cleanAddressLine(first); cl != "" {
		parts = append(parts, cl)
	}

scan:
	for i := start + 1; i < len(lines) && len(parts) < 6; i++ {
		lower := strings.ToLower(lines[i])
		for _, stop := range addressStopTokens {
			if strings.Contains(lower, stop) {
				break scan
			}
		}
		// the number line is not part of the address
		if _, ok := AadhaarPattern.matchLine(lines[i]); ok {
			break
		}
		if cl := cleanAddressLine(lines[i]); cl != "" {
			parts = append(parts, cl)
		}
	}

	seen := make(map[string]bool, len(parts))
	final := parts[:0]
	for _, p := range parts {
		if !seen[p] {
			seen[p] = true
			final = append(final, p)
		}
	}
	return strings.Join(final, ", ")
}

// cleanAddressLine trims leading OCR noise and drops generic card text
func cleanAddressLine(line string) string {
	line = strings.TrimSpace(reLeadingNoise.ReplaceAllString(line, ""))
	if line == "" {
		return ""
	}
	line = reSpaces.ReplaceAllString(line, " ")
	line = reCommaSpacing.ReplaceAllString(line, ", ")
	line = strings.TrimRight(line, ", ")

	lower := strings.ToLower(line)
	for _, t := range genericAddressTokens {
		if strings.Contains(lower, t) {
			return ""
		}
	}

	alnum := 0
	for _, r := range line {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	if alnum < 4 {
		return ""
	}
	return line
}
