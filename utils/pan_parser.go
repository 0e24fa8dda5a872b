package utils

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Aashish23092/id-verification/dto"
)

var panDOB = regexp.MustCompile(`(0[1-9]|[12][0-9]|3[01])[/-](0[1-9]|1[0-2])[/-][0-9]{4}`)

// panBoilerplate marks card furniture lines that never hold a name
var panBoilerplate = []string{
	"INCOME", "GOVT", "TAX", "DEPARTMENT", "PERMANENT", "ACCOUNT", "SIGNATURE", "INDIA",
}

// ParsePANDetails pulls the holder name, father's name and date of birth out
// of PAN card OCR text. Labelled layouts ("Name" / "Father's Name" on the line
// above the value) are preferred; older cards print the two names as the
// first two plain lines after the header.
func ParsePANDetails(text string) dto.DocumentDetails {
	upper := strings.ToUpper(text)
	lines := panContentLines(upper)
	name, father := panNames(lines)

	return dto.DocumentDetails{
		Name:       name,
		FatherName: father,
		DOB:        panDOB.FindString(upper),
	}
}

func panContentLines(t string) []string {
	var out []string
	for _, l := range strings.Split(t, "\n") {
		l = strings.TrimSpace(l)
		if len(l) < 3 {
			continue
		}
		boiler := false
		for _, b := range panBoilerplate {
			if strings.Contains(l, b) {
				boiler = true
				break
			}
		}
		if !boiler {
			out = append(out, l)
		}
	}
	return out
}

// isNameLike accepts lines made of letters, spaces and dots only
func isNameLike(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	for _, c := range s {
		if !(unicode.IsLetter(c) || c == ' ' || c == '.') {
			return false
		}
	}
	return !IsPANFormat(stripSeparators(s))
}

// isNameLabel matches "NAME", "नाम / NAME" and "FATHER'S NAME" style labels
func isNameLabel(l string) bool {
	if !strings.Contains(l, "NAME") {
		return false
	}
	latin := strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r
		}
		return ' '
	}, l)
	return len(strings.Fields(latin)) <= 3
}

func panNames(lines []string) (string, string) {
	var name, father string

	for i := 0; i+1 < len(lines); i++ {
		l := lines[i]
		if !isNameLabel(l) {
			continue
		}
		candidate := lines[i+1]
		if !isNameLike(candidate) || isNameLabel(candidate) {
			continue
		}
		if strings.Contains(l, "FATHER") {
			if father == "" {
				father = candidate
			}
		} else if name == "" {
			name = candidate
		}
	}

	if name != "" || father != "" {
		return name, father
	}

	// unlabelled layout: holder name first, father's name second
	var plain []string
	for _, l := range lines {
		if isNameLike(l) && !isNameLabel(l) {
			plain = append(plain, l)
		}
	}
	if len(plain) > 0 {
		name = plain[0]
	}
	if len(plain) > 1 {
		father = plain[1]
	}
	return name, father
}
