package utils

import "strings"

// AadhaarKeywords are the terms whose presence on a scanned card raises
// confidence. "UID" and "MALE" also match inside "UIDAI" and "FEMALE";
// each keyword is counted once regardless.
var AadhaarKeywords = []string{
	"GOVERNMENT", "INDIA", "AADHAAR", "AADHAR", "UNIQUE", "IDENTIFICATION",
	"UIDAI", "UID", "DOB", "MALE", "FEMALE", "YEAR", "BIRTH", "VID",
	"आधार", "भारत सरकार",
}

// PANKeywords are the PAN card counterparts of AadhaarKeywords
var PANKeywords = []string{
	"INCOME TAX", "GOVT", "GOVERNMENT", "PERMANENT ACCOUNT NUMBER", "PAN",
	"आयकर", "भारत", "INDIA", "FATHER", "NAME", "DOB", "SIGNATURE",
}

// CountKeywords returns how many of keywords occur in text, case-insensitively
func CountKeywords(text string, keywords []string) int {
	upper := strings.ToUpper(text)
	n := 0
	for _, k := range keywords {
		if strings.Contains(upper, strings.ToUpper(k)) {
			n++
		}
	}
	return n
}
