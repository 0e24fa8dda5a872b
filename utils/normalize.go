package utils

import (
	"strings"
	"unicode"
)

// stripSeparators drops whitespace, punctuation and symbol runes, keeping
// letters and digits. OCR lines such as "2345-6789 1234." collapse to their
// alphanumeric core.
func stripSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isASCIIDigits reports whether s is non-empty and made only of 0-9
func isASCIIDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatAadhaar groups a 12-digit string as "DDDD DDDD DDDD". Anything else
// is returned unchanged.
func FormatAadhaar(digits string) string {
	if len(digits) != 12 || !isASCIIDigits(digits) {
		return digits
	}
	return digits[0:4] + " " + digits[4:8] + " " + digits[8:12]
}

// NormalizeAadhaar strips separators and returns the display form when the
// remaining digits are exactly twelve. It is idempotent.
func NormalizeAadhaar(s string) string {
	return FormatAadhaar(stripSeparators(s))
}

// NormalizePAN upper-cases and strips separators
func NormalizePAN(s string) string {
	return strings.ToUpper(stripSeparators(strings.TrimSpace(s)))
}

// MaskAadhaar hides all but the last four digits, for logs
func MaskAadhaar(s string) string {
	digits := stripSeparators(s)
	if len(digits) <= 4 {
		return digits
	}
	return strings.Repeat("X", len(digits)-4) + digits[len(digits)-4:]
}
