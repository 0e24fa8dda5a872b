package utils

import "regexp"

var panFormat = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// panHolderTypes maps the 4th PAN character to the category of holder
var panHolderTypes = map[byte]string{
	'P': "Individual",
	'C': "Company",
	'H': "Hindu Undivided Family (HUF)",
	'F': "Firm",
	'A': "Association of Persons (AOP)",
	'T': "Trust (AOP)",
	'B': "Body of Individuals (BOI)",
	'L': "Local Authority",
	'J': "Artificial Juridical Person",
	'G': "Government",
}

// IsPANFormat reports whether pan matches [A-Z]{5}[0-9]{4}[A-Z]
func IsPANFormat(pan string) bool {
	return panFormat.MatchString(pan)
}

// ValidatePANStructure checks the grammar plus the holder-type code at index 3.
// PAN carries no check digit.
func ValidatePANStructure(pan string) bool {
	if !IsPANFormat(pan) {
		return false
	}
	_, ok := panHolderTypes[pan[3]]
	return ok
}

// PANHolderType returns the holder category encoded in the 4th character.
// Unknown codes and short input yield ("Unknown", false).
func PANHolderType(pan string) (string, bool) {
	if len(pan) < 4 {
		return "Unknown", false
	}
	t, ok := panHolderTypes[pan[3]]
	if !ok {
		return "Unknown", false
	}
	return t, true
}
