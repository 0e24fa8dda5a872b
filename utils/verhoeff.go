package utils

// Verhoeff tables. verhoeffD is the multiplication table of the dihedral
// group D5, verhoeffP the position permutations (row i applies to the i-th
// digit counted from the right, modulo 8) and verhoeffInv the inverses used
// when generating a check digit.
var (
	verhoeffD = [10][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
		{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
		{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
		{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
		{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
		{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
		{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
		{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}

	verhoeffP = [8][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
		{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
		{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
		{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
		{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
		{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
		{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
	}

	verhoeffInv = [10]int{0, 4, 3, 2, 1, 5, 6, 7, 8, 9}
)

// ValidateAadhaarChecksum reports whether the digit string satisfies the
// Verhoeff relation. Callers are expected to check the Aadhaar format first
// (see IsAadhaarFormat); any non-digit input is simply invalid.
func ValidateAadhaarChecksum(number string) bool {
	if number == "" {
		return false
	}

	c := 0
	for i := 0; i < len(number); i++ {
		ch := number[len(number)-1-i]
		if ch < '0' || ch > '9' {
			return false
		}
		c = verhoeffD[c][verhoeffP[i%8][ch-'0']]
	}
	return c == 0
}

// VerhoeffCheckDigit returns the digit that, appended to prefix, makes the
// whole string Verhoeff-valid. ok is false when prefix holds a non-digit.
func VerhoeffCheckDigit(prefix string) (digit byte, ok bool) {
	c := 0
	for i := 0; i < len(prefix); i++ {
		ch := prefix[len(prefix)-1-i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		// position 0 is reserved for the check digit itself
		c = verhoeffD[c][verhoeffP[(i+1)%8][ch-'0']]
	}
	return byte('0' + verhoeffInv[c]), true
}
