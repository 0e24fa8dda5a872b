package utils

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generateAadhaar builds a Verhoeff-valid 12-digit number starting with 2-9
func generateAadhaar(t *testing.T, rng *rand.Rand) string {
	t.Helper()
	prefix := make([]byte, 11)
	prefix[0] = byte('2' + rng.Intn(8))
	for i := 1; i < len(prefix); i++ {
		prefix[i] = byte('0' + rng.Intn(10))
	}
	check, ok := VerhoeffCheckDigit(string(prefix))
	require.True(t, ok)
	return string(prefix) + string(check)
}

func TestValidateAadhaarChecksum_KnownNumbers(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"234567891238", true},
		{"626079518316", true},
		{"499118665246", true},
		{"987654321096", true},
		{"234567891234", false},
		{"123456789012", false},
		{"626079518317", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateAadhaarChecksum(tt.number))
		})
	}
}

func TestValidateAadhaarChecksum_RejectsNonDigits(t *testing.T) {
	assert.False(t, ValidateAadhaarChecksum(""))
	assert.False(t, ValidateAadhaarChecksum("2345 6789 1238"))
	assert.False(t, ValidateAadhaarChecksum("23456789123X"))
	assert.False(t, ValidateAadhaarChecksum("२३४५६७८९१२३८"))
}

func TestVerhoeffCheckDigit(t *testing.T) {
	d, ok := VerhoeffCheckDigit("23456789123")
	require.True(t, ok)
	assert.Equal(t, byte('8'), d)

	_, ok = VerhoeffCheckDigit("2345-678")
	assert.False(t, ok)
}

func TestValidateAadhaarChecksum_DetectsSingleDigitErrors(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 200; n++ {
		number := generateAadhaar(t, rng)
		require.True(t, ValidateAadhaarChecksum(number), number)

		for pos := 0; pos < len(number); pos++ {
			for d := byte('0'); d <= '9'; d++ {
				if d == number[pos] {
					continue
				}
				mutated := []byte(number)
				mutated[pos] = d
				assert.False(t, ValidateAadhaarChecksum(string(mutated)),
					"substitution at %d went undetected: %s -> %s", pos, number, mutated)
			}
		}
	}
}

func TestValidateAadhaarChecksum_DetectsAdjacentTranspositions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for n := 0; n < 200; n++ {
		number := generateAadhaar(t, rng)

		for pos := 0; pos+1 < len(number); pos++ {
			if number[pos] == number[pos+1] {
				continue
			}
			swapped := []byte(number)
			swapped[pos], swapped[pos+1] = swapped[pos+1], swapped[pos]
			assert.False(t, ValidateAadhaarChecksum(string(swapped)),
				"transposition at %d went undetected: %s -> %s", pos, number, swapped)
		}
	}
}
