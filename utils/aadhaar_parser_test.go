package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAadhaarDetails_CardFront(t *testing.T) {
	text := `Government of India
Ramesh Kumar Sharma
DOB: 15/08/1990
Male
2345 6789 1238`

	got := ParseAadhaarDetails(text)
	assert.Equal(t, "Ramesh Kumar Sharma", got.Name)
	assert.Equal(t, "15/08/1990", got.DOB)
	assert.Equal(t, "Male", got.Gender)
	assert.Empty(t, got.Address)
}

func TestParseAadhaarDetails_Female(t *testing.T) {
	text := "PRIYA SINGH\nYear of Birth: 1988\nFEMALE"

	got := ParseAadhaarDetails(text)
	assert.Equal(t, "Priya Singh", got.Name)
	assert.Equal(t, "1988", got.DOB)
	assert.Equal(t, "Female", got.Gender)
}

func TestParseAadhaarDetails_Address(t *testing.T) {
	text := `Address: S/O Suresh Kumar, 12 MG Road
Bengaluru, Karnataka 560001
2345 6789 1238
Aadhaar is proof of identity, not of citizenship`

	got := ParseAadhaarDetails(text)
	assert.Equal(t, "S/O Suresh Kumar, 12 MG Road, Bengaluru, Karnataka 560001", got.Address)
}

func TestParseAadhaarDetails_Empty(t *testing.T) {
	assert.True(t, ParseAadhaarDetails("").IsEmpty())
}
