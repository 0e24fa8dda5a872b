package dto

import (
	"encoding/xml"
	"strings"
)

// AadhaarQRData represents the XML payload of the legacy (pre-2019) Aadhaar
// QR code printed on letters and cards
type AadhaarQRData struct {
	XMLName     xml.Name `xml:"PrintLetterBarcodeData"`
	UID         string   `xml:"uid,attr"`
	Name        string   `xml:"name,attr"`
	Gender      string   `xml:"gender,attr"`
	YearOfBirth string   `xml:"yob,attr"`
	DateOfBirth string   `xml:"dob,attr"`
	CO          string   `xml:"co,attr"` // Care of
	House       string   `xml:"house,attr"`
	Street      string   `xml:"street,attr"`
	Landmark    string   `xml:"lm,attr"`
	Locality    string   `xml:"loc,attr"`
	VTC         string   `xml:"vtc,attr"` // Village/Town/City
	PO          string   `xml:"po,attr"`  // Post Office
	District    string   `xml:"dist,attr"`
	SubDistrict string   `xml:"subdist,attr"`
	State       string   `xml:"state,attr"`
	PC          string   `xml:"pc,attr"` // Pin Code
}

// GetFullAddress joins the non-empty address attributes
func (q *AadhaarQRData) GetFullAddress() string {
	parts := []string{}
	add := func(prefix, v string) {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, prefix+v)
		}
	}

	add("C/O ", q.CO)
	add("", q.House)
	add("", q.Street)
	add("", q.Landmark)
	add("", q.Locality)
	add("", q.VTC)
	add("PO ", q.PO)
	add("", q.SubDistrict)
	add("", q.District)
	add("", q.State)
	add("", q.PC)

	return strings.Join(parts, ", ")
}

// GetDOB returns the date of birth, falling back to the year of birth
func (q *AadhaarQRData) GetDOB() string {
	if q.DateOfBirth != "" {
		return q.DateOfBirth
	}
	return q.YearOfBirth
}

// GetGender expands the single-letter gender code used in the QR payload
func (q *AadhaarQRData) GetGender() string {
	switch strings.ToUpper(strings.TrimSpace(q.Gender)) {
	case "M", "MALE":
		return "MALE"
	case "F", "FEMALE":
		return "FEMALE"
	case "T", "TRANSGENDER":
		return "TRANSGENDER"
	}
	return ""
}

// TextLines renders the QR payload the way a card face reads, one field per
// line, so it can be fed to the same extractor as OCR output
func (q *AadhaarQRData) TextLines() []string {
	var lines []string
	if q.Name != "" {
		lines = append(lines, q.Name)
	}
	if dob := q.GetDOB(); dob != "" {
		lines = append(lines, "DOB: "+dob)
	}
	if g := q.GetGender(); g != "" {
		lines = append(lines, g)
	}
	if q.UID != "" {
		lines = append(lines, q.UID)
	}
	if addr := q.GetFullAddress(); addr != "" {
		lines = append(lines, "Address: "+addr)
	}
	return lines
}
