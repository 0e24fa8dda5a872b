package service

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrPDFPassword is returned when an encrypted PDF cannot be opened with the
// supplied password
var ErrPDFPassword = errors.New("pdf is encrypted and the password is missing or wrong")

//go:generate mockgen -source=pdf_processor.go -destination=mocks/mock_pdf_processor.go -package=mocks

type PDFProcessor interface {
	// ExtractText returns the embedded text layer, page by page
	ExtractText(pdfData []byte, password string) (string, error)
	// ExtractImages returns the encoded PNG/JPEG images embedded in the PDF
	ExtractImages(pdfData []byte, password string) ([][]byte, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

func (p *pdfProcessor) ExtractText(pdfData []byte, password string) (string, error) {
	// ledongthuc/pdf handles only the older RC4/AES-128 schemes, so
	// password-protected files (e-Aadhaar) are decrypted with pdfcpu first
	if password != "" {
		decrypted, err := decryptPDF(pdfData, password)
		if err != nil {
			return "", err
		}
		pdfData = decrypted
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", pdfError("failed to open pdf", err)
	}

	var textBuilder bytes.Buffer
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}
	return textBuilder.String(), nil
}

// decryptPDF removes the password; an unencrypted file is returned as is
func decryptPDF(pdfData []byte, password string) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.UserPW = password
	conf.OwnerPW = password

	var out bytes.Buffer
	if err := api.Decrypt(bytes.NewReader(pdfData), &out, conf); err != nil {
		if strings.Contains(err.Error(), "not encrypted") {
			return pdfData, nil
		}
		return nil, pdfError("failed to decrypt pdf", err)
	}
	return out.Bytes(), nil
}

// pdfError wraps err with ErrPDFPassword when either PDF library rejected the
// (possibly empty) password
func pdfError(msg string, err error) error {
	if errors.Is(err, pdf.ErrInvalidPassword) || errors.Is(err, pdfcpu.ErrWrongPassword) {
		return fmt.Errorf("%w: %w", ErrPDFPassword, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func (p *pdfProcessor) ExtractImages(pdfData []byte, password string) ([][]byte, error) {
	tempDir, err := os.MkdirTemp("", "pdf_images")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	inFile := filepath.Join(tempDir, "doc.pdf")
	if err := os.WriteFile(inFile, pdfData, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write pdf data: %w", err)
	}

	outDir := filepath.Join(tempDir, "images")
	if err := os.Mkdir(outDir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	// nil selects every page
	if err := api.ExtractImagesFile(inFile, outDir, nil, conf); err != nil {
		return nil, pdfError("failed to extract images", err)
	}

	files, err := os.ReadDir(outDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image dir: %w", err)
	}
	var names []string
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(file.Name())) {
		case ".png", ".jpg", ".jpeg":
			names = append(names, file.Name())
		}
	}
	sortByPage(names, "doc")

	var images [][]byte
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			continue
		}
		images = append(images, data)
	}

	return images, nil
}

// sortByPage orders extracted image files by the page number pdfcpu puts in
// their names (<base>_<page>_<image>.<ext>), then by name within a page
func sortByPage(names []string, base string) {
	slices.SortStableFunc(names, func(a, b string) int {
		if c := cmp.Compare(imagePage(a, base), imagePage(b, base)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
}

func imagePage(name, base string) int {
	num, _, _ := strings.Cut(strings.TrimPrefix(name, base+"_"), "_")
	n, err := strconv.Atoi(num)
	if err != nil {
		return math.MaxInt
	}
	return n
}
