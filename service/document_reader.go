package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"

	"github.com/Aashish23092/id-verification/client"
	"github.com/Aashish23092/id-verification/dto"
)

const (
	// minEmbeddedTextChars is the non-space length above which a PDF's own
	// text layer is trusted over OCR of its images
	minEmbeddedTextChars = 20
	maxConcurrentDocs    = 4
)

// DocumentReader turns uploaded documents into one block of text
type DocumentReader struct {
	detector client.TextDetector
	pdf      PDFProcessor
	logger   *slog.Logger
}

func NewDocumentReader(detector client.TextDetector, pdf PDFProcessor, logger *slog.Logger) *DocumentReader {
	return &DocumentReader{
		detector: detector,
		pdf:      pdf,
		logger:   logger,
	}
}

// ReadText reads every document concurrently and joins the texts in input
// order. Per-document failures are logged and skipped. When nothing produced
// text the result is ErrNoText if any document was read cleanly, otherwise
// the joined document errors.
func (r *DocumentReader) ReadText(ctx context.Context, docs []dto.Document) (string, error) {
	texts := make([]string, len(docs))
	errs := make([]error, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDocs)

	for i, doc := range docs {
		g.Go(func() error {
			text, err := r.readOne(gctx, doc)
			if err != nil {
				// provider deadlines are per document; only the caller's
				// context aborts the whole read
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				r.logger.WarnContext(gctx, "document read failed", "file", doc.Filename, "error", err)
				errs[i] = fmt.Errorf("%s: %w", doc.Filename, err)
				return nil
			}
			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	var parts []string
	clean := false
	for i := range docs {
		if strings.TrimSpace(texts[i]) != "" {
			parts = append(parts, strings.TrimSpace(texts[i]))
		}
		if errs[i] == nil || errors.Is(errs[i], client.ErrNoText) {
			clean = true
		}
	}

	if len(parts) > 0 {
		return strings.Join(parts, "\n"), nil
	}
	if clean {
		return "", client.ErrNoText
	}
	return "", errors.Join(errs...)
}

func (r *DocumentReader) readOne(ctx context.Context, doc dto.Document) (string, error) {
	if !doc.IsPDF() {
		return r.detector.DetectText(ctx, doc.Data)
	}

	text, textErr := r.pdf.ExtractText(doc.Data, doc.Password)
	if textErr == nil && nonSpaceLen(text) >= minEmbeddedTextChars {
		r.logger.DebugContext(ctx, "using embedded pdf text", "file", doc.Filename, "chars", len(text))
		return text, nil
	}
	if errors.Is(textErr, ErrPDFPassword) {
		return "", textErr
	}
	// a short text layer is still better than nothing when OCR finds no text
	if textErr != nil || nonSpaceLen(text) == 0 {
		text = ""
	}

	ocrText, err := r.ocrImages(ctx, doc)
	switch {
	case err == nil:
		return ocrText, nil
	case ctx.Err() != nil:
		return "", ctx.Err()
	case errors.Is(err, ErrPDFPassword):
		return "", err
	case text != "":
		r.logger.DebugContext(ctx, "using short embedded pdf text", "file", doc.Filename, "ocr_error", err)
		return text, nil
	case textErr != nil && errors.Is(err, client.ErrNoText):
		return "", textErr
	case textErr != nil:
		return "", errors.Join(textErr, err)
	default:
		return "", err
	}
}

// ocrImages runs the detector over every image embedded in a PDF and joins
// the page texts in page order
func (r *DocumentReader) ocrImages(ctx context.Context, doc dto.Document) (string, error) {
	images, err := r.pdf.ExtractImages(doc.Data, doc.Password)
	if err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", client.ErrNoText
	}

	r.logger.DebugContext(ctx, "ocr of pdf images", "file", doc.Filename, "images", len(images))

	var (
		pages   []string
		lastErr error
	)
	for _, img := range images {
		pageText, err := r.detector.DetectText(ctx, img)
		switch {
		case err == nil:
			pages = append(pages, pageText)
		case errors.Is(err, client.ErrNoText):
		case ctx.Err() != nil:
			return "", ctx.Err()
		default:
			lastErr = err
		}
	}

	if len(pages) > 0 {
		return strings.Join(pages, "\n"), nil
	}
	if lastErr != nil {
		return "", lastErr
	}
	return "", client.ErrNoText
}

func nonSpaceLen(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}
