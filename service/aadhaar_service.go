package service

import (
	"context"
	"log/slog"

	"github.com/Aashish23092/id-verification/dto"
	"github.com/Aashish23092/id-verification/metrics"
	"github.com/Aashish23092/id-verification/utils"
)

type AadhaarService struct {
	reader  TextReader
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewAadhaarService(reader TextReader, logger *slog.Logger, m *metrics.Metrics) *AadhaarService {
	return &AadhaarService{
		reader:  reader,
		logger:  logger,
		metrics: m,
	}
}

// VerifyNumber checks a typed Aadhaar number
func (s *AadhaarService) VerifyNumber(ctx context.Context, number string) dto.VerificationResult {
	res := utils.EvaluateAadhaarNumber(number)
	s.record(ctx, res)
	return res
}

// VerifyText checks OCR text that was produced elsewhere
func (s *AadhaarService) VerifyText(ctx context.Context, text string) dto.VerificationResult {
	res := s.evaluate(text)
	s.record(ctx, res)
	return res
}

// VerifyDocuments OCRs the uploaded card images or PDFs and verifies the
// first Aadhaar number found. The error is non-nil only when the documents
// could not be read at all, e.g. a wrong PDF password.
func (s *AadhaarService) VerifyDocuments(ctx context.Context, docs []dto.Document) (dto.VerificationResult, error) {
	text, res, ok, err := readDocuments(ctx, s.reader, dto.IdentifierAadhaar, docs)
	if err != nil {
		return res, err
	}
	if ok {
		res = s.evaluate(text)
		res.Source = dto.SourceDocument
	}

	s.record(ctx, res, "documents", len(docs))
	return res, nil
}

// evaluate attaches holder details only to valid results
func (s *AadhaarService) evaluate(text string) dto.VerificationResult {
	res := utils.EvaluateAadhaarText(text)
	if res.IsValid {
		if d := utils.ParseAadhaarDetails(text); !d.IsEmpty() {
			res.Details = &d
		}
	}
	return res
}

func (s *AadhaarService) record(ctx context.Context, res dto.VerificationResult, attrs ...any) {
	record(ctx, s.logger, s.metrics, res, append(attrs, "aadhaar", utils.MaskAadhaar(res.Value))...)
}
