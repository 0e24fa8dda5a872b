package service

import (
	"context"
	"log/slog"

	"github.com/Aashish23092/id-verification/dto"
	"github.com/Aashish23092/id-verification/metrics"
	"github.com/Aashish23092/id-verification/utils"
)

type PANService struct {
	reader  TextReader
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewPANService(reader TextReader, logger *slog.Logger, m *metrics.Metrics) *PANService {
	return &PANService{
		reader:  reader,
		logger:  logger,
		metrics: m,
	}
}

func (s *PANService) VerifyNumber(ctx context.Context, number string) dto.VerificationResult {
	res := utils.EvaluatePANNumber(number)
	s.record(ctx, res)
	return res
}

func (s *PANService) VerifyText(ctx context.Context, text string) dto.VerificationResult {
	res := s.evaluate(text)
	s.record(ctx, res)
	return res
}

func (s *PANService) VerifyDocuments(ctx context.Context, docs []dto.Document) (dto.VerificationResult, error) {
	text, res, ok, err := readDocuments(ctx, s.reader, dto.IdentifierPAN, docs)
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

// HolderType looks up the holder category encoded in a PAN's 4th character
func (s *PANService) HolderType(pan string) dto.HolderTypeResponse {
	clean := utils.NormalizePAN(pan)
	holderType, _ := utils.PANHolderType(clean)
	return dto.HolderTypeResponse{
		PAN:        clean,
		HolderType: holderType,
		Valid:      utils.ValidatePANStructure(clean),
	}
}

func (s *PANService) evaluate(text string) dto.VerificationResult {
	res := utils.EvaluatePANText(text)
	if res.IsValid {
		if d := utils.ParsePANDetails(text); !d.IsEmpty() {
			res.Details = &d
		}
	}
	return res
}

func (s *PANService) record(ctx context.Context, res dto.VerificationResult, attrs ...any) {
	record(ctx, s.logger, s.metrics, res, append(attrs, "holder_type", res.HolderType)...)
}
