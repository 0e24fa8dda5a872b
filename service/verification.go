package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Aashish23092/id-verification/client"
	"github.com/Aashish23092/id-verification/dto"
	"github.com/Aashish23092/id-verification/metrics"
)

// TextReader is the document side of verification. *DocumentReader is the
// production implementation.
type TextReader interface {
	ReadText(ctx context.Context, docs []dto.Document) (string, error)
}

// readDocuments maps reader failures onto results. ok is false when res is
// final (service unavailable); err is set for documents that could not be
// read at all.
func readDocuments(ctx context.Context, reader TextReader, kind dto.IdentifierKind, docs []dto.Document) (text string, res dto.VerificationResult, ok bool, err error) {
	res = dto.VerificationResult{Identifier: kind, Source: dto.SourceDocument}

	text, err = reader.ReadText(ctx, docs)
	switch {
	case err == nil:
		return text, res, true, nil
	case errors.Is(err, client.ErrNoText):
		return "", res, true, nil
	case errors.Is(err, client.ErrServiceUnavailable):
		res.Outcome = dto.OutcomeServiceUnavailable
		res.Message = "ocr service unavailable"
		return "", res, false, nil
	default:
		return "", res, false, err
	}
}

func record(ctx context.Context, logger *slog.Logger, m *metrics.Metrics, res dto.VerificationResult, attrs ...any) {
	m.ObserveVerification(string(res.Identifier), string(res.Source), string(res.Outcome), res.Confidence)

	attrs = append(attrs,
		"identifier", res.Identifier,
		"source", res.Source,
		"outcome", res.Outcome,
		"confidence", res.Confidence,
		"keyword_matches", res.KeywordMatches,
	)
	level := slog.LevelInfo
	if res.Outcome == dto.OutcomeServiceUnavailable {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "identifier verified", attrs...)
}
