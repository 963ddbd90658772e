package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"swiftkit/internal/bic"
	"swiftkit/internal/core"
	"swiftkit/internal/iban"
	"swiftkit/internal/mt103"
)

type Service struct {
	pain001 Pain001Encoder
	mt103   MT103Generator
	logger  core.Logger
	config  Config
}

func NewService(pain001Encoder Pain001Encoder, mt103Generator MT103Generator, logger core.Logger, config Config) Service {
	return Service{
		pain001: pain001Encoder,
		mt103:   mt103Generator,
		logger:  logger,
		config:  config,
	}
}

func (s Service) CheckBIC(ctx context.Context, raw string) bic.Result {
	res := bic.Check(raw)
	s.logger.InfoContext(ctx, "BIC checked", "input", res.Input, "valid", res.Valid)

	return res
}

func (s Service) CheckIBAN(ctx context.Context, raw string) iban.Result {
	res := iban.Validate(raw)
	s.logger.InfoContext(ctx, "IBAN checked", "iban", res.IBAN.String(), "valid", res.Valid)

	return res
}

// GenerateIBAN computes the check digits for countryCode and bban and returns
// the resulting IBAN once it passes validation.
func (s Service) GenerateIBAN(ctx context.Context, countryCode, bban string) (iban.IBAN, error) {
	countryCode = normalize(countryCode)
	bban = normalize(bban)

	generated := iban.Create(countryCode, bban)
	res := iban.Validate(generated.String())
	if !res.Valid {
		s.logger.WarnContext(ctx, "IBAN generation rejected", "country_code", countryCode, "error", res.Err)
		return iban.IBAN{}, fmt.Errorf("failed to generate IBAN: %w", res.Err)
	}

	s.logger.InfoContext(ctx, "IBAN generated", "iban", generated.String())

	return generated, nil
}

// ValidateBatch checks every input independently. An invalid identifier never
// aborts the batch.
func (s Service) ValidateBatch(ctx context.Context, kind string, inputs []string) (core.BatchReport, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))

	var check func(string) core.ValidationCheck
	switch kind {
	case core.IdentifierBIC:
		check = func(raw string) core.ValidationCheck {
			res := bic.Check(raw)
			return core.ValidationCheck{Input: raw, Valid: res.Valid, Message: res.Message()}
		}
	case core.IdentifierIBAN:
		check = func(raw string) core.ValidationCheck {
			res := iban.Validate(raw)
			return core.ValidationCheck{Input: raw, Valid: res.Valid, Message: res.Message()}
		}
	default:
		return core.BatchReport{}, fmt.Errorf("%w: %q", core.ErrUnsupportedIdentifier, kind)
	}

	report := core.BatchReport{
		Type:    kind,
		Results: make([]core.ValidationCheck, 0, len(inputs)),
	}
	for _, raw := range inputs {
		report.Add(check(raw))
	}

	s.logger.InfoContext(ctx, "Batch validated",
		"type", kind,
		"total", report.Total,
		"valid", report.ValidCount,
		"invalid", report.InvalidCount,
	)

	return report, nil
}

type Pain001Request struct {
	MessageID     string
	InitiatorName string
	InitiatorID   string
	Batches       []core.PaymentBatch
}

// GeneratePain001 encodes the batches as a single initiation message. A
// configured service level replaces the level of every batch; when none is
// configured each batch keeps its own. An empty initiator name falls back to
// the configured one.
func (s Service) GeneratePain001(ctx context.Context, req Pain001Request) ([]byte, error) {
	initiator := req.InitiatorName
	if initiator == "" {
		initiator = s.config.Initiator
	}

	batches := make([]core.PaymentBatch, len(req.Batches))
	copy(batches, req.Batches)
	if s.config.ServiceLevel != "" {
		for i := range batches {
			batches[i].ServiceLevel = s.config.ServiceLevel
		}
	}

	out, err := s.pain001.Encode(req.MessageID, initiator, batches, req.InitiatorID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to encode pain.001 message", "message_id", req.MessageID, "error", err)
		return nil, fmt.Errorf("failed to generate pain.001 message: %w", err)
	}

	s.logger.InfoContext(ctx, "pain.001 message generated", "message_id", req.MessageID, "batches", len(batches))

	return out, nil
}

// GenerateMT103 fills the header BICs from configuration, validates the
// message and renders it. Every violation is returned in a
// *core.ValidationError and nothing is generated.
func (s Service) GenerateMT103(ctx context.Context, msg mt103.Message) (string, error) {
	if msg.SenderBIC == "" {
		msg.SenderBIC = s.config.SenderBIC
	}
	if msg.ReceiverBIC == "" {
		msg.ReceiverBIC = s.config.ReceiverBIC
	}

	if violations := s.mt103.Validate(msg); len(violations) > 0 {
		s.logger.WarnContext(ctx, "MT103 message rejected", "reference", msg.SenderReference, "violations", len(violations))
		return "", &core.ValidationError{Violations: violations}
	}

	out := s.mt103.Generate(msg)
	s.logger.InfoContext(ctx, "MT103 message generated", "reference", msg.SenderReference)

	return out, nil
}

func normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}
