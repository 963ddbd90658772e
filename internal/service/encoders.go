package service

import (
	"swiftkit/internal/core"
	"swiftkit/internal/mt103"
)

//go:generate go tool go.uber.org/mock/mockgen -source=encoders.go -destination=encoders_mock.go -package=service

type Pain001Encoder interface {
	Encode(messageID, initiatorName string, batches []core.PaymentBatch, initiatorID string) ([]byte, error)
}

type MT103Generator interface {
	Validate(msg mt103.Message) []core.FieldConstraintError
	Generate(msg mt103.Message) string
}
