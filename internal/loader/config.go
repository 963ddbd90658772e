// Package loader reads payment configurations and identifier lists from
// files and turns them into domain values.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Amount accepts both JSON numbers and strings, and YAML scalars.
type Amount struct {
	decimal.Decimal
}

func NewAmount(s string) (*Amount, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return &Amount{Decimal: d}, nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	return a.Decimal.UnmarshalJSON(data)
}

func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("amount must be a scalar, line %d", value.Line)
	}

	d, err := decimal.NewFromString(strings.TrimSpace(value.Value))
	if err != nil {
		return fmt.Errorf("invalid amount %q on line %d: %w", value.Value, value.Line, err)
	}
	a.Decimal = d

	return nil
}

type AddressConfig struct {
	Street         string `json:"street" yaml:"street"`
	BuildingNumber string `json:"building_number" yaml:"building_number"`
	PostalCode     string `json:"postal_code" yaml:"postal_code"`
	City           string `json:"city" yaml:"city"`
	Country        string `json:"country" yaml:"country"`
}

type PartyConfig struct {
	Name         string         `json:"name" yaml:"name" validate:"required"`
	IBAN         string         `json:"iban" yaml:"iban" validate:"required"`
	BIC          string         `json:"bic" yaml:"bic" validate:"required"`
	AddressLine1 string         `json:"address_line1,omitempty" yaml:"address_line1"`
	AddressLine2 string         `json:"address_line2,omitempty" yaml:"address_line2"`
	AddressLine3 string         `json:"address_line3,omitempty" yaml:"address_line3"`
	Address      *AddressConfig `json:"address,omitempty" yaml:"address"`
}

type PaymentEntry struct {
	InstructionID  string       `json:"instruction_id,omitempty" yaml:"instruction_id"`
	Amount         *Amount      `json:"amount" yaml:"amount" validate:"required"`
	Currency       string       `json:"currency,omitempty" yaml:"currency"`
	Debtor         *PartyConfig `json:"debtor" yaml:"debtor" validate:"required"`
	Creditor       *PartyConfig `json:"creditor" yaml:"creditor" validate:"required"`
	RemittanceInfo string       `json:"remittance_info,omitempty" yaml:"remittance_info"`
}

// PaymentConfig is the file and request format for both message types. The
// pain.001 path reads Payments; the MT103 path reads the top-level Amount,
// Debtor and Creditor.
type PaymentConfig struct {
	MessageID   string `json:"message_id,omitempty" yaml:"message_id"`
	BatchID     string `json:"batch_id,omitempty" yaml:"batch_id"`
	Initiator   string `json:"initiator,omitempty" yaml:"initiator"`
	InitiatorID string `json:"initiator_id,omitempty" yaml:"initiator_id"`

	Reference      string       `json:"reference,omitempty" yaml:"reference"`
	Charges        string       `json:"charges,omitempty" yaml:"charges"`
	Currency       string       `json:"currency,omitempty" yaml:"currency"`
	Amount         *Amount      `json:"amount,omitempty" yaml:"amount"`
	Debtor         *PartyConfig `json:"debtor,omitempty" yaml:"debtor"`
	Creditor       *PartyConfig `json:"creditor,omitempty" yaml:"creditor"`
	RemittanceInfo string       `json:"remittance_info,omitempty" yaml:"remittance_info"`

	Payments []PaymentEntry `json:"payments,omitempty" yaml:"payments" validate:"dive"`
}

// Decode parses data as YAML when format is "yaml" or "yml" and as JSON
// otherwise.
func Decode(data []byte, format string) (PaymentConfig, error) {
	var cfg PaymentConfig

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return PaymentConfig{}, fmt.Errorf("failed to decode YAML payment config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return PaymentConfig{}, fmt.Errorf("failed to decode JSON payment config: %w", err)
		}
	}

	return cfg, nil
}

// LoadFile reads a payment configuration, choosing the decoder from the file
// extension.
func LoadFile(path string) (PaymentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PaymentConfig{}, fmt.Errorf("failed to read payment config: %w", err)
	}

	return Decode(data, filepath.Ext(path))
}
