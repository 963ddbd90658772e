package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"swiftkit/internal/bic"
	"swiftkit/internal/core"
	"swiftkit/internal/iban"
)

func TestNewBICResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected BICResponse
	}{
		{
			name:  "known institution with branch",
			input: "BNPAFRPPXXX",
			expected: BICResponse{
				Input:           "BNPAFRPPXXX",
				Valid:           true,
				Message:         "valid BIC: BNPAFRPPXXX (France)",
				BankCode:        "BNPA",
				CountryCode:     "FR",
				CountryName:     "France",
				LocationCode:    "PP",
				BranchCode:      "XXX",
				IsPrimaryOffice: true,
				Institution:     "BNP Paribas (France)",
			},
		},
		{
			name:  "branch office",
			input: "CRLYFRPPTOU",
			expected: BICResponse{
				Input:        "CRLYFRPPTOU",
				Valid:        true,
				Message:      "valid BIC: CRLYFRPPTOU (France)",
				BankCode:     "CRLY",
				CountryCode:  "FR",
				CountryName:  "France",
				LocationCode: "PP",
				BranchCode:   "TOU",
				Institution:  "Crédit Lyonnais (France)",
			},
		},
		{
			name:  "invalid code has no details",
			input: "BNPA",
			expected: BICResponse{
				Input:   "BNPA",
				Valid:   false,
				Message: bic.Check("BNPA").Err.Error(),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, NewBICResponse(bic.Check(tt.input)))
		})
	}
}

func TestNewIBANResponse(t *testing.T) {
	t.Parallel()

	valid := NewIBANResponse("FR76 3000 6000 0112 3456 7890 189", iban.Validate("FR76 3000 6000 0112 3456 7890 189"))
	require.Equal(t, IBANResponse{
		Input:       "FR76 3000 6000 0112 3456 7890 189",
		Formatted:   "FR76 3000 6000 0112 3456 7890 189",
		Valid:       true,
		Message:     "valid IBAN (France)",
		CountryCode: "FR",
		CountryName: "France",
		CheckDigits: "76",
		BBAN:        "30006000011234567890189",
	}, valid)

	invalid := NewIBANResponse("FR7630006000011234567890188", iban.Validate("FR7630006000011234567890188"))
	require.False(t, invalid.Valid)
	require.Contains(t, invalid.Message, "remainder 71")
	require.Empty(t, invalid.CountryCode)
	require.Empty(t, invalid.BBAN)
}

func TestNewGenerateIBANResponse(t *testing.T) {
	t.Parallel()

	resp := NewGenerateIBANResponse(iban.Create("DE", "370400440532013000"))
	require.Equal(t, GenerateIBANResponse{
		IBAN:        "DE89370400440532013000",
		Formatted:   "DE89 3704 0044 0532 0130 00",
		CheckDigits: "89",
		CountryName: "Germany",
	}, resp)
}

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	violations := []core.FieldConstraintError{
		{Tag: ":20:", Field: "sender reference", Rule: "must contain 1 to 16 characters"},
		{Field: "amount", Rule: "must be positive"},
	}

	resp := NewErrorResponse(errors.New("message validation failed"), violations)
	require.Equal(t, "message validation failed", resp.Error)
	require.Equal(t, []ViolationItem{
		{Tag: ":20:", Field: "sender reference", Rule: "must contain 1 to 16 characters"},
		{Field: "amount", Rule: "must be positive"},
	}, resp.Violations)

	require.Nil(t, NewErrorResponse(errors.New("boom"), nil).Violations)
}
