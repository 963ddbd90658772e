package mt103

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"swiftkit/internal/core"
)

func sampleMessage() Message {
	return Message{
		SenderReference:   "REF123456789",
		BankOperationCode: "CRED",
		ValueDate:         time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC),
		Currency:          "EUR",
		Amount:            decimal.RequireFromString("5000.00"),
		OrderingCustomer: core.Party{
			Name:    "TEST COMPANY",
			Account: "FR7630006000011234567890189",
		},
		OrderingInstitution: "BNPAFRPPXXX",
		BeneficiaryCustomer: core.Party{
			Name:    "BENEFICIARY LTD",
			Account: "DE89370400440532013000",
		},
		BeneficiaryInstitution: "COBADEFFXXX",
		RemittanceInfo:         "TEST PAYMENT",
		Charges:                "SHA",
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	expected := strings.Join([]string{
		"{1:F01BNPAFRPPAXXX0000000000}",
		"{2:I103COBADEFFXXXN}",
		"{3:{108:MT103}}",
		"{4:",
		":20:REF123456789",
		":23B:CRED",
		":32A:260214EUR5000,00",
		":50K:/FR7630006000011234567890189",
		"TEST COMPANY",
		":52A:BNPAFRPPXXX",
		":57A:COBADEFFXXX",
		":59:/DE89370400440532013000",
		"BENEFICIARY LTD",
		":70:TEST PAYMENT",
		":71A:SHA",
		"-}",
		"{5:{CHK:123456789ABC}}",
	}, "\n")

	require.Equal(t, expected, Generate(sampleMessage()))
}

func TestGenerate_OptionalFields(t *testing.T) {
	t.Parallel()

	instructed := decimal.RequireFromString("5100.5")

	msg := sampleMessage()
	msg.SenderReference = "REF-2026-0214-000123"
	msg.InstructionCode = "SDVA"
	msg.InstructedAmount = &instructed
	msg.SenderToReceiverInfo = "/ACC/" + strings.Repeat("U", 70)
	msg.RemittanceInfo = strings.Repeat("A", 35) + strings.Repeat("B", 35) + strings.Repeat("C", 35) +
		strings.Repeat("D", 35) + "OVERFLOW"
	msg.Charges = ""
	msg.SenderBIC = "DEUTDEFFXXX"
	msg.ReceiverBIC = "BARCGB22XXX"
	msg.OrderingCustomer.AddressLine1 = "123 RUE DE PARIS"
	msg.OrderingCustomer.AddressLine2 = "75001 PARIS"
	msg.OrderingCustomer.AddressLine3 = "FRANCE"

	out := Generate(msg)

	require.True(t, strings.HasPrefix(out, "{1:F01DEUTDEFFXXX0000000000}\n{2:I103BARCGB22XXXN}\n"))
	require.Contains(t, out, "\n:20:REF-2026-0214-00\n")
	require.Contains(t, out, "\n:23B:CRED\n:23E:SDVA\n:32A:")
	require.Contains(t, out, "\n:33B:EUR5100,50\n")
	require.Contains(t, out, "\n:71A:SHA\n")

	// four lines max: account, name, first two address lines
	require.Contains(t, out, ":50K:/FR7630006000011234567890189\nTEST COMPANY\n123 RUE DE PARIS\n75001 PARIS\n:52A:")
	require.NotContains(t, out, "FRANCE")

	require.Contains(t, out, ":70:"+strings.Repeat("A", 35)+"\n"+strings.Repeat("B", 35)+"\n"+
		strings.Repeat("C", 35)+"\n"+strings.Repeat("D", 35)+"\n:71A:")
	require.NotContains(t, out, "OVERFLOW")

	require.Contains(t, out, ":72:/ACC/"+strings.Repeat("U", 30)+"\n"+strings.Repeat("U", 35)+"\n"+strings.Repeat("U", 5)+"\n-}")
}

func TestGenerate_ZeroInstructedAmountOmitted(t *testing.T) {
	t.Parallel()

	zero := decimal.Zero
	msg := sampleMessage()
	msg.InstructedAmount = &zero

	require.NotContains(t, Generate(msg), ":33B:")
}

func TestGenerate_LongPartyLinesTruncated(t *testing.T) {
	t.Parallel()

	msg := sampleMessage()
	msg.BeneficiaryCustomer = core.Party{Name: strings.Repeat("N", 50)}

	require.Contains(t, Generate(msg), "\n:59:"+strings.Repeat("N", 35)+"\n:70:")
}

func TestValidate_Valid(t *testing.T) {
	t.Parallel()

	require.Empty(t, Validate(sampleMessage()))

	msg := sampleMessage()
	msg.Charges = ""
	msg.OrderingInstitution = "BNPAFRPP"
	require.Empty(t, Validate(msg))
}

func TestValidate_Violations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mutate       func(m *Message)
		expectedTags []string
	}{
		{
			name:         "empty reference",
			mutate:       func(m *Message) { m.SenderReference = "" },
			expectedTags: []string{":20:"},
		},
		{
			name:         "reference too long",
			mutate:       func(m *Message) { m.SenderReference = "REF12345678901234" },
			expectedTags: []string{":20:"},
		},
		{
			name:         "operation code too long",
			mutate:       func(m *Message) { m.BankOperationCode = "INVALID" },
			expectedTags: []string{":23B:"},
		},
		{
			name:         "lowercase operation code",
			mutate:       func(m *Message) { m.BankOperationCode = "cred" },
			expectedTags: []string{":23B:"},
		},
		{
			name:         "four letter currency",
			mutate:       func(m *Message) { m.Currency = "EURO" },
			expectedTags: []string{":32A:"},
		},
		{
			name:         "negative amount",
			mutate:       func(m *Message) { m.Amount = decimal.RequireFromString("-100") },
			expectedTags: []string{":32A:"},
		},
		{
			name:         "zero amount",
			mutate:       func(m *Message) { m.Amount = decimal.Zero },
			expectedTags: []string{":32A:"},
		},
		{
			name:         "unknown charges",
			mutate:       func(m *Message) { m.Charges = "INVALID" },
			expectedTags: []string{":71A:"},
		},
		{
			name:         "invalid ordering institution",
			mutate:       func(m *Message) { m.OrderingInstitution = "BNPA" },
			expectedTags: []string{":52A:"},
		},
		{
			name:         "invalid beneficiary institution",
			mutate:       func(m *Message) { m.BeneficiaryInstitution = "cobadeffxxx" },
			expectedTags: []string{":57A:"},
		},
		{
			name: "every violation reported",
			mutate: func(m *Message) {
				*m = Message{Charges: "XXX"}
			},
			expectedTags: []string{":20:", ":23B:", ":32A:", ":32A:", ":71A:", ":52A:", ":57A:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			msg := sampleMessage()
			tt.mutate(&msg)

			violations := Validate(msg)
			tags := make([]string, 0, len(violations))
			for _, v := range violations {
				require.ErrorIs(t, v, core.ErrFieldConstraint)
				require.True(t, strings.HasPrefix(v.Error(), v.Tag+" "))
				tags = append(tags, v.Tag)
			}
			require.Equal(t, tt.expectedTags, tags)
		})
	}
}

func TestReferenceTables(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"CRED", "CRTS", "SPAY", "SPRI", "SSTD"} {
		require.Contains(t, BankOperationCodes, code)
	}
	require.Len(t, ChargeTypes, 3)
	for _, code := range []string{"SHA", "OUR", "BEN"} {
		require.Contains(t, ChargeTypes, code)
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	require.Equal(t, "5000,00", FormatAmount(decimal.RequireFromString("5000")))
	require.Equal(t, "0,10", FormatAmount(decimal.RequireFromString("0.1")))
	require.Equal(t, "15000,00", FormatAmount(decimal.NewFromInt(15000)))
}
