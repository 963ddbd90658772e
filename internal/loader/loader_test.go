package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"swiftkit/internal/core"
	"swiftkit/internal/mt103"
)

var now = time.Date(2026, 2, 14, 9, 30, 15, 0, time.UTC)

const pain001JSON = `{
  "message_id": "MSG-001",
  "initiator": "ACME Treasury",
  "initiator_id": "ORG-42",
  "currency": "USD",
  "payments": [
    {
      "instruction_id": "INV-1",
      "amount": 1000,
      "currency": "EUR",
      "debtor": {"name": "ACME Corp", "iban": "FR7630006000011234567890189", "bic": "BNPAFRPPXXX",
        "address": {"street": "Rue de la Paix", "city": "Paris"}},
      "creditor": {"name": "Supplier GmbH", "iban": "DE89370400440532013000", "bic": "DEUTDEFF"},
      "remittance_info": "Invoice 1"
    },
    {
      "amount": "500.00",
      "debtor": {"name": "ACME Corp", "iban": "FR7630006000011234567890189", "bic": "BNPAFRPPXXX"},
      "creditor": {"name": "Supplier Ltd", "iban": "GB82WEST12345698765432", "bic": "WESTGB22"}
    }
  ]
}`

const mt103YAML = `
reference: INV-2026-000123
charges: OUR
amount: 15000.5
remittance_info: INVOICE 2026-001
debtor:
  name: SOCIETE ABC SARL
  iban: FR7630006000011234567890189
  bic: BNPAFRPPXXX
  address_line1: 123 RUE DE PARIS
  address_line2: 75001 PARIS
creditor:
  name: FOURNISSEUR XYZ GMBH
  iban: DE89370400440532013000
  bic: COBADEFFXXX
`

func TestDecode_Pain001(t *testing.T) {
	t.Parallel()

	cfg, err := Decode([]byte(pain001JSON), ".json")
	require.NoError(t, err)

	req, err := cfg.Pain001Request(now)
	require.NoError(t, err)

	require.Equal(t, "MSG-001", req.MessageID)
	require.Equal(t, "ACME Treasury", req.InitiatorName)
	require.Equal(t, "ORG-42", req.InitiatorID)
	require.Len(t, req.Batches, 1)

	batch := req.Batches[0]
	require.Equal(t, "BATCH-20260214093015", batch.ID)
	require.Equal(t, 2, batch.TransactionCount())
	require.True(t, decimal.RequireFromString("1500").Equal(batch.TotalAmount()))

	first := batch.Instructions[0]
	require.Equal(t, "INV-1", first.InstructionID)
	require.Equal(t, "EUR", first.Currency)
	require.Equal(t, "Invoice 1", first.RemittanceInfo)
	require.NotEmpty(t, first.EndToEndID)
	require.NotNil(t, first.Debtor.Address)
	require.Equal(t, "FR", first.Debtor.Address.CountryCode())
	require.Equal(t, "Paris", first.Debtor.Address.City)

	second := batch.Instructions[1]
	require.Equal(t, "INSTR-0002", second.InstructionID)
	require.Equal(t, "USD", second.Currency)
	require.Equal(t, DefaultRemittanceInfo, second.RemittanceInfo)
	require.Nil(t, second.Creditor.Address)
}

func TestPain001Request_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Decode([]byte(`{"payments":[{"amount":"10","debtor":{"name":"A","iban":"X","bic":"Y"},"creditor":{"name":"B","iban":"X","bic":"Y"}}]}`), "json")
	require.NoError(t, err)

	req, err := cfg.Pain001Request(now)
	require.NoError(t, err)
	require.Equal(t, "MSG-20260214093015", req.MessageID)
	require.Empty(t, req.InitiatorName)
	require.Equal(t, "INSTR-0001", req.Batches[0].Instructions[0].InstructionID)
	require.Equal(t, DefaultCurrency, req.Batches[0].Instructions[0].Currency)
}

func TestPain001Request_MissingData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		input          string
		expectedFields []string
	}{
		{
			name:           "no payments",
			input:          `{"message_id":"MSG-1"}`,
			expectedFields: []string{"payments"},
		},
		{
			name:           "missing amount and creditor",
			input:          `{"payments":[{"debtor":{"name":"A","iban":"X","bic":"Y"}}]}`,
			expectedFields: []string{"payments[0].amount", "payments[0].creditor"},
		},
		{
			name:           "incomplete debtor",
			input:          `{"payments":[{"amount":1,"debtor":{"name":"A"},"creditor":{"name":"B","iban":"X","bic":"Y"}}]}`,
			expectedFields: []string{"payments[0].debtor.iban", "payments[0].debtor.bic"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := Decode([]byte(tt.input), "json")
			require.NoError(t, err)

			_, err = cfg.Pain001Request(now)
			require.ErrorIs(t, err, core.ErrMissingData)

			var missing *core.MissingDataError
			require.ErrorAs(t, err, &missing)
			require.Equal(t, tt.expectedFields, missing.Fields)
		})
	}
}

func TestPain001Request_InvalidPayment(t *testing.T) {
	t.Parallel()

	cfg, err := Decode([]byte(`{"payments":[{"amount":0,"debtor":{"name":"A","iban":"X","bic":"Y"},"creditor":{"name":"B","iban":"X","bic":"Y"}}]}`), "json")
	require.NoError(t, err)

	_, err = cfg.Pain001Request(now)
	require.ErrorIs(t, err, core.ErrFieldConstraint)
	require.Contains(t, err.Error(), "invalid payment 1")
}

func TestDecode_MT103YAML(t *testing.T) {
	t.Parallel()

	cfg, err := Decode([]byte(mt103YAML), "yaml")
	require.NoError(t, err)

	msg, err := cfg.MT103Message(now)
	require.NoError(t, err)

	require.Equal(t, "INV-2026-000123", msg.SenderReference)
	require.Equal(t, "CRED", msg.BankOperationCode)
	require.Equal(t, now, msg.ValueDate)
	require.Equal(t, "EUR", msg.Currency)
	require.True(t, decimal.RequireFromString("15000.50").Equal(msg.Amount))
	require.Equal(t, "OUR", msg.Charges)
	require.Equal(t, "BNPAFRPPXXX", msg.OrderingInstitution)
	require.Equal(t, "COBADEFFXXX", msg.BeneficiaryInstitution)
	require.Equal(t, []string{
		"/FR7630006000011234567890189",
		"SOCIETE ABC SARL",
		"123 RUE DE PARIS",
		"75001 PARIS",
	}, msg.OrderingCustomer.ToLines())
	require.Equal(t, "INVOICE 2026-001", msg.RemittanceInfo)
}

func TestMT103Message_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := Decode([]byte(`{"amount":"250","debtor":{"name":"A","iban":"X","bic":"BNPAFRPP"},"creditor":{"name":"B","iban":"Y","bic":"DEUTDEFF"}}`), "json")
	require.NoError(t, err)

	msg, err := cfg.MT103Message(now)
	require.NoError(t, err)
	require.Equal(t, "REF2026021409301", msg.SenderReference)
	require.Equal(t, "SHA", msg.Charges)
	require.Equal(t, DefaultRemittanceInfo, msg.RemittanceInfo)
}

func TestMT103Message_LongReferenceKept(t *testing.T) {
	t.Parallel()

	cfg, err := Decode([]byte(mt103YAML), "yaml")
	require.NoError(t, err)
	cfg.Reference = "INVOICE-2026-000123-XYZ"

	msg, err := cfg.MT103Message(now)
	require.NoError(t, err)
	require.Equal(t, "INVOICE-2026-000123-XYZ", msg.SenderReference)

	violations := mt103.Validate(msg)
	require.Len(t, violations, 1)
	require.Equal(t, ":20:", violations[0].Tag)
}

func TestMT103Message_MissingData(t *testing.T) {
	t.Parallel()

	cfg, err := Decode([]byte(`{"debtor":{"name":"A","bic":"BNPAFRPP"}}`), "json")
	require.NoError(t, err)

	_, err = cfg.MT103Message(now)

	var missing *core.MissingDataError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"amount", "creditor", "debtor.iban"}, missing.Fields)
	require.EqualError(t, err, "missing required fields: amount, creditor, debtor.iban")
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte(`{"amount": "abc"}`), "json")
	require.Error(t, err)

	_, err = Decode([]byte("amount: [1, 2]"), "yml")
	require.Error(t, err)

	_, err = Decode([]byte("amount: twelve"), "yaml")
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "payment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(mt103YAML), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, "OUR", cfg.Charges)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
}

func TestReadIdentifiers_Text(t *testing.T) {
	t.Parallel()

	ids, err := ReadIdentifiers([]byte("BNPAFRPPXXX\n\n  DEUTDEFF  \r\n\t\nINVALID\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"BNPAFRPPXXX", "DEUTDEFF", "INVALID"}, ids)

	ids, err = ReadIdentifiers(nil)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestReadIdentifiers_OversizedLine(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("A", 70000)

	ids, err := ReadIdentifiers([]byte("DEUTDEFF\n" + long + "\nBNPAFRPP"))
	require.NoError(t, err)
	require.Equal(t, []string{"DEUTDEFF", long, "BNPAFRPP"}, ids)
}

func TestReadIdentifiers_Workbook(t *testing.T) {
	t.Parallel()

	f := excelize.NewFile()
	t.Cleanup(func() { _ = f.Close() })

	require.NoError(t, f.SetCellValue("Sheet1", "A1", "FR7630006000011234567890189"))
	require.NoError(t, f.SetCellValue("Sheet1", "B1", "ignored"))
	require.NoError(t, f.SetCellValue("Sheet1", "A2", "  "))
	require.NoError(t, f.SetCellValue("Sheet1", "A4", " DE89370400440532013000 "))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	dir := t.TempDir()
	path := filepath.Join(dir, "ibans.xlsx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	ids, err := ReadIdentifiersFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"FR7630006000011234567890189", "DE89370400440532013000"}, ids)
}
