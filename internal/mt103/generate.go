package mt103

import (
	"strings"

	"github.com/shopspring/decimal"

	"swiftkit/internal/core"
)

const (
	valueDateLayout = "060102"

	narrativeWidth     = 35
	remittanceMaxLines = 4
	senderInfoMaxLines = 6

	// trailer is a fixed placeholder, the checksum is not computed.
	trailer = "{5:{CHK:123456789ABC}}"
)

// Generate renders msg as five newline separated blocks. The message is not
// validated; callers run Validate first.
func Generate(msg Message) string {
	blocks := []string{
		"{1:F01" + msg.senderBIC() + "0000000000}",
		"{2:I103" + msg.receiverBIC() + "N}",
		"{3:{108:MT103}}",
		textBlock(msg),
		trailer,
	}

	return strings.Join(blocks, "\n")
}

func textBlock(msg Message) string {
	lines := []string{"{4:"}

	lines = append(lines, ":20:"+core.Truncate(msg.SenderReference, ReferenceMaxLength))
	lines = append(lines, ":23B:"+msg.BankOperationCode)
	if msg.InstructionCode != "" {
		lines = append(lines, ":23E:"+msg.InstructionCode)
	}

	lines = append(lines, ":32A:"+msg.ValueDate.Format(valueDateLayout)+msg.Currency+FormatAmount(msg.Amount))
	if msg.InstructedAmount != nil && !msg.InstructedAmount.IsZero() {
		lines = append(lines, ":33B:"+msg.Currency+FormatAmount(*msg.InstructedAmount))
	}

	lines = append(lines, ":50K:"+strings.Join(msg.OrderingCustomer.ToLines(), "\n"))
	lines = append(lines, ":52A:"+msg.OrderingInstitution)
	lines = append(lines, ":57A:"+msg.BeneficiaryInstitution)
	lines = append(lines, ":59:"+strings.Join(msg.BeneficiaryCustomer.ToLines(), "\n"))
	lines = append(lines, ":70:"+strings.Join(core.Chunk(msg.RemittanceInfo, narrativeWidth, remittanceMaxLines), "\n"))
	lines = append(lines, ":71A:"+msg.charges())

	if msg.SenderToReceiverInfo != "" {
		lines = append(lines, ":72:"+strings.Join(core.Chunk(msg.SenderToReceiverInfo, narrativeWidth, senderInfoMaxLines), "\n"))
	}

	lines = append(lines, "-}")

	return strings.Join(lines, "\n")
}

// FormatAmount renders an amount with two decimals and a decimal comma.
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// Generator binds Validate and Generate to a value for callers that depend on
// an interface.
type Generator struct{}

func (Generator) Validate(msg Message) []core.FieldConstraintError { return Validate(msg) }

func (Generator) Generate(msg Message) string { return Generate(msg) }
