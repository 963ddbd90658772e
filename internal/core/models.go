package core

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPaymentMethod = "TRF"
	DefaultServiceLevel  = "SEPA"

	EndToEndIDMaxLength = 35
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Counterparty is one side of a credit transfer.
type Counterparty struct {
	Name    string
	IBAN    string
	BIC     string
	Address *Address
}

type PaymentInstruction struct {
	InstructionID  string
	Amount         decimal.Decimal
	Currency       string
	Debtor         Counterparty
	Creditor       Counterparty
	RemittanceInfo string
	EndToEndID     string
}

// NewPaymentInstruction checks the amount and currency of p and assigns an
// end-to-end identifier when the caller did not supply one.
func NewPaymentInstruction(p PaymentInstruction) (PaymentInstruction, error) {
	if !p.Amount.IsPositive() {
		return PaymentInstruction{}, FieldConstraintError{Field: "amount", Rule: "must be positive"}
	}
	if !currencyPattern.MatchString(p.Currency) {
		return PaymentInstruction{}, FieldConstraintError{Field: "currency", Rule: "must be a 3-letter ISO code"}
	}

	if p.EndToEndID == "" {
		p.EndToEndID = NewEndToEndID()
	}
	p.EndToEndID = Truncate(p.EndToEndID, EndToEndIDMaxLength)

	if p.Debtor.Address != nil {
		addr := *p.Debtor.Address
		p.Debtor.Address = &addr
	}
	if p.Creditor.Address != nil {
		addr := *p.Creditor.Address
		p.Creditor.Address = &addr
	}

	return p, nil
}

func NewEndToEndID() string {
	return Truncate(uuid.NewString(), EndToEndIDMaxLength)
}

type PaymentBatch struct {
	ID                     string
	PaymentMethod          string
	BatchBooking           bool
	ServiceLevel           string
	RequestedExecutionDate time.Time
	Instructions           []PaymentInstruction
}

// NewPaymentBatch builds a batch with the default transfer method, batch
// booking, SEPA service level and today's execution date. The instructions
// are copied so the batch owns them.
func NewPaymentBatch(id string, instructions []PaymentInstruction) PaymentBatch {
	owned := make([]PaymentInstruction, len(instructions))
	copy(owned, instructions)

	return PaymentBatch{
		ID:                     id,
		PaymentMethod:          DefaultPaymentMethod,
		BatchBooking:           true,
		ServiceLevel:           DefaultServiceLevel,
		RequestedExecutionDate: time.Now().UTC(),
		Instructions:           owned,
	}
}

func (b PaymentBatch) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.Instructions {
		total = total.Add(p.Amount)
	}

	return total
}

func (b PaymentBatch) TransactionCount() int {
	return len(b.Instructions)
}
