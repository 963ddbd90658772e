// Package mt103 builds single customer credit transfer messages in the legacy
// block-structured text format.
package mt103

import (
	"time"

	"github.com/shopspring/decimal"

	"swiftkit/internal/core"
)

const (
	DefaultSenderBIC   = "BNPAFRPPAXXX"
	DefaultReceiverBIC = "COBADEFFXXX"
	DefaultCharges     = "SHA"

	ReferenceMaxLength = 16
)

// BankOperationCodes lists the common :23B: codes.
var BankOperationCodes = map[string]string{
	"CRED": "Credit Transfer",
	"CRTS": "Credit Transfer for Securities",
	"SPAY": "Special Payment",
	"SPRI": "Priority Payment",
	"SSTD": "Standard Payment",
}

// ChargeTypes lists the accepted :71A: values.
var ChargeTypes = map[string]string{
	"SHA": "Shared between ordering customer and beneficiary",
	"OUR": "All charges paid by the ordering customer",
	"BEN": "All charges paid by the beneficiary",
}

// Message is a single customer credit transfer. Empty Charges, SenderBIC and
// ReceiverBIC fall back to the package defaults.
type Message struct {
	SenderReference   string
	BankOperationCode string

	ValueDate time.Time
	Currency  string
	Amount    decimal.Decimal

	OrderingCustomer       core.Party
	OrderingInstitution    string
	BeneficiaryCustomer    core.Party
	BeneficiaryInstitution string

	RemittanceInfo string
	Charges        string

	SenderBIC   string
	ReceiverBIC string

	InstructedAmount     *decimal.Decimal
	InstructionCode      string
	SenderToReceiverInfo string
}

func (m Message) charges() string {
	if m.Charges == "" {
		return DefaultCharges
	}
	return m.Charges
}

func (m Message) senderBIC() string {
	if m.SenderBIC == "" {
		return DefaultSenderBIC
	}
	return m.SenderBIC
}

func (m Message) receiverBIC() string {
	if m.ReceiverBIC == "" {
		return DefaultReceiverBIC
	}
	return m.ReceiverBIC
}
