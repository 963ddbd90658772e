package loader

import (
	"fmt"
	"time"

	"swiftkit/internal/core"
	"swiftkit/internal/mt103"
	"swiftkit/internal/service"
)

const (
	DefaultCurrency       = "EUR"
	DefaultRemittanceInfo = "Payment"
	DefaultOperationCode  = "CRED"

	timestampLayout = "20060102150405"
)

func MessageID(now time.Time) string { return "MSG-" + now.Format(timestampLayout) }

func BatchID(now time.Time) string { return "BATCH-" + now.Format(timestampLayout) }

func InstructionID(index int) string { return fmt.Sprintf("INSTR-%04d", index+1) }

// Reference builds a sender reference that fits the 16 character limit.
func Reference(now time.Time) string {
	return core.Truncate("REF"+now.Format(timestampLayout), mt103.ReferenceMaxLength)
}

// Pain001Request converts the payments of cfg into a single batch. Missing
// identifiers are derived from now.
func (cfg PaymentConfig) Pain001Request(now time.Time) (service.Pain001Request, error) {
	fields, err := missingFields(cfg)
	if err != nil {
		return service.Pain001Request{}, fmt.Errorf("failed to validate payment config: %w", err)
	}
	if len(cfg.Payments) == 0 {
		fields = append(fields, "payments")
	}
	if err := missingDataError(fields); err != nil {
		return service.Pain001Request{}, err
	}

	instructions := make([]core.PaymentInstruction, 0, len(cfg.Payments))
	for i, p := range cfg.Payments {
		instr, err := core.NewPaymentInstruction(core.PaymentInstruction{
			InstructionID:  firstNonEmpty(p.InstructionID, InstructionID(i)),
			Amount:         p.Amount.Decimal,
			Currency:       firstNonEmpty(p.Currency, cfg.Currency, DefaultCurrency),
			Debtor:         p.Debtor.counterparty(),
			Creditor:       p.Creditor.counterparty(),
			RemittanceInfo: firstNonEmpty(p.RemittanceInfo, DefaultRemittanceInfo),
		})
		if err != nil {
			return service.Pain001Request{}, fmt.Errorf("invalid payment %d: %w", i+1, err)
		}
		instructions = append(instructions, instr)
	}

	batch := core.NewPaymentBatch(firstNonEmpty(cfg.BatchID, BatchID(now)), instructions)

	return service.Pain001Request{
		MessageID:     firstNonEmpty(cfg.MessageID, MessageID(now)),
		InitiatorName: cfg.Initiator,
		InitiatorID:   cfg.InitiatorID,
		Batches:       []core.PaymentBatch{batch},
	}, nil
}

// MT103Message converts the top-level payment of cfg. The value date is the
// date of now. A supplied reference is kept as is so that an over-long one is
// reported by mt103.Validate; only the generated default is cut to fit.
func (cfg PaymentConfig) MT103Message(now time.Time) (mt103.Message, error) {
	var fields []string
	if cfg.Amount == nil {
		fields = append(fields, "amount")
	}
	if cfg.Debtor == nil {
		fields = append(fields, "debtor")
	}
	if cfg.Creditor == nil {
		fields = append(fields, "creditor")
	}

	found, err := missingFields(PaymentConfig{Debtor: cfg.Debtor, Creditor: cfg.Creditor})
	if err != nil {
		return mt103.Message{}, fmt.Errorf("failed to validate payment config: %w", err)
	}
	if err := missingDataError(append(fields, found...)); err != nil {
		return mt103.Message{}, err
	}

	return mt103.Message{
		SenderReference:        firstNonEmpty(cfg.Reference, Reference(now)),
		BankOperationCode:      DefaultOperationCode,
		ValueDate:              now,
		Currency:               firstNonEmpty(cfg.Currency, DefaultCurrency),
		Amount:                 cfg.Amount.Decimal,
		OrderingCustomer:       cfg.Debtor.party(),
		OrderingInstitution:    cfg.Debtor.BIC,
		BeneficiaryCustomer:    cfg.Creditor.party(),
		BeneficiaryInstitution: cfg.Creditor.BIC,
		RemittanceInfo:         firstNonEmpty(cfg.RemittanceInfo, DefaultRemittanceInfo),
		Charges:                firstNonEmpty(cfg.Charges, mt103.DefaultCharges),
	}, nil
}

func (p *PartyConfig) counterparty() core.Counterparty {
	c := core.Counterparty{
		Name: p.Name,
		IBAN: p.IBAN,
		BIC:  p.BIC,
	}
	if p.Address != nil {
		c.Address = &core.Address{
			Street:         p.Address.Street,
			BuildingNumber: p.Address.BuildingNumber,
			PostalCode:     p.Address.PostalCode,
			City:           p.Address.City,
			Country:        p.Address.Country,
		}
	}

	return c
}

func (p *PartyConfig) party() core.Party {
	return core.Party{
		Name:         p.Name,
		Account:      p.IBAN,
		AddressLine1: p.AddressLine1,
		AddressLine2: p.AddressLine2,
		AddressLine3: p.AddressLine3,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
