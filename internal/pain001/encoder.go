// Package pain001 renders payment batches as ISO 20022 customer credit
// transfer initiation messages (pain.001.001.09).
//
// The encoder trusts the payment model and performs no schema validation:
// identifiers are written exactly as they were supplied.
package pain001

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"swiftkit/internal/core"
)

const Namespace = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.09"

const (
	creationTimeLayout = "2006-01-02T15:04:05"
	dateLayout         = "2006-01-02"
)

type Encoder struct {
	now func() time.Time
}

type Option func(*Encoder)

// WithClock overrides the clock used for the creation timestamp.
func WithClock(now func() time.Time) Option {
	return func(e *Encoder) {
		e.now = now
	}
}

func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode builds the indented XML document. initiatorID is optional.
//
// Debtor name, address, account and agent of each payment information block
// are taken from the first instruction of the batch; later instructions are
// assumed to share the same debtor.
func (e *Encoder) Encode(messageID, initiatorName string, batches []core.PaymentBatch, initiatorID string) ([]byte, error) {
	total := decimal.Zero
	count := 0
	for _, b := range batches {
		total = total.Add(b.TotalAmount())
		count += b.TransactionCount()
	}

	doc := document{
		Xmlns: Namespace,
		CstmrCdtTrfInitn: cstmrCdtTrfInitn{
			GrpHdr: grpHdr{
				MsgID:   messageID,
				CreDtTm: e.now().UTC().Format(creationTimeLayout),
				NbOfTxs: strconv.Itoa(count),
				CtrlSum: FormatAmount(total),
				InitgPty: initgPty{
					Nm: initiatorName,
				},
			},
			PmtInf: make([]pmtInf, 0, len(batches)),
		},
	}

	if initiatorID != "" {
		doc.CstmrCdtTrfInitn.GrpHdr.InitgPty.ID = &partyID{
			OrgID: orgID{Othr: other{ID: initiatorID}},
		}
	}

	for _, b := range batches {
		doc.CstmrCdtTrfInitn.PmtInf = append(doc.CstmrCdtTrfInitn.PmtInf, encodeBatch(b))
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal pain.001 document: %w", err)
	}

	buf := make([]byte, 0, len(xml.Header)+len(out)+1)
	buf = append(buf, xml.Header...)
	buf = append(buf, out...)
	buf = append(buf, '\n')

	return buf, nil
}

func encodeBatch(b core.PaymentBatch) pmtInf {
	info := pmtInf{
		PmtInfID:    b.ID,
		PmtMtd:      b.PaymentMethod,
		BtchBookg:   strconv.FormatBool(b.BatchBooking),
		NbOfTxs:     strconv.Itoa(b.TransactionCount()),
		CtrlSum:     FormatAmount(b.TotalAmount()),
		PmtTpInf:    pmtTpInf{SvcLvl: code{Cd: b.ServiceLevel}},
		ReqdExctnDt: dateWrapper{Dt: b.RequestedExecutionDate.Format(dateLayout)},
		CdtTrfTxInf: make([]cdtTrfTxInf, 0, len(b.Instructions)),
	}

	if len(b.Instructions) > 0 {
		debtor := b.Instructions[0].Debtor
		info.Dbtr = &party{Nm: debtor.Name, PstlAdr: encodeAddress(debtor.Address)}
		info.DbtrAcct = &account{ID: accountID{IBAN: debtor.IBAN}}
		info.DbtrAgt = &agent{FinInstnID: finInstnID{BICFI: debtor.BIC}}
	}

	for _, p := range b.Instructions {
		info.CdtTrfTxInf = append(info.CdtTrfTxInf, cdtTrfTxInf{
			PmtID: paymentID{
				InstrID:    p.InstructionID,
				EndToEndID: p.EndToEndID,
			},
			Amt: amount{
				InstdAmt: instructedAmount{Ccy: p.Currency, Value: FormatAmount(p.Amount)},
			},
			CdtrAgt:  agent{FinInstnID: finInstnID{BICFI: p.Creditor.BIC}},
			Cdtr:     party{Nm: p.Creditor.Name, PstlAdr: encodeAddress(p.Creditor.Address)},
			CdtrAcct: account{ID: accountID{IBAN: p.Creditor.IBAN}},
			RmtInf:   remittance{Ustrd: p.RemittanceInfo},
		})
	}

	return info
}

func encodeAddress(a *core.Address) *postalAddress {
	if a == nil {
		return nil
	}

	return &postalAddress{
		StrtNm: a.Street,
		BldgNb: a.BuildingNumber,
		PstCd:  a.PostalCode,
		TwnNm:  a.City,
		Ctry:   a.CountryCode(),
	}
}

// FormatAmount renders an amount with exactly two fractional digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
