package mt103

import (
	"regexp"
	"unicode/utf8"

	"swiftkit/internal/core"
)

var (
	operationCodePattern = regexp.MustCompile(`^[A-Z]{4}$`)
	currencyPattern      = regexp.MustCompile(`^[A-Z]{3}$`)
	bicPattern           = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
)

// Validate returns every violated field rule of msg. An empty result means
// the message can be generated.
func Validate(msg Message) []core.FieldConstraintError {
	var violations []core.FieldConstraintError

	if n := utf8.RuneCountInString(msg.SenderReference); n < 1 || n > ReferenceMaxLength {
		violations = append(violations, core.FieldConstraintError{
			Tag: ":20:", Field: "sender reference", Rule: "must contain 1 to 16 characters",
		})
	}

	if !operationCodePattern.MatchString(msg.BankOperationCode) {
		violations = append(violations, core.FieldConstraintError{
			Tag: ":23B:", Field: "bank operation code", Rule: "must be 4 letters (e.g. CRED)",
		})
	}

	if !currencyPattern.MatchString(msg.Currency) {
		violations = append(violations, core.FieldConstraintError{
			Tag: ":32A:", Field: "currency", Rule: "must be a 3-letter ISO code (e.g. EUR)",
		})
	}

	if !msg.Amount.IsPositive() {
		violations = append(violations, core.FieldConstraintError{
			Tag: ":32A:", Field: "amount", Rule: "must be positive",
		})
	}

	if _, ok := ChargeTypes[msg.charges()]; !ok {
		violations = append(violations, core.FieldConstraintError{
			Tag: ":71A:", Field: "charges", Rule: "must be SHA, OUR or BEN",
		})
	}

	if !bicPattern.MatchString(msg.OrderingInstitution) {
		violations = append(violations, core.FieldConstraintError{
			Tag: ":52A:", Field: "ordering institution", Rule: "must be a valid BIC",
		})
	}

	if !bicPattern.MatchString(msg.BeneficiaryInstitution) {
		violations = append(violations, core.FieldConstraintError{
			Tag: ":57A:", Field: "beneficiary institution", Rule: "must be a valid BIC",
		})
	}

	return violations
}
