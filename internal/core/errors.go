package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidFormat   = errors.New("invalid format")
	ErrInvalidChecksum = errors.New("invalid checksum")
	ErrFieldConstraint = errors.New("field constraint violated")
	ErrMissingData     = errors.New("missing payment data")

	ErrUnsupportedIdentifier = errors.New("unsupported identifier type")
)

// FormatError reports a structural mismatch while parsing a BIC or an IBAN.
type FormatError struct {
	Kind   string
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s format %q: %s", e.Kind, e.Input, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// ChecksumError reports an IBAN whose MOD-97 remainder is not 1.
type ChecksumError struct {
	Input     string
	Remainder int
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("invalid IBAN check digits for %q: remainder %d, expected 1", e.Input, e.Remainder)
}

func (e *ChecksumError) Unwrap() error {
	return ErrInvalidChecksum
}

// FieldConstraintError is a single violated rule of a message field.
// Tag is the field tag as it appears on the wire, e.g. ":20:".
type FieldConstraintError struct {
	Tag   string
	Field string
	Rule  string
}

func (e FieldConstraintError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("%s %s", e.Field, e.Rule)
	}
	return fmt.Sprintf("%s %s %s", e.Tag, e.Field, e.Rule)
}

func (e FieldConstraintError) Unwrap() error {
	return ErrFieldConstraint
}

// ValidationError aggregates every violation found on a message.
type ValidationError struct {
	Violations []FieldConstraintError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Error())
	}
	return "message validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrFieldConstraint
}

// MissingDataError lists required payment fields absent from sparse input.
type MissingDataError struct {
	Fields []string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

func (e *MissingDataError) Unwrap() error {
	return ErrMissingData
}
