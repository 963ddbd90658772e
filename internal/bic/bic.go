// Package bic parses Bank Identifier Codes.
package bic

import (
	"fmt"
	"regexp"
	"strings"

	"swiftkit/internal/core"
	"swiftkit/internal/country"
)

const primaryOfficeBranch = "XXX"

var pattern = regexp.MustCompile(`^([A-Z]{4})([A-Z]{2})([A-Z0-9]{2})([A-Z0-9]{3})?$`)

// Known maps the 8-character base of well-known institutions to their names.
var Known = map[string]string{
	"BNPAFRPP": "BNP Paribas (France)",
	"COBADEFF": "Commerzbank (Germany)",
	"DEUTDEFF": "Deutsche Bank (Germany)",
	"BARCGB22": "Barclays (United Kingdom)",
	"CHASUS33": "JPMorgan Chase (United States)",
	"SOGEFRPP": "Société Générale (France)",
	"CRLYFRPP": "Crédit Lyonnais (France)",
	"AGRIFRPP": "Crédit Agricole (France)",
}

// BICCode is a parsed BIC. The zero value is not a valid code; use Parse.
type BICCode struct {
	bankCode     string
	countryCode  string
	locationCode string
	branchCode   string
}

func (c BICCode) BankCode() string     { return c.bankCode }
func (c BICCode) CountryCode() string  { return c.countryCode }
func (c BICCode) LocationCode() string { return c.locationCode }

// BranchCode returns the branch code and whether one was present.
func (c BICCode) BranchCode() (string, bool) {
	return c.branchCode, c.branchCode != ""
}

func (c BICCode) FullCode() string {
	return c.bankCode + c.countryCode + c.locationCode + c.branchCode
}

// IsPrimaryOffice reports whether the code has no branch or the "XXX" branch.
func (c BICCode) IsPrimaryOffice() bool {
	return c.branchCode == "" || c.branchCode == primaryOfficeBranch
}

func (c BICCode) CountryName() string {
	return country.Name(c.countryCode)
}

// InstitutionName returns the name of a well-known institution, if any.
func (c BICCode) InstitutionName() (string, bool) {
	name, ok := Known[c.bankCode+c.countryCode+c.locationCode]
	return name, ok
}

func (c BICCode) String() string {
	return c.FullCode()
}

// Parse trims and upper-cases raw and splits it into its four fields.
func Parse(raw string) (BICCode, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))

	if len(code) != 8 && len(code) != 11 {
		return BICCode{}, &core.FormatError{
			Kind:   "BIC",
			Input:  raw,
			Reason: fmt.Sprintf("expected 8 or 11 characters, got %d", len(code)),
		}
	}

	m := pattern.FindStringSubmatch(code)
	if m == nil {
		return BICCode{}, &core.FormatError{
			Kind:   "BIC",
			Input:  raw,
			Reason: "expected 4 letters bank code, 2 letters country code, 2 alphanumeric location code and optional 3 alphanumeric branch code",
		}
	}

	return BICCode{
		bankCode:     m[1],
		countryCode:  m[2],
		locationCode: m[3],
		branchCode:   m[4],
	}, nil
}

func Validate(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Result is the outcome of checking one raw BIC.
type Result struct {
	Input string
	Code  BICCode
	Valid bool
	Err   error
}

func Check(raw string) Result {
	code, err := Parse(raw)
	return Result{
		Input: raw,
		Code:  code,
		Valid: err == nil,
		Err:   err,
	}
}

// Message renders the result for reports.
func (r Result) Message() string {
	if !r.Valid {
		return r.Err.Error()
	}
	return fmt.Sprintf("valid BIC: %s (%s)", r.Code.FullCode(), r.Code.CountryName())
}
