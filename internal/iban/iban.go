// Package iban validates International Bank Account Numbers and computes their
// ISO 7064 MOD-97 check digits.
//
// The checksum is reduced digit by digit so that numbers of any length are
// handled without arbitrary precision arithmetic.
package iban

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"swiftkit/internal/core"
	"swiftkit/internal/country"
)

const (
	MinLength = 15
	MaxLength = 34
)

var structure = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]+$`)

// lengths holds the total IBAN length per country (ISO 13616 registry).
var lengths = map[string]int{
	"AD": 24,
	"AT": 20,
	"BE": 16,
	"CH": 21,
	"CY": 28,
	"CZ": 24,
	"DE": 22,
	"DK": 18,
	"EE": 20,
	"ES": 24,
	"FI": 18,
	"FR": 27,
	"GB": 22,
	"GR": 27,
	"HR": 21,
	"HU": 28,
	"IE": 22,
	"IS": 26,
	"IT": 27,
	"LI": 21,
	"LT": 20,
	"LU": 20,
	"LV": 21,
	"MC": 27,
	"MT": 31,
	"NL": 18,
	"NO": 15,
	"PL": 28,
	"PT": 25,
	"RO": 24,
	"SE": 24,
	"SI": 19,
	"SK": 24,
}

// CountryInfo describes the country part of an IBAN. Length is 0 when the
// country is not in the registry.
type CountryInfo struct {
	Code   string
	Name   string
	Length int
}

func Country(code string) CountryInfo {
	return CountryInfo{
		Code:   code,
		Name:   country.Name(code),
		Length: lengths[code],
	}
}

// IBAN is a normalized account number: no whitespace, upper case.
type IBAN struct {
	raw string
}

// New normalizes raw by removing every whitespace character and upper-casing it.
func New(raw string) IBAN {
	normalized := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, raw)

	return IBAN{raw: normalized}
}

// Create builds an IBAN from an already normalized country code and BBAN.
func Create(countryCode, bban string) IBAN {
	return IBAN{raw: countryCode + GenerateCheckDigits(countryCode, bban) + bban}
}

func (i IBAN) String() string { return i.raw }

func (i IBAN) CountryCode() string { return i.slice(0, 2) }

func (i IBAN) CheckDigits() string { return i.slice(2, 4) }

func (i IBAN) BBAN() string { return i.slice(4, len(i.raw)) }

func (i IBAN) CountryName() string {
	return country.Name(i.CountryCode())
}

// Formatted groups the IBAN in blocks of four characters.
func (i IBAN) Formatted() string {
	var b strings.Builder
	n := 0
	for _, r := range i.raw {
		if n > 0 && n%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}

func (i IBAN) slice(from, to int) string {
	if from > len(i.raw) {
		return ""
	}
	if to > len(i.raw) {
		to = len(i.raw)
	}
	return i.raw[from:to]
}

// Result is the outcome of validating one IBAN. Err is a *core.FormatError or
// a *core.ChecksumError when Valid is false.
type Result struct {
	IBAN    IBAN
	Valid   bool
	Country CountryInfo
	Err     error
}

// Message renders the result for reports.
func (r Result) Message() string {
	if !r.Valid {
		return r.Err.Error()
	}
	return fmt.Sprintf("valid IBAN (%s)", r.Country.Name)
}

// Validate normalizes raw and checks structure, minimum length, registered
// country length and MOD-97 checksum, in that order. The first failing check
// is reported.
func Validate(raw string) Result {
	iban := New(raw)
	value := iban.raw
	res := Result{IBAN: iban, Country: Country(iban.CountryCode())}

	if !structure.MatchString(value) {
		res.Err = &core.FormatError{
			Kind:   "IBAN",
			Input:  value,
			Reason: "expected 2 letters country code followed by 2 check digits and an alphanumeric BBAN",
		}
		return res
	}

	if len(value) < MinLength {
		res.Err = &core.FormatError{
			Kind:   "IBAN",
			Input:  value,
			Reason: fmt.Sprintf("too short: %d characters, minimum %d", len(value), MinLength),
		}
		return res
	}

	if expected, ok := lengths[res.Country.Code]; ok && len(value) != expected {
		res.Err = &core.FormatError{
			Kind:  "IBAN",
			Input: value,
			Reason: fmt.Sprintf("wrong length for %s (%s): expected %d, got %d",
				res.Country.Code, res.Country.Name, expected, len(value)),
		}
		return res
	}

	if rem := mod97(value[4:] + value[:4]); rem != 1 {
		res.Err = &core.ChecksumError{Input: value, Remainder: rem}
		return res
	}

	res.Valid = true
	return res
}

// IsValid is a shorthand for Validate(raw).Valid.
func IsValid(raw string) bool {
	return Validate(raw).Valid
}

// GenerateCheckDigits computes the two check digits for countryCode and bban.
// Inputs are expected to be upper case without spaces.
func GenerateCheckDigits(countryCode, bban string) string {
	rem := mod97(bban + countryCode + "00")
	return fmt.Sprintf("%02d", 98-rem)
}

// mod97 maps letters to 10..35, keeps digits, and reduces the resulting
// decimal numeral modulo 97 from left to right.
func mod97(s string) int {
	acc := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			acc = (acc*10 + int(r-'0')) % 97
		case r >= 'A' && r <= 'Z':
			v := int(r-'A') + 10
			acc = (acc*100 + v) % 97
		case r >= 'a' && r <= 'z':
			v := int(r-'a') + 10
			acc = (acc*100 + v) % 97
		}
	}
	return acc
}
