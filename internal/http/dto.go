package http

import (
	"swiftkit/internal/bic"
	"swiftkit/internal/core"
	"swiftkit/internal/iban"
)

type ValidateBICRequest struct {
	BIC string `json:"bic" validate:"required"`
}

type ValidateIBANRequest struct {
	IBAN string `json:"iban" validate:"required"`
}

type GenerateIBANRequest struct {
	CountryCode string `json:"country_code" validate:"required,len=2,alpha"`
	BBAN        string `json:"bban" validate:"required,max=30"`
}

type ValidateIdentifiersRequest struct {
	Type   string   `json:"type" validate:"required,oneof=bic iban"`
	Inputs []string `json:"inputs" validate:"required,min=1,max=10000"`
}

type BICResponse struct {
	Input           string `json:"input"`
	Valid           bool   `json:"valid"`
	Message         string `json:"message"`
	BankCode        string `json:"bank_code,omitempty"`
	CountryCode     string `json:"country_code,omitempty"`
	CountryName     string `json:"country_name,omitempty"`
	LocationCode    string `json:"location_code,omitempty"`
	BranchCode      string `json:"branch_code,omitempty"`
	IsPrimaryOffice bool   `json:"is_primary_office,omitempty"`
	Institution     string `json:"institution,omitempty"`
}

func NewBICResponse(res bic.Result) BICResponse {
	resp := BICResponse{
		Input:   res.Input,
		Valid:   res.Valid,
		Message: res.Message(),
	}
	if !res.Valid {
		return resp
	}

	resp.BankCode = res.Code.BankCode()
	resp.CountryCode = res.Code.CountryCode()
	resp.CountryName = res.Code.CountryName()
	resp.LocationCode = res.Code.LocationCode()
	resp.BranchCode, _ = res.Code.BranchCode()
	resp.IsPrimaryOffice = res.Code.IsPrimaryOffice()
	resp.Institution, _ = res.Code.InstitutionName()

	return resp
}

type IBANResponse struct {
	Input       string `json:"input"`
	Formatted   string `json:"formatted"`
	Valid       bool   `json:"valid"`
	Message     string `json:"message"`
	CountryCode string `json:"country_code,omitempty"`
	CountryName string `json:"country_name,omitempty"`
	CheckDigits string `json:"check_digits,omitempty"`
	BBAN        string `json:"bban,omitempty"`
}

func NewIBANResponse(input string, res iban.Result) IBANResponse {
	resp := IBANResponse{
		Input:     input,
		Formatted: res.IBAN.Formatted(),
		Valid:     res.Valid,
		Message:   res.Message(),
	}
	if !res.Valid {
		return resp
	}

	resp.CountryCode = res.IBAN.CountryCode()
	resp.CountryName = res.Country.Name
	resp.CheckDigits = res.IBAN.CheckDigits()
	resp.BBAN = res.IBAN.BBAN()

	return resp
}

type GenerateIBANResponse struct {
	IBAN        string `json:"iban"`
	Formatted   string `json:"formatted"`
	CheckDigits string `json:"check_digits"`
	CountryName string `json:"country_name"`
}

func NewGenerateIBANResponse(generated iban.IBAN) GenerateIBANResponse {
	return GenerateIBANResponse{
		IBAN:        generated.String(),
		Formatted:   generated.Formatted(),
		CheckDigits: generated.CheckDigits(),
		CountryName: generated.CountryName(),
	}
}

type ErrorResponse struct {
	Error      string          `json:"error"`
	Violations []ViolationItem `json:"violations,omitempty"`
}

type ViolationItem struct {
	Tag   string `json:"tag,omitempty"`
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func NewErrorResponse(err error, violations []core.FieldConstraintError) ErrorResponse {
	resp := ErrorResponse{Error: err.Error()}
	for _, v := range violations {
		resp.Violations = append(resp.Violations, ViolationItem{Tag: v.Tag, Field: v.Field, Rule: v.Rule})
	}

	return resp
}
