package http

import (
	"errors"
	"net/http"

	"swiftkit/internal/core"
)

func (h Handler) PostValidateBIC(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidateBICRequest
	if !h.decode(w, r, &req) {
		return
	}

	res := h.service.CheckBIC(ctx, req.BIC)
	h.metrics.observeValidation(core.IdentifierBIC, res.Valid)

	status := http.StatusOK
	if !res.Valid {
		status = http.StatusUnprocessableEntity
	}
	h.writeJSON(ctx, w, status, NewBICResponse(res))
}

func (h Handler) PostValidateIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidateIBANRequest
	if !h.decode(w, r, &req) {
		return
	}

	res := h.service.CheckIBAN(ctx, req.IBAN)
	h.metrics.observeValidation(core.IdentifierIBAN, res.Valid)

	status := http.StatusOK
	if !res.Valid {
		status = http.StatusUnprocessableEntity
	}
	h.writeJSON(ctx, w, status, NewIBANResponse(req.IBAN, res))
}

func (h Handler) PostGenerateIBAN(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req GenerateIBANRequest
	if !h.decode(w, r, &req) {
		return
	}

	generated, err := h.service.GenerateIBAN(ctx, req.CountryCode, req.BBAN)
	if err != nil {
		if errors.Is(err, core.ErrInvalidFormat) || errors.Is(err, core.ErrInvalidChecksum) {
			h.writeJSON(ctx, w, http.StatusUnprocessableEntity, NewErrorResponse(err, nil))
			return
		}

		h.logger.ErrorContext(ctx, "Failed to generate IBAN", "error", err)
		http.Error(w, "Failed to generate IBAN", http.StatusInternalServerError)
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, NewGenerateIBANResponse(generated))
}

func (h Handler) PostValidateIdentifiers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidateIdentifiersRequest
	if !h.decode(w, r, &req) {
		return
	}

	report, err := h.service.ValidateBatch(ctx, req.Type, req.Inputs)
	if err != nil {
		if errors.Is(err, core.ErrUnsupportedIdentifier) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		h.logger.ErrorContext(ctx, "Failed to validate identifiers", "error", err)
		http.Error(w, "Failed to validate identifiers", http.StatusInternalServerError)
		return
	}

	for _, c := range report.Results {
		h.metrics.observeValidation(report.Type, c.Valid)
	}

	h.writeJSON(ctx, w, http.StatusOK, report)
}
