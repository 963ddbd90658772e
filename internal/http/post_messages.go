package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftkit/internal/core"
	"swiftkit/internal/loader"
)

const (
	messagePain001 = "pain.001"
	messageMT103   = "mt103"
)

func (h Handler) PostPain001(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var cfg loader.PaymentConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req, err := cfg.Pain001Request(h.now())
	if err != nil {
		h.rejectMessage(w, r, messagePain001, err)
		return
	}

	out, err := h.service.GeneratePain001(ctx, req)
	if err != nil {
		h.metrics.MessageErrorTotal.WithLabelValues(messagePain001, "internal").Inc()
		h.logger.ErrorContext(ctx, "Failed to generate pain.001 message", "error", err)
		http.Error(w, "Failed to generate pain.001 message", http.StatusInternalServerError)
		return
	}

	h.metrics.MessageTotal.WithLabelValues(messagePain001).Inc()

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func (h Handler) PostMT103(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var cfg loader.PaymentConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	msg, err := cfg.MT103Message(h.now())
	if err != nil {
		h.rejectMessage(w, r, messageMT103, err)
		return
	}

	out, err := h.service.GenerateMT103(ctx, msg)
	if err != nil {
		h.rejectMessage(w, r, messageMT103, err)
		return
	}

	h.metrics.MessageTotal.WithLabelValues(messageMT103).Inc()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(out))
}

// rejectMessage maps loader and generation errors: missing input is a bad
// request, a rule violation is unprocessable, anything else is internal.
func (h Handler) rejectMessage(w http.ResponseWriter, r *http.Request, kind string, err error) {
	ctx := r.Context()

	if errors.Is(err, core.ErrMissingData) {
		h.metrics.MessageErrorTotal.WithLabelValues(kind, "missing_data").Inc()
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	if errors.Is(err, core.ErrFieldConstraint) {
		h.metrics.MessageErrorTotal.WithLabelValues(kind, "constraint").Inc()

		var violations []core.FieldConstraintError
		var validationErr *core.ValidationError
		var fieldErr core.FieldConstraintError
		switch {
		case errors.As(err, &validationErr):
			violations = validationErr.Violations
		case errors.As(err, &fieldErr):
			violations = []core.FieldConstraintError{fieldErr}
		}

		h.writeJSON(ctx, w, http.StatusUnprocessableEntity, NewErrorResponse(err, violations))
		return
	}

	h.metrics.MessageErrorTotal.WithLabelValues(kind, "internal").Inc()
	h.logger.ErrorContext(ctx, "Failed to generate message", "type", kind, "error", err)
	http.Error(w, "Failed to generate message", http.StatusInternalServerError)
}
