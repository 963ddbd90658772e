package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"swiftkit/internal/bic"
	"swiftkit/internal/core"
	"swiftkit/internal/iban"
	"swiftkit/internal/mt103"
	"swiftkit/internal/service"
)

//go:generate go tool go.uber.org/mock/mockgen -source=handler.go -destination=service_mock.go -package=http

type PaymentService interface {
	CheckBIC(ctx context.Context, raw string) bic.Result
	CheckIBAN(ctx context.Context, raw string) iban.Result
	GenerateIBAN(ctx context.Context, countryCode, bban string) (iban.IBAN, error)
	ValidateBatch(ctx context.Context, kind string, inputs []string) (core.BatchReport, error)
	GeneratePain001(ctx context.Context, req service.Pain001Request) ([]byte, error)
	GenerateMT103(ctx context.Context, msg mt103.Message) (string, error)
}

type Handler struct {
	service  PaymentService
	logger   core.Logger
	metrics  *Metrics
	validate *validator.Validate
	now      func() time.Time
}

func NewHandler(paymentService PaymentService, logger core.Logger, metrics *Metrics) Handler {
	return Handler{
		service:  paymentService,
		logger:   logger,
		metrics:  metrics,
		validate: newValidator(),
		now:      time.Now,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// decode reads a JSON body into dst and runs the struct validation. It writes
// the 400 response itself and reports whether the handler may continue.
func (h Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		http.Error(w, "Validation failed: "+describeValidation(err), http.StatusBadRequest)
		return false
	}

	return true
}

func describeValidation(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		msgs = append(msgs, fmt.Sprintf("field '%s' failed on '%s'", fe.Field(), rule))
	}

	return strings.Join(msgs, ", ")
}

func (h Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.ErrorContext(ctx, "Failed to write response", "error", err)
	}
}
