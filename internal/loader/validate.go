package loader

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"swiftkit/internal/core"
)

var validate = newValidator()

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

// missingFields runs the struct validation and reports failed fields by their
// document path, e.g. "payments[0].debtor.iban".
func missingFields(cfg PaymentConfig) ([]string, error) {
	err := validate.Struct(cfg)
	if err == nil {
		return nil, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, err
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		fields = append(fields, path)
	}

	return fields, nil
}

func missingDataError(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return &core.MissingDataError{Fields: fields}
}
