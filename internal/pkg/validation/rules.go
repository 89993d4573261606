package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yigit/campus/internal/pkg/apperrors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report attribute names as they appear on the wire
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates attrs against its validate tags. Violations are returned
// as *apperrors.ValidationError whose messages are prefixed with model, the
// table the attributes belong to.
func Struct(model string, attrs interface{}) error {
	err := validate.Struct(attrs)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	violations := make([]apperrors.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, formatViolation(model, fe))
	}
	return apperrors.NewValidationError(violations...)
}

// formatViolation creates a human-readable violation for a failed rule
func formatViolation(model string, e validator.FieldError) apperrors.Violation {
	v := apperrors.Violation{Path: e.Field()}
	if e.Tag() == "required" {
		v.Type = "notNull Violation"
		v.Message = model + "." + e.Field() + " cannot be null"
		return v
	}
	v.Type = "Validation error"
	v.Message = e.Field() + " validation failed: " + e.Tag()
	v.Value = e.Value()
	return v
}
