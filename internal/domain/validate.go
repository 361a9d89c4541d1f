package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	v.RegisterStructValidation(validateTour, Tour{})

	return v
}

func validateTour(sl validator.StructLevel) {
	t := sl.Current().Interface().(Tour)
	if t.PriceDiscount != nil && *t.PriceDiscount >= t.Price {
		sl.ReportError(*t.PriceDiscount, "priceDiscount", "PriceDiscount", "discount", "")
	}
}

// Validate checks v against its struct tags and record rules.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, message(fe))
	}
	return NewInvalidInput(msgs...)
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Missing %s", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must have at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must have at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be above or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be below or equal to %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must have exactly %s values", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s is either: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return "Please provide a valid email"
	case "eqfield":
		return "Passwords are not the same!"
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	case "discount":
		return fmt.Sprintf("Discount price (%v) should be below regular price", fe.Value())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
