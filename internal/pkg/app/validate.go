package app

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ParseBody decodes the request body into dto and validates it. Every
// failure is reported as a ValidationError.
func ParseBody(ctx *fiber.Ctx, dto any) error {
	if err := ctx.BodyParser(dto); err != nil && len(ctx.Body()) > 0 {
		return pkgErrors.NewValidationError("The request body is malformed.")
	}
	return Validate(dto)
}

func Validate(dto any) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !pkgErrors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}

	return pkgErrors.NewValidationError(messages...)
}

func fieldMessage(fieldErr validator.FieldError) string {
	field := strings.ReplaceAll(fieldErr.Field(), "_", " ")

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "datetime":
		return fmt.Sprintf("The %s is not a valid date.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fieldErr.Param())
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}
