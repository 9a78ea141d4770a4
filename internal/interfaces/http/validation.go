package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

// newValidator reporta los campos con su nombre json.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bind parsea el cuerpo JSON en out y aplica las reglas validate de sus campos.
func bind(c *fiber.Ctx, out any) error {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(out); err != nil {
			return &requestError{code: "INVALID_BODY", message: "cuerpo inválido"}
		}
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return &requestError{code: "VALIDATION", message: describe(verrs)}
		}
		return &requestError{code: "VALIDATION", message: "entrada inválida"}
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" es requerido")
		case "email":
			parts = append(parts, field+" debe ser un email válido")
		case "min":
			parts = append(parts, fmt.Sprintf("%s debe tener al menos %s", field, fe.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("%s admite como máximo %s", field, fe.Param()))
		case "eqfield":
			parts = append(parts, field+" no coincide")
		case "oneof":
			parts = append(parts, fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param()))
		default:
			parts = append(parts, field+" inválido")
		}
	}
	return strings.Join(parts, "; ")
}
