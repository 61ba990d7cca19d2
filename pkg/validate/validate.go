package validate

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct valida un DTO según sus tags `validate:` y devuelve un mensaje
// legible con los campos que fallaron, o "" si todo está bien.
func Struct(s any) string {
	err := v.Struct(s)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return strings.Join(msgs, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " es requerido"
	case "email":
		return fe.Field() + " no es un email válido"
	case "oneof":
		return fe.Field() + " debe ser uno de: " + fe.Param()
	case "min":
		return fe.Field() + " es demasiado corto (mín " + fe.Param() + ")"
	case "max":
		return fe.Field() + " es demasiado largo (máx " + fe.Param() + ")"
	case "gt":
		return fe.Field() + " debe ser mayor que " + fe.Param()
	default:
		return fe.Field() + " no cumple la regla " + fe.Tag()
	}
}
