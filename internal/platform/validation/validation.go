package validation

import (
	"reflect"
	"strings"
	"sync"

	"pet-adoption-api/internal/platform/apperr"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator devuelve la instancia compartida, configurada para reportar
// nombres de campo según el tag json.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
		validate = v
	})
	return validate
}

// Struct valida req y devuelve un error de validación con la forma
// "Validation error: campo: mensaje, campo: mensaje".
func Struct(req any) error {
	err := Validator().Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation("Validation error: " + err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldPath(fe)+": "+message(fe))
	}
	return apperr.Validation("Validation error: " + strings.Join(msgs, ", "))
}

// OneOf responde si v está en allowed.
func OneOf[T ~string](v T, allowed []T) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

// fieldPath quita el nombre del struct raíz: "createPetRequest.name" -> "name".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "Invalid email format"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "max":
		return "must be " + fe.Param() + " characters or less"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "datetime":
		return "must be a date in the format " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
