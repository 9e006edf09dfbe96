// Package apperr clasifica errores de dominio para que la capa HTTP
// derive el status code sin conocer los detalles de cada servicio.
package apperr

import (
	"fmt"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Clases de error. Se aplican con errors.Mark, así que sobreviven a Wrap.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	// ErrConflict cubre estados de dominio inválidos (mascota no disponible,
	// solicitud ya aprobada). Se responde 400, no 409.
	ErrConflict = errors.New("conflict")
	ErrStore    = errors.New("store error")
)

// ErrStore va primero: un fallo de escritura cuya causa fue un NotFound
// (p.ej. "Failed to update pet status: Pet not found") sigue siendo 500.
var statusByClass = []struct {
	class  error
	status int
}{
	{ErrStore, http.StatusInternalServerError},
	{ErrValidation, http.StatusBadRequest},
	{ErrConflict, http.StatusBadRequest},
	{ErrNotFound, http.StatusNotFound},
}

func Validation(msg string) error {
	return errors.Mark(errors.NewWithDepth(1, msg), ErrValidation)
}

func Validationf(format string, args ...any) error {
	return errors.Mark(errors.NewWithDepth(1, fmt.Sprintf(format, args...)), ErrValidation)
}

func NotFound(msg string) error {
	return errors.Mark(errors.NewWithDepth(1, msg), ErrNotFound)
}

func Conflict(msg string) error {
	return errors.Mark(errors.NewWithDepth(1, msg), ErrConflict)
}

func Conflictf(format string, args ...any) error {
	return errors.Mark(errors.NewWithDepth(1, fmt.Sprintf(format, args...)), ErrConflict)
}

// Store envuelve un error del record store: "msg: <causa>".
func Store(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Mark(errors.WrapWithDepth(1, err, msg), ErrStore)
}

// Storef es Store con un mensaje propio cuando no hay causa (p.ej. "no data returned").
func Storef(format string, args ...any) error {
	return errors.Mark(errors.NewWithDepth(1, fmt.Sprintf(format, args...)), ErrStore)
}

func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
func IsStore(err error) bool      { return errors.Is(err, ErrStore) }

// HTTPStatus devuelve el código asociado a la clase del error; 500 por defecto.
func HTTPStatus(err error) int {
	for _, c := range statusByClass {
		if errors.Is(err, c.class) {
			return c.status
		}
	}
	return http.StatusInternalServerError
}

// Stack devuelve la representación detallada (%+v) con stack trace.
func Stack(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", err)
}
