package middleware

import (
	"fmt"
	"net/http"

	"pet-adoption-api/internal/platform/respond"

	"github.com/cockroachdb/errors"
)

// Recover convierte un panic en un 500 con el sobre de error de la API.
// http.ErrAbortHandler se re-lanza para que net/http corte la conexión.
func Recover(eh *respond.ErrorHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				eh.Write(w, r, errors.Wrap(err, "panic"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
