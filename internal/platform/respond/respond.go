// Package respond arma las respuestas JSON de la API: el sobre de éxito
// {status, data} y el de error {status, message, stack?}.
package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"strings"

	"pet-adoption-api/internal/platform/apperr"
	"pet-adoption-api/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/samber/lo"
)

const (
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusNotFound = "not found"
)

type Envelope struct {
	Status   string   `json:"status"`
	Data     any      `json:"data,omitempty"`
	Message  string   `json:"message,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
	Meta     any      `json:"meta,omitempty"`
}

type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// HandlerFunc es un handler que devuelve el error en vez de escribirlo.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success escribe {status:"success", data}. data nunca sale omitido: un
// listado vacío se serializa como [].
func Success(w http.ResponseWriter, status int, data any) {
	JSON(w, status, struct {
		Status string `json:"status"`
		Data   any    `json:"data"`
	}{StatusSuccess, data})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// DecodeJSON decodifica el body en dst. Con allowEmpty, un body vacío no es
// error y dst queda con sus valores por defecto.
func DecodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	if r.Body == nil {
		if allowEmpty {
			return nil
		}
		return apperr.Validation("Request body is required")
	}

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			if allowEmpty {
				return nil
			}
			return apperr.Validation("Request body is required")
		}
		return apperr.Validationf("Invalid JSON body: %s", err.Error())
	}
	return nil
}

// DecodePatch decodifica el body de un PATCH. Un campo en null se rechaza:
// los campos opcionales se omiten, no se anulan.
func DecodePatch(r *http.Request, dst any) error {
	if r.Body == nil {
		return apperr.Validation("Request body is required")
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return apperr.Validationf("Invalid JSON body: %s", err.Error())
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return apperr.Validation("Request body is required")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return apperr.Validationf("Invalid JSON body: %s", err.Error())
	}
	nulls := lo.Keys(lo.PickBy(fields, func(_ string, v json.RawMessage) bool {
		return string(bytes.TrimSpace(v)) == "null"
	}))
	if len(nulls) > 0 {
		sort.Strings(nulls)
		msgs := lo.Map(nulls, func(k string, _ int) string { return k + ": must not be null" })
		return apperr.Validation("Validation error: " + strings.Join(msgs, ", "))
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return apperr.Validationf("Invalid JSON body: %s", err.Error())
	}
	return nil
}

// ErrorHandler traduce errores a respuestas; es el único lugar que decide
// status code y si se expone el stack.
type ErrorHandler struct {
	log logger.Logger
	dev bool
}

func NewErrorHandler(log logger.Logger, dev bool) *ErrorHandler {
	if log == nil {
		log = logger.NewNop()
	}
	return &ErrorHandler{log: log, dev: dev}
}

func (h *ErrorHandler) Wrap(fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.Write(w, r, err)
		}
	}
}

func (h *ErrorHandler) Write(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		msg = http.StatusText(http.StatusInternalServerError)
	}

	fields := map[string]any{
		"status_code": status,
		"method":      r.Method,
		"path":        r.URL.Path,
		"request_id":  chimw.GetReqID(r.Context()),
		"error":       err,
	}
	if status >= http.StatusInternalServerError {
		h.log.Error("request failed", fields)
	} else {
		h.log.Debug("request rejected", fields)
	}

	body := ErrorBody{Status: StatusError, Message: msg}
	if h.dev {
		body.Stack = apperr.Stack(err)
	}
	JSON(w, status, body)
}

// NotFound es el catch-all para rutas que no existen.
func (h *ErrorHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusNotFound, ErrorBody{
		Status:  StatusNotFound,
		Message: "Not Found - " + r.URL.RequestURI(),
	})
}
