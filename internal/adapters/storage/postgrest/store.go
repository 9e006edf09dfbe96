// Package postgrest implementa el record store sobre la API REST de Supabase
// (PostgREST). No hay transacciones multi-request: Atomic() == false.
package postgrest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"pet-adoption-api/internal/platform/httpclient"
	"pet-adoption-api/internal/ports/recordstore"
)

const restPath = "/rest/v1"

type Store struct {
	recordstore.NoTx
	http *httpclient.Client
}

// New arma el gateway contra projectURL (p.ej. https://xyz.supabase.co).
// opts.BaseURL y los headers de auth se completan acá.
func New(projectURL, apiKey string, opts httpclient.Options) (*Store, error) {
	opts.BaseURL = strings.TrimRight(projectURL, "/") + restPath
	headers := map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}
	opts.Headers = headers

	c, err := httpclient.New(opts)
	if err != nil {
		return nil, err
	}
	return &Store{http: c}, nil
}

func (s *Store) Table(name string) recordstore.Table {
	return &table{store: s, name: name}
}

type table struct {
	store *Store
	name  string
}

var returnRepresentation = map[string]string{"Prefer": "return=representation"}

func (t *table) Name() string { return t.name }

func (t *table) Select(ctx context.Context, f recordstore.Filter, o *recordstore.Order) ([]json.RawMessage, error) {
	q := filterQuery(f)
	q.Set("select", "*")
	if o != nil && o.Column != "" {
		dir := "asc"
		if o.Desc {
			dir = "desc"
		}
		q.Set("order", o.Column+"."+dir)
	}

	out := make([]json.RawMessage, 0)
	if err := t.store.http.DoJSON(ctx, http.MethodGet, t.path(q), nil, nil, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (t *table) Insert(ctx context.Context, v recordstore.Values) (json.RawMessage, error) {
	var out []json.RawMessage
	if err := t.store.http.DoJSON(ctx, http.MethodPost, t.path(nil), returnRepresentation, v, &out); err != nil {
		return nil, storeErr(err)
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (t *table) Update(ctx context.Context, f recordstore.Filter, v recordstore.Values) ([]json.RawMessage, error) {
	out := make([]json.RawMessage, 0)
	if err := t.store.http.DoJSON(ctx, http.MethodPatch, t.path(filterQuery(f)), returnRepresentation, v, &out); err != nil {
		return nil, storeErr(err)
	}
	return out, nil
}

func (t *table) Delete(ctx context.Context, f recordstore.Filter) error {
	return storeErr(t.store.http.DoJSON(ctx, http.MethodDelete, t.path(filterQuery(f)), nil, nil, nil))
}

func (t *table) path(q url.Values) string {
	p := "/" + url.PathEscape(t.name)
	if len(q) > 0 {
		p += "?" + q.Encode()
	}
	return p
}

// filterQuery traduce el filtro a la sintaxis col=op.valor de PostgREST.
func filterQuery(f recordstore.Filter) url.Values {
	q := url.Values{}
	for _, c := range f {
		q.Add(c.Column, string(c.Op)+"."+c.Value)
	}
	return q
}

// pgrstError es el cuerpo de error de PostgREST.
type pgrstError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func storeErr(err error) error {
	if err == nil {
		return nil
	}
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return err
	}

	var body pgrstError
	if jsonErr := json.Unmarshal([]byte(httpErr.Body), &body); jsonErr != nil || body.Message == "" {
		body.Message = http.StatusText(httpErr.StatusCode)
		if httpErr.Body != "" {
			body.Message = httpErr.Body
		}
	}
	return &recordstore.Error{
		Code:    body.Code,
		Message: body.Message,
		Details: body.Details,
		Hint:    body.Hint,
		Err:     err,
	}
}
