package postgrest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pet-adoption-api/internal/platform/httpclient"
	"pet-adoption-api/internal/ports/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captured struct {
	method string
	path   string
	query  map[string][]string
	prefer string
	auth   string
	apikey string
	body   map[string]any
}

func newTestStore(t *testing.T, status int, resp string) (*Store, *captured) {
	t.Helper()
	got := &captured{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.Query()
		got.prefer = r.Header.Get("Prefer")
		got.auth = r.Header.Get("Authorization")
		got.apikey = r.Header.Get("apikey")
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &got.body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(resp))
	}))
	t.Cleanup(srv.Close)

	s, err := New(srv.URL+"/", "anon-key", httpclient.Options{Timeout: time.Second, RetryWait: time.Millisecond})
	require.NoError(t, err)
	return s, got
}

func TestSelectTranslatesFilterAndOrder(t *testing.T) {
	s, got := newTestStore(t, http.StatusOK, `[{"id":"a2"},{"id":"a1"}]`)

	rows, err := s.Table("applications").Select(context.Background(),
		recordstore.Where(recordstore.Eq("pet_id", "p1"), recordstore.Neq("id", "a3")),
		&recordstore.NewestFirst,
	)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/rest/v1/applications", got.path)
	assert.Equal(t, []string{"*"}, got.query["select"])
	assert.Equal(t, []string{"eq.p1"}, got.query["pet_id"])
	assert.Equal(t, []string{"neq.a3"}, got.query["id"])
	assert.Equal(t, []string{"created_at.desc"}, got.query["order"])
	assert.Equal(t, "anon-key", got.apikey)
	assert.Equal(t, "Bearer anon-key", got.auth)
}

func TestInsertAsksForRepresentation(t *testing.T) {
	s, got := newTestStore(t, http.StatusCreated, `[{"id":"p1","name":"Milo"}]`)

	row, err := s.Table("pets").Insert(context.Background(), recordstore.Values{"name": "Milo", "type": "cat"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"p1","name":"Milo"}`, string(row))

	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "return=representation", got.prefer)
	assert.Equal(t, "Milo", got.body["name"])
}

func TestUpdateReturnsMatchedRows(t *testing.T) {
	s, got := newTestStore(t, http.StatusOK, `[]`)

	rows, err := s.Table("applications").Update(context.Background(),
		recordstore.Where(recordstore.Eq("id", "a1"), recordstore.Eq("status", "pending")),
		recordstore.Values{"status": "approved"},
	)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	assert.Equal(t, http.MethodPatch, got.method)
	assert.Equal(t, []string{"eq.a1"}, got.query["id"])
	assert.Equal(t, []string{"eq.pending"}, got.query["status"])
	assert.Equal(t, "approved", got.body["status"])
}

func TestDelete(t *testing.T) {
	s, got := newTestStore(t, http.StatusNoContent, ``)

	require.NoError(t, s.Table("pets").Delete(context.Background(), recordstore.Where(recordstore.Eq("id", "p1"))))
	assert.Equal(t, http.MethodDelete, got.method)
	assert.Equal(t, []string{"eq.p1"}, got.query["id"])
}

func TestErrorBodyBecomesStoreError(t *testing.T) {
	s, _ := newTestStore(t, http.StatusConflict, `{"code":"23503","message":"insert or update on table \"applications\" violates foreign key constraint","details":"Key is not present in table \"pets\".","hint":null}`)

	_, err := s.Table("applications").Insert(context.Background(), recordstore.Values{"pet_id": "p404"})

	var storeErr *recordstore.Error
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "23503", storeErr.Code)
	assert.Contains(t, err.Error(), "violates foreign key constraint")
	assert.Contains(t, storeErr.Details, "pets")
}

func TestNonJSONErrorKeepsBody(t *testing.T) {
	s, _ := newTestStore(t, http.StatusBadGateway, `upstream down`)

	_, err := s.Table("pets").Select(context.Background(), nil, nil)
	require.Error(t, err)
	assert.Equal(t, "upstream down", err.Error())
}

func TestNotAtomic(t *testing.T) {
	s, _ := newTestStore(t, http.StatusOK, `[]`)
	assert.False(t, s.Atomic())
}
