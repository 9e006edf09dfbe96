package apperr

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("Validation error: name: is required"), http.StatusBadRequest},
		{"conflict", Conflict("Application is already approved"), http.StatusBadRequest},
		{"not found", NotFound("Pet not found"), http.StatusNotFound},
		{"store", Store(errors.New("connection refused"), "Failed to fetch pets"), http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("outer: %w", NotFound("x")), http.StatusNotFound},
		{"store over not found", Store(NotFound("Pet not found"), "Failed to update pet status"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestStoreWrapsCauseText(t *testing.T) {
	err := Store(errors.New("relation \"pets\" does not exist"), "Failed to fetch pets")
	assert.Equal(t, `Failed to fetch pets: relation "pets" does not exist`, err.Error())
	assert.True(t, IsStore(err))
	assert.False(t, IsNotFound(err))
	assert.Nil(t, Store(nil, "ignored"))
}

func TestClassesSurviveWrap(t *testing.T) {
	base := Conflictf("Cannot approve application with status: %s", "rejected")
	wrapped := errors.Wrap(base, "approve")

	assert.True(t, IsConflict(wrapped))
	assert.Equal(t, "approve: Cannot approve application with status: rejected", wrapped.Error())
	assert.Contains(t, Stack(wrapped), "apperr_test.go")
}
