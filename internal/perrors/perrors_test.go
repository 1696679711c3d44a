package perrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		err    error
		status int
	}{
		{NewErrInvalidRequest("bad", cause), http.StatusBadRequest},
		{NewErrUnauthorized("no", cause), http.StatusUnauthorized},
		{NewErrForbidden("nope", cause), http.StatusForbidden},
		{NewErrNotFound("gone", cause), http.StatusNotFound},
		{NewErrConflict("dup", cause), http.StatusConflict},
		{NewErrInternalServerError("oops", cause), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		var perr Err
		require.ErrorAs(t, tt.err, &perr)
		assert.Equal(t, tt.status, perr.HttpStatus())
	}
}

func TestErrCarriesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := NewErrInternalServerError("Database unavailable", cause)

	var perr Err
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "pq: connection refused", perr.Error())
	assert.Equal(t, "Database unavailable", perr.Message)
	assert.NotEmpty(t, perr.Stacktrace)
}

func TestNilCause(t *testing.T) {
	var perr Err
	require.ErrorAs(t, NewErrNotFound("Task not found", nil), &perr)
	assert.Equal(t, "error missing", perr.Error())
}
