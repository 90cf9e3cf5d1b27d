package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatusCodes(t *testing.T) {
	cases := []struct {
		err    *AppError
		code   string
		status int
	}{
		{NotFound("Job", nil), "NOT_FOUND", http.StatusNotFound},
		{BadRequest("bad input", nil), "VALIDATION_ERROR", http.StatusBadRequest},
		{Unauthorized("no token", nil), "UNAUTHORIZED", http.StatusUnauthorized},
		{Conflict("duplicate", nil), "CONFLICT", http.StatusConflict},
		{InvalidTransition("pendiente", "completado"), "INVALID_TRANSITION", http.StatusConflict},
		{MethodNotAllowed("disabled"), "METHOD_NOT_ALLOWED", http.StatusMethodNotAllowed},
		{Internal("boom", nil), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.code, tc.err.Code)
		assert.Equal(t, tc.status, tc.err.Status)
	}
}

func TestIsMatchesWrappedError(t *testing.T) {
	err := fmt.Errorf("loading job: %w", NotFound("Job", nil))

	assert.True(t, Is(err, "NOT_FOUND"))
	assert.False(t, Is(err, "CONFLICT"))
	assert.False(t, Is(fmt.Errorf("plain"), "NOT_FOUND"))
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("driver failure")
	err := Internal("query failed", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.Equal(t, "INTERNAL_ERROR: query failed", err.Error())
}
