package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "reparex/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessEnvelope(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, map[string]string{"nombre": "Ana"}))

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Nil(t, envelope.Error)
	assert.NotEmpty(t, envelope.Timestamp)
}

func TestErrorUsesAppErrorStatus(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, apperrors.Conflict("duplicate zone", nil)))

	assert.Equal(t, http.StatusConflict, rec.Code)

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
	assert.Equal(t, "duplicate zone", envelope.Error.Message)
}

func TestErrorHidesUnknownCauses(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, fmt.Errorf("pq: connection reset")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestErrorReportsFieldValidation(t *testing.T) {
	c, rec := newContext()

	type payload struct {
		Calle      string  `validate:"required"`
		Puntuacion float64 `validate:"gte=1,lte=5"`
	}
	err := validator.New().Struct(payload{Puntuacion: 9})
	require.Error(t, err)

	require.NoError(t, Error(c, err))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)

	details, ok := envelope.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, details, "calle")
	assert.Contains(t, details, "puntuacion")
}
