package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	uid   string
	email string
	err   error
}

func (s *stubVerifier) VerifyToken(ctx context.Context, idToken string) (string, string, error) {
	if s.err != nil {
		return "", "", s.err
	}
	return s.uid, s.email, nil
}

func runAuthenticate(m *AuthMiddleware, authHeader string) (echo.Context, *httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/firebase-register", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}

	err := m.Authenticate(next)(c)
	return c, rec, err
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubVerifier{})

	_, rec, err := runAuthenticate(m, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthenticateBadFormat(t *testing.T) {
	m := NewAuthMiddleware(&stubVerifier{})

	_, rec, _ := runAuthenticate(m, "Basic abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubVerifier{err: assert.AnError})

	_, rec, _ := runAuthenticate(m, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateSetsIdentity(t *testing.T) {
	m := NewAuthMiddleware(&stubVerifier{uid: "uid-1", email: "ana@example.com"})

	c, rec, err := runAuthenticate(m, "Bearer good-token")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "uid-1", c.Get("uid"))
	assert.Equal(t, "ana@example.com", c.Get("email"))
}
