package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func callMiddleware(t *testing.T, jwtService *JWTService, method, authHeader string) (error, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, "/predict", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	invoked := false
	handler := RequireAuth(jwtService)(func(c echo.Context) error {
		invoked = true
		return c.NoContent(http.StatusOK)
	})
	err := handler(c)
	return err, invoked
}

func TestRequireAuth_MissingToken(t *testing.T) {
	err, invoked := callMiddleware(t, NewJWTService("test-secret"), http.MethodPost, "")

	assert.False(t, invoked)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, map[string]string{"error": "Token missing"}, httpErr.Message)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	err, invoked := callMiddleware(t, NewJWTService("test-secret"), http.MethodPost, "Bearer garbage")

	assert.False(t, invoked)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, map[string]string{"error": "Invalid token"}, httpErr.Message)
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	claims := &Claims{
		UserID: 42,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	err, invoked := callMiddleware(t, NewJWTService("test-secret"), http.MethodPost, "Bearer "+token)

	assert.False(t, invoked)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Equal(t, map[string]string{"error": "Token expired"}, httpErr.Message)
}

func TestRequireAuth_ValidTokenInjectsUserID(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	token, err := jwtService.Issue(42)
	assert.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/predict", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotID uint
	var gotOK bool
	handler := RequireAuth(jwtService)(func(c echo.Context) error {
		gotID, gotOK = UserID(c)
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, handler(c))
	assert.True(t, gotOK)
	assert.Equal(t, uint(42), gotID)
}

func TestRequireAuth_TokenWithoutBearerPrefix(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	token, err := jwtService.Issue(42)
	assert.NoError(t, err)

	err, invoked := callMiddleware(t, jwtService, http.MethodPost, token)

	assert.NoError(t, err)
	assert.True(t, invoked)
}

func TestRequireAuth_PreflightShortCircuits(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodOptions, "/predict", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	invoked := false
	handler := RequireAuth(NewJWTService("test-secret"))(func(c echo.Context) error {
		invoked = true
		return nil
	})

	assert.NoError(t, handler(c))
	assert.False(t, invoked)
	assert.Equal(t, http.StatusOK, rec.Code)
}
