package auth

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

const userIDContextKey = "user_id"

// RequireAuth returns echo middleware that verifies the bearer token on each
// request and injects the resolved user id into the context. Cross-origin
// preflight requests short-circuit with an empty success response before any
// authentication runs.
func RequireAuth(jwtService *JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "Token missing"})
			}

			userID, err := jwtService.Verify(header)
			if err != nil {
				switch {
				case errors.Is(err, ErrTokenExpired):
					return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "Token expired"})
				case errors.Is(err, ErrTokenInvalid):
					return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
				default:
					return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
				}
			}

			c.Set(userIDContextKey, userID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id injected by RequireAuth.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(userIDContextKey).(uint)
	return id, ok
}
