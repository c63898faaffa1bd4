package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-ledger/internal/domain/auth"
)

// Headers the client asserts identity with. They are trusted as-is; the
// service expects a gateway in front of it to have authenticated the caller.
const (
	HeaderUserID = "X-User-Id"
	HeaderAdmin  = "X-Admin"
)

const principalKey = "principal"

// ResolvePrincipal resolves the caller's identity headers once per request
// and stashes the result in the echo context for handlers downstream.
func ResolvePrincipal(res auth.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			adminAsserted := req.Header.Get(HeaderAdmin) == "true"
			p, err := res.Resolve(req.Context(), req.Header.Get(HeaderUserID), adminAsserted)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
			}
			c.Set(principalKey, p)
			return next(c)
		}
	}
}

// Principal returns the principal resolved for this request, or the zero
// (unauthenticated) principal when the middleware did not run.
func Principal(c echo.Context) auth.Principal {
	if p, ok := c.Get(principalKey).(auth.Principal); ok {
		return p
	}
	return auth.Principal{}
}
