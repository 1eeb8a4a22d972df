package common

import (
	"github.com/labstack/echo/v4"

	"splybob/internal/auth"
)

type contextKey string

// IdentityKey is where the identity middleware stores the resolved caller.
const IdentityKey contextKey = "identity"

// IdentityFromContext returns the caller identity set by the middleware.
// Requests that never passed through it resolve as anonymous.
func IdentityFromContext(c echo.Context) auth.Identity {
	if ident, ok := c.Get(string(IdentityKey)).(auth.Identity); ok {
		return ident
	}
	return auth.Anonymous()
}

// SetIdentity stores the resolved identity on the request context.
func SetIdentity(c echo.Context, ident auth.Identity) {
	c.Set(string(IdentityKey), ident)
}
