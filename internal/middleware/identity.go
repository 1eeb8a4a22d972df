package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"splybob/internal/auth"
	"splybob/internal/common"
	"splybob/internal/services"
)

// ResolveIdentity attaches the caller identity to every request. A missing,
// malformed, expired, or orphaned token resolves to anonymous rather than an
// error; handlers that require authentication reject anonymous callers
// themselves.
func ResolveIdentity(authSvc services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			common.SetIdentity(c, auth.Anonymous())

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := bearerToken(header)
			if !ok {
				return next(c)
			}

			user, err := authSvc.ResolveToken(c.Request().Context(), token)
			if err != nil {
				log.Warn().Err(err).Msg("token resolution failed")
				return next(c)
			}
			if user != nil {
				common.SetIdentity(c, auth.Authenticated(user))
			}
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
