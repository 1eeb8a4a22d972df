package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splybob/internal/common"
	"splybob/internal/models"
	"splybob/internal/services"
)

type tokenResolver func(token string) (*models.User, error)

func (r tokenResolver) Signup(context.Context, services.SignupRequest) (*models.User, string, error) {
	panic("not used")
}

func (r tokenResolver) ManagerLogin(context.Context, string, string) (*models.User, string, error) {
	panic("not used")
}

func (r tokenResolver) SupplierLogin(context.Context, string, string) (*models.User, string, error) {
	panic("not used")
}

func (r tokenResolver) ResolveToken(_ context.Context, token string) (*models.User, error) {
	return r(token)
}

func runIdentity(t *testing.T, resolver tokenResolver, authHeader string) (identity models.User, authenticated bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := ResolveIdentity(resolver)(func(c echo.Context) error {
		ident := common.IdentityFromContext(c)
		if user, ok := ident.User(); ok {
			identity = *user
			authenticated = true
		}
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return identity, authenticated
}

func TestResolveIdentityAuthenticated(t *testing.T) {
	user := &models.User{ID: uuid.New(), Name: "Acme", Role: models.RoleSupplier}
	resolver := tokenResolver(func(token string) (*models.User, error) {
		assert.Equal(t, "good-token", token)
		return user, nil
	})

	got, ok := runIdentity(t, resolver, "Bearer good-token")
	assert.True(t, ok)
	assert.Equal(t, user.ID, got.ID)
}

func TestResolveIdentityNoHeader(t *testing.T) {
	resolver := tokenResolver(func(string) (*models.User, error) {
		t.Fatal("resolver should not be called without a token")
		return nil, nil
	})

	_, ok := runIdentity(t, resolver, "")
	assert.False(t, ok)
}

func TestResolveIdentityDeadToken(t *testing.T) {
	resolver := tokenResolver(func(string) (*models.User, error) {
		return nil, nil
	})

	_, ok := runIdentity(t, resolver, "Bearer expired-token")
	assert.False(t, ok)
}

func TestResolveIdentityResolverErrorIsAnonymous(t *testing.T) {
	resolver := tokenResolver(func(string) (*models.User, error) {
		return nil, errors.New("store down")
	})

	_, ok := runIdentity(t, resolver, "Bearer some-token")
	assert.False(t, ok)
}

func TestResolveIdentityNonBearerScheme(t *testing.T) {
	resolver := tokenResolver(func(string) (*models.User, error) {
		t.Fatal("resolver should not be called for non-bearer auth")
		return nil, nil
	})

	_, ok := runIdentity(t, resolver, "Basic dXNlcjpwdw==")
	assert.False(t, ok)
}
