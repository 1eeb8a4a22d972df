package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"splybob/internal/auth"
	"splybob/internal/models"
)

type AuthServiceTestSuite struct {
	suite.Suite
	users    *mockUserRepo
	statuses *mockStatusResolver
	tokens   *auth.TokenService
	svc      AuthService
}

func (s *AuthServiceTestSuite) SetupTest() {
	s.users = new(mockUserRepo)
	s.statuses = new(mockStatusResolver)
	s.tokens = auth.NewTokenService("test-secret", time.Hour)
	s.svc = NewAuthService(s.users, s.statuses, s.tokens)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (s *AuthServiceTestSuite) validSignup() SignupRequest {
	return SignupRequest{
		Name:     "Jordan Blake",
		Email:    "jordan@example.com",
		Password: "secret1",
		Role:     models.RoleManager,
	}
}

func (s *AuthServiceTestSuite) TestSignupMissingFields() {
	req := s.validSignup()
	req.Email = ""
	_, _, err := s.svc.Signup(context.Background(), req)
	s.True(IsValidation(err))
	s.EqualError(err, "Name, email, password, and role are required")
}

func (s *AuthServiceTestSuite) TestSignupPasswordTooShort() {
	req := s.validSignup()
	req.Password = "12345"
	_, _, err := s.svc.Signup(context.Background(), req)
	s.True(IsValidation(err))
}

func (s *AuthServiceTestSuite) TestSignupPasswordBoundary() {
	req := s.validSignup()
	req.Password = "123456"
	s.users.On("GetByEmail", mock.Anything, req.Email).Return(nil, nil)
	s.users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)

	_, token, err := s.svc.Signup(context.Background(), req)
	s.NoError(err)
	s.NotEmpty(token)
}

func (s *AuthServiceTestSuite) TestSignupInvalidRole() {
	req := s.validSignup()
	req.Role = "admin"
	_, _, err := s.svc.Signup(context.Background(), req)
	s.True(IsValidation(err))
}

func (s *AuthServiceTestSuite) TestSignupSupplierRequiresSupplierID() {
	req := s.validSignup()
	req.Role = models.RoleSupplier
	_, _, err := s.svc.Signup(context.Background(), req)
	s.True(IsValidation(err))
	s.EqualError(err, "Supplier ID is required for supplier role")
}

func (s *AuthServiceTestSuite) TestSignupDuplicateEmail() {
	req := s.validSignup()
	s.users.On("GetByEmail", mock.Anything, req.Email).
		Return(&models.User{ID: uuid.New(), Email: req.Email}, nil)

	_, _, err := s.svc.Signup(context.Background(), req)
	s.ErrorIs(err, ErrDuplicateEmail)
}

func (s *AuthServiceTestSuite) TestSignupConcurrentDuplicate() {
	// The pre-insert lookup sees nothing but the insert itself trips the
	// unique index, as happens when two signups race.
	req := s.validSignup()
	s.users.On("GetByEmail", mock.Anything, req.Email).Return(nil, nil)
	s.users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Return(&pgconn.PgError{Code: "23505"})

	_, _, err := s.svc.Signup(context.Background(), req)
	s.ErrorIs(err, ErrDuplicateEmail)
}

func (s *AuthServiceTestSuite) TestSignupStoresHashNotPassword() {
	req := s.validSignup()
	var created *models.User
	s.users.On("GetByEmail", mock.Anything, req.Email).Return(nil, nil)
	s.users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.User)
		}).Return(nil)

	_, _, err := s.svc.Signup(context.Background(), req)
	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.NotEqual(req.Password, created.PasswordHash)
	s.True(auth.CheckPassword(req.Password, created.PasswordHash))
}

func (s *AuthServiceTestSuite) TestSignupThenLoginRoundTrip() {
	req := s.validSignup()
	var created *models.User
	s.users.On("GetByEmail", mock.Anything, req.Email).Return(nil, nil)
	s.users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.User)
		}).Return(nil)

	_, _, err := s.svc.Signup(context.Background(), req)
	s.Require().NoError(err)

	s.users.On("GetByEmailAndRole", mock.Anything, req.Email, models.RoleManager).
		Return(created, nil)
	user, token, err := s.svc.ManagerLogin(context.Background(), req.Email, req.Password)
	s.NoError(err)
	s.Equal(created.ID, user.ID)
	s.NotEmpty(token)
}

func (s *AuthServiceTestSuite) TestManagerLoginUnknownEmail() {
	s.users.On("GetByEmailAndRole", mock.Anything, "nobody@example.com", models.RoleManager).
		Return(nil, nil)

	_, _, err := s.svc.ManagerLogin(context.Background(), "nobody@example.com", "whatever")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestManagerLoginWrongPassword() {
	hash, err := auth.HashPassword("correct-password")
	s.Require().NoError(err)
	user := &models.User{ID: uuid.New(), Email: "m@example.com", PasswordHash: hash, Role: models.RoleManager}
	s.users.On("GetByEmailAndRole", mock.Anything, "m@example.com", models.RoleManager).
		Return(user, nil)

	_, _, err = s.svc.ManagerLogin(context.Background(), "m@example.com", "wrong-password")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestManagerLoginMissingFields() {
	_, _, err := s.svc.ManagerLogin(context.Background(), "", "")
	s.True(IsValidation(err))
	s.EqualError(err, "Email and password are required")
}

func (s *AuthServiceTestSuite) supplierUser(password, supplierRef string) *models.User {
	hash, err := auth.HashPassword(password)
	s.Require().NoError(err)
	return &models.User{
		ID:           uuid.New(),
		Name:         "Acme Corp",
		Email:        "acme@example.com",
		PasswordHash: hash,
		Role:         models.RoleSupplier,
		SupplierID:   supplierRef,
	}
}

func (s *AuthServiceTestSuite) TestSupplierLoginActive() {
	ref := uuid.New().String()
	user := s.supplierUser("secret1", ref)
	s.users.On("GetByEmailAndRole", mock.Anything, user.Email, models.RoleSupplier).Return(user, nil)
	s.statuses.On("StatusOf", mock.Anything, ref).Return(models.SupplierStatusActive, nil)

	got, token, err := s.svc.SupplierLogin(context.Background(), user.Email, "secret1")
	s.NoError(err)
	s.Equal(user.ID, got.ID)
	s.NotEmpty(token)
}

func (s *AuthServiceTestSuite) TestSupplierLoginStatusGateCaseInsensitive() {
	ref := uuid.New().String()
	user := s.supplierUser("secret1", ref)
	s.users.On("GetByEmailAndRole", mock.Anything, user.Email, models.RoleSupplier).Return(user, nil)
	// Legacy rows can still hold an uppercased status.
	s.statuses.On("StatusOf", mock.Anything, ref).Return("ACTIVE", nil)

	_, _, err := s.svc.SupplierLogin(context.Background(), user.Email, "secret1")
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestSupplierLoginRevoked() {
	ref := uuid.New().String()
	user := s.supplierUser("secret1", ref)
	s.users.On("GetByEmailAndRole", mock.Anything, user.Email, models.RoleSupplier).Return(user, nil)
	s.statuses.On("StatusOf", mock.Anything, ref).Return(models.SupplierStatusRevoked, nil)

	_, _, err := s.svc.SupplierLogin(context.Background(), user.Email, "secret1")
	var disabled *AccountDisabledError
	s.Require().ErrorAs(err, &disabled)
	s.Equal(models.SupplierStatusRevoked, disabled.Status)
	s.Contains(disabled.Error(), "Access denied. Your supplier account status is 'revoked'.")
}

func (s *AuthServiceTestSuite) TestSupplierLoginUnresolvableProfilePasses() {
	ref := "SUP-GONE"
	user := s.supplierUser("secret1", ref)
	s.users.On("GetByEmailAndRole", mock.Anything, user.Email, models.RoleSupplier).Return(user, nil)
	s.statuses.On("StatusOf", mock.Anything, ref).Return("", nil)

	_, _, err := s.svc.SupplierLogin(context.Background(), user.Email, "secret1")
	s.NoError(err)
}

func (s *AuthServiceTestSuite) TestSupplierLoginWrongPasswordSkipsStatusLookup() {
	user := s.supplierUser("secret1", uuid.New().String())
	s.users.On("GetByEmailAndRole", mock.Anything, user.Email, models.RoleSupplier).Return(user, nil)

	_, _, err := s.svc.SupplierLogin(context.Background(), user.Email, "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
	s.statuses.AssertNotCalled(s.T(), "StatusOf", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestResolveToken() {
	userID := uuid.New()
	token, err := s.tokens.Issue(userID)
	s.Require().NoError(err)

	want := &models.User{ID: userID, Role: models.RoleManager}
	s.users.On("GetByID", mock.Anything, userID).Return(want, nil)

	got, err := s.svc.ResolveToken(context.Background(), token)
	s.NoError(err)
	s.Equal(want, got)
}

func (s *AuthServiceTestSuite) TestResolveTokenDead() {
	got, err := s.svc.ResolveToken(context.Background(), "not-a-token")
	s.NoError(err)
	s.Nil(got)
	s.users.AssertNotCalled(s.T(), "GetByID", mock.Anything, mock.Anything)
}

func (s *AuthServiceTestSuite) TestResolveTokenVanishedUser() {
	userID := uuid.New()
	token, err := s.tokens.Issue(userID)
	s.Require().NoError(err)
	s.users.On("GetByID", mock.Anything, userID).Return(nil, nil)

	got, err := s.svc.ResolveToken(context.Background(), token)
	s.NoError(err)
	s.Nil(got)
}

func (s *AuthServiceTestSuite) TestLoginRepositoryError() {
	boom := errors.New("connection reset")
	s.users.On("GetByEmailAndRole", mock.Anything, "m@example.com", models.RoleManager).
		Return(nil, boom)

	_, _, err := s.svc.ManagerLogin(context.Background(), "m@example.com", "pw")
	s.ErrorIs(err, boom)
}
