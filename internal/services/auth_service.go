package services

import (
	"context"
	"strings"

	"splybob/internal/auth"
	"splybob/internal/models"
	"splybob/internal/repositories"

	"github.com/google/uuid"
)

const minPasswordLength = 6

// supplierStatusResolver is the slice of SupplierService the login flow
// needs: the status guard.
type supplierStatusResolver interface {
	StatusOf(ctx context.Context, ref string) (string, error)
}

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*models.User, string, error)
	ManagerLogin(ctx context.Context, email, password string) (*models.User, string, error)
	SupplierLogin(ctx context.Context, email, password string) (*models.User, string, error)
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

type SignupRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName"`
	SupplierID  string `json:"supplierId"`
}

type authService struct {
	users    repositories.UserRepository
	statuses supplierStatusResolver
	tokens   *auth.TokenService
}

func NewAuthService(users repositories.UserRepository, statuses supplierStatusResolver, tokens *auth.TokenService) AuthService {
	return &authService{users: users, statuses: statuses, tokens: tokens}
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (*models.User, string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return nil, "", validationf("Name, email, password, and role are required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, "", validationf("Password must be at least %d characters long", minPasswordLength)
	}
	if !models.ValidRole(req.Role) {
		return nil, "", validationf("Role must be either '%s' or '%s'", models.RoleManager, models.RoleSupplier)
	}
	if req.Role == models.RoleSupplier && req.SupplierID == "" {
		return nil, "", validationf("Supplier ID is required for supplier role")
	}

	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrDuplicateEmail
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		CompanyName:  req.CompanyName,
		SupplierID:   req.SupplierID,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent signup can slip past the lookup above; the unique
		// index on email is the authority.
		if repositories.IsUniqueViolation(err) {
			return nil, "", ErrDuplicateEmail
		}
		return nil, "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ManagerLogin authenticates a manager. A missing user and a wrong password
// produce the same error so the endpoint cannot be used to probe which
// emails exist.
func (s *authService) ManagerLogin(ctx context.Context, email, password string) (*models.User, string, error) {
	return s.login(ctx, email, password, models.RoleManager)
}

// SupplierLogin authenticates a supplier and additionally gates on the
// linked supplier profile's account status: anything other than active is
// rejected.
func (s *authService) SupplierLogin(ctx context.Context, email, password string) (*models.User, string, error) {
	user, token, err := s.login(ctx, email, password, models.RoleSupplier)
	if err != nil {
		return nil, "", err
	}
	if user.SupplierID != "" {
		status, err := s.statuses.StatusOf(ctx, user.SupplierID)
		if err != nil {
			return nil, "", err
		}
		if status != "" && !strings.EqualFold(status, models.SupplierStatusActive) {
			return nil, "", &AccountDisabledError{Status: status}
		}
	}
	return user, token, nil
}

func (s *authService) login(ctx context.Context, email, password, role string) (*models.User, string, error) {
	if email == "" || password == "" {
		return nil, "", validationf("Email and password are required")
	}
	user, err := s.users.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveToken verifies a bearer token and loads its user. Used by /me and
// the identity middleware; a dead token or a vanished user both resolve to
// nil rather than an error.
func (s *authService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	userID, ok := s.tokens.Verify(token)
	if !ok {
		return nil, nil
	}
	return s.users.GetByID(ctx, userID)
}
