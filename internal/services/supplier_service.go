package services

import (
	"context"
	"errors"
	"fmt"

	"splybob/internal/auth"
	"splybob/internal/models"
	"splybob/internal/repositories"
	"splybob/internal/scope"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SupplierService interface {
	Provision(ctx context.Context, req ProvisionSupplierRequest) (*models.Supplier, error)
	List(ctx context.Context, filters SupplierFilters) ([]*models.Supplier, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*models.Supplier, error)
	StatusOf(ctx context.Context, ref string) (string, error)
}

// ProvisionSupplierRequest creates a supplier profile together with its
// login user.
type ProvisionSupplierRequest struct {
	Name           string   `json:"name"`
	ContactPerson  string   `json:"contactPerson"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Phone          string   `json:"phone"`
	Address        string   `json:"address"`
	Category       string   `json:"category"`
	Rating         *float64 `json:"rating"`
	OnTimeDelivery *float64 `json:"onTimeDelivery"`
	TotalOrders    *int     `json:"totalOrders"`
	TotalValue     *float64 `json:"totalValue"`
	Status         string   `json:"status"`
	SupplierCode   string   `json:"supplierCode"`
}

type UpdateSupplierRequest struct {
	Name           *string  `json:"name"`
	ContactPerson  *string  `json:"contactPerson"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Address        *string  `json:"address"`
	Category       *string  `json:"category"`
	Rating         *float64 `json:"rating"`
	OnTimeDelivery *float64 `json:"onTimeDelivery"`
	TotalOrders    *int     `json:"totalOrders"`
	TotalValue     *float64 `json:"totalValue"`
	Status         *string  `json:"status"`
}

type SupplierFilters struct {
	Status   string
	Category string
	Search   string
}

type supplierService struct {
	db        repositories.DB
	suppliers repositories.SupplierRepository
	users     repositories.UserRepository
}

func NewSupplierService(db repositories.DB, suppliers repositories.SupplierRepository, users repositories.UserRepository) SupplierService {
	return &supplierService{db: db, suppliers: suppliers, users: users}
}

// Provision creates the supplier profile and its linked login user in one
// transaction. Either both rows exist afterwards or neither does; a
// partially created pair is never visible to concurrent readers.
func (s *supplierService) Provision(ctx context.Context, req ProvisionSupplierRequest) (*models.Supplier, error) {
	if req.Name == "" || req.ContactPerson == "" || req.Email == "" {
		return nil, validationf("Name, contact person, and email are required")
	}
	if req.Password == "" {
		return nil, validationf("Password is required for supplier login")
	}
	status := models.NormalizeSupplierStatus(req.Status)
	if !models.ValidSupplierStatus(status) {
		return nil, validationf("Invalid supplier status '%s'", req.Status)
	}

	supplier := &models.Supplier{
		ID:             uuid.New(),
		Name:           req.Name,
		ContactPerson:  req.ContactPerson,
		Email:          repositories.NormalizeEmail(req.Email),
		Phone:          req.Phone,
		Address:        req.Address,
		Category:       req.Category,
		Rating:         floatOr(req.Rating, 5.0),
		OnTimeDelivery: floatOr(req.OnTimeDelivery, 100),
		TotalOrders:    intOr(req.TotalOrders, 0),
		TotalValue:     floatOr(req.TotalValue, 0),
		Status:         status,
		SupplierCode:   req.SupplierCode,
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:           uuid.New(),
		Name:         req.ContactPerson,
		Email:        supplier.Email,
		PasswordHash: hash,
		Role:         models.RoleSupplier,
		CompanyName:  req.Name,
		SupplierID:   supplier.ID.String(),
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.suppliers.CreateTx(ctx, tx, supplier); err != nil {
		return nil, mapProvisionErr(err)
	}
	if err := s.users.CreateTx(ctx, tx, user); err != nil {
		return nil, mapProvisionErr(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, mapProvisionErr(err)
	}
	return supplier, nil
}

func mapProvisionErr(err error) error {
	if repositories.IsUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return fmt.Errorf("provision supplier: %w", err)
}

func (s *supplierService) List(ctx context.Context, filters SupplierFilters) ([]*models.Supplier, error) {
	f := &scope.Filter{}
	if filters.Status != "" && filters.Status != scope.All {
		f.Exact("status", models.NormalizeSupplierStatus(filters.Status))
	}
	f.Match("category", filters.Category)
	f.Search(filters.Search, "name", "contact_person", "email")
	return s.suppliers.List(ctx, f)
}

func (s *supplierService) Get(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	supplier, err := s.suppliers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, ErrNotFound
	}
	return supplier, nil
}

func (s *supplierService) Update(ctx context.Context, id uuid.UUID, req UpdateSupplierRequest) (*models.Supplier, error) {
	supplier, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Email != nil {
		supplier.Email = repositories.NormalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.Category != nil {
		supplier.Category = *req.Category
	}
	if req.Rating != nil {
		supplier.Rating = *req.Rating
	}
	if req.OnTimeDelivery != nil {
		supplier.OnTimeDelivery = *req.OnTimeDelivery
	}
	if req.TotalOrders != nil {
		supplier.TotalOrders = *req.TotalOrders
	}
	if req.TotalValue != nil {
		supplier.TotalValue = *req.TotalValue
	}
	if req.Status != nil {
		status := models.NormalizeSupplierStatus(*req.Status)
		if !models.ValidSupplierStatus(status) {
			return nil, validationf("Invalid supplier status '%s'", *req.Status)
		}
		supplier.Status = status
	}

	if err := s.suppliers.Update(ctx, supplier); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return supplier, nil
}

// StatusOf resolves a supplier account status from a reference that is
// either the generated UUID or a legacy manually-assigned supplier code.
// Both paths exist because older rows were keyed by hand before generated
// identifiers were introduced. An unresolvable reference yields "".
func (s *supplierService) StatusOf(ctx context.Context, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}

	var supplier *models.Supplier
	var err error
	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		supplier, err = s.suppliers.GetByID(ctx, id)
	} else {
		supplier, err = s.suppliers.GetByCode(ctx, ref)
	}
	if err != nil {
		return "", err
	}
	if supplier == nil {
		return "", nil
	}
	return supplier.Status, nil
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
