package services

import (
	"context"
	"errors"

	"splybob/internal/models"
	"splybob/internal/repositories"
	"splybob/internal/scope"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerService interface {
	List(ctx context.Context, filters CustomerFilters) ([]*models.Customer, error)
	Create(ctx context.Context, req CustomerRequest) (*models.Customer, error)
	Update(ctx context.Context, id uuid.UUID, req CustomerRequest) (*models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CustomerFilters struct {
	Status      string
	Industry    string
	CompanySize string
	AssignedTo  string
	Search      string
}

type CustomerRequest struct {
	Name           string  `json:"name"`
	ContactPerson  string  `json:"contactPerson"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	Country        string  `json:"country"`
	Industry       string  `json:"industry"`
	CompanySize    string  `json:"companySize"`
	Status         string  `json:"status"`
	EstimatedValue float64 `json:"estimatedValue"`
	ActualValue    float64 `json:"actualValue"`
	Notes          string  `json:"notes"`
	LastContact    string  `json:"lastContact"`
	AssignedTo     string  `json:"assignedTo"`
}

type customerService struct {
	customers repositories.CustomerRepository
}

func NewCustomerService(customers repositories.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) List(ctx context.Context, filters CustomerFilters) ([]*models.Customer, error) {
	f := &scope.Filter{}
	f.Exact("status", filters.Status)
	f.Match("industry", filters.Industry)
	f.Exact("company_size", filters.CompanySize)
	f.Match("assigned_to", filters.AssignedTo)
	f.Search(filters.Search, "name", "contact_person", "email")
	return s.customers.List(ctx, f)
}

func (s *customerService) Create(ctx context.Context, req CustomerRequest) (*models.Customer, error) {
	if req.Name == "" || req.ContactPerson == "" || req.Email == "" {
		return nil, validationf("Name, contact person, and email are required")
	}
	customer := customerFromRequest(uuid.New(), req)
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, id uuid.UUID, req CustomerRequest) (*models.Customer, error) {
	if req.Name == "" || req.ContactPerson == "" || req.Email == "" {
		return nil, validationf("Name, contact person, and email are required")
	}
	customer := customerFromRequest(id, req)
	if err := s.customers.Update(ctx, customer); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func customerFromRequest(id uuid.UUID, req CustomerRequest) *models.Customer {
	return &models.Customer{
		ID:             id,
		Name:           req.Name,
		ContactPerson:  req.ContactPerson,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		City:           req.City,
		Country:        req.Country,
		Industry:       req.Industry,
		CompanySize:    req.CompanySize,
		Status:         req.Status,
		EstimatedValue: req.EstimatedValue,
		ActualValue:    req.ActualValue,
		Notes:          req.Notes,
		LastContact:    req.LastContact,
		AssignedTo:     req.AssignedTo,
	}
}
