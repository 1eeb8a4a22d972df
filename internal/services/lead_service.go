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

type LeadService interface {
	List(ctx context.Context, filters LeadFilters) ([]*models.Lead, error)
	Create(ctx context.Context, req LeadRequest) (*models.Lead, error)
	Update(ctx context.Context, id uuid.UUID, req LeadRequest) (*models.Lead, error)
}

type LeadFilters struct {
	Status     string
	Priority   string
	Source     string
	AssignedTo string
	Search     string
}

type LeadRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Company        string  `json:"company"`
	Position       string  `json:"position"`
	Source         string  `json:"source"`
	Status         string  `json:"status"`
	Priority       string  `json:"priority"`
	EstimatedValue float64 `json:"estimatedValue"`
	Notes          string  `json:"notes"`
	AssignedTo     string  `json:"assignedTo"`
	NextFollowUp   string  `json:"nextFollowUp"`
}

type leadService struct {
	leads repositories.LeadRepository
}

func NewLeadService(leads repositories.LeadRepository) LeadService {
	return &leadService{leads: leads}
}

func (s *leadService) List(ctx context.Context, filters LeadFilters) ([]*models.Lead, error) {
	f := &scope.Filter{}
	f.Exact("status", filters.Status)
	f.Exact("priority", filters.Priority)
	f.Exact("source", filters.Source)
	f.Match("assigned_to", filters.AssignedTo)
	f.Search(filters.Search, "name", "company", "email")
	return s.leads.List(ctx, f)
}

func (s *leadService) Create(ctx context.Context, req LeadRequest) (*models.Lead, error) {
	if req.Name == "" || req.Email == "" || req.Company == "" || req.AssignedTo == "" {
		return nil, validationf("Name, email, company, and assigned to are required")
	}
	lead := leadFromRequest(uuid.New(), req)
	if lead.Status == "" {
		lead.Status = "New"
	}
	if lead.Priority == "" {
		lead.Priority = "Medium"
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *leadService) Update(ctx context.Context, id uuid.UUID, req LeadRequest) (*models.Lead, error) {
	if req.Name == "" || req.Email == "" || req.Company == "" || req.AssignedTo == "" {
		return nil, validationf("Name, email, company, and assigned to are required")
	}
	lead := leadFromRequest(id, req)
	if err := s.leads.Update(ctx, lead); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return lead, nil
}

func leadFromRequest(id uuid.UUID, req LeadRequest) *models.Lead {
	return &models.Lead{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Company:        req.Company,
		Position:       req.Position,
		Source:         req.Source,
		Status:         req.Status,
		Priority:       req.Priority,
		EstimatedValue: req.EstimatedValue,
		Notes:          req.Notes,
		AssignedTo:     req.AssignedTo,
		NextFollowUp:   req.NextFollowUp,
	}
}
