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

type CampaignService interface {
	List(ctx context.Context, filters CampaignFilters) ([]*models.Campaign, error)
	Create(ctx context.Context, req CampaignRequest) (*models.Campaign, error)
	Update(ctx context.Context, id uuid.UUID, req CampaignRequest) (*models.Campaign, error)
}

type CampaignFilters struct {
	Status string
	Type   string
	Search string
}

type CampaignRequest struct {
	Name           string                 `json:"name"`
	Type           string                 `json:"type"`
	Status         string                 `json:"status"`
	Budget         float64                `json:"budget"`
	Spent          float64                `json:"spent"`
	StartDate      string                 `json:"startDate"`
	EndDate        string                 `json:"endDate"`
	TargetAudience string                 `json:"targetAudience"`
	Goals          string                 `json:"goals"`
	Description    string                 `json:"description"`
	Channels       []string               `json:"channels"`
	Metrics        models.CampaignMetrics `json:"metrics"`
}

type campaignService struct {
	campaigns repositories.CampaignRepository
}

func NewCampaignService(campaigns repositories.CampaignRepository) CampaignService {
	return &campaignService{campaigns: campaigns}
}

func (s *campaignService) List(ctx context.Context, filters CampaignFilters) ([]*models.Campaign, error) {
	f := &scope.Filter{}
	f.Exact("status", filters.Status)
	f.Exact("type", filters.Type)
	f.Search(filters.Search, "name", "description")
	return s.campaigns.List(ctx, f)
}

func (s *campaignService) Create(ctx context.Context, req CampaignRequest) (*models.Campaign, error) {
	if req.Name == "" || req.Type == "" || req.StartDate == "" || req.EndDate == "" || req.Goals == "" {
		return nil, validationf("Name, type, start date, end date, and goals are required")
	}
	campaign := campaignFromRequest(uuid.New(), req)
	if campaign.Status == "" {
		campaign.Status = "Draft"
	}
	if err := s.campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *campaignService) Update(ctx context.Context, id uuid.UUID, req CampaignRequest) (*models.Campaign, error) {
	if req.Name == "" || req.Type == "" || req.StartDate == "" || req.EndDate == "" || req.Goals == "" {
		return nil, validationf("Name, type, start date, end date, and goals are required")
	}
	campaign := campaignFromRequest(id, req)
	if err := s.campaigns.Update(ctx, campaign); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return campaign, nil
}

func campaignFromRequest(id uuid.UUID, req CampaignRequest) *models.Campaign {
	return &models.Campaign{
		ID:             id,
		Name:           req.Name,
		Type:           req.Type,
		Status:         req.Status,
		Budget:         req.Budget,
		Spent:          req.Spent,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		TargetAudience: req.TargetAudience,
		Goals:          req.Goals,
		Description:    req.Description,
		Channels:       req.Channels,
		Metrics:        req.Metrics,
	}
}
