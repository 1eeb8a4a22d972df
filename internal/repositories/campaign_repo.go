package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"splybob/internal/models"
	"splybob/internal/scope"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *models.Campaign) error
	List(ctx context.Context, filter *scope.Filter) ([]*models.Campaign, error)
	Update(ctx context.Context, campaign *models.Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
}

type campaignRepo struct {
	db DB
}

func NewCampaignRepository(db DB) CampaignRepository {
	return &campaignRepo{db: db}
}

const campaignColumns = `id, name, type, status, budget, spent, start_date, end_date, target_audience, goals, description, channels, metrics, created_at, updated_at`

func (r *campaignRepo) Create(ctx context.Context, campaign *models.Campaign) error {
	channels, metrics, err := marshalCampaignJSON(campaign)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO campaigns (id, name, type, status, budget, spent, start_date, end_date, target_audience, goals, description, channels, metrics, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`
	_, err = r.db.Exec(ctx, query,
		campaign.ID, campaign.Name, campaign.Type, campaign.Status, campaign.Budget, campaign.Spent,
		campaign.StartDate, campaign.EndDate, campaign.TargetAudience, campaign.Goals,
		campaign.Description, channels, metrics)
	return err
}

func (r *campaignRepo) List(ctx context.Context, filter *scope.Filter) ([]*models.Campaign, error) {
	clause, args := filter.Clause()
	query := `SELECT ` + campaignColumns + ` FROM campaigns` + clause + ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []*models.Campaign{}
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}
	return campaigns, rows.Err()
}

func (r *campaignRepo) Update(ctx context.Context, campaign *models.Campaign) error {
	channels, metrics, err := marshalCampaignJSON(campaign)
	if err != nil {
		return err
	}
	query := `
		UPDATE campaigns
		SET name = $1, type = $2, status = $3, budget = $4, spent = $5, start_date = $6,
		    end_date = $7, target_audience = $8, goals = $9, description = $10, channels = $11,
		    metrics = $12, updated_at = NOW()
		WHERE id = $13
	`
	tag, err := r.db.Exec(ctx, query,
		campaign.Name, campaign.Type, campaign.Status, campaign.Budget, campaign.Spent,
		campaign.StartDate, campaign.EndDate, campaign.TargetAudience, campaign.Goals,
		campaign.Description, channels, metrics, campaign.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *campaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	row := r.db.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row)
}

func marshalCampaignJSON(campaign *models.Campaign) ([]byte, []byte, error) {
	if campaign.Channels == nil {
		campaign.Channels = []string{}
	}
	channels, err := json.Marshal(campaign.Channels)
	if err != nil {
		return nil, nil, err
	}
	metrics, err := json.Marshal(campaign.Metrics)
	if err != nil {
		return nil, nil, err
	}
	return channels, metrics, nil
}

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	campaign := &models.Campaign{}
	var channels, metrics []byte
	err := row.Scan(&campaign.ID, &campaign.Name, &campaign.Type, &campaign.Status,
		&campaign.Budget, &campaign.Spent, &campaign.StartDate, &campaign.EndDate,
		&campaign.TargetAudience, &campaign.Goals, &campaign.Description, &channels, &metrics,
		&campaign.CreatedAt, &campaign.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(channels) > 0 {
		if err := json.Unmarshal(channels, &campaign.Channels); err != nil {
			return nil, err
		}
	}
	if len(metrics) > 0 {
		if err := json.Unmarshal(metrics, &campaign.Metrics); err != nil {
			return nil, err
		}
	}
	return campaign, nil
}
