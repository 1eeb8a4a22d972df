package repositories

import (
	"context"
	"errors"

	"splybob/internal/models"
	"splybob/internal/scope"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	List(ctx context.Context, filter *scope.Filter) ([]*models.Lead, error)
	Update(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
}

type leadRepo struct {
	db DB
}

func NewLeadRepository(db DB) LeadRepository {
	return &leadRepo{db: db}
}

const leadColumns = `id, name, email, phone, company, position, source, status, priority, estimated_value, notes, assigned_to, next_follow_up, created_at, updated_at`

func (r *leadRepo) Create(ctx context.Context, lead *models.Lead) error {
	query := `
		INSERT INTO leads (id, name, email, phone, company, position, source, status, priority, estimated_value, notes, assigned_to, next_follow_up, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.Phone, lead.Company, lead.Position, lead.Source,
		lead.Status, lead.Priority, lead.EstimatedValue, lead.Notes, lead.AssignedTo, lead.NextFollowUp)
	return err
}

func (r *leadRepo) List(ctx context.Context, filter *scope.Filter) ([]*models.Lead, error) {
	clause, args := filter.Clause()
	query := `SELECT ` + leadColumns + ` FROM leads` + clause + ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []*models.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *leadRepo) Update(ctx context.Context, lead *models.Lead) error {
	query := `
		UPDATE leads
		SET name = $1, email = $2, phone = $3, company = $4, position = $5, source = $6,
		    status = $7, priority = $8, estimated_value = $9, notes = $10, assigned_to = $11,
		    next_follow_up = $12, updated_at = NOW()
		WHERE id = $13
	`
	tag, err := r.db.Exec(ctx, query,
		lead.Name, lead.Email, lead.Phone, lead.Company, lead.Position, lead.Source, lead.Status,
		lead.Priority, lead.EstimatedValue, lead.Notes, lead.AssignedTo, lead.NextFollowUp, lead.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *leadRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	row := r.db.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)
	return scanLead(row)
}

func scanLead(row pgx.Row) (*models.Lead, error) {
	lead := &models.Lead{}
	err := row.Scan(&lead.ID, &lead.Name, &lead.Email, &lead.Phone, &lead.Company, &lead.Position,
		&lead.Source, &lead.Status, &lead.Priority, &lead.EstimatedValue, &lead.Notes,
		&lead.AssignedTo, &lead.NextFollowUp, &lead.CreatedAt, &lead.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}
