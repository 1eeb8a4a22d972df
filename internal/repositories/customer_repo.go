package repositories

import (
	"context"
	"errors"

	"splybob/internal/models"
	"splybob/internal/scope"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	List(ctx context.Context, filter *scope.Filter) ([]*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

type customerRepo struct {
	db DB
}

func NewCustomerRepository(db DB) CustomerRepository {
	return &customerRepo{db: db}
}

const customerColumns = `id, name, contact_person, email, phone, address, city, country, industry, company_size, status, estimated_value, actual_value, notes, last_contact, assigned_to, created_at, updated_at`

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (id, name, contact_person, email, phone, address, city, country, industry, company_size, status, estimated_value, actual_value, notes, last_contact, assigned_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		customer.ID, customer.Name, customer.ContactPerson, customer.Email, customer.Phone,
		customer.Address, customer.City, customer.Country, customer.Industry, customer.CompanySize,
		customer.Status, customer.EstimatedValue, customer.ActualValue, customer.Notes,
		customer.LastContact, customer.AssignedTo)
	return err
}

func (r *customerRepo) List(ctx context.Context, filter *scope.Filter) ([]*models.Customer, error) {
	clause, args := filter.Clause()
	query := `SELECT ` + customerColumns + ` FROM customers` + clause + ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []*models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, contact_person = $2, email = $3, phone = $4, address = $5, city = $6,
		    country = $7, industry = $8, company_size = $9, status = $10, estimated_value = $11,
		    actual_value = $12, notes = $13, last_contact = $14, assigned_to = $15, updated_at = NOW()
		WHERE id = $16
	`
	tag, err := r.db.Exec(ctx, query,
		customer.Name, customer.ContactPerson, customer.Email, customer.Phone, customer.Address,
		customer.City, customer.Country, customer.Industry, customer.CompanySize, customer.Status,
		customer.EstimatedValue, customer.ActualValue, customer.Notes, customer.LastContact,
		customer.AssignedTo, customer.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return scanCustomer(row)
}

func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM customers`).Scan(&n)
	return n, err
}

func scanCustomer(row pgx.Row) (*models.Customer, error) {
	c := &models.Customer{}
	err := row.Scan(&c.ID, &c.Name, &c.ContactPerson, &c.Email, &c.Phone, &c.Address, &c.City,
		&c.Country, &c.Industry, &c.CompanySize, &c.Status, &c.EstimatedValue, &c.ActualValue,
		&c.Notes, &c.LastContact, &c.AssignedTo, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
