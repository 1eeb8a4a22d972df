package repositories

import (
	"context"
	"errors"

	"splybob/internal/models"
	"splybob/internal/scope"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SupplierRepository interface {
	CreateTx(ctx context.Context, tx pgx.Tx, supplier *models.Supplier) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error)
	GetByCode(ctx context.Context, code string) (*models.Supplier, error)
	List(ctx context.Context, filter *scope.Filter) ([]*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Count(ctx context.Context) (int, error)
}

type supplierRepo struct {
	db DB
}

func NewSupplierRepository(db DB) SupplierRepository {
	return &supplierRepo{db: db}
}

const supplierColumns = `id, name, contact_person, email, phone, address, category, rating, on_time_delivery, total_orders, total_value, status, supplier_code, created_at, updated_at`

func (r *supplierRepo) CreateTx(ctx context.Context, tx pgx.Tx, supplier *models.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact_person, email, phone, address, category, rating, on_time_delivery, total_orders, total_value, status, supplier_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`
	_, err := tx.Exec(ctx, query,
		supplier.ID, supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone,
		supplier.Address, supplier.Category, supplier.Rating, supplier.OnTimeDelivery,
		supplier.TotalOrders, supplier.TotalValue, supplier.Status, supplier.SupplierCode)
	return err
}

func (r *supplierRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Supplier, error) {
	row := r.db.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id)
	return scanSupplier(row)
}

// GetByCode looks a supplier up by the legacy manually-assigned code. The
// status guard falls back to this when a reference is not a UUID.
func (r *supplierRepo) GetByCode(ctx context.Context, code string) (*models.Supplier, error) {
	row := r.db.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE supplier_code = $1`, code)
	return scanSupplier(row)
}

func (r *supplierRepo) List(ctx context.Context, filter *scope.Filter) ([]*models.Supplier, error) {
	clause, args := filter.Clause()
	rows, err := r.db.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers`+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := []*models.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *supplierRepo) Update(ctx context.Context, supplier *models.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, contact_person = $2, email = $3, phone = $4, address = $5, category = $6,
		    rating = $7, on_time_delivery = $8, total_orders = $9, total_value = $10, status = $11,
		    updated_at = NOW()
		WHERE id = $12
	`
	tag, err := r.db.Exec(ctx, query,
		supplier.Name, supplier.ContactPerson, supplier.Email, supplier.Phone, supplier.Address,
		supplier.Category, supplier.Rating, supplier.OnTimeDelivery, supplier.TotalOrders,
		supplier.TotalValue, supplier.Status, supplier.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *supplierRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM suppliers`).Scan(&n)
	return n, err
}

func scanSupplier(row pgx.Row) (*models.Supplier, error) {
	s := &models.Supplier{}
	err := row.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address, &s.Category,
		&s.Rating, &s.OnTimeDelivery, &s.TotalOrders, &s.TotalValue, &s.Status, &s.SupplierCode,
		&s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
