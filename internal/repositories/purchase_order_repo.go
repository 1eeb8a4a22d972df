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

type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *models.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error)
	List(ctx context.Context, filter *scope.Filter) ([]*models.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status, actualDelivery string) error
	CountByStatus(ctx context.Context) (map[string]int, error)
}

type purchaseOrderRepo struct {
	db DB
}

func NewPurchaseOrderRepository(db DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

const purchaseOrderColumns = `id, order_number, supplier, assigned_to, status, items, total_amount, order_date, expected_delivery, actual_delivery, notes, created_at, updated_at`

func (r *purchaseOrderRepo) Create(ctx context.Context, order *models.PurchaseOrder) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO purchase_orders (id, order_number, supplier, assigned_to, status, items, total_amount, order_date, expected_delivery, actual_delivery, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`
	_, err = r.db.Exec(ctx, query,
		order.ID, order.OrderNumber, order.Supplier, order.AssignedTo, order.Status, items,
		order.TotalAmount, order.OrderDate, order.ExpectedDelivery, order.ActualDelivery, order.Notes)
	return err
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	row := r.db.QueryRow(ctx, `SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE id = $1`, id)
	return scanPurchaseOrder(row)
}

func (r *purchaseOrderRepo) List(ctx context.Context, filter *scope.Filter) ([]*models.PurchaseOrder, error) {
	clause, args := filter.Clause()
	query := `SELECT ` + purchaseOrderColumns + ` FROM purchase_orders` + clause + ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []*models.PurchaseOrder{}
	for rows.Next() {
		order, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// UpdateStatus sets the order status; actualDelivery is stamped only when
// the transition records a delivery (empty string leaves it untouched).
func (r *purchaseOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status, actualDelivery string) error {
	query := `
		UPDATE purchase_orders
		SET status = $1,
		    actual_delivery = CASE WHEN $2 <> '' THEN $2 ELSE actual_delivery END,
		    updated_at = NOW()
		WHERE id = $3
	`
	tag, err := r.db.Exec(ctx, query, status, actualDelivery, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *purchaseOrderRepo) CountByStatus(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM purchase_orders GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

func scanPurchaseOrder(row pgx.Row) (*models.PurchaseOrder, error) {
	order := &models.PurchaseOrder{}
	var items []byte
	err := row.Scan(&order.ID, &order.OrderNumber, &order.Supplier, &order.AssignedTo, &order.Status,
		&items, &order.TotalAmount, &order.OrderDate, &order.ExpectedDelivery,
		&order.ActualDelivery, &order.Notes, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, err
		}
	}
	return order, nil
}
