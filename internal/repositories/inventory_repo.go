package repositories

import (
	"context"
	"errors"

	"splybob/internal/models"
	"splybob/internal/scope"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	List(ctx context.Context, filter *scope.Filter) ([]*models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*models.InventoryStats, error)
}

type inventoryRepo struct {
	db DB
}

func NewInventoryRepository(db DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

const inventoryColumns = `id, name, category, sku, description, current_stock, min_stock, max_stock, unit_price, supplier, location, status, last_updated, created_at, updated_at`

func (r *inventoryRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory (id, name, category, sku, description, current_stock, min_stock, max_stock, unit_price, supplier, location, status, last_updated, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		item.ID, item.Name, item.Category, item.SKU, item.Description, item.CurrentStock,
		item.MinStock, item.MaxStock, item.UnitPrice, item.Supplier, item.Location,
		item.Status, item.LastUpdated)
	return err
}

func (r *inventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	row := r.db.QueryRow(ctx, `SELECT `+inventoryColumns+` FROM inventory WHERE id = $1`, id)
	return scanInventoryItem(row)
}

func (r *inventoryRepo) List(ctx context.Context, filter *scope.Filter) ([]*models.InventoryItem, error) {
	clause, args := filter.Clause()
	rows, err := r.db.Query(ctx, `SELECT `+inventoryColumns+` FROM inventory`+clause, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []*models.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *inventoryRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory
		SET name = $1, category = $2, sku = $3, description = $4, current_stock = $5, min_stock = $6,
		    max_stock = $7, unit_price = $8, supplier = $9, location = $10, status = $11,
		    last_updated = $12, updated_at = NOW()
		WHERE id = $13
	`
	tag, err := r.db.Exec(ctx, query,
		item.Name, item.Category, item.SKU, item.Description, item.CurrentStock, item.MinStock,
		item.MaxStock, item.UnitPrice, item.Supplier, item.Location, item.Status,
		item.LastUpdated, item.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Stats feeds the analytics summary.
func (r *inventoryRepo) Stats(ctx context.Context) (*models.InventoryStats, error) {
	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1),
		       COUNT(*) FILTER (WHERE status = $2),
		       COALESCE(SUM(current_stock * unit_price), 0)
		FROM inventory
	`
	stats := &models.InventoryStats{}
	err := r.db.QueryRow(ctx, query, models.StockStatusLow, models.StockStatusOut).
		Scan(&stats.TotalItems, &stats.LowStock, &stats.OutOfStock, &stats.TotalValue)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func scanInventoryItem(row pgx.Row) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.SKU, &item.Description,
		&item.CurrentStock, &item.MinStock, &item.MaxStock, &item.UnitPrice, &item.Supplier,
		&item.Location, &item.Status, &item.LastUpdated, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}
