package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"splybob/internal/auth"
	"splybob/internal/models"
	"splybob/internal/repositories"
	"splybob/internal/scope"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const dateLayout = "2006-01-02"

type InventoryService interface {
	List(ctx context.Context, ident auth.Identity, filters InventoryFilters) ([]*models.InventoryItem, error)
	Create(ctx context.Context, req CreateInventoryRequest) (*models.InventoryItem, error)
	Update(ctx context.Context, id uuid.UUID, req CreateInventoryRequest) (*models.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type InventoryFilters struct {
	Category string
	Status   string
	Location string
	Supplier string
	Search   string
}

type CreateInventoryRequest struct {
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	SKU          string  `json:"sku"`
	Description  string  `json:"description"`
	CurrentStock int     `json:"currentStock"`
	MinStock     int     `json:"minStock"`
	MaxStock     int     `json:"maxStock"`
	UnitPrice    float64 `json:"unitPrice"`
	Supplier     string  `json:"supplier"`
	Location     string  `json:"location"`
}

type inventoryService struct {
	items repositories.InventoryRepository
}

func NewInventoryService(items repositories.InventoryRepository) InventoryService {
	return &inventoryService{items: items}
}

func (s *inventoryService) List(ctx context.Context, ident auth.Identity, filters InventoryFilters) ([]*models.InventoryItem, error) {
	f := &scope.Filter{}
	f.Match("category", filters.Category)
	if filters.Status != "" && filters.Status != scope.All {
		// Clients send dashed values like "low-stock"; stored statuses are
		// space separated.
		f.Exact("status", strings.ReplaceAll(filters.Status, "-", " "))
	}
	f.Match("location", filters.Location)
	f.Match("supplier", filters.Supplier)
	f.Search(filters.Search, "name", "sku", "supplier")
	scope.OwnerOverride(ident, f, "supplier")
	return s.items.List(ctx, f)
}

func (s *inventoryService) Create(ctx context.Context, req CreateInventoryRequest) (*models.InventoryItem, error) {
	if req.Name == "" || req.Category == "" || req.SKU == "" {
		return nil, validationf("Name, category, and SKU are required")
	}

	item := &models.InventoryItem{
		ID:           uuid.New(),
		Name:         req.Name,
		Category:     req.Category,
		SKU:          req.SKU,
		Description:  req.Description,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		MaxStock:     req.MaxStock,
		UnitPrice:    req.UnitPrice,
		Supplier:     req.Supplier,
		Location:     req.Location,
		Status:       models.DeriveStockStatus(req.CurrentStock, req.MinStock),
		LastUpdated:  time.Now().Format(dateLayout),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) Update(ctx context.Context, id uuid.UUID, req CreateInventoryRequest) (*models.InventoryItem, error) {
	if req.Name == "" || req.Category == "" || req.SKU == "" {
		return nil, validationf("Name, category, and SKU are required")
	}

	item := &models.InventoryItem{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		SKU:          req.SKU,
		Description:  req.Description,
		CurrentStock: req.CurrentStock,
		MinStock:     req.MinStock,
		MaxStock:     req.MaxStock,
		UnitPrice:    req.UnitPrice,
		Supplier:     req.Supplier,
		Location:     req.Location,
		Status:       models.DeriveStockStatus(req.CurrentStock, req.MinStock),
		LastUpdated:  time.Now().Format(dateLayout),
	}
	if err := s.items.Update(ctx, item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.items.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
