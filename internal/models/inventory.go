package models

import (
	"time"

	"github.com/google/uuid"
)

// Stock states derived from current stock vs. the minimum threshold.
const (
	StockStatusIn  = "In Stock"
	StockStatusLow = "Low Stock"
	StockStatusOut = "Out of Stock"
)

type InventoryItem struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Category     string    `json:"category" db:"category"`
	SKU          string    `json:"sku" db:"sku"`
	Description  string    `json:"description" db:"description"`
	CurrentStock int       `json:"currentStock" db:"current_stock"`
	MinStock     int       `json:"minStock" db:"min_stock"`
	MaxStock     int       `json:"maxStock" db:"max_stock"`
	UnitPrice    float64   `json:"unitPrice" db:"unit_price"`
	Supplier     string    `json:"supplier" db:"supplier"`
	Location     string    `json:"location" db:"location"`
	Status       string    `json:"status" db:"status"`
	LastUpdated  string    `json:"lastUpdated" db:"last_updated"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// DeriveStockStatus computes the stock state from the current level.
func DeriveStockStatus(currentStock, minStock int) string {
	switch {
	case currentStock == 0:
		return StockStatusOut
	case currentStock <= minStock:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}
