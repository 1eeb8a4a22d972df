package models

import "time"

type InventoryStats struct {
	TotalItems int     `json:"totalItems"`
	LowStock   int     `json:"lowStock"`
	OutOfStock int     `json:"outOfStock"`
	TotalValue float64 `json:"totalValue"`
}

type PurchaseOrderStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"byStatus"`
}

// AnalyticsSummary is the dashboard aggregate served by GET /api/analytics
// and kept warm in the cache by the refresh job.
type AnalyticsSummary struct {
	Inventory      InventoryStats     `json:"inventory"`
	PurchaseOrders PurchaseOrderStats `json:"purchaseOrders"`
	Suppliers      int                `json:"suppliers"`
	Customers      int                `json:"customers"`
	GeneratedAt    time.Time          `json:"generatedAt"`
}
