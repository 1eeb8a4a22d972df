package services

import (
	"context"
	"time"

	"splybob/internal/caching"
	"splybob/internal/models"
	"splybob/internal/repositories"

	"github.com/rs/zerolog/log"
)

const (
	analyticsCacheKey = "analytics:summary"
	analyticsCacheTTL = 5 * time.Minute
)

type AnalyticsService interface {
	Summary(ctx context.Context) (*models.AnalyticsSummary, error)
	Refresh(ctx context.Context) (*models.AnalyticsSummary, error)
}

type analyticsService struct {
	inventory repositories.InventoryRepository
	orders    repositories.PurchaseOrderRepository
	suppliers repositories.SupplierRepository
	customers repositories.CustomerRepository
	cache     caching.CacheService
}

func NewAnalyticsService(
	inventory repositories.InventoryRepository,
	orders repositories.PurchaseOrderRepository,
	suppliers repositories.SupplierRepository,
	customers repositories.CustomerRepository,
	cache caching.CacheService,
) AnalyticsService {
	return &analyticsService{
		inventory: inventory,
		orders:    orders,
		suppliers: suppliers,
		customers: customers,
		cache:     cache,
	}
}

// Summary returns the dashboard aggregate, preferring the cached copy. A
// cache error only costs the recompute.
func (s *analyticsService) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	cached := &models.AnalyticsSummary{}
	hit, err := s.cache.GetJSON(ctx, analyticsCacheKey, cached)
	if err != nil {
		log.Warn().Err(err).Msg("analytics cache read failed")
	}
	if hit {
		return cached, nil
	}
	return s.Refresh(ctx)
}

// Refresh recomputes the summary from the store and writes it back to the
// cache. The refresh job calls this on an interval to keep the dashboard
// warm.
func (s *analyticsService) Refresh(ctx context.Context) (*models.AnalyticsSummary, error) {
	inventoryStats, err := s.inventory.Stats(ctx)
	if err != nil {
		return nil, err
	}
	orderCounts, err := s.orders.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	supplierCount, err := s.suppliers.Count(ctx)
	if err != nil {
		return nil, err
	}
	customerCount, err := s.customers.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalOrders := 0
	for _, n := range orderCounts {
		totalOrders += n
	}

	summary := &models.AnalyticsSummary{
		Inventory: *inventoryStats,
		PurchaseOrders: models.PurchaseOrderStats{
			Total:    totalOrders,
			ByStatus: orderCounts,
		},
		Suppliers:   supplierCount,
		Customers:   customerCount,
		GeneratedAt: time.Now(),
	}

	if err := s.cache.SetJSON(ctx, analyticsCacheKey, summary, analyticsCacheTTL); err != nil {
		log.Warn().Err(err).Msg("analytics cache write failed")
	}
	return summary, nil
}
