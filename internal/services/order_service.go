package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"splybob/internal/auth"
	"splybob/internal/models"
	"splybob/internal/repositories"
	"splybob/internal/scope"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderService interface {
	List(ctx context.Context, ident auth.Identity, filters OrderFilters) ([]*models.PurchaseOrder, error)
	Create(ctx context.Context, req CreateOrderRequest) (*models.PurchaseOrder, error)
	Get(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}

type OrderFilters struct {
	Status     string
	Supplier   string
	AssignedTo string
}

type CreateOrderRequest struct {
	Supplier         string                     `json:"supplier"`
	AssignedTo       string                     `json:"assignedTo"`
	Status           string                     `json:"status"`
	Items            []models.PurchaseOrderItem `json:"items"`
	ExpectedDelivery string                     `json:"expectedDelivery"`
	Notes            string                     `json:"notes"`
}

type orderService struct {
	orders repositories.PurchaseOrderRepository
}

func NewOrderService(orders repositories.PurchaseOrderRepository) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) List(ctx context.Context, ident auth.Identity, filters OrderFilters) ([]*models.PurchaseOrder, error) {
	f := &scope.Filter{}
	f.Exact("status", filters.Status)
	f.Match("supplier", filters.Supplier)
	f.Match("assigned_to", filters.AssignedTo)
	scope.OwnerOverride(ident, f, "supplier")
	return s.orders.List(ctx, f)
}

func (s *orderService) Create(ctx context.Context, req CreateOrderRequest) (*models.PurchaseOrder, error) {
	if req.Supplier == "" || len(req.Items) == 0 {
		return nil, validationf("Supplier and items are required")
	}
	status := req.Status
	if status == "" {
		status = "Draft"
	}
	if !models.ValidPurchaseOrderStatus(status) {
		return nil, validationf("Invalid status")
	}

	var total float64
	items := make([]models.PurchaseOrderItem, len(req.Items))
	for i, item := range req.Items {
		item.Total = float64(item.Quantity) * item.UnitPrice
		total += item.Total
		items[i] = item
	}

	now := time.Now()
	order := &models.PurchaseOrder{
		ID:               uuid.New(),
		OrderNumber:      "PO-" + strconv.FormatInt(now.UnixMilli(), 10),
		Supplier:         req.Supplier,
		AssignedTo:       req.AssignedTo,
		Status:           status,
		Items:            items,
		TotalAmount:      total,
		OrderDate:        now.Format(dateLayout),
		ExpectedDelivery: req.ExpectedDelivery,
		Notes:            req.Notes,
	}
	if order.AssignedTo == "" {
		order.AssignedTo = "Unassigned"
	}
	if order.ExpectedDelivery == "" {
		order.ExpectedDelivery = now.Add(7 * 24 * time.Hour).Format(dateLayout)
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Get(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if status == "" {
		return validationf("Status is required")
	}
	if !models.ValidPurchaseOrderStatus(status) {
		return validationf("Invalid status")
	}

	actualDelivery := ""
	if status == "Delivered" {
		actualDelivery = time.Now().Format(dateLayout)
	}

	if err := s.orders.UpdateStatus(ctx, id, status, actualDelivery); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
