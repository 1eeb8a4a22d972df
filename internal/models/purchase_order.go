package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase order lifecycle states, in rough progression order.
var PurchaseOrderStatuses = []string{
	"Draft",
	"Pending Approval",
	"Approved",
	"Processing",
	"In Transit",
	"Delivered",
	"Cancelled",
}

func ValidPurchaseOrderStatus(status string) bool {
	for _, s := range PurchaseOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type PurchaseOrderItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

type PurchaseOrder struct {
	ID               uuid.UUID           `json:"id" db:"id"`
	OrderNumber      string              `json:"orderNumber" db:"order_number"`
	Supplier         string              `json:"supplier" db:"supplier"`
	AssignedTo       string              `json:"assignedTo" db:"assigned_to"`
	Status           string              `json:"status" db:"status"`
	Items            []PurchaseOrderItem `json:"items" db:"items"`
	TotalAmount      float64             `json:"totalAmount" db:"total_amount"`
	OrderDate        string              `json:"orderDate" db:"order_date"`
	ExpectedDelivery string              `json:"expectedDelivery" db:"expected_delivery"`
	ActualDelivery   string              `json:"actualDelivery,omitempty" db:"actual_delivery"`
	Notes            string              `json:"notes,omitempty" db:"notes"`
	CreatedAt        time.Time           `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time           `json:"updatedAt" db:"updated_at"`
}
