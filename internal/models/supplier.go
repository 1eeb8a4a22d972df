package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Canonical supplier account states. Legacy data carries several spellings
// ("Active", "Under Review", "Inactive"); NormalizeSupplierStatus folds them
// all into these three.
const (
	SupplierStatusActive      = "active"
	SupplierStatusUnderReview = "under_review"
	SupplierStatusRevoked     = "revoked"
)

type Supplier struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	ContactPerson  string    `json:"contactPerson" db:"contact_person"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Address        string    `json:"address" db:"address"`
	Category       string    `json:"category" db:"category"`
	Rating         float64   `json:"rating" db:"rating"`
	OnTimeDelivery float64   `json:"onTimeDelivery" db:"on_time_delivery"`
	TotalOrders    int       `json:"totalOrders" db:"total_orders"`
	TotalValue     float64   `json:"totalValue" db:"total_value"`
	Status         string    `json:"status" db:"status"`
	// SupplierCode is a legacy manually-assigned identifier some supplier
	// rows carry in addition to the generated primary key. The status guard
	// falls back to it when a reference is not a well-formed UUID.
	SupplierCode string    `json:"supplierCode,omitempty" db:"supplier_code"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// NormalizeSupplierStatus maps any observed spelling onto the canonical
// enum. "Inactive" and "Revoked" both mean the account may not log in, so
// they collapse into revoked. Empty input defaults to active, matching the
// creation default of the provisioning flow.
func NormalizeSupplierStatus(status string) string {
	s := strings.ToLower(strings.TrimSpace(status))
	s = strings.ReplaceAll(s, "_", " ")
	switch s {
	case "", "active":
		return SupplierStatusActive
	case "under review":
		return SupplierStatusUnderReview
	case "inactive", "revoked":
		return SupplierStatusRevoked
	default:
		return s
	}
}

func ValidSupplierStatus(status string) bool {
	switch NormalizeSupplierStatus(status) {
	case SupplierStatusActive, SupplierStatusUnderReview, SupplierStatusRevoked:
		return true
	}
	return false
}
