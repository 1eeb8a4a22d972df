package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. A supplier-role user carries SupplierID referencing the
// supplier profile it logs in for; managers have no such link.
const (
	RoleManager  = "manager"
	RoleSupplier = "supplier"
)

func ValidRole(role string) bool {
	return role == RoleManager || role == RoleSupplier
}

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize in JSON
	Role         string    `json:"role" db:"role"`
	CompanyName  string    `json:"companyName,omitempty" db:"company_name"`
	SupplierID   string    `json:"supplierId,omitempty" db:"supplier_id"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// PublicUser is the wire shape the auth endpoints return.
type PublicUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName,omitempty"`
	SupplierID  string `json:"supplierId,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:          u.ID.String(),
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		CompanyName: u.CompanyName,
		SupplierID:  u.SupplierID,
	}
}
