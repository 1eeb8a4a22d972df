package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	ContactPerson  string    `json:"contactPerson" db:"contact_person"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Address        string    `json:"address" db:"address"`
	City           string    `json:"city" db:"city"`
	Country        string    `json:"country" db:"country"`
	Industry       string    `json:"industry" db:"industry"`
	CompanySize    string    `json:"companySize" db:"company_size"`
	Status         string    `json:"status" db:"status"`
	EstimatedValue float64   `json:"estimatedValue" db:"estimated_value"`
	ActualValue    float64   `json:"actualValue" db:"actual_value"`
	Notes          string    `json:"notes,omitempty" db:"notes"`
	LastContact    string    `json:"lastContact,omitempty" db:"last_contact"`
	AssignedTo     string    `json:"assignedTo,omitempty" db:"assigned_to"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
