package models

import (
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Company        string    `json:"company" db:"company"`
	Position       string    `json:"position" db:"position"`
	Source         string    `json:"source" db:"source"`
	Status         string    `json:"status" db:"status"`
	Priority       string    `json:"priority" db:"priority"`
	EstimatedValue float64   `json:"estimatedValue" db:"estimated_value"`
	Notes          string    `json:"notes,omitempty" db:"notes"`
	AssignedTo     string    `json:"assignedTo" db:"assigned_to"`
	NextFollowUp   string    `json:"nextFollowUp,omitempty" db:"next_follow_up"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
