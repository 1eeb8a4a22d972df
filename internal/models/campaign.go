package models

import (
	"time"

	"github.com/google/uuid"
)

type CampaignMetrics struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	Leads       int     `json:"leads"`
	Revenue     float64 `json:"revenue"`
}

type Campaign struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Name           string          `json:"name" db:"name"`
	Type           string          `json:"type" db:"type"`
	Status         string          `json:"status" db:"status"`
	Budget         float64         `json:"budget" db:"budget"`
	Spent          float64         `json:"spent" db:"spent"`
	StartDate      string          `json:"startDate" db:"start_date"`
	EndDate        string          `json:"endDate" db:"end_date"`
	TargetAudience string          `json:"targetAudience" db:"target_audience"`
	Goals          string          `json:"goals" db:"goals"`
	Description    string          `json:"description,omitempty" db:"description"`
	Channels       []string        `json:"channels" db:"channels"`
	Metrics        CampaignMetrics `json:"metrics" db:"metrics"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}
