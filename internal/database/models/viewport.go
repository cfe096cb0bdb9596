package models

import (
	"time"

	"github.com/google/uuid"
)

// ViewportPreference stores the last map viewport bounds per user.
// At most one row per user; writes are upserts keyed on user_id.
type ViewportPreference struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	MinLat    float64   `json:"min_lat"`
	MaxLat    float64   `json:"max_lat"`
	MinLon    float64   `json:"min_lon"`
	MaxLon    float64   `json:"max_lon"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ViewportPreference) TableName() string {
	return "user_viewport"
}
