package models

import (
	"time"

	"github.com/google/uuid"
)

// SystemSettings defines non-working days for an organization: a set of
// weekend weekday indices (0=Sunday .. 6=Saturday) and a set of holiday
// dates (YYYY-MM-DD). A missing settings row means no off-days.
type SystemSettings struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Weekends  []int      `json:"weekends" db:"weekends"`
	Holidays  []string   `json:"holidays" db:"holidays"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty" db:"updated_by"`
}

// SettingsUpdateRequest is the request body for PUT /api/settings
type SettingsUpdateRequest struct {
	Weekends []int    `json:"weekends"`
	Holidays []string `json:"holidays"`
}
