package models

import (
	"time"

	"github.com/google/uuid"
)

// Rep represents a sales representative or manager in the organization
// database
type Rep struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	DisplayName  string     `json:"display_name" db:"display_name"`
	Email        *string    `json:"email,omitempty" db:"email"`
	PhoneNumber  *string    `json:"phone_number,omitempty" db:"phone_number"`
	RegionID     *uuid.UUID `json:"region_id,omitempty" db:"region_id"`
	IsManager    bool       `json:"is_manager" db:"is_manager"`
	LoginEnabled bool       `json:"login_enabled" db:"login_enabled"`
	IsActive     bool       `json:"is_active" db:"is_active"`
	LastLogin    *time.Time `json:"last_login,omitempty" db:"last_login"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// RepListResponse is the simplified response for rep lists
type RepListResponse struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	RegionID    *uuid.UUID `json:"region_id,omitempty"`
	IsManager   bool       `json:"is_manager"`
	IsActive    bool       `json:"is_active"`
}

// ToListResponse converts Rep to RepListResponse
func (r *Rep) ToListResponse() RepListResponse {
	return RepListResponse{
		ID:          r.ID,
		Username:    r.Username,
		DisplayName: r.DisplayName,
		RegionID:    r.RegionID,
		IsManager:   r.IsManager,
		IsActive:    r.IsActive,
	}
}
