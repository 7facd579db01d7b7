package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a pharma company account in the multi-tenant
// platform. Each organization gets its own database; the platform database
// only routes slugs to connection info.
type Organization struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Slug string    `json:"slug" db:"slug"` // Subdomain identifier (e.g., "sanivita", "acme-pharma")
	Name string    `json:"name" db:"name"` // Display name

	// Database connection info
	DBHost              string `json:"-" db:"db_host"`
	DBPort              int    `json:"-" db:"db_port"`
	DBName              string `json:"-" db:"db_name"`
	DBUser              string `json:"-" db:"db_user"`
	DBPasswordEncrypted string `json:"-" db:"db_password_encrypted"`

	// Subscription
	Plan   string `json:"plan" db:"plan"`     // "trial", "standard", "enterprise"
	Status string `json:"status" db:"status"` // "trial", "active", "suspended", "cancelled"

	// Metadata
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" db:"deleted_at"` // Soft delete
}
