package models

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a roster entry a rep can be assigned to visit
type Doctor struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	FullName  string     `json:"full_name" db:"full_name"`
	Specialty *string    `json:"specialty,omitempty" db:"specialty"`
	RegionID  *uuid.UUID `json:"region_id,omitempty" db:"region_id"`
	Phone     *string    `json:"phone,omitempty" db:"phone"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Pharmacy is a roster entry for pharmacy visits
type Pharmacy struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	Name      string     `json:"name" db:"name"`
	RegionID  *uuid.UUID `json:"region_id,omitempty" db:"region_id"`
	Address   *string    `json:"address,omitempty" db:"address"`
	IsActive  bool       `json:"is_active" db:"is_active"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Region is a sales territory subdivision
type Region struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
