package models

import (
	"time"

	"github.com/google/uuid"
)

// Visit kinds as stored in the visits table
const (
	VisitKindDoctor   = "doctor_visit"
	VisitKindPharmacy = "pharmacy_visit"
)

// Visit represents a single recorded rep visit to a doctor or pharmacy.
// Visits are immutable once created; only absence records can be removed.
type Visit struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	RepID       uuid.UUID  `json:"rep_id" db:"rep_id"`
	Kind        string     `json:"kind" db:"kind"`
	VisitDate   time.Time  `json:"visit_date" db:"visit_date"`
	TargetName  string     `json:"target_name" db:"target_name"`
	TargetID    *uuid.UUID `json:"target_id,omitempty" db:"target_id"`
	ProductName *string    `json:"product_name,omitempty" db:"product_name"`
	Notes       *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// VisitCreateRequest is the request body for POST /api/visits
type VisitCreateRequest struct {
	Kind        string  `json:"kind" binding:"required"`
	VisitDate   *string `json:"visit_date,omitempty"` // YYYY-MM-DD, defaults to today
	TargetName  string  `json:"target_name" binding:"required"`
	TargetID    *string `json:"target_id,omitempty"`
	ProductName *string `json:"product_name,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// VisitListResponse is the API response for visit list queries
type VisitListResponse struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Visits    []Visit `json:"visits"`
	Total     int     `json:"total"`
}

// Absence is a manually entered off-duty record for a rep. Unlike visits
// it supports soft deletion.
type Absence struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	RepID       uuid.UUID  `json:"rep_id" db:"rep_id"`
	AbsenceDate time.Time  `json:"absence_date" db:"absence_date"`
	Reason      *string    `json:"reason,omitempty" db:"reason"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// AbsenceCreateRequest is the request body for POST /api/absences
type AbsenceCreateRequest struct {
	AbsenceDate string  `json:"absence_date" binding:"required"` // YYYY-MM-DD
	Reason      *string `json:"reason,omitempty"`
}
