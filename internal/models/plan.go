package models

import (
	"time"

	"github.com/google/uuid"
)

// Weekly plan approval statuses
const (
	PlanStatusDraft    = "draft"
	PlanStatusPending  = "pending"
	PlanStatusApproved = "approved"
	PlanStatusRejected = "rejected"
)

// DayAssignment is a plan's target for one weekday: a region and/or a
// specific set of doctors the rep is expected to visit.
type DayAssignment struct {
	RegionID  *uuid.UUID  `json:"region_id,omitempty"`
	DoctorIDs []uuid.UUID `json:"doctor_ids,omitempty"`
}

// WeeklyPlan is a rep's current territory plan. Days maps weekday index
// (0=Sunday .. 6=Saturday) to an assignment; an absent key means no
// assignment for that day. One plan per rep is in flight at a time and
// it is replaced wholesale on each save.
type WeeklyPlan struct {
	ID        uuid.UUID             `json:"id" db:"id"`
	RepID     uuid.UUID             `json:"rep_id" db:"rep_id"`
	Status    string                `json:"status" db:"status"`
	Days      map[int]DayAssignment `json:"days" db:"days"`
	CreatedAt time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt time.Time             `json:"updated_at" db:"updated_at"`
}

// PlanSaveRequest is the request body for PUT /api/plans/current
type PlanSaveRequest struct {
	Days map[int]DayAssignment `json:"days" binding:"required"`
}

// PlanActionRequest is the body for approve/reject actions
type PlanActionRequest struct {
	Notes *string `json:"notes,omitempty"`
}

// PlanResponse wraps a plan with the edit/routing decision for the client
type PlanResponse struct {
	Plan    *WeeklyPlan `json:"plan"`
	CanEdit bool        `json:"can_edit"`
	View    string      `json:"view"`
}
