package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPlanNotFound = errors.New("weekly plan not found")
var ErrSettingsNotFound = errors.New("system settings not found")

// PlanningRepository bundles the tenant-database reads the planning
// handlers share: visits, plans, rosters and settings. Constructed per
// request around the org pool resolved by the middleware.
type PlanningRepository struct {
	db *pgxpool.Pool
}

func NewPlanningRepository(db *pgxpool.Pool) *PlanningRepository {
	return &PlanningRepository{db: db}
}

// ListVisits returns a rep's visits between start and end, inclusive
func (r *PlanningRepository) ListVisits(ctx context.Context, repID uuid.UUID, start, end time.Time) ([]models.Visit, error) {
	query := `
		SELECT id, rep_id, kind, visit_date, target_name, target_id, product_name, notes, created_at
		FROM visits
		WHERE rep_id = $1 AND DATE(visit_date) BETWEEN $2 AND $3
		ORDER BY visit_date ASC
	`

	rows, err := r.db.Query(ctx, query, repID, start.Format("2006-01-02"), end.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to query visits: %w", err)
	}
	defer rows.Close()

	visits := []models.Visit{}
	for rows.Next() {
		var v models.Visit
		err := rows.Scan(
			&v.ID,
			&v.RepID,
			&v.Kind,
			&v.VisitDate,
			&v.TargetName,
			&v.TargetID,
			&v.ProductName,
			&v.Notes,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan visit: %w", err)
		}
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// GetCurrentPlan returns the rep's in-flight weekly plan, or
// ErrPlanNotFound when none exists
func (r *PlanningRepository) GetCurrentPlan(ctx context.Context, repID uuid.UUID) (*models.WeeklyPlan, error) {
	query := `
		SELECT id, rep_id, status, days, created_at, updated_at
		FROM weekly_plans
		WHERE rep_id = $1
	`

	var plan models.WeeklyPlan
	var daysJSON []byte
	err := r.db.QueryRow(ctx, query, repID).Scan(
		&plan.ID,
		&plan.RepID,
		&plan.Status,
		&daysJSON,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to query weekly plan: %w", err)
	}

	plan.Days = make(map[int]models.DayAssignment)
	if len(daysJSON) > 0 {
		if err := json.Unmarshal(daysJSON, &plan.Days); err != nil {
			return nil, fmt.Errorf("failed to parse plan days for rep %s: %w", repID, err)
		}
	}
	return &plan, nil
}

// SavePlan upserts the rep's plan wholesale; each save replaces the
// previous day mapping (last write wins) and resets status to draft
func (r *PlanningRepository) SavePlan(ctx context.Context, repID uuid.UUID, days map[int]models.DayAssignment) (*models.WeeklyPlan, error) {
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan days: %w", err)
	}

	query := `
		INSERT INTO weekly_plans (id, rep_id, status, days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (rep_id) DO UPDATE
		SET days = EXCLUDED.days, status = EXCLUDED.status, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	plan := models.WeeklyPlan{
		RepID:  repID,
		Status: models.PlanStatusDraft,
		Days:   days,
	}
	err = r.db.QueryRow(ctx, query, uuid.New(), repID, plan.Status, daysJSON).Scan(
		&plan.ID,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save weekly plan: %w", err)
	}
	return &plan, nil
}

// UpdatePlanStatus moves a plan between approval states. The expected
// current status guards the transition; a zero-row update means the plan
// was not in that state.
func (r *PlanningRepository) UpdatePlanStatus(ctx context.Context, planID uuid.UUID, fromStatuses []string, toStatus string) error {
	query := `
		UPDATE weekly_plans
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = ANY($3)
	`

	result, err := r.db.Exec(ctx, query, toStatus, planID, fromStatuses)
	if err != nil {
		return fmt.Errorf("failed to update plan status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrPlanNotFound
	}
	return nil
}

// ListDoctors returns the active doctor roster, optionally for one region
func (r *PlanningRepository) ListDoctors(ctx context.Context, regionID *uuid.UUID) ([]models.Doctor, error) {
	query := `
		SELECT id, full_name, specialty, region_id, phone, is_active, created_at
		FROM doctors
		WHERE is_active = true AND ($1::uuid IS NULL OR region_id = $1)
		ORDER BY full_name ASC
	`

	rows, err := r.db.Query(ctx, query, regionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	doctors := []models.Doctor{}
	for rows.Next() {
		var d models.Doctor
		err := rows.Scan(&d.ID, &d.FullName, &d.Specialty, &d.RegionID, &d.Phone, &d.IsActive, &d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, d)
	}
	return doctors, rows.Err()
}

// ListRegions returns all territory regions
func (r *PlanningRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	query := `SELECT id, name, created_at FROM regions ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query regions: %w", err)
	}
	defer rows.Close()

	regions := []models.Region{}
	for rows.Next() {
		var region models.Region
		if err := rows.Scan(&region.ID, &region.Name, &region.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan region: %w", err)
		}
		regions = append(regions, region)
	}
	return regions, rows.Err()
}

// GetSettings returns the org's off-day configuration, or
// ErrSettingsNotFound when none has been saved yet
func (r *PlanningRepository) GetSettings(ctx context.Context) (*models.SystemSettings, error) {
	query := `
		SELECT id, weekends, holidays, created_at, updated_at, updated_by
		FROM system_settings
		LIMIT 1
	`

	var settings models.SystemSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&settings.ID,
		&settings.Weekends,
		&settings.Holidays,
		&settings.CreatedAt,
		&settings.UpdatedAt,
		&settings.UpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}

	if settings.Weekends == nil {
		settings.Weekends = []int{}
	}
	if settings.Holidays == nil {
		settings.Holidays = []string{}
	}
	return &settings, nil
}
