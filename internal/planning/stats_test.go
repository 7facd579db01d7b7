package planning_test

import (
	"testing"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/planning"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func visit(kind string, day time.Time) models.Visit {
	return models.Visit{
		ID:        uuid.New(),
		RepID:     uuid.New(),
		Kind:      kind,
		VisitDate: day,
	}
}

func TestDailyStats(t *testing.T) {
	day := date(2024, time.May, 1)
	visits := []models.Visit{
		visit(models.VisitKindDoctor, day),
		visit(models.VisitKindPharmacy, day.Add(14*time.Hour)), // same day, afternoon
		visit(models.VisitKindDoctor, date(2024, time.May, 2)),
	}

	stats := planning.DailyStats(visits, day)
	assert.Equal(t, 1, stats.DoctorVisits)
	assert.Equal(t, 1, stats.PharmacyVisits)
	assert.Equal(t, 2, stats.Total)
}

func TestDailyStats_Empty(t *testing.T) {
	stats := planning.DailyStats(nil, date(2024, time.May, 1))
	assert.Equal(t, models.DailyVisitStats{}, stats)
}

func TestMonthlyStats(t *testing.T) {
	visits := []models.Visit{
		visit(models.VisitKindDoctor, date(2024, time.May, 1)),
		visit(models.VisitKindPharmacy, date(2024, time.May, 1)),
		visit(models.VisitKindDoctor, date(2024, time.May, 2)),
	}

	stats := planning.MonthlyStats(visits, date(2024, time.May, 2))
	assert.Equal(t, 2, stats.DoctorVisits)
	assert.Equal(t, 1, stats.PharmacyVisits)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.WorkingDays)
	assert.Equal(t, 1.5, stats.VisitsPerWorkingDay)
}

func TestMonthlyStats_Empty(t *testing.T) {
	stats := planning.MonthlyStats(nil, date(2024, time.May, 2))
	assert.Equal(t, models.MonthlyVisitStats{}, stats)
	assert.Zero(t, stats.VisitsPerWorkingDay, "no division-by-zero panic, rate defined as 0")
}

func TestMonthlyStats_WindowBounds(t *testing.T) {
	visits := []models.Visit{
		visit(models.VisitKindDoctor, date(2024, time.April, 30)), // previous month
		visit(models.VisitKindDoctor, date(2024, time.May, 1)),    // first of month, included
		visit(models.VisitKindDoctor, date(2024, time.May, 15)),   // "now", included
		visit(models.VisitKindDoctor, date(2024, time.May, 16)),   // future, excluded
	}

	stats := planning.MonthlyStats(visits, date(2024, time.May, 15))
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 2, stats.WorkingDays)
}

func TestMonthlyStats_OrderIndependent(t *testing.T) {
	a := visit(models.VisitKindDoctor, date(2024, time.May, 1))
	b := visit(models.VisitKindPharmacy, date(2024, time.May, 3))
	c := visit(models.VisitKindDoctor, date(2024, time.May, 3))
	now := date(2024, time.May, 10)

	forward := planning.MonthlyStats([]models.Visit{a, b, c}, now)
	reversed := planning.MonthlyStats([]models.Visit{c, b, a}, now)
	assert.Equal(t, forward, reversed)

	// Re-running on the same input yields identical output
	assert.Equal(t, forward, planning.MonthlyStats([]models.Visit{a, b, c}, now))
}
