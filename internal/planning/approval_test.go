package planning_test

import (
	"testing"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/planning"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func planWithStatus(status string) *models.WeeklyPlan {
	return &models.WeeklyPlan{ID: uuid.New(), RepID: uuid.New(), Status: status}
}

func TestCanEdit_NilPlan(t *testing.T) {
	assert.True(t, planning.CanEdit(nil, date(2024, time.May, 6)))
}

func TestCanEdit_NonApprovedAlwaysEditable(t *testing.T) {
	monday := date(2024, time.May, 6)
	thursday := date(2024, time.May, 9)

	for _, status := range []string{
		models.PlanStatusDraft,
		models.PlanStatusPending,
		models.PlanStatusRejected,
	} {
		assert.True(t, planning.CanEdit(planWithStatus(status), monday), "status %s", status)
		assert.True(t, planning.CanEdit(planWithStatus(status), thursday), "status %s", status)
	}
}

func TestCanEdit_ApprovedOnlyOnReviewWeekday(t *testing.T) {
	plan := planWithStatus(models.PlanStatusApproved)

	// 2024-05-04 is a Saturday; walk the whole week
	for i := 0; i < 7; i++ {
		day := date(2024, time.May, 4).AddDate(0, 0, i)
		want := day.Weekday() == time.Thursday
		assert.Equal(t, want, planning.CanEdit(plan, day), "weekday %s", day.Weekday())
	}
}

func TestCanEdit_UnknownStatusFailsOpen(t *testing.T) {
	plan := planWithStatus("archived")
	assert.True(t, planning.CanEdit(plan, date(2024, time.May, 6)))
}

func TestRouteView(t *testing.T) {
	monday := date(2024, time.May, 6)
	thursday := date(2024, time.May, 9)

	assert.Equal(t, planning.ViewPlan, planning.RouteView(nil, monday))
	assert.Equal(t, planning.ViewPlan, planning.RouteView(planWithStatus(models.PlanStatusDraft), monday))
	assert.Equal(t, planning.ViewWeekly, planning.RouteView(planWithStatus(models.PlanStatusApproved), monday))
	assert.Equal(t, planning.ViewPlan, planning.RouteView(planWithStatus(models.PlanStatusApproved), thursday))
}
