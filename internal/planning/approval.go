package planning

import (
	"log"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
)

// PlanEditWeekday is the one weekday on which an approved plan opens for
// edits again (the weekly review window). Weekday index 4.
const PlanEditWeekday = time.Thursday

// View routing targets for the weekly planner UI
const (
	ViewPlan   = "plan"   // editable grid
	ViewWeekly = "weekly" // read-only calendar
)

// CanEdit reports whether a rep may edit their plan right now. A missing
// plan and any non-approved status are always editable; an approved plan
// is editable only on the review weekday. Unknown statuses are treated as
// editable and logged for investigation, since locking a rep out by
// mistake is worse than allowing an edit.
func CanEdit(plan *models.WeeklyPlan, today time.Time) bool {
	if plan == nil {
		return true
	}
	switch plan.Status {
	case models.PlanStatusApproved:
		return today.Weekday() == PlanEditWeekday
	case models.PlanStatusDraft, models.PlanStatusPending, models.PlanStatusRejected:
		return true
	default:
		log.Printf("unknown plan status %q for plan %s, treating as editable", plan.Status, plan.ID)
		return true
	}
}

// RouteView picks the planner view for the current plan state
func RouteView(plan *models.WeeklyPlan, today time.Time) string {
	if CanEdit(plan, today) {
		return ViewPlan
	}
	return ViewWeekly
}
