package planning

import (
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/google/uuid"
)

// PendingDoctorsToday computes which of today's assigned doctors have not
// been visited yet. Visits are joined to the roster by target id when the
// visit carries one; older records that only carry a display name fall
// back to a name lookup. Assignment order is preserved and assigned ids
// with no roster entry are dropped.
func PendingDoctorsToday(plan *models.WeeklyPlan, today time.Time, visits []models.Visit, roster []models.Doctor) []models.Doctor {
	pending := []models.Doctor{}
	if plan == nil {
		return pending
	}

	assignment, ok := plan.Days[int(today.Weekday())]
	if !ok || len(assignment.DoctorIDs) == 0 {
		return pending
	}

	byID := make(map[uuid.UUID]models.Doctor, len(roster))
	byName := make(map[string]uuid.UUID, len(roster))
	for _, doc := range roster {
		byID[doc.ID] = doc
		// On duplicate names the first roster entry wins; the name join
		// is a compatibility fallback, not the primary path.
		if _, exists := byName[doc.FullName]; !exists {
			byName[doc.FullName] = doc.ID
		}
	}

	key := DayKey(today)
	visited := make(map[uuid.UUID]struct{})
	for _, v := range visits {
		if v.Kind != models.VisitKindDoctor || DayKey(v.VisitDate) != key {
			continue
		}
		if v.TargetID != nil {
			visited[*v.TargetID] = struct{}{}
			continue
		}
		if id, found := byName[v.TargetName]; found {
			visited[id] = struct{}{}
		}
	}

	for _, id := range assignment.DoctorIDs {
		if _, done := visited[id]; done {
			continue
		}
		doc, found := byID[id]
		if !found {
			continue
		}
		pending = append(pending, doc)
	}
	return pending
}
