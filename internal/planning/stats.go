package planning

import (
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
)

// DailyStats counts the visits that fall on the same calendar day as day,
// split by visit kind. The input slice is never mutated.
func DailyStats(visits []models.Visit, day time.Time) models.DailyVisitStats {
	key := DayKey(day)

	var stats models.DailyVisitStats
	for _, v := range visits {
		if DayKey(v.VisitDate) != key {
			continue
		}
		switch v.Kind {
		case models.VisitKindDoctor:
			stats.DoctorVisits++
		case models.VisitKindPharmacy:
			stats.PharmacyVisits++
		}
		stats.Total++
	}
	return stats
}

// MonthlyStats counts visits between the first of now's month and now,
// inclusive. WorkingDays is the number of distinct days on which at least
// one visit was recorded ("visits-evidenced" days), and the per-day rate
// is 0 when there are no such days.
func MonthlyStats(visits []models.Visit, now time.Time) models.MonthlyVisitStats {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := DateOnly(now)

	var stats models.MonthlyVisitStats
	seenDays := make(map[string]struct{})

	for _, v := range visits {
		day := DateOnly(v.VisitDate)
		if day.Before(monthStart) || day.After(end) {
			continue
		}
		switch v.Kind {
		case models.VisitKindDoctor:
			stats.DoctorVisits++
		case models.VisitKindPharmacy:
			stats.PharmacyVisits++
		}
		stats.Total++
		seenDays[DayKey(day)] = struct{}{}
	}

	stats.WorkingDays = len(seenDays)
	if stats.WorkingDays > 0 {
		stats.VisitsPerWorkingDay = float64(stats.Total) / float64(stats.WorkingDays)
	}
	return stats
}
