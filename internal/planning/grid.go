package planning

import (
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/google/uuid"
)

// DayCell is the per-day display model for the weekly grid
type DayCell struct {
	Date            string          `json:"date"`
	DayIndex        int             `json:"day_index"` // 0=Sunday .. 6=Saturday
	IsOffDay        bool            `json:"is_off_day"`
	VisitCount      int             `json:"visit_count"`
	AssignedRegion  *models.Region  `json:"assigned_region,omitempty"`
	AssignedDoctors []models.Doctor `json:"assigned_doctors"`
	IsToday         bool            `json:"is_today"`
}

// IsOffDay reports whether day is a configured weekend weekday or holiday.
// Nil settings means no off-days.
func IsOffDay(day time.Time, settings *models.SystemSettings) bool {
	if settings == nil {
		return false
	}
	weekday := int(day.Weekday())
	for _, w := range settings.Weekends {
		if w == weekday {
			return true
		}
	}
	key := DayKey(day)
	for _, h := range settings.Holidays {
		if h == key {
			return true
		}
	}
	return false
}

// BuildWeekGrid assembles the 7 day cells for the week containing ref.
// Off-day status takes precedence over assignment display. Navigation is
// done by the caller moving ref by whole weeks and rebuilding.
func BuildWeekGrid(ref time.Time, plan *models.WeeklyPlan, visits []models.Visit, regions []models.Region, roster []models.Doctor, settings *models.SystemSettings, today time.Time) [7]DayCell {
	window := WeekWindow(ref)
	todayKey := DayKey(today)

	regionsByID := make(map[uuid.UUID]models.Region, len(regions))
	for _, r := range regions {
		regionsByID[r.ID] = r
	}
	doctorsByID := make(map[uuid.UUID]models.Doctor, len(roster))
	for _, d := range roster {
		doctorsByID[d.ID] = d
	}

	var cells [7]DayCell
	for i, day := range window {
		cell := DayCell{
			Date:            DayKey(day),
			DayIndex:        int(day.Weekday()),
			IsOffDay:        IsOffDay(day, settings),
			VisitCount:      DailyStats(visits, day).Total,
			AssignedDoctors: []models.Doctor{},
			IsToday:         DayKey(day) == todayKey,
		}

		if !cell.IsOffDay && plan != nil {
			if assignment, ok := plan.Days[cell.DayIndex]; ok {
				if assignment.RegionID != nil {
					if region, found := regionsByID[*assignment.RegionID]; found {
						cell.AssignedRegion = &region
					}
				}
				for _, id := range assignment.DoctorIDs {
					if doc, found := doctorsByID[id]; found {
						cell.AssignedDoctors = append(cell.AssignedDoctors, doc)
					}
				}
			}
		}

		cells[i] = cell
	}
	return cells
}
