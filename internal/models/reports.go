package models

// DailyVisitStats counts a single day's visits split by kind
type DailyVisitStats struct {
	DoctorVisits   int `json:"doctor_visits"`
	PharmacyVisits int `json:"pharmacy_visits"`
	Total          int `json:"total"`
}

// MonthlyVisitStats counts visits from the first of the month through
// "now". WorkingDays is the number of distinct days on which at least one
// visit was recorded, not the calendar's working-day count.
type MonthlyVisitStats struct {
	DoctorVisits        int     `json:"doctor_visits"`
	PharmacyVisits      int     `json:"pharmacy_visits"`
	Total               int     `json:"total"`
	WorkingDays         int     `json:"working_days"`
	VisitsPerWorkingDay float64 `json:"visits_per_working_day"`
}

// DailyStatsResponse is the API response for the daily stats endpoint
type DailyStatsResponse struct {
	Date  string          `json:"date"`
	Stats DailyVisitStats `json:"stats"`
}

// MonthlyStatsResponse is the API response for the monthly stats endpoint
type MonthlyStatsResponse struct {
	Month string            `json:"month"` // YYYY-MM
	AsOf  string            `json:"as_of"`
	Stats MonthlyVisitStats `json:"stats"`
}

// DateRange represents a date range
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// PendingDoctorsResponse is the API response for the plan reconciliation
// endpoint: assigned doctors not yet visited today.
type PendingDoctorsResponse struct {
	Date      string   `json:"date"`
	Assigned  int      `json:"assigned"`
	Completed int      `json:"completed"`
	Pending   []Doctor `json:"pending"`
}
