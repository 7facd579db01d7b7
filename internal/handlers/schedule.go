package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/middleware"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/planning"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/repository"
	"github.com/gin-gonic/gin"
)

// WeekGridResponse is the API response for the weekly grid
type WeekGridResponse struct {
	WeekStart string             `json:"week_start"`
	WeekEnd   string             `json:"week_end"`
	Offset    int                `json:"offset"`
	View      string             `json:"view"`
	CanEdit   bool               `json:"can_edit"`
	Days      []planning.DayCell `json:"days"`
}

// GetWeekGrid returns the 7-day planner grid for the week containing the
// reference date. Navigation uses ?offset=N to move N whole weeks and the
// grid is recomputed from scratch each time.
func GetWeekGrid(c *gin.Context) {
	db, ok := middleware.GetOrgDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	repID, ok := middleware.GetAuthRepID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	today, err := parseReferenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD", "details": err.Error()})
		return
	}

	offset := 0
	if offsetParam := c.Query("offset"); offsetParam != "" {
		parsed, err := strconv.Atoi(offsetParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offset, must be an integer"})
			return
		}
		offset = parsed
	}
	ref := today.AddDate(0, 0, 7*offset)

	repo := repository.NewPlanningRepository(db)

	plan, err := repo.GetCurrentPlan(c.Request.Context(), repID)
	if err != nil && !errors.Is(err, repository.ErrPlanNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query plan", "details": err.Error()})
		return
	}

	window := planning.WeekWindow(ref)
	visits, err := repo.ListVisits(c.Request.Context(), repID, window[0], window[6])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query visits", "details": err.Error()})
		return
	}

	regions, err := repo.ListRegions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query regions", "details": err.Error()})
		return
	}

	roster, err := repo.ListDoctors(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query doctors", "details": err.Error()})
		return
	}

	settings, err := repo.GetSettings(c.Request.Context())
	if err != nil && !errors.Is(err, repository.ErrSettingsNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query settings", "details": err.Error()})
		return
	}

	grid := planning.BuildWeekGrid(ref, plan, visits, regions, roster, settings, today)

	c.JSON(http.StatusOK, WeekGridResponse{
		WeekStart: grid[0].Date,
		WeekEnd:   grid[6].Date,
		Offset:    offset,
		View:      planning.RouteView(plan, today),
		CanEdit:   planning.CanEdit(plan, today),
		Days:      grid[:],
	})
}
