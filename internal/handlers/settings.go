package handlers

import (
	"errors"
	"net/http"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/middleware"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/planning"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetSettings returns the org's off-day configuration. A missing row is a
// valid state and comes back as empty weekend/holiday sets.
func GetSettings(c *gin.Context) {
	db, ok := middleware.GetOrgDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	repo := repository.NewPlanningRepository(db)
	settings, err := repo.GetSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			c.JSON(http.StatusOK, models.SystemSettings{Weekends: []int{}, Holidays: []string{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query settings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces the org's weekend and holiday configuration
// (manager only)
func UpdateSettings(c *gin.Context) {
	db, ok := middleware.GetOrgDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	repID, _ := middleware.GetAuthRepID(c)

	var req models.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	for _, weekday := range req.Weekends {
		if weekday < 0 || weekday > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Weekend weekday index must be between 0 and 6"})
			return
		}
	}
	for _, holiday := range req.Holidays {
		if _, err := planning.ParseDayKey(holiday); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid holiday date. Use YYYY-MM-DD", "details": err.Error()})
			return
		}
	}

	if req.Weekends == nil {
		req.Weekends = []int{}
	}
	if req.Holidays == nil {
		req.Holidays = []string{}
	}

	// Single settings row per org database
	query := `
		INSERT INTO system_settings (id, weekends, holidays, created_at, updated_at, updated_by)
		VALUES ($1, $2, $3, NOW(), NOW(), $4)
		ON CONFLICT (id) DO UPDATE
		SET weekends = EXCLUDED.weekends, holidays = EXCLUDED.holidays,
		    updated_at = NOW(), updated_by = EXCLUDED.updated_by
	`

	settingsID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	_, err := db.Exec(c.Request.Context(), query, settingsID, req.Weekends, req.Holidays, repID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weekends": req.Weekends,
		"holidays": req.Holidays,
		"message":  "Settings updated successfully",
	})
}
