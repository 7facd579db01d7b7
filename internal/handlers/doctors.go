package handlers

import (
	"net/http"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/middleware"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListDoctors returns the active doctor roster, optionally filtered by region
func ListDoctors(c *gin.Context) {
	db, ok := middleware.GetOrgDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	var regionID *uuid.UUID
	if regionParam := c.Query("region_id"); regionParam != "" {
		parsed, err := uuid.Parse(regionParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid region ID format"})
			return
		}
		regionID = &parsed
	}

	repo := repository.NewPlanningRepository(db)
	doctors, err := repo.ListDoctors(c.Request.Context(), regionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query doctors", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"doctors": doctors,
		"total":   len(doctors),
	})
}

// ListRegions returns all territory regions
func ListRegions(c *gin.Context) {
	db, ok := middleware.GetOrgDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	repo := repository.NewPlanningRepository(db)
	regions, err := repo.ListRegions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query regions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"regions": regions,
		"total":   len(regions),
	})
}
