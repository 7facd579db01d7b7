package handlers

import (
	"net/http"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/cache"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/middleware"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/planning"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/repository"
	"github.com/gin-gonic/gin"
)

// GetDailyStats returns the rep's visit counts for one day, split by kind
func GetDailyStats(c *gin.Context) {
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

	day, err := parseReferenceDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD", "details": err.Error()})
		return
	}

	repo := repository.NewPlanningRepository(db)
	visits, err := repo.ListVisits(c.Request.Context(), repID, planning.DateOnly(day), planning.DateOnly(day))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query visits", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.DailyStatsResponse{
		Date:  planning.DayKey(day),
		Stats: planning.DailyStats(visits, day),
	})
}

// GetMonthlyStats returns the rep's month-to-date dashboard: visit counts,
// visits-evidenced working days and the per-working-day rate. Results are
// cached in redis for a short TTL when available.
func GetMonthlyStats(statsCache *cache.StatsCache) gin.HandlerFunc {
	return func(c *gin.Context) {
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

		now, err := parseReferenceDate(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD", "details": err.Error()})
			return
		}

		month := now.Format("2006-01")
		slug, _ := middleware.GetOrgSlug(c)
		cacheKey := cache.MonthlyStatsKey(slug, repID, month)

		var cached models.MonthlyStatsResponse
		if statsCache.Get(c.Request.Context(), cacheKey, &cached) && cached.AsOf == planning.DayKey(now) {
			c.JSON(http.StatusOK, cached)
			return
		}

		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		repo := repository.NewPlanningRepository(db)
		visits, err := repo.ListVisits(c.Request.Context(), repID, monthStart, planning.DateOnly(now))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query visits", "details": err.Error()})
			return
		}

		response := models.MonthlyStatsResponse{
			Month: month,
			AsOf:  planning.DayKey(now),
			Stats: planning.MonthlyStats(visits, now),
		}
		statsCache.Set(c.Request.Context(), cacheKey, response)

		c.JSON(http.StatusOK, response)
	}
}
