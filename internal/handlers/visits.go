package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/cache"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/middleware"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/planning"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListVisits returns the authenticated rep's visits for a date range.
// Defaults to the current Saturday-to-Friday week when no range is given.
func ListVisits(c *gin.Context) {
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

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	var start, end time.Time
	if startDate == "" {
		window := planning.WeekWindow(time.Now())
		start, end = window[0], window[6]
	} else {
		parsed, err := planning.ParseDayKey(startDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid start_date format. Use YYYY-MM-DD", "details": err.Error()})
			return
		}
		start = parsed
		end = start.AddDate(0, 0, 6)
	}
	if endDate != "" {
		parsed, err := planning.ParseDayKey(endDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end_date format. Use YYYY-MM-DD", "details": err.Error()})
			return
		}
		end = parsed
	}

	repo := repository.NewPlanningRepository(db)
	visits, err := repo.ListVisits(c.Request.Context(), repID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query visits", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.VisitListResponse{
		StartDate: planning.DayKey(start),
		EndDate:   planning.DayKey(end),
		Visits:    visits,
		Total:     len(visits),
	})
}

// CreateVisit records a new visit for the authenticated rep. Visits are
// immutable once created.
func CreateVisit(statsCache *cache.StatsCache) gin.HandlerFunc {
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

		var req models.VisitCreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
			return
		}

		if req.Kind != models.VisitKindDoctor && req.Kind != models.VisitKindPharmacy {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visit kind"})
			return
		}

		// Parse visit date or default to today
		visitDate := time.Now()
		if req.VisitDate != nil && *req.VisitDate != "" {
			parsed, err := planning.ParseDayKey(*req.VisitDate)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid visit_date format. Use YYYY-MM-DD", "details": err.Error()})
				return
			}
			visitDate = parsed
		}

		// Resolve target id if provided; the id join keeps reconciliation
		// exact even when doctors are renamed
		var targetID *uuid.UUID
		if req.TargetID != nil && *req.TargetID != "" {
			parsed, err := uuid.Parse(*req.TargetID)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid target_id format"})
				return
			}
			targetID = &parsed
		}

		visitID := uuid.New()
		query := `
			INSERT INTO visits (id, rep_id, kind, visit_date, target_name, target_id, product_name, notes, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
			RETURNING id, created_at
		`

		var returnedID uuid.UUID
		var createdAt time.Time
		err := db.QueryRow(c.Request.Context(), query,
			visitID, repID, req.Kind, visitDate, req.TargetName, targetID, req.ProductName, req.Notes,
		).Scan(&returnedID, &createdAt)

		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create visit", "details": err.Error()})
			return
		}

		// New visits change the monthly aggregates
		if slug, ok := middleware.GetOrgSlug(c); ok {
			statsCache.Invalidate(c.Request.Context(),
				cache.MonthlyStatsKey(slug, repID, visitDate.Format("2006-01")))
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":          returnedID,
			"rep_id":      repID,
			"kind":        req.Kind,
			"visit_date":  planning.DayKey(visitDate),
			"target_name": req.TargetName,
			"target_id":   targetID,
			"created_at":  createdAt,
			"message":     "Visit recorded successfully",
		})
	}
}

// CreateAbsence records a manually entered off-duty day for the rep
func CreateAbsence(c *gin.Context) {
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

	var req models.AbsenceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	absenceDate, err := planning.ParseDayKey(req.AbsenceDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid absence_date format. Use YYYY-MM-DD", "details": err.Error()})
		return
	}

	absenceID := uuid.New()
	query := `
		INSERT INTO absences (id, rep_id, absence_date, reason, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`

	var returnedID uuid.UUID
	if err := db.QueryRow(c.Request.Context(), query, absenceID, repID, absenceDate, req.Reason).Scan(&returnedID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create absence", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":           returnedID,
		"rep_id":       repID,
		"absence_date": planning.DayKey(absenceDate),
		"message":      "Absence recorded successfully",
	})
}

// DeleteAbsence soft-deletes a rep's own absence record. Absences are the
// only manually entered records that can be removed.
func DeleteAbsence(c *gin.Context) {
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

	absenceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid absence ID format"})
		return
	}

	query := `
		UPDATE absences
		SET deleted_at = NOW()
		WHERE id = $1 AND rep_id = $2 AND deleted_at IS NULL
	`

	result, err := db.Exec(c.Request.Context(), query, absenceID, repID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete absence", "details": err.Error()})
		return
	}
	if result.RowsAffected() == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Absence not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      absenceID,
		"message": "Absence deleted successfully",
	})
}

// parseReferenceDate reads the optional ?date= query parameter used by the
// planning endpoints so clients (and tests) can pin the reference day.
func parseReferenceDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now(), nil
	}
	parsed, err := planning.ParseDayKey(raw)
	if err != nil {
		var parseErr *planning.DateParseError
		if errors.As(err, &parseErr) {
			return time.Time{}, parseErr
		}
		return time.Time{}, err
	}
	return parsed, nil
}
