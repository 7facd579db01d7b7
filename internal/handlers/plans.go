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

// GetCurrentPlan returns the rep's in-flight weekly plan together with the
// edit permission and view routing decision for the reference day
func GetCurrentPlan(c *gin.Context) {
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

	repo := repository.NewPlanningRepository(db)
	plan, err := repo.GetCurrentPlan(c.Request.Context(), repID)
	if err != nil && !errors.Is(err, repository.ErrPlanNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query plan", "details": err.Error()})
		return
	}

	// A missing plan is a valid state: everything editable
	c.JSON(http.StatusOK, models.PlanResponse{
		Plan:    plan,
		CanEdit: planning.CanEdit(plan, today),
		View:    planning.RouteView(plan, today),
	})
}

// SavePlan replaces the rep's weekly plan wholesale. Approved plans are
// locked outside the review weekday; concurrent saves are last-write-wins.
func SavePlan(c *gin.Context) {
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

	var req models.PlanSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	// Weekday keys must be valid indices
	for weekday := range req.Days {
		if weekday < 0 || weekday > 6 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Weekday index must be between 0 and 6"})
			return
		}
	}

	repo := repository.NewPlanningRepository(db)

	existing, err := repo.GetCurrentPlan(c.Request.Context(), repID)
	if err != nil && !errors.Is(err, repository.ErrPlanNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query plan", "details": err.Error()})
		return
	}
	if !planning.CanEdit(existing, today) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Plan is approved and locked until the weekly review day"})
		return
	}

	plan, err := repo.SavePlan(c.Request.Context(), repID, req.Days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save plan", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.PlanResponse{
		Plan:    plan,
		CanEdit: planning.CanEdit(plan, today),
		View:    planning.RouteView(plan, today),
	})
}

// SubmitPlan moves the rep's own plan from draft or rejected to pending
func SubmitPlan(c *gin.Context) {
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

	repo := repository.NewPlanningRepository(db)
	plan, err := repo.GetCurrentPlan(c.Request.Context(), repID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No plan to submit"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query plan", "details": err.Error()})
		}
		return
	}

	err = repo.UpdatePlanStatus(c.Request.Context(), plan.ID,
		[]string{models.PlanStatusDraft, models.PlanStatusRejected}, models.PlanStatusPending)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Plan is not in a submittable state"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit plan", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan_id": plan.ID,
		"status":  models.PlanStatusPending,
		"message": "Plan submitted for approval",
	})
}

// planAction factors the shared manager approve/reject flow
func planAction(c *gin.Context, fromStatuses []string, toStatus, message string) {
	db, ok := middleware.GetOrgDB(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
		return
	}

	repID, err := uuid.Parse(c.Param("rep_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rep ID format"})
		return
	}

	var req models.PlanActionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	repo := repository.NewPlanningRepository(db)
	plan, err := repo.GetCurrentPlan(c.Request.Context(), repID)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query plan", "details": err.Error()})
		}
		return
	}

	err = repo.UpdatePlanStatus(c.Request.Context(), plan.ID, fromStatuses, toStatus)
	if err != nil {
		if errors.Is(err, repository.ErrPlanNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Plan is not pending review"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan_id": plan.ID,
		"rep_id":  repID,
		"status":  toStatus,
		"message": message,
	})
}

// ApprovePlan approves a rep's pending plan (manager only)
func ApprovePlan(c *gin.Context) {
	planAction(c, []string{models.PlanStatusPending}, models.PlanStatusApproved, "Plan approved")
}

// RejectPlan rejects a rep's pending plan (manager only)
func RejectPlan(c *gin.Context) {
	planAction(c, []string{models.PlanStatusPending}, models.PlanStatusRejected, "Plan rejected")
}

// GetPendingDoctors reconciles today's plan against today's recorded
// visits: which assigned doctors still need a visit
func GetPendingDoctors(c *gin.Context) {
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

	repo := repository.NewPlanningRepository(db)

	plan, err := repo.GetCurrentPlan(c.Request.Context(), repID)
	if err != nil && !errors.Is(err, repository.ErrPlanNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query plan", "details": err.Error()})
		return
	}

	visits, err := repo.ListVisits(c.Request.Context(), repID, planning.DateOnly(today), planning.DateOnly(today))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query visits", "details": err.Error()})
		return
	}

	roster, err := repo.ListDoctors(c.Request.Context(), nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query doctors", "details": err.Error()})
		return
	}

	pending := planning.PendingDoctorsToday(plan, today, visits, roster)

	assigned := 0
	if plan != nil {
		if assignment, ok := plan.Days[int(today.Weekday())]; ok {
			assigned = len(assignment.DoctorIDs)
		}
	}

	c.JSON(http.StatusOK, models.PendingDoctorsResponse{
		Date:      planning.DayKey(today),
		Assigned:  assigned,
		Completed: assigned - len(pending),
		Pending:   pending,
	})
}
