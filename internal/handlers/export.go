package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/middleware"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/planning"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportMonthlyVisits streams the rep's month-to-date visit log as an
// .xlsx attachment, with a summary row built from the monthly aggregates
func ExportMonthlyVisits(c *gin.Context) {
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

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	repo := repository.NewPlanningRepository(db)
	visits, err := repo.ListVisits(c.Request.Context(), repID, monthStart, planning.DateOnly(now))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to query visits", "details": err.Error()})
		return
	}

	f := excelize.NewFile()
	sheetName := "Visits"
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Kind", "Target", "Product", "Notes"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, v := range visits {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), planning.DayKey(v.VisitDate))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), v.Kind)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), v.TargetName)
		if v.ProductName != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), *v.ProductName)
		}
		if v.Notes != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), *v.Notes)
		}
	}

	stats := planning.MonthlyStats(visits, now)
	summaryRow := len(visits) + 3
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Totals")
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), fmt.Sprintf("doctor %d / pharmacy %d", stats.DoctorVisits, stats.PharmacyVisits))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("working days %d", stats.WorkingDays))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("visits/day %.2f", stats.VisitsPerWorkingDay))

	fileName := fmt.Sprintf("visits_%s.xlsx", now.Format("200601"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}
}
