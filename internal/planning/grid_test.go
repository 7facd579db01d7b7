package planning_test

import (
	"testing"
	"time"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/planning"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsOffDay(t *testing.T) {
	settings := &models.SystemSettings{
		Weekends: []int{5, 6}, // Friday, Saturday
		Holidays: []string{"2024-05-07"},
	}

	assert.True(t, planning.IsOffDay(date(2024, time.May, 10), settings))  // Friday
	assert.True(t, planning.IsOffDay(date(2024, time.May, 4), settings))   // Saturday
	assert.True(t, planning.IsOffDay(date(2024, time.May, 7), settings))   // holiday Tuesday
	assert.False(t, planning.IsOffDay(date(2024, time.May, 6), settings))  // Monday
	assert.False(t, planning.IsOffDay(date(2024, time.May, 6), nil), "nil settings means no off-days")
}

func TestBuildWeekGrid(t *testing.T) {
	region := models.Region{ID: uuid.New(), Name: "North District"}
	docA := doctor("Dr. A")
	docB := doctor("Dr. B")
	roster := []models.Doctor{docA, docB}

	// Week of Saturday 2024-05-04; Wednesday 2024-05-08 is "today"
	wednesday := date(2024, time.May, 8)
	plan := &models.WeeklyPlan{
		ID:     uuid.New(),
		RepID:  uuid.New(),
		Status: models.PlanStatusApproved,
		Days: map[int]models.DayAssignment{
			3: {RegionID: &region.ID, DoctorIDs: []uuid.UUID{docA.ID, docB.ID}}, // Wednesday
			5: {RegionID: &region.ID},                                           // Friday
		},
	}
	visits := []models.Visit{
		visit(models.VisitKindDoctor, wednesday),
		visit(models.VisitKindPharmacy, wednesday),
		visit(models.VisitKindDoctor, date(2024, time.May, 6)),
	}
	settings := &models.SystemSettings{Weekends: []int{5}} // Fridays off

	grid := planning.BuildWeekGrid(wednesday, plan, visits, []models.Region{region}, roster, settings, wednesday)

	assert.Equal(t, "2024-05-04", grid[0].Date)
	assert.Equal(t, 6, grid[0].DayIndex) // Saturday

	// Wednesday cell: assignment resolved, visit count, today flag
	wed := grid[4]
	assert.Equal(t, "2024-05-08", wed.Date)
	assert.True(t, wed.IsToday)
	assert.False(t, wed.IsOffDay)
	assert.Equal(t, 2, wed.VisitCount)
	require.NotNil(t, wed.AssignedRegion)
	assert.Equal(t, region.Name, wed.AssignedRegion.Name)
	require.Len(t, wed.AssignedDoctors, 2)
	assert.Equal(t, docA.ID, wed.AssignedDoctors[0].ID)

	// Friday is an off-day: its assignment is suppressed
	fri := grid[6]
	assert.True(t, fri.IsOffDay)
	assert.Nil(t, fri.AssignedRegion)
	assert.Empty(t, fri.AssignedDoctors)

	// Monday has a visit but no assignment
	mon := grid[2]
	assert.Equal(t, 1, mon.VisitCount)
	assert.Nil(t, mon.AssignedRegion)
	assert.False(t, mon.IsToday)
}

func TestBuildWeekGrid_NilInputsDegrade(t *testing.T) {
	ref := date(2024, time.May, 8)
	grid := planning.BuildWeekGrid(ref, nil, nil, nil, nil, nil, ref)

	for _, cell := range grid {
		assert.False(t, cell.IsOffDay)
		assert.Zero(t, cell.VisitCount)
		assert.Nil(t, cell.AssignedRegion)
		assert.Empty(t, cell.AssignedDoctors)
	}
}

func TestBuildWeekGrid_NavigationRecomputes(t *testing.T) {
	ref := date(2024, time.May, 8)
	current := planning.BuildWeekGrid(ref, nil, nil, nil, nil, nil, ref)
	next := planning.BuildWeekGrid(ref.AddDate(0, 0, 7), nil, nil, nil, nil, nil, ref)

	assert.Equal(t, "2024-05-04", current[0].Date)
	assert.Equal(t, "2024-05-11", next[0].Date)
	for _, cell := range next {
		assert.False(t, cell.IsToday)
	}
}
