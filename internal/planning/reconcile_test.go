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

func doctor(name string) models.Doctor {
	return models.Doctor{ID: uuid.New(), FullName: name, IsActive: true}
}

func planFor(weekday int, regionID *uuid.UUID, doctorIDs ...uuid.UUID) *models.WeeklyPlan {
	return &models.WeeklyPlan{
		ID:     uuid.New(),
		RepID:  uuid.New(),
		Status: models.PlanStatusApproved,
		Days: map[int]models.DayAssignment{
			weekday: {RegionID: regionID, DoctorIDs: doctorIDs},
		},
	}
}

func TestPendingDoctorsToday_NilPlan(t *testing.T) {
	pending := planning.PendingDoctorsToday(nil, date(2024, time.May, 9), nil, nil)
	assert.Empty(t, pending)
}

func TestPendingDoctorsToday_NoAssignmentForToday(t *testing.T) {
	thursday := date(2024, time.May, 9)
	plan := planFor(1, nil, uuid.New()) // Monday assignment only

	pending := planning.PendingDoctorsToday(plan, thursday, nil, nil)
	assert.Empty(t, pending)
}

func TestPendingDoctorsToday_EmptyDoctorList(t *testing.T) {
	thursday := date(2024, time.May, 9)
	regionID := uuid.New()
	plan := planFor(4, &regionID) // region-only day

	pending := planning.PendingDoctorsToday(plan, thursday, nil, nil)
	assert.Empty(t, pending)
}

func TestPendingDoctorsToday_NameJoin(t *testing.T) {
	thursday := date(2024, time.May, 9) // weekday index 4
	docA := doctor("Dr. A")
	docB := doctor("Dr. B")
	roster := []models.Doctor{docA, docB}

	regionID := uuid.New()
	plan := planFor(4, &regionID, docA.ID, docB.ID)

	// Visit recorded today for doctor A, matched by name only
	visits := []models.Visit{{
		ID:         uuid.New(),
		Kind:       models.VisitKindDoctor,
		VisitDate:  thursday.Add(10 * time.Hour),
		TargetName: "Dr. A",
	}}

	pending := planning.PendingDoctorsToday(plan, thursday, visits, roster)
	require.Len(t, pending, 1)
	assert.Equal(t, docB.ID, pending[0].ID)
}

func TestPendingDoctorsToday_IDJoinPreferred(t *testing.T) {
	thursday := date(2024, time.May, 9)
	docA := doctor("Dr. A")
	docB := doctor("Dr. B")
	roster := []models.Doctor{docA, docB}
	plan := planFor(4, nil, docA.ID, docB.ID)

	// Target id wins even when the recorded name would not match
	visits := []models.Visit{{
		ID:         uuid.New(),
		Kind:       models.VisitKindDoctor,
		VisitDate:  thursday,
		TargetName: "Dr. A (renamed)",
		TargetID:   &docA.ID,
	}}

	pending := planning.PendingDoctorsToday(plan, thursday, visits, roster)
	require.Len(t, pending, 1)
	assert.Equal(t, docB.ID, pending[0].ID)
}

func TestPendingDoctorsToday_IgnoresOtherDaysAndKinds(t *testing.T) {
	thursday := date(2024, time.May, 9)
	docA := doctor("Dr. A")
	roster := []models.Doctor{docA}
	plan := planFor(4, nil, docA.ID)

	visits := []models.Visit{
		// Pharmacy visit today does not count
		{ID: uuid.New(), Kind: models.VisitKindPharmacy, VisitDate: thursday, TargetName: "Dr. A"},
		// Doctor visit yesterday does not count
		{ID: uuid.New(), Kind: models.VisitKindDoctor, VisitDate: thursday.AddDate(0, 0, -1), TargetName: "Dr. A"},
	}

	pending := planning.PendingDoctorsToday(plan, thursday, visits, roster)
	require.Len(t, pending, 1)
	assert.Equal(t, docA.ID, pending[0].ID)
}

func TestPendingDoctorsToday_UnknownIDsDropped(t *testing.T) {
	thursday := date(2024, time.May, 9)
	docA := doctor("Dr. A")
	roster := []models.Doctor{docA}
	plan := planFor(4, nil, uuid.New(), docA.ID) // first id not in roster

	pending := planning.PendingDoctorsToday(plan, thursday, nil, roster)
	require.Len(t, pending, 1)
	assert.Equal(t, docA.ID, pending[0].ID)
}

func TestPendingDoctorsToday_PreservesAssignmentOrder(t *testing.T) {
	thursday := date(2024, time.May, 9)
	docs := []models.Doctor{doctor("Dr. A"), doctor("Dr. B"), doctor("Dr. C")}
	plan := planFor(4, nil, docs[2].ID, docs[0].ID, docs[1].ID)

	pending := planning.PendingDoctorsToday(plan, thursday, nil, docs)
	require.Len(t, pending, 3)
	assert.Equal(t, docs[2].ID, pending[0].ID)
	assert.Equal(t, docs[0].ID, pending[1].ID)
	assert.Equal(t, docs[1].ID, pending[2].ID)
}
