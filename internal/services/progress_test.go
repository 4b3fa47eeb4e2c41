package services

import (
	"testing"
	"time"

	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 0.0, progressPercent(3, 0))
	assert.Equal(t, 0.0, progressPercent(0, 0))
	assert.Equal(t, 100.0, progressPercent(5, 5))
	assert.Equal(t, 60.0, progressPercent(3, 5))
	assert.Equal(t, 33.3, progressPercent(1, 3))
}

func TestStaffProgressNoTargets(t *testing.T) {
	db := testDB(t)
	staff := createStaff(t, db, "Alice Mwangi", "Surgeon")

	row, err := StaffProgress(db, staff.ID, "")
	require.NoError(t, err)
	assert.Equal(t, 0, row.TotalTargets)
	assert.Equal(t, 0.0, row.ProgressPercent)
}

func TestStaffProgressReachesHundred(t *testing.T) {
	db := testDB(t)

	target, err := AssignTarget(db, models.AssignTargetRequest{
		StaffName:   "Brian Otieno",
		StaffRole:   "Surgeon",
		Period:      "2025-09",
		TargetCount: 4,
	})
	require.NoError(t, err)

	date := time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		_, err := LogSurgery(db, models.LogSurgeryRequest{
			StaffID:     target.StaffID,
			SurgeryType: "trauma",
			Date:        &date,
		})
		require.NoError(t, err)
	}

	row, err := StaffProgress(db, target.StaffID, "")
	require.NoError(t, err)
	assert.Equal(t, 4, row.TotalTargets)
	assert.Equal(t, 4, row.Achieved)
	assert.Equal(t, 100.0, row.ProgressPercent)
}

// The worked example: 5 assigned, 3 logged in the month, 60.0%.
func TestStaffProgressCarolExample(t *testing.T) {
	db := testDB(t)

	target, err := AssignTarget(db, models.AssignTargetRequest{
		StaffName:   "Carol",
		StaffRole:   "Surgeon",
		Period:      "2025-09",
		TargetCount: 5,
	})
	require.NoError(t, err)

	for day := 1; day <= 3; day++ {
		date := time.Date(2025, 9, day, 8, 0, 0, 0, time.UTC)
		_, err := LogSurgery(db, models.LogSurgeryRequest{
			StaffID:     target.StaffID,
			SurgeryType: "spine",
			Date:        &date,
		})
		require.NoError(t, err)
	}

	row, err := StaffProgress(db, target.StaffID, "2025-09")
	require.NoError(t, err)
	assert.Equal(t, 5, row.TotalTargets)
	assert.Equal(t, 3, row.Achieved)
	assert.Equal(t, 60.0, row.ProgressPercent)
}

func TestStaffProgressPeriodScope(t *testing.T) {
	db := testDB(t)

	target, err := AssignTarget(db, models.AssignTargetRequest{
		StaffName:   "David Kimani",
		StaffRole:   "Surgeon",
		Period:      "2025-09",
		TargetCount: 2,
	})
	require.NoError(t, err)

	sept := time.Date(2025, 9, 5, 0, 0, 0, 0, time.UTC)
	oct := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)
	for _, d := range []time.Time{sept, oct} {
		date := d
		_, err := LogSurgery(db, models.LogSurgeryRequest{
			StaffID:     target.StaffID,
			SurgeryType: "tumor",
			Date:        &date,
		})
		require.NoError(t, err)
	}

	row, err := StaffProgress(db, target.StaffID, "2025-09")
	require.NoError(t, err)
	assert.Equal(t, 1, row.Achieved, "October surgery must not count for September")

	all, err := StaffProgress(db, target.StaffID, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Achieved)
}

func TestAllStaffProgressKeepsCreationOrder(t *testing.T) {
	db := testDB(t)
	first := createStaff(t, db, "First", "Surgeon")
	second := createStaff(t, db, "Second", "Nurse")

	rows, err := AllStaffProgress(db, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].StaffID)
	assert.Equal(t, second.ID, rows[1].StaffID)
}
