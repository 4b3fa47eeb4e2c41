package services

import (
	"testing"
	"time"

	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardOrdering(t *testing.T) {
	db := testDB(t)

	low := createStaff(t, db, "Low Volume", "Surgeon")
	high := createStaff(t, db, "High Volume", "Surgeon")

	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	log := func(staff models.Staff, n int) {
		for i := 0; i < n; i++ {
			_, err := LogSurgery(db, models.LogSurgeryRequest{
				StaffID:     staff.ID,
				SurgeryType: "trauma",
				Date:        &date,
			})
			require.NoError(t, err)
		}
	}
	log(low, 1)
	log(high, 3)

	rows, err := Leaderboard(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "High Volume", rows[0].Name)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, 3, rows[0].Completed)
	assert.Equal(t, "Low Volume", rows[1].Name)
	assert.Equal(t, 2, rows[1].Rank)
}

// Equal counts keep staff creation order: the sort must be stable.
func TestLeaderboardStableTies(t *testing.T) {
	db := testDB(t)

	first := createStaff(t, db, "Tied First", "Surgeon")
	second := createStaff(t, db, "Tied Second", "Surgeon")
	third := createStaff(t, db, "Tied Third", "Surgeon")

	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	for _, staff := range []models.Staff{first, second, third} {
		for i := 0; i < 2; i++ {
			_, err := LogSurgery(db, models.LogSurgeryRequest{
				StaffID:     staff.ID,
				SurgeryType: "spine",
				Date:        &date,
			})
			require.NoError(t, err)
		}
	}

	rows, err := Leaderboard(db)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Tied First", rows[0].Name)
	assert.Equal(t, "Tied Second", rows[1].Name)
	assert.Equal(t, "Tied Third", rows[2].Name)
}

func TestLeaderboardRatioGuardsZeroTargets(t *testing.T) {
	db := testDB(t)
	staff := createStaff(t, db, "No Targets", "Surgeon")

	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	_, err := LogSurgery(db, models.LogSurgeryRequest{
		StaffID:     staff.ID,
		SurgeryType: "trauma",
		Date:        &date,
	})
	require.NoError(t, err)

	rows, err := Leaderboard(db)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.0, rows[0].ProgressRatio)
}
