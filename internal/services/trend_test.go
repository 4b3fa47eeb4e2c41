package services

import (
	"testing"
	"time"

	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyTrendZeroFills(t *testing.T) {
	db := testDB(t)
	staff := createStaff(t, db, "Trend Staff", "Surgeon")

	// Two in July, none in August, one in September
	dates := []time.Time{
		time.Date(2025, 7, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		date := d
		_, err := LogSurgery(db, models.LogSurgeryRequest{
			StaffID:     staff.ID,
			SurgeryType: "trauma",
			Date:        &date,
		})
		require.NoError(t, err)
	}

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	series, err := MonthlyTrend(db, start, 3)
	require.NoError(t, err)
	require.Len(t, series.Points, 3)

	assert.Equal(t, models.TrendPoint{Month: "2025-07", Count: 2}, series.Points[0])
	assert.Equal(t, models.TrendPoint{Month: "2025-08", Count: 0}, series.Points[1])
	assert.Equal(t, models.TrendPoint{Month: "2025-09", Count: 1}, series.Points[2])

	// Window counts sum to the surgeries logged inside the window
	sum := 0
	for _, p := range series.Points {
		sum += p.Count
	}
	assert.Equal(t, len(dates), sum)
}

func TestMonthlyTrendMovingAverage(t *testing.T) {
	avg := movingAverage([]float64{3, 0, 3, 6}, 3)
	require.Len(t, avg, 4)
	assert.Equal(t, 3.0, avg[0])
	assert.Equal(t, 1.5, avg[1])
	assert.Equal(t, 2.0, avg[2])
	assert.Equal(t, 3.0, avg[3])
}

func TestLinearFit(t *testing.T) {
	slope, intercept := linearFit([]float64{1, 2, 3, 4})
	assert.InDelta(t, 1.0, slope, 1e-9)
	assert.InDelta(t, 1.0, intercept, 1e-9)

	slope, intercept = linearFit([]float64{5, 5, 5})
	assert.InDelta(t, 0.0, slope, 1e-9)
	assert.InDelta(t, 5.0, intercept, 1e-9)

	slope, intercept = linearFit([]float64{7})
	assert.Equal(t, 0.0, slope)
	assert.Equal(t, 7.0, intercept)
}

func TestMonthlyTrendProjectionNeverNegative(t *testing.T) {
	db := testDB(t)
	staff := createStaff(t, db, "Declining", "Surgeon")

	// Steep decline: projection would go below zero without the clamp
	counts := []int{6, 3, 0}
	for i, n := range counts {
		for j := 0; j < n; j++ {
			date := time.Date(2025, time.Month(7+i), 2, 0, 0, 0, 0, time.UTC)
			_, err := LogSurgery(db, models.LogSurgeryRequest{
				StaffID:     staff.ID,
				SurgeryType: "spine",
				Date:        &date,
			})
			require.NoError(t, err)
		}
	}

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	series, err := MonthlyTrend(db, start, 3)
	require.NoError(t, err)
	assert.Equal(t, "2025-10", series.Projected.Month)
	assert.GreaterOrEqual(t, series.Projected.Count, 0)
}

func TestMonthlyTrendRejectsEmptyWindow(t *testing.T) {
	db := testDB(t)
	_, err := MonthlyTrend(db, time.Now(), 0)
	assert.True(t, apperr.IsValidation(err))
}
