package services

import (
	"math"
	"time"

	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/arnold/surgitrack-api/internal/models"
	"gorm.io/gorm"
)

// MonthlyTrend counts logged surgeries per calendar month over a window of
// consecutive months starting at start. Months with no activity appear as
// zero. The derived series (trailing 3-point moving average, least-squares
// line, one-month projection) are illustrative only.
func MonthlyTrend(db *gorm.DB, start time.Time, months int) (*models.TrendSeries, error) {
	if months < 1 {
		return nil, apperr.Validationf("trend window must cover at least one month, got %d", months)
	}

	start = time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	points := make([]models.TrendPoint, months)
	counts := make([]float64, months)

	for i := 0; i < months; i++ {
		monthStart := start.AddDate(0, i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		var count int64
		if err := db.Model(&models.Surgery{}).
			Where("date >= ? AND date < ?", monthStart, monthEnd).
			Count(&count).Error; err != nil {
			return nil, apperr.Store("count monthly surgeries", err)
		}

		points[i] = models.TrendPoint{Month: formatPeriod(monthStart), Count: int(count)}
		counts[i] = float64(count)
	}

	slope, intercept := linearFit(counts)
	projected := intercept + slope*float64(months)
	if projected < 0 {
		projected = 0
	}

	return &models.TrendSeries{
		Points:        points,
		MovingAverage: movingAverage(counts, 3),
		Slope:         slope,
		Intercept:     intercept,
		Projected: models.TrendPoint{
			Month: formatPeriod(start.AddDate(0, months, 0)),
			Count: int(math.Round(projected)),
		},
	}, nil
}

// movingAverage returns the trailing mean over at most window points, one
// value per input point.
func movingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		sum := 0.0
		for j := lo; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(i-lo+1)
	}
	return out
}

// linearFit computes the least-squares line y = intercept + slope*x over
// x = 0..n-1. With fewer than two points the line is flat.
func linearFit(y []float64) (slope, intercept float64) {
	n := float64(len(y))
	if len(y) < 2 {
		if len(y) == 1 {
			return 0, y[0]
		}
		return 0, 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, v := range y {
		x := float64(i)
		sumX += x
		sumY += v
		sumXY += x * v
		sumXX += x * x
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, sumY / n
	}
	slope = (n*sumXY - sumX*sumY) / denom
	intercept = (sumY - slope*sumX) / n
	return slope, intercept
}
