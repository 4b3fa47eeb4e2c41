package services

import (
	"time"

	"github.com/arnold/surgitrack-api/internal/apperr"
)

const periodLayout = "2006-01"

// parsePeriod validates a "YYYY-MM" month string and returns the start of
// that month in UTC.
func parsePeriod(period string) (time.Time, error) {
	t, err := time.Parse(periodLayout, period)
	if err != nil {
		return time.Time{}, apperr.Validationf("invalid period %q, expected YYYY-MM", period)
	}
	return t, nil
}

// periodRange returns the half-open [start, end) interval covering the month.
func periodRange(period string) (time.Time, time.Time, error) {
	start, err := parsePeriod(period)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 1, 0), nil
}

// ValidatePeriod rejects anything that is not a "YYYY-MM" month string.
func ValidatePeriod(period string) error {
	_, err := parsePeriod(period)
	return err
}

func formatPeriod(t time.Time) string {
	return t.Format(periodLayout)
}
