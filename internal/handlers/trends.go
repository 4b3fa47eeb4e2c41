package handlers

import (
	"strconv"
	"time"

	"github.com/arnold/surgitrack-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetTrends returns per-month surgery counts for the trailing window ending
// at the current month, with the cosmetic derived series.
func (h *Handler) GetTrends(c *fiber.Ctx) error {
	months, _ := strconv.Atoi(c.Query("months", "6"))
	if months < 1 {
		months = 1
	}
	if months > 24 {
		months = 24
	}

	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, -(months - 1), 0)

	series, err := services.MonthlyTrend(h.DB, start, months)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(series)
}
