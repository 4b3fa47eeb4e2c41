package handlers

import (
	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/arnold/surgitrack-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetDashboard returns the progress table plus headline totals.
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	period := c.Query("period")
	if period != "" {
		if err := services.ValidatePeriod(period); err != nil {
			return respondError(c, err)
		}
	}

	rows, err := services.AllStaffProgress(h.DB, period)
	if err != nil {
		return respondError(c, err)
	}

	totalTargets := 0
	totalAchieved := 0
	for _, row := range rows {
		totalTargets += row.TotalTargets
		totalAchieved += row.Achieved
	}

	overall := 0.0
	if totalTargets > 0 {
		overall = float64(totalAchieved) / float64(totalTargets) * 100
	}

	return c.JSON(fiber.Map{
		"staff":         rows,
		"totalTargets":  totalTargets,
		"totalAchieved": totalAchieved,
		"overallPct":    overall,
	})
}

// GetStaffProgress returns one staff member's progress, optionally scoped
// to a single month via ?period=YYYY-MM.
func (h *Handler) GetStaffProgress(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("staffId"))
	if err != nil {
		return respondError(c, apperr.Validationf("invalid staff id"))
	}

	period := c.Query("period")
	if period != "" {
		if err := services.ValidatePeriod(period); err != nil {
			return respondError(c, err)
		}
	}

	row, err := services.StaffProgress(h.DB, staffID, period)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(row)
}

// ListStaff returns all staff in creation order.
func (h *Handler) ListStaff(c *fiber.Ctx) error {
	var staff []models.Staff
	if err := h.DB.Order("created_at ASC").Find(&staff).Error; err != nil {
		return respondError(c, apperr.Store("list staff", err))
	}
	return c.JSON(staff)
}
