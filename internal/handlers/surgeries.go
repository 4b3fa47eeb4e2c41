package handlers

import (
	"strconv"

	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/arnold/surgitrack-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// LogSurgery appends one procedure record for an existing staff member.
func (h *Handler) LogSurgery(c *fiber.Ctx) error {
	var req models.LogSurgeryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	surgery, err := services.LogSurgery(h.DB, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(surgery)
}

// ListSurgeries returns the paginated raw surgery log, newest first.
func (h *Handler) ListSurgeries(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	surgeries, total, err := services.ListSurgeries(h.DB, offset, limit)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"surgeries": surgeries,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}
