package handlers

import (
	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/arnold/surgitrack-api/internal/models"
	"github.com/arnold/surgitrack-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AssignTarget creates a monthly case-count target, creating the staff
// member first if the name is new. Admin only.
func (h *Handler) AssignTarget(c *fiber.Ctx) error {
	var req models.AssignTargetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	target, err := services.AssignTarget(h.DB, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(target)
}

// GetStaffTargets lists a staff member's targets with achieved counts and
// deliverable state.
func (h *Handler) GetStaffTargets(c *fiber.Ctx) error {
	staffID, err := uuid.Parse(c.Params("staffId"))
	if err != nil {
		return respondError(c, apperr.Validationf("invalid staff id"))
	}

	statuses, err := services.TargetStatuses(h.DB, staffID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(statuses)
}
