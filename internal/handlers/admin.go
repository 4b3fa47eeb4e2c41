package handlers

import (
	"github.com/arnold/surgitrack-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Seed loads the fixture staff list. No-op unless the staff table is empty.
func (h *Handler) Seed(c *fiber.Ctx) error {
	inserted, err := services.SeedStaff(h.DB)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"inserted": inserted})
}
