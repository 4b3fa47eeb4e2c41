package handlers

import (
	"github.com/arnold/surgitrack-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetLeaderboard(c *fiber.Ctx) error {
	rows, err := services.Leaderboard(h.DB)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(rows)
}
