package handlers

import (
	"github.com/arnold/surgitrack-api/internal/apperr"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Handler carries the store handle into every route. The handle is opened
// in main and passed down; nothing here owns a connection.
type Handler struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Handler {
	return &Handler{DB: db}
}

// respondError maps the error taxonomy onto HTTP statuses. Every failure is
// terminal and surfaced to the caller; nothing is retried.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case apperr.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "VALIDATION_ERROR",
		})
	case apperr.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "RESOURCE_NOT_FOUND",
		})
	default:
		logrus.WithError(err).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
			"code":  "STORE_ERROR",
		})
	}
}
