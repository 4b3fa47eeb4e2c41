package routes

import (
	"github.com/arnold/surgitrack-api/internal/handlers"
	"github.com/arnold/surgitrack-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", h.GetMe)

	protected.Get("/staff", h.ListStaff)
	protected.Get("/dashboard", h.GetDashboard)
	protected.Get("/progress/:staffId", h.GetStaffProgress)
	protected.Get("/leaderboard", h.GetLeaderboard)
	protected.Get("/trends", h.GetTrends)

	protected.Post("/surgeries", h.LogSurgery)
	protected.Get("/surgeries", h.ListSurgeries)
	protected.Get("/targets/:staffId", h.GetStaffTargets)

	reports := protected.Group("/reports")
	reports.Get("/progress.xlsx", h.ProgressWorkbook)
	reports.Get("/progress.pdf", h.ProgressDocument)
	reports.Get("/surgeries.xlsx", h.SurgeriesWorkbook)

	admin := protected.Group("/admin", middleware.AdminOnly())
	admin.Post("/targets", h.AssignTarget)
	admin.Post("/seed", h.Seed)
}
