// handlers/analytics_routes.go
package handlers

import (
	"zeroxp/middleware"
	"zeroxp/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAnalyticsRoutes(app *fiber.App, db *gorm.DB, analyticsService *services.AnalyticsService) {
	secured := app.Group("/api/analytics", middleware.AuthMiddleware(db))

	secured.Get("/summary", analyticsService.Summary)
	secured.Get("/user-behavior/:userId", analyticsService.UserBehavior)
	secured.Get("/job-performance/:jobId", analyticsService.JobPerformance)
}
