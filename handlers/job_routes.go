// handlers/job_routes.go
package handlers

import (
	"zeroxp/middleware"
	"zeroxp/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJobRoutes(app *fiber.App, db *gorm.DB, jobService *services.JobService) {
	// 🔓 Public board
	app.Get("/api/jobs", jobService.ListJobs)

	// 🔐 Secured routes, registered before the wildcard :id lookup
	secured := app.Group("/api/jobs", middleware.AuthMiddleware(db))

	secured.Get("/employer/my-jobs", jobService.MyJobs)
	secured.Post("/", jobService.PostJob)
	secured.Put("/:id", jobService.UpdateJob)
	secured.Delete("/:id", jobService.DeleteJob)

	app.Get("/api/jobs/:id", jobService.GetJob)
}
