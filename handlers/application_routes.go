// handlers/application_routes.go
package handlers

import (
	"zeroxp/middleware"
	"zeroxp/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupApplicationRoutes(app *fiber.App, db *gorm.DB, applicationService *services.ApplicationService) {
	secured := app.Group("/api/applications", middleware.AuthMiddleware(db))

	secured.Post("/", applicationService.Apply)
	secured.Get("/my-applications", applicationService.MyApplications)
	secured.Get("/job/:jobId", applicationService.ListForJob)
	secured.Put("/:id/status", applicationService.UpdateStatus)
	secured.Put("/:id/notes", applicationService.UpdateNotes)
}
