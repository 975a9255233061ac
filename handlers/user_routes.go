// handlers/user_routes.go
package handlers

import (
	"zeroxp/middleware"
	"zeroxp/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB, userService *services.UserService) {
	// 🔓 Public routes
	app.Post("/api/register", userService.Register)
	app.Post("/api/login", userService.Login)

	// 🔐 Secured routes
	secured := app.Group("/api/users", middleware.AuthMiddleware(db))

	secured.Get("/profile", userService.GetProfile)
	secured.Put("/profile", userService.UpdateProfile)
	secured.Put("/preferences", userService.UpdatePreferences)
	secured.Post("/video-cv", userService.UploadVideoCV)
	secured.Get("/xp-level", userService.GetXPLevel)
}
