// middleware/auth.go
package middleware

import (
	"log"
	"strings"

	"zeroxp/models"
	"zeroxp/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the Bearer JWT, loads the account and attaches
// user_id / user_type to the request context. Every secured route goes
// through here.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token provided"})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			// no "Bearer " prefix, try raw value
			token = authHeader
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			log.Printf("🚫 [AUTH] Invalid token for %s: %v", c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
		}

		var user models.User
		if err := db.Select("id, user_type, is_active").
			Where("id = ?", claims.UserID).First(&user).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "user not found"})
		}
		if !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "account disabled"})
		}

		c.Locals("user_id", user.ID)
		c.Locals("user_type", user.UserType)
		return c.Next()
	}
}
