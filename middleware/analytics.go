// middleware/analytics.go
package middleware

import (
	"log"
	"time"

	"zeroxp/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsMiddleware records every API hit. The write happens off the
// request path so a slow or broken analytics table never delays a response.
func AnalyticsMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		entry := models.RequestLog{
			ID:             uuid.NewString(),
			Timestamp:      start,
			Method:         c.Method(),
			Path:           c.Path(),
			UserAgent:      c.Get("User-Agent"),
			IP:             c.IP(),
			Referrer:       c.Get("Referer"),
			StatusCode:     c.Response().StatusCode(),
			ResponseTimeMs: time.Since(start).Milliseconds(),
			UserID:         "anonymous",
		}
		if uid, ok := c.Locals("user_id").(string); ok && uid != "" {
			entry.UserID = uid
		}
		if utype, ok := c.Locals("user_type").(string); ok {
			entry.UserType = utype
		}

		go func() {
			if err := db.Create(&entry).Error; err != nil {
				log.Printf("⚠️ [ANALYTICS] failed to record %s %s: %v", entry.Method, entry.Path, err)
			}
		}()

		return err
	}
}
