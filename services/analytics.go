package services

import (
	"time"

	"zeroxp/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

// Summary aggregates traffic and platform stats over a window (default: last
// 30 days).
func (s *AnalyticsService) Summary(c *fiber.Ctx) error {
	end := time.Now()
	start := end.Add(-30 * 24 * time.Hour)
	if v := c.Query("start"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			start = t
		}
	}
	if v := c.Query("end"); v != "" {
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			end = t
		}
	}

	var routes []models.RouteCount
	if err := s.DB.Model(&models.RequestLog{}).
		Select("path, method, COUNT(*) AS count, COUNT(DISTINCT user_id) AS unique_users").
		Where("timestamp BETWEEN ? AND ?", start, end).
		Group("path, method").
		Order("count DESC").
		Scan(&routes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to aggregate traffic", "cause": err.Error()})
	}

	var totalUsers, jobSeekers, employers int64
	s.DB.Model(&models.User{}).Count(&totalUsers)
	s.DB.Model(&models.User{}).Where("user_type = ?", models.UserTypeJobSeeker).Count(&jobSeekers)
	s.DB.Model(&models.User{}).Where("user_type = ?", models.UserTypeEmployer).Count(&employers)

	var totalJobs, activeJobs, totalApplications int64
	s.DB.Model(&models.Job{}).Count(&totalJobs)
	s.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusActive).Count(&activeJobs)
	s.DB.Model(&models.Application{}).Count(&totalApplications)

	type xpStats struct {
		AvgXP   float64 `json:"avg_xp"`
		MaxXP   int64   `json:"max_xp"`
		TotalXP int64   `json:"total_xp"`
	}
	var xp xpStats
	s.DB.Model(&models.User{}).
		Select("COALESCE(AVG(total_xp),0) AS avg_xp, COALESCE(MAX(total_xp),0) AS max_xp, COALESCE(SUM(total_xp),0) AS total_xp").
		Where("user_type = ?", models.UserTypeJobSeeker).
		Scan(&xp)

	return c.JSON(fiber.Map{
		"analytics": routes,
		"users": fiber.Map{
			"total":       totalUsers,
			"job_seekers": jobSeekers,
			"employers":   employers,
		},
		"jobs": fiber.Map{
			"total":        totalJobs,
			"active":       activeJobs,
			"applications": totalApplications,
		},
		"xp":     xp,
		"period": fiber.Map{"start": start, "end": end},
	})
}

// UserBehavior returns a user's recent request trail. Employers can inspect
// anyone; job seekers only themselves.
func (s *AnalyticsService) UserBehavior(c *fiber.Ctx) error {
	callerID := c.Locals("user_id").(string)
	callerType := c.Locals("user_type").(string)
	targetID := c.Params("userId")

	if callerType != models.UserTypeEmployer && callerID != targetID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not authorized"})
	}

	var logs []models.RequestLog
	if err := s.DB.Where("user_id = ?", targetID).
		Order("timestamp DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load behavior log", "cause": err.Error()})
	}

	return c.JSON(fiber.Map{"behavior": logs})
}

// JobPerformance reports views and the application funnel for one listing.
func (s *AnalyticsService) JobPerformance(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var job models.Job
	if err := s.DB.Where("id = ?", c.Params("jobId")).First(&job).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if job.EmployerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not authorized"})
	}

	funnel := fiber.Map{}
	for _, status := range []string{models.StatusPending, models.StatusReviewed, models.StatusDeclined, models.StatusAccepted} {
		var n int64
		s.DB.Model(&models.Application{}).Where("job_id = ? AND status = ?", job.ID, status).Count(&n)
		funnel[status] = n
	}

	conversion := 0.0
	if job.Views > 0 {
		conversion = float64(job.Applications) / float64(job.Views) * 100
	}

	return c.JSON(fiber.Map{
		"job_id":       job.ID,
		"views":        job.Views,
		"applications": job.Applications,
		"conversion":   conversion,
		"funnel":       funnel,
	})
}
