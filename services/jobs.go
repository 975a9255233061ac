package services

import (
	"log"
	"strings"
	"time"

	"zeroxp/models"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Listings run for 30 days before the scheduler closes them.
const jobLifetime = 30 * 24 * time.Hour

type JobService struct {
	DB     *gorm.DB
	Mailer *Mailer
}

func NewJobService(db *gorm.DB, mailer *Mailer) *JobService {
	return &JobService{DB: db, Mailer: mailer}
}

// ListJobs is the public board: active listings, newest first, with optional
// search / location / type filters.
func (s *JobService) ListJobs(c *fiber.Ctx) error {
	db := s.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusActive)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		term := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?", term, term, term)
	}
	if location := strings.TrimSpace(c.Query("location")); location != "" {
		db = db.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if jobType := c.Query("type"); jobType != "" {
		db = db.Where("job_type = ?", jobType)
	}

	var jobs []models.Job
	if err := db.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list jobs", "cause": err.Error()})
	}
	return c.JSON(fiber.Map{"jobs": jobs})
}

// GetJob fetches one listing by id or slug and bumps its view counter.
func (s *JobService) GetJob(c *fiber.Ctx) error {
	idOrSlug := c.Params("id")

	var job models.Job
	if err := s.DB.Where("id = ? OR slug = ?", idOrSlug, idOrSlug).First(&job).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}

	// Monotonic counter; atomic increment so concurrent reads don't lose views
	if err := s.DB.Model(&models.Job{}).Where("id = ?", job.ID).
		UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		log.Printf("⚠️ failed to bump views for job %s: %v", job.ID, err)
	}
	job.Views++

	return c.JSON(fiber.Map{"job": job})
}

type postJobRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Company         string `json:"company" validate:"required,max=200"`
	Location        string `json:"location" validate:"required,max=200"`
	Salary          string `json:"salary" validate:"max=100"`
	JobType         string `json:"job_type" validate:"omitempty,oneof=full-time part-time contract internship"`
	ExperienceLevel string `json:"experience_level" validate:"omitempty,oneof=entry-level junior mid-level senior lead"`
	Description     string `json:"description" validate:"required"`
	Requirements    string `json:"requirements"`
	Benefits        string `json:"benefits"`
	Tags            string `json:"tags"`
}

// PostJob creates a listing for one credit. The credit spend and the insert
// commit together; a zero balance rejects the post before anything happens.
func (s *JobService) PostJob(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	userType := c.Locals("user_type").(string)
	if userType != models.UserTypeEmployer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "only employers can post jobs"})
	}

	var req postJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "cause": err.Error()})
	}

	if req.JobType == "" {
		req.JobType = models.JobTypeFullTime
	}
	if req.ExperienceLevel == "" {
		req.ExperienceLevel = "entry-level"
	}

	job := models.Job{
		ID:              uuid.NewString(),
		EmployerID:      userID,
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Salary:          req.Salary,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Benefits:        req.Benefits,
		Tags:            req.Tags,
		Status:          models.JobStatusActive,
		CreditsUsed:     1,
		ExpiresAt:       time.Now().Add(jobLifetime),
	}
	job.Slug = slug.Make(req.Title) + "-" + job.ID[:8]

	var remaining int
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var employer models.User
		if err := tx.Where("id = ?", userID).First(&employer).Error; err != nil {
			return err
		}

		newBalance, allowed := SpendCredit(employer.Credits)
		if !allowed {
			return ErrInsufficientCredits
		}

		employer.Credits = newBalance
		remaining = newBalance
		if err := tx.Save(&employer).Error; err != nil {
			return err
		}
		return tx.Create(&job).Error
	})
	if err == ErrInsufficientCredits {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "insufficient credits"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to post job", "cause": err.Error()})
	}

	s.Mailer.EnqueueJobAlerts(s.DB, &job)

	log.Printf("✅ Job posted: %s (%s) by %s, %d credit(s) left", job.Title, job.ID, userID, remaining)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":           "Job posted successfully",
		"job":               job,
		"remaining_credits": remaining,
	})
}

// UpdateJob lets the owning employer edit listing fields.
func (s *JobService) UpdateJob(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var job models.Job
	if err := s.DB.Where("id = ?", c.Params("id")).First(&job).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if job.EmployerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not authorized"})
	}

	var req postJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
	}

	applyIfSet := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	applyIfSet(&job.Title, req.Title)
	applyIfSet(&job.Company, req.Company)
	applyIfSet(&job.Location, req.Location)
	applyIfSet(&job.Salary, req.Salary)
	applyIfSet(&job.JobType, req.JobType)
	applyIfSet(&job.ExperienceLevel, req.ExperienceLevel)
	applyIfSet(&job.Description, req.Description)
	applyIfSet(&job.Requirements, req.Requirements)
	applyIfSet(&job.Benefits, req.Benefits)
	applyIfSet(&job.Tags, req.Tags)

	if err := s.DB.Save(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update job", "cause": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Job updated successfully", "job": job})
}

func (s *JobService) DeleteJob(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var job models.Job
	if err := s.DB.Where("id = ?", c.Params("id")).First(&job).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if job.EmployerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not authorized"})
	}

	if err := s.DB.Delete(&job).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to delete job", "cause": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Job deleted successfully"})
}

// MyJobs lists the employer's own postings with application counts.
func (s *JobService) MyJobs(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	userType := c.Locals("user_type").(string)
	if userType != models.UserTypeEmployer {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "only employers can access this"})
	}

	var jobs []models.Job
	if err := s.DB.Where("employer_id = ?", userID).Order("created_at DESC").Find(&jobs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list jobs", "cause": err.Error()})
	}

	type jobWithCounts struct {
		models.Job
		PendingApplications int64 `json:"pending_applications"`
		TotalApplications   int64 `json:"total_applications"`
	}

	out := make([]jobWithCounts, len(jobs))
	for i, job := range jobs {
		var pending, total int64
		s.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&total)
		s.DB.Model(&models.Application{}).Where("job_id = ? AND status = ?", job.ID, models.StatusPending).Count(&pending)
		out[i] = jobWithCounts{Job: job, PendingApplications: pending, TotalApplications: total}
	}

	return c.JSON(fiber.Map{"jobs": out})
}

// StartExpiryScheduler closes listings past their 30-day lifetime.
func (s *JobService) StartExpiryScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			var jobs []models.Job
			now := time.Now()
			err := s.DB.Where("status = ? AND expires_at <= ?", models.JobStatusActive, now).
				Find(&jobs).Error
			if err != nil {
				log.Printf("[Scheduler] DB error: %v", err)
				return
			}

			for _, j := range jobs {
				j.Status = models.JobStatusExpired
				if err := s.DB.Save(&j).Error; err != nil {
					log.Printf("[Scheduler] Failed to expire job %s: %v", j.ID, err)
				} else {
					log.Printf("✅ Auto-expired listing: %s", j.Title)
				}
			}
		}),
	)
}
