package services

import (
	"log"
	"time"

	"zeroxp/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

type applyRequest struct {
	JobID string `json:"job_id" validate:"required,uuid"`
}

// Apply submits an application. One application per (candidate, job): the
// unique index backs the duplicate check, so two racing requests cannot both
// land. A rejected duplicate never awards XP.
func (s *ApplicationService) Apply(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	userType := c.Locals("user_type").(string)
	if userType != models.UserTypeJobSeeker {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "only job seekers can apply"})
	}

	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "cause": err.Error()})
	}

	var job models.Job
	if err := s.DB.Where("id = ?", req.JobID).First(&job).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if job.Status != models.JobStatusActive {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "job is no longer accepting applications"})
	}

	application := models.Application{
		ID:          uuid.NewString(),
		JobID:       job.ID,
		CandidateID: userID,
		Status:      models.StatusPending,
		AppliedAt:   time.Now(),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		tx.Model(&models.Application{}).
			Where("job_id = ? AND candidate_id = ?", job.ID, userID).
			Count(&count)
		if count > 0 {
			return ErrAlreadyApplied
		}

		if err := tx.Create(&application).Error; err != nil {
			return err
		}

		// Monotonic application counter on the listing
		return tx.Model(&models.Job{}).Where("id = ?", job.ID).
			UpdateColumn("applications", gorm.Expr("applications + 1")).Error
	})
	if err == ErrAlreadyApplied {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "already applied to this job"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to apply", "cause": err.Error()})
	}

	// XP only after the application actually landed
	user, err := NewProgressionService(s.DB).AwardXP(userID, "apply_job")
	if err != nil {
		log.Printf("⚠️ XP award failed for %s: %v", userID, err)
	}

	resp := fiber.Map{
		"message":     "Application submitted successfully",
		"application": application,
		"xp_gained":   RewardFor("apply_job"),
	}
	if user != nil {
		resp["total_xp"] = user.TotalXP
		resp["xp_level"] = user.XPLevel
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListForJob returns a job's applications ranked for employer review:
// pending first ordered by candidate XP, acted-on applications by recency.
func (s *ApplicationService) ListForJob(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	jobID := c.Params("jobId")

	var job models.Job
	if err := s.DB.Where("id = ?", jobID).First(&job).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if job.EmployerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not authorized to view applications for this job"})
	}

	var apps []models.Application
	if err := s.DB.Preload("Candidate").Where("job_id = ?", jobID).Find(&apps).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load applications", "cause": err.Error()})
	}

	// Snapshot live XP onto each application so the response carries the
	// values the ranking used
	for i := range apps {
		if apps[i].Candidate != nil {
			apps[i].CandidateXP = apps[i].Candidate.TotalXP
		}
	}

	ranked := RankApplications(apps)

	type rankedApp struct {
		models.Application
		Priority models.PriorityDescriptor `json:"priority"`
	}
	out := make([]rankedApp, len(ranked))
	for i, app := range ranked {
		out[i] = rankedApp{Application: app, Priority: ClassifyPriority(app.CandidateXP)}
	}

	return c.JSON(fiber.Map{
		"applications": out,
		"job_title":    job.Title,
		"company":      job.Company,
	})
}

// statusStage orders the forward-only lifecycle; transitions may only move to
// a strictly later stage, and terminal states never change.
var statusStage = map[string]int{
	models.StatusPending:  0,
	models.StatusReviewed: 1,
	models.StatusDeclined: 2,
	models.StatusAccepted: 2,
}

func validTransition(from, to string) bool {
	fromStage, okFrom := statusStage[from]
	toStage, okTo := statusStage[to]
	if !okFrom || !okTo {
		return false
	}
	return toStage > fromStage
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStatus moves an application forward through the employer workflow.
func (s *ApplicationService) UpdateStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "cause": err.Error()})
	}

	var application models.Application
	if err := s.DB.Where("id = ?", c.Params("id")).First(&application).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "application not found"})
	}

	var job models.Job
	if err := s.DB.Where("id = ?", application.JobID).First(&job).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if job.EmployerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not authorized"})
	}

	if !validTransition(application.Status, req.Status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": ErrInvalidStatus.Error(),
			"cause": application.Status + " to " + req.Status,
		})
	}

	now := time.Now()
	application.Status = req.Status
	application.ReviewedAt = &now
	application.ReviewedBy = &userID

	if err := s.DB.Save(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update status", "cause": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Application status updated", "application": application})
}

type notesRequest struct {
	Notes  string `json:"notes"`
	Rating int    `json:"rating" validate:"min=0,max=5"`
}

// UpdateNotes stores employer-private notes and an optional 1–5 rating.
func (s *ApplicationService) UpdateNotes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req notesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "cause": err.Error()})
	}

	var application models.Application
	if err := s.DB.Where("id = ?", c.Params("id")).First(&application).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "application not found"})
	}

	var job models.Job
	if err := s.DB.Where("id = ?", application.JobID).First(&job).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "job not found"})
	}
	if job.EmployerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "not authorized"})
	}

	application.EmployerNotes = req.Notes
	if req.Rating > 0 {
		application.Rating = req.Rating
	}

	if err := s.DB.Save(&application).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update notes", "cause": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Notes updated", "application": application})
}

// MyApplications lists the candidate's own submissions, newest first.
func (s *ApplicationService) MyApplications(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var apps []models.Application
	if err := s.DB.Where("candidate_id = ?", userID).
		Order("applied_at DESC").
		Find(&apps).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load applications", "cause": err.Error()})
	}

	type appWithJob struct {
		models.Application
		Job *models.Job `json:"job,omitempty"`
	}
	out := make([]appWithJob, len(apps))
	for i, app := range apps {
		out[i] = appWithJob{Application: app}
		var job models.Job
		if err := s.DB.Where("id = ?", app.JobID).First(&job).Error; err == nil {
			out[i].Job = &job
		}
	}

	return c.JSON(fiber.Map{"applications": out})
}
