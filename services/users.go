package services

import (
	"log"
	"path/filepath"
	"strings"
	"time"

	"zeroxp/models"
	"zeroxp/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validate = validator.New()

type UserService struct {
	DB     *gorm.DB
	Mailer *Mailer
}

func NewUserService(db *gorm.DB, mailer *Mailer) *UserService {
	return &UserService{DB: db, Mailer: mailer}
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	UserType    string `json:"user_type" validate:"required,oneof=jobseeker employer"`
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
	CompanyName string `json:"company_name" validate:"max=200"`
}

// Register creates an account. Employers start with the free posting grant;
// jobseekers start at 0 XP, tier 1.
func (s *UserService) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "cause": err.Error()})
	}

	var existing models.User
	if err := s.DB.Where("email = ?", strings.ToLower(req.Email)).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user already exists"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	user := models.User{
		ID:          uuid.NewString(),
		Email:       strings.ToLower(req.Email),
		Password:    string(hash),
		UserType:    req.UserType,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		TotalXP:     0,
		XPLevel:     1,
	}
	if user.UserType == models.UserTypeEmployer {
		user.Credits = SignupCreditGrant
	}

	if err := s.DB.Create(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create user", "cause": err.Error()})
	}

	s.Mailer.EnqueueWelcome(s.DB, &user)

	token, err := utils.GenerateToken(user.ID, user.UserType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue token"})
	}

	log.Printf("✅ Registered %s (%s)", user.Email, user.UserType)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"token":   token,
		"user":    publicUser(&user),
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *UserService) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "cause": err.Error()})
	}

	var user models.User
	if err := s.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid credentials"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid credentials"})
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.DB.Save(&user).Error; err != nil {
		log.Printf("⚠️ failed to stamp last login for %s: %v", user.ID, err)
	}

	token, err := utils.GenerateToken(user.ID, user.UserType)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to issue token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user":    publicUser(&user),
	})
}

func (s *UserService) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}
	return c.JSON(fiber.Map{"user": publicUser(&user)})
}

type profileUpdateRequest struct {
	FirstName    string `json:"first_name" validate:"max=100"`
	LastName     string `json:"last_name" validate:"max=100"`
	CompanyName  string `json:"company_name" validate:"max=200"`
	Title        string `json:"title" validate:"max=200"`
	Location     string `json:"location" validate:"max=200"`
	Summary      string `json:"summary"`
	Skills       string `json:"skills"`
	LinkedinURL  string `json:"linkedin_url" validate:"omitempty,url"`
	PortfolioURL string `json:"portfolio_url" validate:"omitempty,url"`
	Phone        string `json:"phone" validate:"max=32"`
}

// UpdateProfile merges profile fields. The first time a profile becomes
// complete (title + location + summary + skills all set) the
// complete_profile XP reward is granted, exactly once.
func (s *UserService) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req profileUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "validation failed", "cause": err.Error()})
	}

	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}

	applyIfSet := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	applyIfSet(&user.FirstName, req.FirstName)
	applyIfSet(&user.LastName, req.LastName)
	applyIfSet(&user.CompanyName, req.CompanyName)
	applyIfSet(&user.Title, req.Title)
	applyIfSet(&user.Location, req.Location)
	applyIfSet(&user.Summary, req.Summary)
	applyIfSet(&user.Skills, req.Skills)
	applyIfSet(&user.LinkedinURL, req.LinkedinURL)
	applyIfSet(&user.PortfolioURL, req.PortfolioURL)
	applyIfSet(&user.Phone, req.Phone)

	xpGained := int64(0)
	if user.ProfileCompletedAt == nil && profileComplete(&user) {
		now := time.Now()
		user.ProfileCompletedAt = &now
		res := ApplyXPDelta(user.TotalXP, RewardFor("complete_profile"))
		user.TotalXP = res.NewXP
		user.XPLevel = res.NewTier.Tier
		xpGained = RewardFor("complete_profile")
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update profile", "cause": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":   "Profile updated successfully",
		"user":      publicUser(&user),
		"xp_gained": xpGained,
	})
}

func profileComplete(u *models.User) bool {
	return u.Title != "" && u.Location != "" && u.Summary != "" && u.Skills != ""
}

type preferencesRequest struct {
	JobAlerts      *bool  `json:"job_alerts"`
	AlertJobTypes  string `json:"alert_job_types"`
	AlertLocations string `json:"alert_locations"`
	AlertSkills    string `json:"alert_skills"`
}

func (s *UserService) UpdatePreferences(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var req preferencesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON", "cause": err.Error()})
	}

	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}

	if req.JobAlerts != nil {
		user.JobAlerts = *req.JobAlerts
	}
	user.AlertJobTypes = req.AlertJobTypes
	user.AlertLocations = req.AlertLocations
	user.AlertSkills = req.AlertSkills

	if err := s.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to update preferences", "cause": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Preferences updated"})
}

// UploadVideoCV stores the video on R2 and awards the upload reward the first
// time only (replacing an existing video CV is free but yields no XP).
func (s *UserService) UploadVideoCV(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	videoFile, err := c.FormFile("video")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "video is required"})
	}
	if videoFile.Size > 200*1024*1024 { // 200MB
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file too large (max 200MB)"})
	}

	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}

	ext := filepath.Ext(videoFile.Filename)
	if ext == "" {
		ext = ".mp4"
	}
	key := "video-cv/" + uuid.NewString() + ext
	url, err := utils.UploadFileToR2(videoFile, key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upload video CV", "cause": err.Error()})
	}

	firstUpload := user.VideoCVURL == nil
	user.VideoCVURL = &url

	xpGained := int64(0)
	if firstUpload {
		res := ApplyXPDelta(user.TotalXP, RewardFor("upload_video_cv"))
		user.TotalXP = res.NewXP
		user.XPLevel = res.NewTier.Tier
		xpGained = RewardFor("upload_video_cv")
	}

	if err := s.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save video CV", "cause": err.Error()})
	}

	return c.JSON(fiber.Map{
		"message":      "Video CV uploaded successfully",
		"video_cv_url": url,
		"xp_gained":    xpGained,
		"user":         publicUser(&user),
	})
}

// GetXPLevel returns the caller's tier, progress and priority descriptor.
func (s *UserService) GetXPLevel(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var user models.User
	if err := s.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "user not found"})
	}

	tier := LevelOf(user.TotalXP)
	return c.JSON(fiber.Map{
		"total_xp": user.TotalXP,
		"level":    tier,
		"progress": Progress(user.TotalXP),
		"priority": ClassifyPriority(user.TotalXP),
	})
}

// publicUser strips the credential hash and internal fields for responses.
func publicUser(u *models.User) fiber.Map {
	return fiber.Map{
		"id":           u.ID,
		"email":        u.Email,
		"user_type":    u.UserType,
		"first_name":   u.FirstName,
		"last_name":    u.LastName,
		"company_name": u.CompanyName,
		"title":        u.Title,
		"location":     u.Location,
		"summary":      u.Summary,
		"skills":       u.Skills,
		"video_cv_url": u.VideoCVURL,
		"total_xp":     u.TotalXP,
		"xp_level":     u.XPLevel,
		"credits":      u.Credits,
	}
}
