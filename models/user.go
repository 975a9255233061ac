package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserTypeJobSeeker = "jobseeker"
	UserTypeEmployer  = "employer"
)

type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"` // bcrypt hash, never serialized
	UserType string `json:"user_type" gorm:"not null"`

	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	CompanyName string `json:"company_name,omitempty"`

	// Profile
	Title        string  `json:"title,omitempty"`
	Location     string  `json:"location,omitempty"`
	Summary      string  `json:"summary,omitempty"`
	Skills       string  `json:"skills,omitempty" gorm:"type:text"` // comma-separated
	LinkedinURL  string  `json:"linkedin_url,omitempty"`
	PortfolioURL string  `json:"portfolio_url,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	VideoCVURL   *string `json:"video_cv_url,omitempty"`

	// Profile-completion XP is awarded once
	ProfileCompletedAt *time.Time `json:"profile_completed_at,omitempty"`

	// Gamified progression (jobseekers)
	TotalXP int64 `json:"total_xp" gorm:"default:0"`
	XPLevel int   `json:"xp_level" gorm:"default:1"`

	// Posting quota (employers)
	Credits int `json:"credits" gorm:"default:0;check:credits >= 0"`

	// Job alert preferences
	JobAlerts      bool   `json:"job_alerts" gorm:"default:true"`
	AlertJobTypes  string `json:"alert_job_types,omitempty" gorm:"type:text"`  // comma-separated
	AlertLocations string `json:"alert_locations,omitempty" gorm:"type:text"` // comma-separated
	AlertSkills    string `json:"alert_skills,omitempty" gorm:"type:text"`    // comma-separated

	IsActive    bool       `json:"is_active" gorm:"default:true"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	Timestamps
}

// Timestamps adds GORM auto-times
type Timestamps struct {
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
