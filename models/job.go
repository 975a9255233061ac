package models

import (
	"time"
)

const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

const (
	JobStatusActive  = "active"
	JobStatusPaused  = "paused"
	JobStatusClosed  = "closed"
	JobStatusExpired = "expired"
)

type Job struct {
	ID         string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EmployerID string `json:"employer_id" gorm:"index;not null"`

	Title    string `json:"title" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex"`
	Company  string `json:"company" gorm:"not null"`
	Location string `json:"location" gorm:"not null"`
	Salary   string `json:"salary"`

	JobType         string `json:"job_type" gorm:"default:'full-time'"`
	ExperienceLevel string `json:"experience_level" gorm:"default:'entry-level'"`

	Description  string `json:"description" gorm:"type:text;not null"`
	Requirements string `json:"requirements,omitempty" gorm:"type:text"`
	Benefits     string `json:"benefits,omitempty" gorm:"type:text"`
	Tags         string `json:"tags,omitempty" gorm:"type:text"` // comma-separated

	Status      string `json:"status" gorm:"default:'active'"`
	CreditsUsed int    `json:"credits_used" gorm:"default:1"`

	// Monotonic counters, incremented on read / new application, never reset
	Views        int64 `json:"views" gorm:"default:0"`
	Applications int64 `json:"applications" gorm:"default:0"`

	ExpiresAt time.Time `json:"expires_at"`

	Timestamps
}
