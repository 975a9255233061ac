package models

import (
	"time"
)

// Canonical application statuses. Forward-only: once an employer acts on an
// application, no flow moves it back to an earlier stage.
const (
	StatusPending  = "pending"
	StatusReviewed = "reviewed"
	StatusDeclined = "declined"
	StatusAccepted = "accepted"
)

type Application struct {
	ID          string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	JobID       string `json:"job_id" gorm:"not null;uniqueIndex:idx_job_candidate"`
	CandidateID string `json:"candidate_id" gorm:"not null;uniqueIndex:idx_job_candidate"`

	Status string `json:"status" gorm:"default:'pending'"`

	// Snapshot of the candidate's XP at ranking time; refreshed on read
	CandidateXP int64 `json:"candidate_xp" gorm:"-"`

	EmployerNotes string `json:"employer_notes,omitempty" gorm:"type:text"`
	Rating        int    `json:"rating,omitempty" gorm:"check:rating >= 0 and rating <= 5"`

	AppliedAt  time.Time  `json:"applied_at" gorm:"autoCreateTime"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy *string    `json:"reviewed_by,omitempty"`

	Candidate *User `json:"candidate,omitempty" gorm:"foreignKey:CandidateID"`

	Timestamps
}
