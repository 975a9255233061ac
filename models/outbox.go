package models

import (
	"time"
)

const (
	EmailPending = "pending"
	EmailSent    = "sent"
	EmailFailed  = "failed"
)

// EmailOutbox queues outbound mail so request handlers never block on SMTP.
// A background worker drains it (see workers/mail_worker.go).
type EmailOutbox struct {
	ID      string `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	To      string `json:"to" gorm:"not null"`
	Subject string `json:"subject" gorm:"not null"`
	Body    string `json:"body" gorm:"type:text;not null"` // HTML

	Status   string `json:"status" gorm:"index;default:'pending'"`
	Attempts int    `json:"attempts" gorm:"default:0"`
	LastErr  string `json:"last_err,omitempty"`

	SentAt *time.Time `json:"sent_at,omitempty"`

	Timestamps
}
