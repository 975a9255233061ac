package models

import (
	"time"
)

// RequestLog is one recorded API hit, written by the analytics middleware.
type RequestLog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Timestamp time.Time `json:"timestamp" gorm:"index;autoCreateTime"`

	Method string `json:"method" gorm:"not null"`
	Path   string `json:"path" gorm:"index;not null"`

	UserID   string `json:"user_id" gorm:"index;default:'anonymous'"`
	UserType string `json:"user_type,omitempty"`

	UserAgent string `json:"user_agent,omitempty"`
	IP        string `json:"ip,omitempty"`
	Referrer  string `json:"referrer,omitempty"`

	StatusCode     int   `json:"status_code"`
	ResponseTimeMs int64 `json:"response_time_ms"`
}

// RouteCount is one row of the per-route traffic summary.
type RouteCount struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Count       int64  `json:"count"`
	UniqueUsers int64  `json:"unique_users"`
}
