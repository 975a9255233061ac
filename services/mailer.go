package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"zeroxp/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mailer sends templated HTML mail over SMTP. Request handlers never call
// Send directly: they enqueue into the email outbox and the background
// worker drains it.
type Mailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func NewMailerFromEnv() *Mailer {
	return &Mailer{
		Host: os.Getenv("SMTP_HOST"),
		Port: os.Getenv("SMTP_PORT"),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
		From: os.Getenv("SMTP_FROM"),
	}
}

// Enabled reports whether SMTP is configured. Unconfigured environments (dev,
// CI) queue mail that the worker skips.
func (m *Mailer) Enabled() bool {
	return m.Host != "" && m.From != ""
}

// Send delivers one HTML message.
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		htmlBody,
	}, "\r\n")

	addr := m.Host + ":" + m.Port
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}
	return smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg))
}

func enqueue(db *gorm.DB, to, subject, body string) {
	out := models.EmailOutbox{
		ID:      uuid.NewString(),
		To:      to,
		Subject: subject,
		Body:    body,
		Status:  models.EmailPending,
	}
	if err := db.Create(&out).Error; err != nil {
		log.Printf("❌ Failed to enqueue email to %s: %v", to, err)
	}
}

// EnqueueWelcome queues the signup email.
func (m *Mailer) EnqueueWelcome(db *gorm.DB, user *models.User) {
	name := user.FirstName
	if name == "" {
		name = "there"
	}

	var perks string
	if user.UserType == models.UserTypeJobSeeker {
		perks = "<li>Browse and apply to jobs</li><li>Build your XP through applications</li><li>Get priority visibility to employers</li>"
	} else {
		perks = "<li>Post job openings</li><li>Review applications</li><li>Find qualified candidates</li>"
	}

	body := fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h1 style="color: #06b6d4; text-align: center;">Welcome to ZeroXP!</h1>
        <p>Hi %s,</p>
        <p>Welcome to ZeroXP! We're excited to have you on board.</p>
        <ul>%s</ul>
        <p>Start your journey today!</p>
        <p>Best regards,<br>The ZeroXP Team</p>
      </div>`, name, perks)

	subject := fmt.Sprintf("Welcome to ZeroXP, %s!", displayName(user))
	enqueue(db, user.Email, subject, body)
}

// EnqueueJobAlerts queues an alert to every opted-in job seeker whose
// preferences match the new listing's type, location or tags.
func (m *Mailer) EnqueueJobAlerts(db *gorm.DB, job *models.Job) {
	var seekers []models.User
	if err := db.Where("user_type = ? AND job_alerts = ?", models.UserTypeJobSeeker, true).
		Find(&seekers).Error; err != nil {
		log.Printf("❌ Failed to load alert subscribers: %v", err)
		return
	}

	matched := 0
	for i := range seekers {
		if !alertMatches(&seekers[i], job) {
			continue
		}
		enqueue(db, seekers[i].Email, "New Job Opportunities for You", jobAlertBody(&seekers[i], job))
		matched++
	}
	if matched > 0 {
		log.Printf("📧 Queued %d job alert(s) for %s", matched, job.Title)
	}
}

// alertMatches mirrors the signup preference model: any overlap on job type,
// location or skill/tag triggers the alert.
func alertMatches(user *models.User, job *models.Job) bool {
	if csvContains(user.AlertJobTypes, job.JobType) {
		return true
	}
	for _, loc := range splitCSV(user.AlertLocations) {
		if loc != "" && strings.Contains(strings.ToLower(job.Location), loc) {
			return true
		}
	}
	for _, skill := range splitCSV(user.AlertSkills) {
		if skill != "" && csvContains(job.Tags, skill) {
			return true
		}
	}
	return false
}

func jobAlertBody(user *models.User, job *models.Job) string {
	name := user.FirstName
	if name == "" {
		name = "there"
	}
	summary := job.Description
	if len(summary) > 150 {
		summary = summary[:150] + "..."
	}
	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h1 style="color: #06b6d4; text-align: center;">New Job Alerts</h1>
        <p>Hi %s,</p>
        <p>We found a new job opportunity that matches your preferences:</p>
        <div style="border: 1px solid #e5e7eb; padding: 15px; margin: 10px 0; border-radius: 8px;">
          <h3 style="margin: 0 0 5px 0; color: #1f2937;">%s</h3>
          <p style="margin: 0 0 5px 0; color: #6b7280;">%s &bull; %s</p>
          <p style="margin: 0; color: #374151; font-size: 14px;">%s</p>
        </div>
        <p>Login to ZeroXP to apply!</p>
        <p>Best regards,<br>The ZeroXP Team</p>
      </div>`, name, job.Title, job.Company, job.Location, summary)
}

func displayName(u *models.User) string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.UserType == models.UserTypeEmployer {
		return "Employer"
	}
	return "Job Seeker"
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(parts[i]))
	}
	return parts
}

func csvContains(csv, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return false
	}
	for _, p := range splitCSV(csv) {
		if p == needle {
			return true
		}
	}
	return false
}
