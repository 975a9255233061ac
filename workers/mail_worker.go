package workers

import (
	"context"
	"log"
	"time"

	"zeroxp/models"
	"zeroxp/services"

	"gorm.io/gorm"
)

const maxMailAttempts = 3

// PollOutbox drains the email outbox on a fixed interval, retrying failures
// up to maxMailAttempts before parking them as failed. Delivery happens here
// so request handlers never block on SMTP.
func PollOutbox(ctx context.Context, db *gorm.DB, mailer *services.Mailer, pollInterval time.Duration) {
	log.Println("Starting email outbox polling...")

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Email outbox polling stopped.")
			return
		case <-ticker.C:
			var batch []models.EmailOutbox
			if err := db.Where("status = ? AND attempts < ?", models.EmailPending, maxMailAttempts).
				Order("created_at ASC").
				Limit(50).
				Find(&batch).Error; err != nil {
				log.Printf("❌ Error loading email outbox: %v", err)
				continue
			}

			if len(batch) == 0 {
				continue
			}

			if !mailer.Enabled() {
				log.Printf("➡️ SMTP not configured, %d queued email(s) left pending", len(batch))
				continue
			}

			sent := 0
			for i := range batch {
				entry := &batch[i]
				entry.Attempts++

				if err := mailer.Send(entry.To, entry.Subject, entry.Body); err != nil {
					entry.LastErr = err.Error()
					if entry.Attempts >= maxMailAttempts {
						entry.Status = models.EmailFailed
						log.Printf("❌ Giving up on email to %s after %d attempt(s): %v", entry.To, entry.Attempts, err)
					}
				} else {
					now := time.Now()
					entry.Status = models.EmailSent
					entry.SentAt = &now
					entry.LastErr = ""
					sent++
				}

				if err := db.Save(entry).Error; err != nil {
					log.Printf("❌ Failed to update outbox entry %s: %v", entry.ID, err)
				}
			}

			if sent > 0 {
				log.Printf("📧 Delivered %d email(s) from outbox.", sent)
			}
		}
	}
}
