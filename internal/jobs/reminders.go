package jobs

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/zugflow/zugflow-api/internal/domain/schedule"
	"github.com/zugflow/zugflow-api/internal/models"
	"github.com/zugflow/zugflow-api/internal/notify"
	"github.com/zugflow/zugflow-api/internal/timezone"
)

// StartReminderJob avvia lo scheduler dei promemoria: ogni 5 minuti
// cerca gli appuntamenti che iniziano tra circa un'ora e invia l'email.
func StartReminderJob(db *gorm.DB, mailer *notify.Mailer) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("*/5 * * * *", func() {
		sendReminders(db, mailer)
	})
	if err != nil {
		log.Fatalf("failed to schedule reminder job: %v", err)
	}

	c.Start()
	log.Println("reminder job scheduled")
	return c
}

func sendReminders(db *gorm.DB, mailer *notify.Mailer) {
	now := timezone.Now()

	date := now.Format("2006-01-02")
	from := now.Add(55 * time.Minute).Format("15:04")
	to := now.Add(65 * time.Minute).Format("15:04")

	var appointments []models.Appointment
	err := db.
		Preload("Service").
		Where(
			"date = ? AND status = ? AND customer_email <> '' AND start_time >= ? AND start_time < ?",
			date, string(schedule.StatusBooked), from, to,
		).
		Find(&appointments).Error
	if err != nil {
		log.Printf("reminder query failed: %v", err)
		return
	}

	for i := range appointments {
		mailer.AppointmentReminder(&appointments[i])
	}
}
