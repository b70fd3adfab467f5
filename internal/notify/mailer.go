package notify

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"

	"github.com/zugflow/zugflow-api/internal/config"
	"github.com/zugflow/zugflow-api/internal/models"
)

// Mailer invia le notifiche email ai clienti. Senza SMTP configurato
// ogni invio è un no-op loggato.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) send(to, subject, body string) {
	if m.cfg.SMTPHost == "" || to == "" {
		return
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.MailFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)

	// Invio in background: la risposta HTTP non aspetta l'SMTP
	go func() {
		if err := d.DialAndSend(msg); err != nil {
			log.Printf("email to %s failed: %v", to, err)
		}
	}()
}

func (m *Mailer) BookingReceived(salon *models.Salon, b *models.OnlineBooking) {
	subject := fmt.Sprintf("Richiesta di prenotazione ricevuta - %s", salon.Name)
	body := fmt.Sprintf(`
		<p>Ciao %s,</p>
		<p>abbiamo ricevuto la tua richiesta per il %s alle %s.</p>
		<p>Riceverai una conferma appena il salone avrà approvato la prenotazione.</p>
		<p>Codice prenotazione: <b>%s</b></p>`,
		b.CustomerName, b.Date, b.StartTime, b.Reference,
	)
	m.send(b.CustomerEmail, subject, body)
}

func (m *Mailer) BookingApproved(salon *models.Salon, ap *models.Appointment) {
	subject := fmt.Sprintf("Prenotazione confermata - %s", salon.Name)
	body := fmt.Sprintf(`
		<p>Ciao %s,</p>
		<p>la tua prenotazione è confermata per il %s dalle %s alle %s.</p>
		<p>Ti aspettiamo!</p>`,
		ap.CustomerName, ap.Date, ap.StartTime, ap.EndTime,
	)
	m.send(ap.CustomerEmail, subject, body)
}

func (m *Mailer) BookingRejected(salon *models.Salon, b *models.OnlineBooking) {
	subject := fmt.Sprintf("Prenotazione non disponibile - %s", salon.Name)
	body := fmt.Sprintf(`
		<p>Ciao %s,</p>
		<p>purtroppo non possiamo confermare la tua richiesta per il %s alle %s.</p>
		<p>Scegli un altro orario dal nostro sito.</p>`,
		b.CustomerName, b.Date, b.StartTime,
	)
	m.send(b.CustomerEmail, subject, body)
}

func (m *Mailer) AppointmentReminder(ap *models.Appointment) {
	subject := "Promemoria appuntamento"
	body := fmt.Sprintf(`
		<p>Ciao %s,</p>
		<p>ti ricordiamo l'appuntamento di oggi alle %s per %s.</p>`,
		ap.CustomerName, ap.StartTime, ap.Service.Name,
	)
	m.send(ap.CustomerEmail, subject, body)
}
