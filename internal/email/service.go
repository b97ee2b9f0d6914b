package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/vitalsync/portal-api/config"
	"github.com/vitalsync/portal-api/internal/model"
)

// Service sends portal mail. Delivery is best-effort: callers fire it in a
// goroutine and log failures, a bounced mail never fails a request.
type Service interface {
	SendWelcome(ctx context.Context, to, name string) error
	SendAppointmentConfirmation(ctx context.Context, to string, appointment *model.Appointment) error
}

type smtpService struct {
	dialer *gomail.Dialer
	from   string
}

type noopService struct{}

// NewService returns a gomail-backed sender, or a no-op one when SMTP is not
// configured.
func NewService(cfg config.SMTPConfig) Service {
	if cfg.Host == "" {
		return &noopService{}
	}
	return &smtpService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *smtpService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *smtpService) SendWelcome(_ context.Context, to, name string) error {
	body := fmt.Sprintf(
		"Hi %s,\n\nWelcome to VitalSync. Your patient portal account is ready:\n"+
			"book appointments, store medical records and chat with the health assistant.\n\n"+
			"The VitalSync team",
		name,
	)
	return s.send(to, "Welcome to VitalSync", body)
}

func (s *smtpService) SendAppointmentConfirmation(_ context.Context, to string, appointment *model.Appointment) error {
	body := fmt.Sprintf(
		"Your appointment is booked.\n\nDoctor: %s (%s)\nDate: %s at %s\nReason: %s\n",
		appointment.DoctorName,
		appointment.DoctorSpecialty,
		appointment.Date,
		appointment.Time,
		appointment.Reason,
	)
	return s.send(to, "Appointment confirmation", body)
}

func (n *noopService) SendWelcome(context.Context, string, string) error { return nil }

func (n *noopService) SendAppointmentConfirmation(context.Context, string, *model.Appointment) error {
	return nil
}
