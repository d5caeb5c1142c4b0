package mail

import (
	"errors"
	"fmt"
	"time"

	"github.com/rakibhasan/coursehub/internal/pkg/logger"
	"github.com/rakibhasan/coursehub/internal/pkg/models"
	"gopkg.in/gomail.v2"
)

// ErrDeliveryTimeout is returned when an SMTP send does not settle within
// the configured send timeout. Callers must treat it as a delivery failure,
// never as a success.
var ErrDeliveryTimeout = errors.New("email delivery timed out")

// Mailer sends HTML email through the configured SMTP account. Every send
// races against the configured timeout so an unresponsive relay cannot hang
// the calling request.
type Mailer struct {
	cfg    models.SMTPConfig
	dialer *gomail.Dialer
}

// NewMailer creates a new SMTP mailer
func NewMailer(cfg models.SMTPConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send delivers a single HTML message to the given address
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.cfg.FromAddress, m.cfg.FromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	timeout := time.Duration(m.cfg.SendTimeout) * time.Second
	if timeout <= 0 {
		timeout = 25 * time.Second
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	case <-time.After(timeout):
		logger.Warn("Email delivery timed out",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.Duration("timeout", timeout))
		return ErrDeliveryTimeout
	}
}

// SendOTP sends a verification code to the given address
func (m *Mailer) SendOTP(to, code string) error {
	return m.Send(to, "Your verification code", otpBody(code))
}

// SendPasswordResetOTP sends a password reset code to the given address
func (m *Mailer) SendPasswordResetOTP(to, code string) error {
	return m.Send(to, "Password reset code", passwordResetBody(code))
}

// SendCourseAccess notifies the payer that their payment was approved and
// course access has been enabled
func (m *Mailer) SendCourseAccess(to, name, courseName string) error {
	return m.Send(to, "Course access approved", courseAccessBody(name, courseName))
}
