package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"accounthub-backend/pkg/config"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

var resetTemplate = template.Must(template.New("password_reset").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1 style="color: #333;">Password Reset Request</h1>
  <p>You requested a password reset. Click the button below to reset your password:</p>
  <div style="text-align: center; margin: 30px 0;">
    <a href="{{.ResetURL}}"
       style="background-color: #4CAF50; color: white; padding: 12px 24px;
              text-decoration: none; border-radius: 4px; display: inline-block;">
      Reset Password
    </a>
  </div>
  <p><strong>This link will expire in {{.TTL}}.</strong></p>
  <p style="color: #666;">If you didn't request this, please ignore this email.</p>
</body>
</html>`))

// Mailer sends transactional email over SMTP.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendPasswordResetEmail mails the reset link carrying the raw token as a
// query parameter.
func (m *Mailer) SendPasswordResetEmail(email, rawToken string) error {
	if m.cfg.SMTPHost == "" || m.cfg.SMTPUser == "" {
		return fmt.Errorf("smtp config missing")
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", m.cfg.FrontendURL, rawToken)

	var body bytes.Buffer
	err := resetTemplate.Execute(&body, struct {
		ResetURL string
		TTL      string
	}{
		ResetURL: resetURL,
		TTL:      m.cfg.ResetTokenTTL.String(),
	})
	if err != nil {
		return fmt.Errorf("render reset email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTPFrom)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Password Reset Request")
	msg.SetBody("text/html", body.String())

	d := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	log.Info().Str("to", email).Msg("password reset email sent")
	return nil
}
