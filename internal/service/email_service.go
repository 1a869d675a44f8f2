package service

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/edulink/mentor-service/config"
	"github.com/edulink/mentor-service/internal/model"
	"github.com/rs/zerolog/log"
)

// EmailService is the outbound notification boundary. Sends are
// fire-and-continue: callers log failures and never roll back state because
// a mail did not go out.
type EmailService interface {
	SendTestInvitation(application *model.Application, token string) error
	SendApproval(application *model.Application, score float64, generatedPassword string) error
	SendRejection(application *model.Application, score float64, retryAllowedAt time.Time) error
}

type smtpEmailService struct {
	cfg *config.Config
}

func NewSMTPEmailService(cfg *config.Config) EmailService {
	return &smtpEmailService{cfg: cfg}
}

func (s *smtpEmailService) SendTestInvitation(application *model.Application, token string) error {
	testURL := fmt.Sprintf("%s/mentor-test?token=%s", s.cfg.FrontendURL, token)
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Hello %s!</h2>
  <p>Thank you for applying to become an <strong>EduLink Mentor</strong> in <strong>%s</strong>.</p>
  <ul>
    <li><strong>Duration:</strong> 20 minutes</li>
    <li><strong>Questions:</strong> 15 multiple choice</li>
    <li><strong>Passing score:</strong> 70%%</li>
    <li><strong>Link valid for:</strong> 48 hours</li>
  </ul>
  <p><a href="%s">Start your test</a></p>
  <p>Make sure you have 20 uninterrupted minutes; once started, the timer cannot be paused.</p>
  <p style="color: #999; font-size: 12px;">If you did not apply to become a mentor, please ignore this email.</p>
</body>
</html>`, application.FullName, application.Specialization, testURL)

	return s.send(application.Email, "EduLink Mentor Test - Your Application", body)
}

func (s *smtpEmailService) SendApproval(application *model.Application, score float64, generatedPassword string) error {
	loginURL := fmt.Sprintf("%s/signin", s.cfg.FrontendURL)
	passwordSection := "<p><strong>Password:</strong> Use your existing account password</p>"
	if generatedPassword != "" {
		passwordSection = fmt.Sprintf(
			`<p><strong>Password:</strong> <code>%s</code></p>
  <p style="color: #dc3545; font-size: 12px;">Please change your password after first login.</p>`,
			generatedPassword)
	}

	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Welcome to EduLink Mentors, %s!</h2>
  <p>You passed the mentor assessment with a score of <strong>%.2f%%</strong>.</p>
  <h3>Your login credentials</h3>
  <p><strong>Email:</strong> %s</p>
  %s
  <p><a href="%s">Go to your Mentor Dashboard</a></p>
</body>
</html>`, application.FullName, score, application.Email, passwordSection, loginURL)

	return s.send(application.Email, "Welcome to EduLink Mentors!", body)
}

func (s *smtpEmailService) SendRejection(application *model.Application, score float64, retryAllowedAt time.Time) error {
	body := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Hello %s,</h2>
  <p>Thank you for taking the mentor assessment. Your score of <strong>%.2f%%</strong>
  did not meet the minimum passing requirement of <strong>70%%</strong>.</p>
  <p>You can reapply and take the test again after <strong>%s</strong>.</p>
  <p>We encourage you to review your knowledge in <strong>%s</strong> and try again.</p>
</body>
</html>`, application.FullName, score, retryAllowedAt.Format("January 02, 2006"), application.Specialization)

	return s.send(application.Email, "EduLink Mentor Test Results", body)
}

func (s *smtpEmailService) send(to, subject, htmlBody string) error {
	if s.cfg.SMTP.Host == "" {
		log.Warn().Str("to", to).Str("subject", subject).Msg("SMTP not configured, skipping email")
		return nil
	}

	headers := []string{
		fmt.Sprintf("From: %s", s.cfg.SMTP.From),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTP.Host, s.cfg.SMTP.Port)
	var auth smtp.Auth
	if s.cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTP.Username, s.cfg.SMTP.Password, s.cfg.SMTP.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.SMTP.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	log.Info().Str("to", to).Str("subject", subject).Msg("Email sent")
	return nil
}
