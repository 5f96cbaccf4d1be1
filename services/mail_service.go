package services

import (
	"fmt"
	"net/smtp"

	"github.com/appfrabric/roilux/config"
	"github.com/appfrabric/roilux/translations"
)

// InterfaceMailService defines outbound mail delivery
type InterfaceMailService interface {
	SendPasswordReset(to, resetLink, lang string) error
}

// MailService sends transactional mail over SMTP
type MailService struct {
	Config *config.Config
}

// NewMailService creates a new mail service
func NewMailService(cfg *config.Config) *MailService {
	return &MailService{Config: cfg}
}

// SendPasswordReset emails a password reset link. The link expires 30 minutes
// after it was requested.
func (s *MailService) SendPasswordReset(to, resetLink, lang string) error {
	if s.Config.SMTPHost == "" || s.Config.SMTPUser == "" {
		return fmt.Errorf("SMTP credentials not fully configured")
	}

	subject := translations.T("password_reset_subject", lang)
	body := fmt.Sprintf("%s\r\n\r\n%s\r\n", translations.T("password_reset_sent", lang), resetLink)

	message := []byte(fmt.Sprintf("To: %s\r\n"+
		"Subject: %s\r\n"+
		"\r\n"+
		"%s\r\n", to, subject, body))

	auth := smtp.PlainAuth("", s.Config.SMTPUser, s.Config.SMTPPass, s.Config.SMTPHost)

	if err := smtp.SendMail(s.Config.GetSMTPAddr(), auth, s.Config.EmailFrom, []string{to}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
