package email

import "localgigs_backend/internal/logger"

// Provider sends transactional mail.
type Provider interface {
	Send(email *Email) error
	SendWelcome(to, firstName string) error
}

// NoopProvider logs instead of sending. Used when email is disabled
// and in tests.
type NoopProvider struct{}

func (p *NoopProvider) Send(email *Email) error {
	logger.Debug("email sending disabled, dropping message", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendWelcome(to, firstName string) error {
	logger.Debug("email sending disabled, dropping welcome mail", "to", to)
	return nil
}
