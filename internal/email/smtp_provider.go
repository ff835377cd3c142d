package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through a gomail SMTP dialer.
type SMTPProvider struct {
	config Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if config.SMTPHost == "" || config.SMTPPort == 0 {
		return nil, fmt.Errorf("smtp host and port are required")
	}

	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	if p.config.FromName != "" {
		m.SetAddressHeader("From", from, p.config.FromName)
	} else {
		m.SetHeader("From", from)
	}

	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendWelcome(to, firstName string) error {
	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Welcome to LocalGigs",
		Body:     welcomeText(firstName),
		HTMLBody: welcomeHTML(firstName),
	})
}
