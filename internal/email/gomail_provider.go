package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// GomailProvider implements Provider over SMTP using gomail.
type GomailProvider struct {
	config   *SMTPConfig
	renderer TemplateRenderer
	dialer   *gomail.Dialer
}

// NewGomailProvider builds a provider from SMTP settings. Templates are
// the built-in set plus, when configured, overrides from TemplatesDir.
func NewGomailProvider(config *SMTPConfig) (*GomailProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm := NewTemplateManager()
	if config.TemplatesDir != "" {
		if err := tm.LoadTemplates(config.TemplatesDir); err != nil {
			return nil, fmt.Errorf("failed to load email templates: %w", err)
		}
	}

	return &GomailProvider{
		config:   config,
		renderer: tm,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

// Send delivers the message over SMTP.
func (p *GomailProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

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
	if len(email.Cc) > 0 {
		m.SetHeader("Cc", email.Cc...)
	}
	m.SetHeader("Subject", email.Subject)

	switch {
	case email.HTMLBody != "" && email.Body != "":
		m.SetBody("text/plain", email.Body)
		m.AddAlternative("text/html", email.HTMLBody)
	case email.HTMLBody != "":
		m.SetBody("text/html", email.HTMLBody)
	default:
		m.SetBody("text/plain", email.Body)
	}

	return p.dialer.DialAndSend(m)
}

// SendTemplate renders a template and sends the result as HTML.
func (p *GomailProvider) SendTemplate(to []string, subject, templateName string, data TemplateData) error {
	htmlBody, err := p.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return p.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	})
}

func (p *GomailProvider) Validate() error {
	return p.config.Validate()
}

// Close is a no-op: gomail dials per message.
func (p *GomailProvider) Close() error {
	return nil
}
