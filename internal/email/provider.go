package email

// Provider sends email. Callers in the dispatch layer treat every send
// as best-effort and must never propagate a send failure upward.
type Provider interface {
	// Send delivers a plain or prebuilt message.
	Send(email *Email) error

	// SendTemplate renders templateName with data and delivers the
	// result as an HTML message.
	SendTemplate(to []string, subject, templateName string, data TemplateData) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named templates to HTML.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
	LoadTemplates(dirPath string) error
}
