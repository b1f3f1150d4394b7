package email

// Email is an outbound message.
type Email struct {
	From     string
	To       []string
	Cc       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the context handed to an email template.
type TemplateData map[string]interface{}
