package email

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Built-in template names.
const (
	TemplateDocumentAdded       = "document_added"
	TemplateNotificationGeneric = "notification_generic"
)

// TemplateManager keeps parsed email templates and renders them.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in
// French templates. Templates loaded later from disk override them.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, tpl := range builtinTemplates {
		// Built-ins are compile-time constants, parse cannot fail.
		_ = tm.AddTemplate(name, tpl)
	}
	return tm
}

// Render renders a template with the given data.
func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// AddTemplate parses and registers a template.
func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}

// LoadTemplates loads every .html file from a directory.
func (tm *TemplateManager) LoadTemplates(dirPath string) error {
	return filepath.WalkDir(dirPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template file %s: %w", path, err)
		}

		templateName := strings.TrimSuffix(filepath.Base(path), ".html")
		if err := tm.AddTemplate(templateName, string(content)); err != nil {
			return fmt.Errorf("failed to add template %s: %w", templateName, err)
		}
		return nil
	})
}

// TemplateNames lists registered template names.
func (tm *TemplateManager) TemplateNames() []string {
	tm.mutex.RLock()
	defer tm.mutex.RUnlock()

	names := make([]string, 0, len(tm.templates))
	for name := range tm.templates {
		names = append(names, name)
	}
	return names
}

var builtinTemplates = map[string]string{
	TemplateDocumentAdded: `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.subject}}</h2>
  <p>Bonjour {{.resident_name}},</p>
  <p>{{.intro_text}}</p>
  <table cellpadding="4">
    <tr><td><strong>Type</strong></td><td>{{.document_type}}</td></tr>
    <tr><td><strong>Montant</strong></td><td>{{.amount}} DH</td></tr>
    <tr><td><strong>Date</strong></td><td>{{.date}}</td></tr>
  </table>
  {{if .message}}<p>{{.message}}</p>{{end}}
  {{if .link}}<p><a href="{{.link}}">Consulter le document</a></p>{{end}}
  <p><a href="{{.dashboard_url}}">Accéder à mon espace résident</a></p>
  <p>Cordialement,<br/>Votre syndic</p>
</body>
</html>`,

	TemplateNotificationGeneric: `<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>{{.subject}}</h2>
  <p>Bonjour {{.resident_name}},</p>
  <p>{{.intro_text}}</p>
  <p>{{.message}}</p>
  {{if .notification_type}}<p>Type : {{.notification_type}}{{if .priority}} / Priorité : {{.priority}}{{end}}</p>{{end}}
  <p><a href="{{.dashboard_url}}">Accéder à mon espace résident</a></p>
  <p>Cordialement,<br/>Votre syndic</p>
</body>
</html>`,
}
