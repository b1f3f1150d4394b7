// Command test-email sends a test email so an operator can verify the
// SMTP settings by hand. Three methods:
//
//	simple    a plain-text message
//	templated the generic notification HTML template
//	model     the document-added HTML template with sample data
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"syndicpro/internal/config"
	"syndicpro/internal/email"
)

func main() {
	_ = godotenv.Load()

	to := flag.String("email", "", "destination address")
	method := flag.String("method", "simple", "simple, templated or model")
	flag.Parse()

	if *to == "" {
		fmt.Fprintln(os.Stderr, "usage: test-email --email you@example.com [--method simple|templated|model]")
		os.Exit(2)
	}

	cfg := config.MustLoad()
	provider, err := email.NewGomailProvider(&email.SMTPConfig{
		Host:         cfg.Email.SMTPHost,
		Port:         cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUser,
		Password:     cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
		TemplatesDir: cfg.Email.TemplatesDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "email provider: %v\n", err)
		os.Exit(1)
	}

	switch *method {
	case "simple":
		err = provider.Send(&email.Email{
			To:      []string{*to},
			Subject: "Test SyndicPro",
			Body:    "Ceci est un email de test envoyé par SyndicPro.",
		})
	case "templated":
		err = provider.SendTemplate([]string{*to}, "Test SyndicPro (template)",
			email.TemplateNotificationGeneric, email.TemplateData{
				"subject":       "Test SyndicPro (template)",
				"resident_name": "Testeur",
				"intro_text":    "Ceci est un email de test.",
				"message":       "Si vous lisez ceci, la configuration SMTP fonctionne.",
				"dashboard_url": cfg.DashboardURL(),
			})
	case "model":
		err = provider.SendTemplate([]string{*to}, "Nouveau document: Facture de test",
			email.TemplateDocumentAdded, email.TemplateData{
				"subject":       "Nouveau document: Facture de test",
				"resident_name": "Testeur",
				"intro_text":    "Un nouveau document a été ajouté à votre espace résident.",
				"document_type": "Facture",
				"amount":        "1250.00",
				"date":          time.Now().Format("02/01/2006"),
				"dashboard_url": cfg.DashboardURL(),
			})
	default:
		fmt.Fprintf(os.Stderr, "unknown method %q\n", *method)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "send failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("email sent to %s (method %s)\n", *to, *method)
}
