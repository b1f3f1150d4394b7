package dispatch

import (
	"fmt"

	"syndicpro/internal/config"
	"syndicpro/internal/email"
	"syndicpro/internal/models"
)

const dateLayout = "02/01/2006"

// DocumentUploadedHandler emails the resident a document was uploaded
// for and creates the matching in-app notification.
type DocumentUploadedHandler struct {
	mailer    Mailer
	deliverer *Deliverer
	audit     AuditLog
	cfg       *config.Config
}

func NewDocumentUploadedHandler(mailer Mailer, deliverer *Deliverer, audit AuditLog, cfg *config.Config) *DocumentUploadedHandler {
	return &DocumentUploadedHandler{mailer: mailer, deliverer: deliverer, audit: audit, cfg: cfg}
}

func (h *DocumentUploadedHandler) Name() string { return "document_uploaded" }

func (h *DocumentUploadedHandler) Handle(dctx *Context, event Event) Result {
	document := event.Document

	if document.Resident == nil {
		return Skipped(h.Name(), SkipNoResident)
	}
	resident := document.Resident
	if resident.Email == "" {
		return Skipped(h.Name(), SkipResidentNoMail)
	}

	result := Dispatched(h.Name())
	subject := "Nouveau document: " + document.Title

	if err := h.sendDocumentEmail(resident, document, subject); err != nil {
		result.FailEmail(resident.Email, err)
	} else {
		result.EmailsSent++
	}

	notification := &models.Notification{
		Title:    subject,
		Message:  h.notificationMessage(document),
		Type:     models.NotificationTypeDocumentUploaded,
		Priority: models.PriorityMedium,
		IsActive: true,
		SenderID: document.UploadedByID,
	}
	if err := h.deliverer.Deliver(dctx, notification, []models.User{*resident}, true); err != nil {
		result.Fail(fmt.Errorf("create notification: %w", err))
	} else {
		result.NotificationID = notification.ID
	}

	// The audit entry is written whatever happened above.
	if err := h.audit.Record(models.ActionDocumentCreated, document.UploadedByID, document.ID, "document",
		map[string]interface{}{
			"title":         document.Title,
			"document_type": string(document.DocumentType),
			"amount":        document.Amount,
			"email_sent":    result.EmailsSent > 0,
		}); err != nil {
		result.Fail(fmt.Errorf("audit: %w", err))
	}

	return result
}

// sendDocumentEmail tries the HTML template first and falls back to a
// plain-text message built from the same fields.
func (h *DocumentUploadedHandler) sendDocumentEmail(resident *models.User, document *models.Document, subject string) error {
	data := email.TemplateData{
		"subject":       subject,
		"resident_name": resident.DisplayName(),
		"intro_text":    "Un nouveau document a été ajouté à votre espace résident.",
		"document_type": document.DocumentType.Label(),
		"amount":        fmt.Sprintf("%.2f", document.Amount),
		"date":          document.Date.Format(dateLayout),
		"message":       document.Description,
		"link":          h.documentLink(document),
		"dashboard_url": h.cfg.DashboardURL(),
	}

	templateErr := h.mailer.SendTemplate([]string{resident.Email}, subject, email.TemplateDocumentAdded, data)
	if templateErr == nil {
		return nil
	}

	body := fmt.Sprintf(
		"Bonjour %s,\n\nUn nouveau document a été ajouté à votre espace résident.\n\nType: %s\nMontant: %.2f DH\nDate: %s\n\nAccédez à votre espace: %s\n\nCordialement,\nVotre syndic",
		resident.DisplayName(),
		document.DocumentType.Label(),
		document.Amount,
		document.Date.Format(dateLayout),
		h.cfg.DashboardURL(),
	)
	if err := h.mailer.Send(&email.Email{
		To:      []string{resident.Email},
		Subject: subject,
		Body:    body,
	}); err != nil {
		return fmt.Errorf("template failed (%v), plain fallback failed: %w", templateErr, err)
	}
	return nil
}

func (h *DocumentUploadedHandler) notificationMessage(document *models.Document) string {
	return fmt.Sprintf("Un document de type %s (%.2f DH) a été ajouté à votre espace.",
		document.DocumentType.Label(), document.Amount)
}

func (h *DocumentUploadedHandler) documentLink(document *models.Document) string {
	base := h.cfg.Notifications.SiteURL
	if base == "" {
		return ""
	}
	return base + "/documents/" + document.ID
}
