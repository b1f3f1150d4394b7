package dispatch

import (
	"fmt"

	"syndicpro/internal/config"
	"syndicpro/internal/email"
	"syndicpro/internal/models"
)

// NotificationBroadcastHandler emails the residents attached to any
// freshly created notification. It is the generic email path: the
// specific handlers mark notifications they already emailed for, and
// this handler honors the marker so nobody is emailed twice for the
// same event.
//
// Only residents are ever emailed here. Staff attached as recipients
// get the in-app notification and nothing else.
type NotificationBroadcastHandler struct {
	mailer Mailer
	audit  AuditLog
	cfg    *config.Config
}

func NewNotificationBroadcastHandler(mailer Mailer, audit AuditLog, cfg *config.Config) *NotificationBroadcastHandler {
	return &NotificationBroadcastHandler{mailer: mailer, audit: audit, cfg: cfg}
}

func (h *NotificationBroadcastHandler) Name() string { return "notification_broadcast" }

func (h *NotificationBroadcastHandler) Handle(dctx *Context, event Event) Result {
	notification := event.Notification

	result := Dispatched(h.Name())
	result.NotificationID = notification.ID
	if err := h.audit.Record(models.ActionNotificationCreated, notification.SenderID, notification.ID, "notification",
		map[string]interface{}{
			"title":      notification.Title,
			"type":       string(notification.Type),
			"recipients": len(notification.Recipients),
		}); err != nil {
		result.Fail(fmt.Errorf("audit: %w", err))
	}

	// The flag is read on every dispatch, never cached at wiring time.
	if !h.cfg.Notifications.SendRealEmails {
		result.State = StateSkipped
		result.SkipReason = SkipEmailsDisabled
		return result
	}
	if dctx.EmailAlreadySent(notification.ID) {
		result.State = StateSkipped
		result.SkipReason = SkipAlreadyEmailed
		return result
	}

	for _, recipient := range notification.Recipients {
		if recipient.Role != models.UserRoleResident || recipient.Email == "" {
			continue
		}

		data := email.TemplateData{
			"subject":           notification.Title,
			"resident_name":     recipient.DisplayName(),
			"intro_text":        "Vous avez une nouvelle notification de votre syndic.",
			"message":           notification.Message,
			"notification_type": notification.Type.Label(),
			"priority":          notification.Priority.Label(),
			"dashboard_url":     h.cfg.DashboardURL(),
		}
		err := h.mailer.SendTemplate([]string{recipient.Email}, notification.Title, email.TemplateNotificationGeneric, data)
		if err != nil {
			result.FailEmail(recipient.Email, err)
			continue
		}
		result.EmailsSent++
	}

	return result
}
