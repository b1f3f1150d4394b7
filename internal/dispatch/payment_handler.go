package dispatch

import (
	"fmt"

	"syndicpro/internal/email"
	"syndicpro/internal/models"
)

// PaymentReceivedHandler tells the staff a payment came in. Every
// resolved staff member gets the in-app notification; only the first
// one gets an email. The asymmetry is deliberate: the email is a
// heads-up for whoever handles the books, the notification is the
// record for everyone.
type PaymentReceivedHandler struct {
	users     UserDirectory
	mailer    Mailer
	deliverer *Deliverer
	audit     AuditLog
}

func NewPaymentReceivedHandler(users UserDirectory, mailer Mailer, deliverer *Deliverer, audit AuditLog) *PaymentReceivedHandler {
	return &PaymentReceivedHandler{users: users, mailer: mailer, deliverer: deliverer, audit: audit}
}

func (h *PaymentReceivedHandler) Name() string { return "payment_received" }

func (h *PaymentReceivedHandler) Handle(dctx *Context, event Event) Result {
	payment := event.Payment
	result := Dispatched(h.Name())

	staff, err := h.resolveStaff(payment)
	if err != nil {
		result.Fail(fmt.Errorf("resolve staff: %w", err))
		return result
	}
	if len(staff) == 0 {
		return Skipped(h.Name(), SkipNoStaff)
	}

	notification := &models.Notification{
		Title:    "Paiement reçu",
		Message:  h.notificationMessage(payment),
		Type:     models.NotificationTypeGeneralAnnouncement,
		Priority: models.PriorityHigh,
		IsActive: true,
		SenderID: h.senderID(payment),
	}
	if err := h.deliverer.Deliver(dctx, notification, staff, true); err != nil {
		result.Fail(fmt.Errorf("create notification: %w", err))
	} else {
		result.NotificationID = notification.ID
	}

	// Email only the first staff member, independently of the
	// notification outcome.
	first := staff[0]
	if first.Email != "" {
		if err := h.mailer.Send(&email.Email{
			To:      []string{first.Email},
			Subject: "Paiement reçu",
			Body:    h.emailBody(payment, &first),
		}); err != nil {
			result.FailEmail(first.Email, err)
		} else {
			result.EmailsSent++
		}
	}

	if err := h.audit.Record(models.ActionPaymentCreated, h.senderID(payment), payment.ID, "payment",
		map[string]interface{}{
			"amount": payment.Amount,
			"method": string(payment.PaymentMethod),
		}); err != nil {
		result.Fail(fmt.Errorf("audit: %w", err))
	}

	return result
}

// resolveStaff prefers the staff member who uploaded the paid document,
// falling back to every syndic and superadmin.
func (h *PaymentReceivedHandler) resolveStaff(payment *models.Payment) ([]models.User, error) {
	if payment.Document != nil && payment.Document.UploadedBy != nil && payment.Document.UploadedBy.IsStaff() {
		return []models.User{*payment.Document.UploadedBy}, nil
	}
	return h.users.FindByRoles(models.UserRoleSyndic, models.UserRoleSuperAdmin)
}

// senderID is the resident on the paid document, when there is one.
func (h *PaymentReceivedHandler) senderID(payment *models.Payment) *string {
	if payment.Document == nil {
		return nil
	}
	return payment.Document.ResidentID
}

func (h *PaymentReceivedHandler) notificationMessage(payment *models.Payment) string {
	msg := fmt.Sprintf("Un paiement de %.2f DH a été reçu le %s (%s).",
		payment.Amount, payment.PaymentDate.Format(dateLayout), payment.PaymentMethod.Label())
	if payment.Document != nil {
		msg += " Document: " + payment.Document.Title + "."
	}
	return msg
}

func (h *PaymentReceivedHandler) emailBody(payment *models.Payment, staff *models.User) string {
	body := fmt.Sprintf(
		"Bonjour %s,\n\nUn paiement a été enregistré.\n\nMontant: %.2f DH\nDate: %s\nMoyen: %s\n",
		staff.DisplayName(),
		payment.Amount,
		payment.PaymentDate.Format(dateLayout),
		payment.PaymentMethod.Label(),
	)
	if payment.Reference != "" {
		body += "Référence: " + payment.Reference + "\n"
	}
	if payment.Document != nil {
		body += "Document: " + payment.Document.Title + "\n"
		if payment.Document.Resident != nil {
			body += "Résident: " + payment.Document.Resident.DisplayName() + "\n"
		}
	}
	body += "\nCordialement,\nSyndicPro"
	return body
}
