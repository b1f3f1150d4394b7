package dispatch

import (
	"fmt"

	"syndicpro/internal/email"
	"syndicpro/internal/models"
)

// LargeExpenseHandler announces a large expense to every resident,
// in-app and by email. Expenses not flagged as large are ignored.
type LargeExpenseHandler struct {
	users     UserDirectory
	mailer    Mailer
	deliverer *Deliverer
	audit     AuditLog
}

func NewLargeExpenseHandler(users UserDirectory, mailer Mailer, deliverer *Deliverer, audit AuditLog) *LargeExpenseHandler {
	return &LargeExpenseHandler{users: users, mailer: mailer, deliverer: deliverer, audit: audit}
}

func (h *LargeExpenseHandler) Name() string { return "large_expense" }

func (h *LargeExpenseHandler) Handle(dctx *Context, event Event) Result {
	expense := event.Expense

	if !expense.IsLargeExpense {
		return Skipped(h.Name(), SkipNotLarge)
	}

	residents, err := h.users.FindByRoles(models.UserRoleResident)
	if err != nil {
		result := Dispatched(h.Name())
		result.Fail(fmt.Errorf("resolve residents: %w", err))
		return result
	}
	if len(residents) == 0 {
		return Skipped(h.Name(), SkipNoResidents)
	}

	result := Dispatched(h.Name())

	notification := &models.Notification{
		Title:    "Nouvelle dépense importante pour l'immeuble",
		Message:  h.notificationMessage(expense),
		Type:     models.NotificationTypeGeneralAnnouncement,
		Priority: models.PriorityHigh,
		IsActive: true,
		SenderID: expense.AddedByID,
	}
	if err := h.deliverer.Deliver(dctx, notification, residents, true); err != nil {
		result.Fail(fmt.Errorf("create notification: %w", err))
	} else {
		result.NotificationID = notification.ID
	}

	// One email per resident. A failed send for one address must not
	// abort the sends to everyone after it.
	body := h.emailBody(expense)
	for _, resident := range residents {
		if resident.Email == "" {
			continue
		}
		if err := h.mailer.Send(&email.Email{
			To:      []string{resident.Email},
			Subject: "Nouvelle dépense importante pour l'immeuble",
			Body:    body,
		}); err != nil {
			result.FailEmail(resident.Email, err)
			continue
		}
		result.EmailsSent++
	}

	if err := h.audit.Record(models.ActionExpenseCreated, expense.AddedByID, expense.ID, "expense",
		map[string]interface{}{
			"title":    expense.Title,
			"category": string(expense.Category),
			"amount":   expense.Amount,
		}); err != nil {
		result.Fail(fmt.Errorf("audit: %w", err))
	}

	return result
}

func (h *LargeExpenseHandler) notificationMessage(expense *models.Expense) string {
	return fmt.Sprintf("%s (%s): %.2f DH le %s.",
		expense.Title, expense.Category.Label(), expense.Amount,
		expense.ExpenseDate.Format(dateLayout))
}

func (h *LargeExpenseHandler) emailBody(expense *models.Expense) string {
	description := expense.Description
	if description == "" {
		description = "Aucune description"
	}
	return fmt.Sprintf(
		"Bonjour,\n\nUne dépense importante a été enregistrée pour l'immeuble.\n\nTitre: %s\nCatégorie: %s\nMontant: %.2f DH\nDate: %s\nDescription: %s\n\nCordialement,\nVotre syndic",
		expense.Title,
		expense.Category.Label(),
		expense.Amount,
		expense.ExpenseDate.Format(dateLayout),
		description,
	)
}
