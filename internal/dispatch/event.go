// Package dispatch reacts to record creation. When a document, payment,
// expense or notification is created, the dispatcher runs the handlers
// registered for that event kind. Handlers send emails and create
// notifications, and report what happened through a Result. Nothing a
// handler does can fail the creation that triggered it.
package dispatch

import "syndicpro/internal/models"

// EventKind identifies which record type an event is about.
type EventKind int

const (
	DocumentCreated EventKind = iota
	PaymentCreated
	ExpenseCreated
	NotificationCreated
)

func (k EventKind) String() string {
	switch k {
	case DocumentCreated:
		return "document_created"
	case PaymentCreated:
		return "payment_created"
	case ExpenseCreated:
		return "expense_created"
	case NotificationCreated:
		return "notification_created"
	default:
		return "unknown"
	}
}

// Event carries the freshly saved record. Exactly one of the record
// fields is set, matching Kind. Created distinguishes inserts from
// updates: only inserts are dispatched.
type Event struct {
	Kind    EventKind
	Created bool

	Document     *models.Document
	Payment      *models.Payment
	Expense      *models.Expense
	Notification *models.Notification
}

func NewDocumentEvent(document *models.Document, created bool) Event {
	return Event{Kind: DocumentCreated, Created: created, Document: document}
}

func NewPaymentEvent(payment *models.Payment, created bool) Event {
	return Event{Kind: PaymentCreated, Created: created, Payment: payment}
}

func NewExpenseEvent(expense *models.Expense, created bool) Event {
	return Event{Kind: ExpenseCreated, Created: created, Expense: expense}
}

func NewNotificationEvent(notification *models.Notification, created bool) Event {
	return Event{Kind: NotificationCreated, Created: created, Notification: notification}
}

// TargetID returns the ID of the record the event is about.
func (e Event) TargetID() string {
	switch e.Kind {
	case DocumentCreated:
		if e.Document != nil {
			return e.Document.ID
		}
	case PaymentCreated:
		if e.Payment != nil {
			return e.Payment.ID
		}
	case ExpenseCreated:
		if e.Expense != nil {
			return e.Expense.ID
		}
	case NotificationCreated:
		if e.Notification != nil {
			return e.Notification.ID
		}
	}
	return ""
}
