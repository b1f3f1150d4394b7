package dispatch

import (
	"errors"

	"syndicpro/internal/email"
	"syndicpro/internal/logger"
	"syndicpro/internal/models"
)

// Collaborators the handlers need. The repository and email packages
// satisfy these; tests substitute fakes.

// UserDirectory looks up users by role.
type UserDirectory interface {
	FindByRoles(roles ...models.UserRole) ([]models.User, error)
}

// NotificationStore persists notifications with their recipient set.
type NotificationStore interface {
	Create(notification *models.Notification, recipients []models.User) error
}

// AuditLog records audit trail entries. Writes are best-effort.
type AuditLog interface {
	Record(action string, actorID *string, targetID, targetType string, meta map[string]interface{}) error
}

// Mailer sends emails. email.Provider satisfies it.
type Mailer interface {
	Send(msg *email.Email) error
	SendTemplate(to []string, subject, templateName string, data email.TemplateData) error
}

// Handler reacts to one event. It must absorb every failure into the
// Result it returns.
type Handler interface {
	Name() string
	Handle(dctx *Context, event Event) Result
}

// Dispatcher holds the explicit handler registry. Which handlers run
// for which event kind is decided once, at wiring time, by Register
// calls. Dispatch is synchronous: it returns only after every handler
// has finished.
type Dispatcher struct {
	handlers map[EventKind][]Handler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[EventKind][]Handler)}
}

// Register appends a handler to the registry for one event kind.
// Handlers run in registration order.
func (d *Dispatcher) Register(kind EventKind, h Handler) {
	d.handlers[kind] = append(d.handlers[kind], h)
}

// Handlers returns the registered handler names for an event kind.
func (d *Dispatcher) Handlers(kind EventKind) []string {
	names := make([]string, 0, len(d.handlers[kind]))
	for _, h := range d.handlers[kind] {
		names = append(names, h.Name())
	}
	return names
}

// Dispatch runs every handler registered for the event's kind and
// returns their results. Updates are not dispatched. This is the one
// place dispatch outcomes are logged; callers can inspect the results
// but do not need to.
func (d *Dispatcher) Dispatch(dctx *Context, event Event) []Result {
	if !event.Created {
		logger.Debug("dispatch skipped", "event", event.Kind.String(), "reason", SkipNotCreated)
		return nil
	}

	handlers := d.handlers[event.Kind]
	results := make([]Result, 0, len(handlers))
	for _, h := range handlers {
		result := h.Handle(dctx, event)
		d.logResult(event, result)
		results = append(results, result)
	}
	return results
}

func (d *Dispatcher) logResult(event Event, result Result) {
	fields := []any{
		"event", event.Kind.String(),
		"target_id", event.TargetID(),
		"handler", result.Handler,
	}

	switch {
	case !result.OK():
		logger.Error("handler finished with failures", append(fields,
			"state", string(result.State),
			"emails_sent", result.EmailsSent,
			"emails_failed", result.EmailsFailed,
			"error", errors.Join(result.Failures...).Error())...)
	case result.State == StateSkipped:
		logger.Debug("handler skipped", append(fields, "reason", result.SkipReason)...)
	default:
		logger.Info("handler dispatched", append(fields,
			"emails_sent", result.EmailsSent)...)
	}
}
