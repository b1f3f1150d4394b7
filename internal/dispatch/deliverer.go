package dispatch

import "syndicpro/internal/models"

// Deliverer persists a notification and announces it through the
// dispatcher, inside the same dispatch Context that triggered it.
// Every notification created by a handler goes through here so that
// the nested notification_created dispatch always fires.
type Deliverer struct {
	store      NotificationStore
	dispatcher *Dispatcher
}

func NewDeliverer(store NotificationStore, dispatcher *Dispatcher) *Deliverer {
	return &Deliverer{store: store, dispatcher: dispatcher}
}

// Deliver creates the notification for the given recipients and
// dispatches the resulting notification_created event synchronously.
//
// An empty recipient list creates nothing: a notification without
// recipients is noise nobody would ever see.
//
// emailAlreadySent marks the notification in the Context before the
// nested dispatch, so the broadcast handler knows the caller already
// emailed for it.
func (d *Deliverer) Deliver(dctx *Context, notification *models.Notification, recipients []models.User, emailAlreadySent bool) error {
	if len(recipients) == 0 {
		return nil
	}

	if err := d.store.Create(notification, recipients); err != nil {
		return err
	}

	if emailAlreadySent {
		dctx.MarkEmailSent(notification.ID)
	}

	d.dispatcher.Dispatch(dctx, NewNotificationEvent(notification, true))
	return nil
}
