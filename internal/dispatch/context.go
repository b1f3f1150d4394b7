package dispatch

// Context carries per-event state across a dispatch, including the
// nested dispatches a handler triggers when it creates a notification.
// It exists so that a handler which already emailed for a notification
// can tell the broadcast handler not to email again.
//
// A Context lives for one top-level dispatch only. The marker is never
// persisted: once the dispatch returns, the information is gone.
type Context struct {
	emailSent map[string]struct{}
}

func NewContext() *Context {
	return &Context{emailSent: make(map[string]struct{})}
}

// MarkEmailSent records that an email has already gone out for the
// notification during this dispatch.
func (c *Context) MarkEmailSent(notificationID string) {
	c.emailSent[notificationID] = struct{}{}
}

// EmailAlreadySent reports whether MarkEmailSent was called for the
// notification during this dispatch.
func (c *Context) EmailAlreadySent(notificationID string) bool {
	_, ok := c.emailSent[notificationID]
	return ok
}
