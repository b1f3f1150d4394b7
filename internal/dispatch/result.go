package dispatch

import "fmt"

// State says whether a handler acted on the event or stepped aside.
type State string

const (
	StateSkipped    State = "skipped"
	StateDispatched State = "dispatched"
)

// Skip reasons. A skipped Result always carries one.
const (
	SkipNotCreated     = "record updated, not created"
	SkipNoResident     = "document has no resident"
	SkipResidentNoMail = "resident has no email address"
	SkipNoStaff        = "no staff user to notify"
	SkipNotLarge       = "expense is not flagged as large"
	SkipNoResidents    = "no residents to notify"
	SkipEmailsDisabled = "real email sending is disabled"
	SkipAlreadyEmailed = "email already sent for this notification"
)

// Result is what a handler reports back to the dispatcher. Failures
// collect every error the handler absorbed; none of them propagates
// to the caller that created the record.
type Result struct {
	Handler    string
	State      State
	SkipReason string

	// NotificationID is set when the handler created a notification.
	NotificationID string

	EmailsSent   int
	EmailsFailed int
	Failures     []error
}

// Skipped builds a skipped Result.
func Skipped(handler, reason string) Result {
	return Result{Handler: handler, State: StateSkipped, SkipReason: reason}
}

// Dispatched builds a Result for a handler that acted.
func Dispatched(handler string) Result {
	return Result{Handler: handler, State: StateDispatched}
}

// Fail records an absorbed error.
func (r *Result) Fail(err error) {
	r.Failures = append(r.Failures, err)
}

// FailEmail records a failed email send.
func (r *Result) FailEmail(recipient string, err error) {
	r.EmailsFailed++
	r.Failures = append(r.Failures, fmt.Errorf("email to %s: %w", recipient, err))
}

// OK reports whether the handler finished without absorbing any error.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}
