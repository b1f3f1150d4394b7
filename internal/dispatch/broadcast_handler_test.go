package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicpro/internal/email"
	"syndicpro/internal/models"
)

func newNotification(recipients ...models.User) *models.Notification {
	return &models.Notification{
		BaseModel:  models.BaseModel{ID: "notif-1"},
		Title:      "Assemblée générale",
		Message:    "L'assemblée générale aura lieu le 12 juin.",
		Type:       models.NotificationTypeMeeting,
		Priority:   models.PriorityMedium,
		IsActive:   true,
		Recipients: recipients,
	}
}

func TestBroadcast_FlagDisabled_NoEmails(t *testing.T) {
	env := newTestEnv(false)
	notification := newNotification(
		resident("alice", "alice@example.com"),
		resident("bob", "bob@example.com"),
	)

	results := env.dispatch(NewNotificationEvent(notification, true))

	require.Len(t, results, 1)
	assert.Equal(t, StateSkipped, results[0].State)
	assert.Equal(t, SkipEmailsDisabled, results[0].SkipReason)
	assert.Empty(t, env.mailer.sent)
}

func TestBroadcast_AuditRecordedEvenWhenFlagDisabled(t *testing.T) {
	env := newTestEnv(false)

	env.dispatch(NewNotificationEvent(newNotification(resident("alice", "a@example.com")), true))

	assert.Equal(t, []string{models.ActionNotificationCreated}, env.audit.actions())
}

func TestBroadcast_EmailsOnlyResidents(t *testing.T) {
	env := newTestEnv(true)
	notification := newNotification(
		resident("alice", "alice@example.com"),
		staff("syndic1", "syndic1@example.com", models.UserRoleSyndic),
		staff("admin", "admin@example.com", models.UserRoleSuperAdmin),
	)

	results := env.dispatch(NewNotificationEvent(notification, true))

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].EmailsSent)
	assert.Equal(t, []string{"alice@example.com"}, env.mailer.recipients())
	require.Len(t, env.mailer.sent, 1)
	assert.Equal(t, email.TemplateNotificationGeneric, env.mailer.sent[0].template)
}

func TestBroadcast_SkipsRecipientsWithoutEmail(t *testing.T) {
	env := newTestEnv(true)
	notification := newNotification(
		resident("alice", "alice@example.com"),
		resident("bob", ""),
	)

	results := env.dispatch(NewNotificationEvent(notification, true))

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].EmailsSent)
	assert.Zero(t, results[0].EmailsFailed)
}

func TestBroadcast_MarkerSuppressesSend(t *testing.T) {
	env := newTestEnv(true)
	notification := newNotification(resident("alice", "alice@example.com"))

	dctx := NewContext()
	dctx.MarkEmailSent(notification.ID)
	results := env.dispatcher.Dispatch(dctx, NewNotificationEvent(notification, true))

	require.Len(t, results, 1)
	assert.Equal(t, StateSkipped, results[0].State)
	assert.Equal(t, SkipAlreadyEmailed, results[0].SkipReason)
	assert.Empty(t, env.mailer.sent)
}

func TestBroadcast_MarkerIsPerContext(t *testing.T) {
	// The marker lives in one dispatch Context only. A later dispatch
	// for the same notification, in a fresh Context, emails normally.
	env := newTestEnv(true)
	notification := newNotification(resident("alice", "alice@example.com"))

	dctx := NewContext()
	dctx.MarkEmailSent(notification.ID)
	env.dispatcher.Dispatch(dctx, NewNotificationEvent(notification, true))
	require.Empty(t, env.mailer.sent)

	env.dispatcher.Dispatch(NewContext(), NewNotificationEvent(notification, true))
	assert.Len(t, env.mailer.sent, 1)
}

func TestBroadcast_PerRecipientFailureIsolation(t *testing.T) {
	env := newTestEnv(true)
	notification := newNotification(
		resident("alice", "alice@example.com"),
		resident("bob", "bob@example.com"),
		resident("carol", "carol@example.com"),
	)
	env.mailer.failFor["alice@example.com"] = errors.New("mailbox full")

	results := env.dispatch(NewNotificationEvent(notification, true))

	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, StateDispatched, result.State)
	assert.Equal(t, 2, result.EmailsSent)
	assert.Equal(t, 1, result.EmailsFailed)
	assert.Equal(t, []string{"bob@example.com", "carol@example.com"}, env.mailer.recipients())
}

func TestBroadcast_FlagReadFreshOnEveryDispatch(t *testing.T) {
	env := newTestEnv(false)
	notification := newNotification(resident("alice", "alice@example.com"))

	env.dispatch(NewNotificationEvent(notification, true))
	require.Empty(t, env.mailer.sent)

	env.cfg.Notifications.SendRealEmails = true
	env.dispatch(NewNotificationEvent(notification, true))
	assert.Len(t, env.mailer.sent, 1)
}
