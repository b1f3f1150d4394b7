package dispatch

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicpro/internal/email"
	"syndicpro/internal/models"
)

func newDocument(res *models.User) *models.Document {
	doc := &models.Document{
		BaseModel:    models.BaseModel{ID: "doc-1"},
		Title:        "Facture mars",
		DocumentType: models.DocumentTypeInvoice,
		Amount:       1250.50,
		Date:         time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	if res != nil {
		doc.Resident = res
		doc.ResidentID = &res.ID
	}
	return doc
}

func TestDocumentUploaded_EmailsResidentAndCreatesNotification(t *testing.T) {
	env := newTestEnv(true)
	res := resident("alice", "alice@example.com")

	results := env.dispatch(NewDocumentEvent(newDocument(&res), true))

	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, StateDispatched, result.State)
	assert.Equal(t, 1, result.EmailsSent)
	assert.Empty(t, result.Failures)

	require.Len(t, env.mailer.sent, 1)
	assert.Equal(t, "alice@example.com", env.mailer.sent[0].to)
	assert.Equal(t, "Nouveau document: Facture mars", env.mailer.sent[0].subject)
	assert.Equal(t, email.TemplateDocumentAdded, env.mailer.sent[0].template)

	require.Len(t, env.store.created, 1)
	notification := env.store.created[0]
	assert.Equal(t, models.NotificationTypeDocumentUploaded, notification.Type)
	assert.Equal(t, models.PriorityMedium, notification.Priority)
	require.Len(t, notification.Recipients, 1)
	assert.Equal(t, res.ID, notification.Recipients[0].ID)
}

func TestDocumentUploaded_MarkerSuppressesBroadcastEmail(t *testing.T) {
	// Even with real emails enabled, the document email and the
	// auto-created notification must add up to exactly one send.
	env := newTestEnv(true)
	res := resident("alice", "alice@example.com")

	env.dispatch(NewDocumentEvent(newDocument(&res), true))

	assert.Equal(t, []string{"alice@example.com"}, env.mailer.recipients())
}

func TestDocumentUploaded_ResidentWithoutEmail_SkipsEverything(t *testing.T) {
	env := newTestEnv(true)
	res := resident("bob", "")

	results := env.dispatch(NewDocumentEvent(newDocument(&res), true))

	require.Len(t, results, 1)
	assert.Equal(t, StateSkipped, results[0].State)
	assert.Equal(t, SkipResidentNoMail, results[0].SkipReason)
	assert.Empty(t, env.mailer.sent)
	assert.Empty(t, env.store.created)
	assert.Empty(t, env.audit.entries)
}

func TestDocumentUploaded_NoResident_Skips(t *testing.T) {
	env := newTestEnv(true)

	results := env.dispatch(NewDocumentEvent(newDocument(nil), true))

	require.Len(t, results, 1)
	assert.Equal(t, StateSkipped, results[0].State)
	assert.Equal(t, SkipNoResident, results[0].SkipReason)
}

func TestDocumentUploaded_TemplateFailureFallsBackToPlainText(t *testing.T) {
	env := newTestEnv(false)
	env.mailer.failTemplates = errors.New("template broken")
	res := resident("alice", "alice@example.com")

	results := env.dispatch(NewDocumentEvent(newDocument(&res), true))

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].EmailsSent)
	require.Len(t, env.mailer.sent, 1)
	assert.Empty(t, env.mailer.sent[0].template)
	assert.Contains(t, env.mailer.sent[0].body, "Facture")
}

func TestDocumentUploaded_EmailFailureDoesNotBlockNotificationOrAudit(t *testing.T) {
	env := newTestEnv(false)
	res := resident("alice", "alice@example.com")
	env.mailer.failFor["alice@example.com"] = errors.New("smtp down")

	results := env.dispatch(NewDocumentEvent(newDocument(&res), true))

	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, StateDispatched, result.State)
	assert.Equal(t, 0, result.EmailsSent)
	assert.Equal(t, 1, result.EmailsFailed)

	assert.Len(t, env.store.created, 1)
	assert.Contains(t, env.audit.actions(), models.ActionDocumentCreated)
}

func TestDocumentUploaded_AuditFailureIsAbsorbed(t *testing.T) {
	env := newTestEnv(false)
	env.audit.err = errors.New("audit sink down")
	res := resident("alice", "alice@example.com")

	results := env.dispatch(NewDocumentEvent(newDocument(&res), true))

	require.Len(t, results, 1)
	assert.Equal(t, StateDispatched, results[0].State)
	assert.Equal(t, 1, results[0].EmailsSent)
	assert.NotEmpty(t, results[0].Failures)
	assert.Len(t, env.store.created, 1)
}
