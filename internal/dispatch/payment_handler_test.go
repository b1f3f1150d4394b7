package dispatch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicpro/internal/models"
)

func newPayment(uploadedBy *models.User) *models.Payment {
	doc := &models.Document{
		BaseModel: models.BaseModel{ID: "doc-1"},
		Title:     "Appel de charges T1",
	}
	if uploadedBy != nil {
		doc.UploadedBy = uploadedBy
		doc.UploadedByID = &uploadedBy.ID
	}
	return &models.Payment{
		BaseModel:     models.BaseModel{ID: "pay-1"},
		Amount:        500,
		PaymentDate:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		PaymentMethod: models.PaymentMethodTransfer,
		DocumentID:    &doc.ID,
		Document:      doc,
	}
}

func TestPaymentReceived_UploaderStaffIsSoleRecipient(t *testing.T) {
	env := newTestEnv(false)
	uploader := staff("syndic1", "syndic1@example.com", models.UserRoleSyndic)
	// Other staff exist, none of them may be emailed.
	env.users.users = []models.User{
		uploader,
		staff("syndic2", "syndic2@example.com", models.UserRoleSyndic),
		staff("admin", "admin@example.com", models.UserRoleSuperAdmin),
	}

	results := env.dispatch(NewPaymentEvent(newPayment(&uploader), true))

	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, StateDispatched, result.State)
	assert.Equal(t, 1, result.EmailsSent)

	require.Len(t, env.store.created, 1)
	notification := env.store.created[0]
	assert.Equal(t, "Paiement reçu", notification.Title)
	assert.Equal(t, models.NotificationTypeGeneralAnnouncement, notification.Type)
	assert.Equal(t, models.PriorityHigh, notification.Priority)
	require.Len(t, notification.Recipients, 1)
	assert.Equal(t, uploader.ID, notification.Recipients[0].ID)

	assert.Equal(t, []string{"syndic1@example.com"}, env.mailer.recipients())
}

func TestPaymentReceived_FallsBackToAllStaff(t *testing.T) {
	env := newTestEnv(false)
	env.users.users = []models.User{
		staff("syndic1", "syndic1@example.com", models.UserRoleSyndic),
		staff("admin", "admin@example.com", models.UserRoleSuperAdmin),
		resident("alice", "alice@example.com"),
	}

	// Document uploaded by a resident: not staff, fall back.
	uploader := resident("alice", "alice@example.com")
	results := env.dispatch(NewPaymentEvent(newPayment(&uploader), true))

	require.Len(t, results, 1)
	require.Len(t, env.store.created, 1)
	assert.Len(t, env.store.created[0].Recipients, 2)

	// Only the first resolved staff member gets the email.
	assert.Equal(t, []string{"syndic1@example.com"}, env.mailer.recipients())
}

func TestPaymentReceived_NoStaff_Skips(t *testing.T) {
	env := newTestEnv(false)
	env.users.users = []models.User{resident("alice", "alice@example.com")}

	results := env.dispatch(NewPaymentEvent(newPayment(nil), true))

	require.Len(t, results, 1)
	assert.Equal(t, StateSkipped, results[0].State)
	assert.Equal(t, SkipNoStaff, results[0].SkipReason)
	assert.Empty(t, env.store.created)
	assert.Empty(t, env.mailer.sent)
}

func TestPaymentReceived_FirstStaffWithoutEmail_NotificationStillCreated(t *testing.T) {
	env := newTestEnv(false)
	uploader := staff("syndic1", "", models.UserRoleSyndic)

	results := env.dispatch(NewPaymentEvent(newPayment(&uploader), true))

	require.Len(t, results, 1)
	assert.Equal(t, StateDispatched, results[0].State)
	assert.Equal(t, 0, results[0].EmailsSent)
	assert.Len(t, env.store.created, 1)
	assert.Empty(t, env.mailer.sent)
}

func TestPaymentReceived_SenderIsDocumentResident(t *testing.T) {
	env := newTestEnv(false)
	uploader := staff("syndic1", "syndic1@example.com", models.UserRoleSyndic)
	payment := newPayment(&uploader)
	res := resident("alice", "alice@example.com")
	payment.Document.Resident = &res
	payment.Document.ResidentID = &res.ID

	env.dispatch(NewPaymentEvent(payment, true))

	require.Len(t, env.store.created, 1)
	require.NotNil(t, env.store.created[0].SenderID)
	assert.Equal(t, res.ID, *env.store.created[0].SenderID)
}
