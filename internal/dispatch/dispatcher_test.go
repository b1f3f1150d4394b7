package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicpro/internal/models"
)

// probeHandler records whether it ran and what the context said.
type probeHandler struct {
	name      string
	calls     int
	sawMarker bool
}

func (h *probeHandler) Name() string { return h.name }

func (h *probeHandler) Handle(dctx *Context, event Event) Result {
	h.calls++
	if event.Notification != nil {
		h.sawMarker = dctx.EmailAlreadySent(event.Notification.ID)
	}
	return Dispatched(h.name)
}

func TestDispatch_UpdatesNeverDispatch(t *testing.T) {
	dispatcher := NewDispatcher()
	probe := &probeHandler{name: "probe"}
	dispatcher.Register(DocumentCreated, probe)

	results := dispatcher.Dispatch(NewContext(), NewDocumentEvent(&models.Document{}, false))

	assert.Nil(t, results)
	assert.Zero(t, probe.calls)
}

func TestDispatch_RunsHandlersInRegistrationOrder(t *testing.T) {
	dispatcher := NewDispatcher()
	first := &probeHandler{name: "first"}
	second := &probeHandler{name: "second"}
	dispatcher.Register(ExpenseCreated, first)
	dispatcher.Register(ExpenseCreated, second)

	results := dispatcher.Dispatch(NewContext(), NewExpenseEvent(&models.Expense{}, true))

	require.Len(t, results, 2)
	assert.Equal(t, "first", results[0].Handler)
	assert.Equal(t, "second", results[1].Handler)
	assert.Equal(t, []string{"first", "second"}, dispatcher.Handlers(ExpenseCreated))
}

func TestDispatch_UnregisteredKindIsANoOp(t *testing.T) {
	dispatcher := NewDispatcher()

	results := dispatcher.Dispatch(NewContext(), NewPaymentEvent(&models.Payment{}, true))

	assert.Empty(t, results)
}

func TestDeliverer_ZeroRecipientsCreatesNothing(t *testing.T) {
	store := &fakeStore{}
	dispatcher := NewDispatcher()
	probe := &probeHandler{name: "probe"}
	dispatcher.Register(NotificationCreated, probe)
	deliverer := NewDeliverer(store, dispatcher)

	err := deliverer.Deliver(NewContext(), &models.Notification{Title: "x"}, nil, false)

	require.NoError(t, err)
	assert.Empty(t, store.created)
	assert.Zero(t, probe.calls)
}

func TestDeliverer_MarksContextBeforeNestedDispatch(t *testing.T) {
	store := &fakeStore{}
	dispatcher := NewDispatcher()
	probe := &probeHandler{name: "probe"}
	dispatcher.Register(NotificationCreated, probe)
	deliverer := NewDeliverer(store, dispatcher)

	notification := &models.Notification{Title: "x"}
	err := deliverer.Deliver(NewContext(), notification, []models.User{resident("alice", "a@example.com")}, true)

	require.NoError(t, err)
	assert.Equal(t, 1, probe.calls)
	assert.True(t, probe.sawMarker)
}

func TestDeliverer_NoMarkerWhenNothingEmailed(t *testing.T) {
	store := &fakeStore{}
	dispatcher := NewDispatcher()
	probe := &probeHandler{name: "probe"}
	dispatcher.Register(NotificationCreated, probe)
	deliverer := NewDeliverer(store, dispatcher)

	err := deliverer.Deliver(NewContext(), &models.Notification{Title: "x"},
		[]models.User{resident("alice", "a@example.com")}, false)

	require.NoError(t, err)
	assert.False(t, probe.sawMarker)
}

func TestContext_MarkerIsPerNotification(t *testing.T) {
	dctx := NewContext()
	dctx.MarkEmailSent("n1")

	assert.True(t, dctx.EmailAlreadySent("n1"))
	assert.False(t, dctx.EmailAlreadySent("n2"))
}
