package dispatch

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"syndicpro/internal/models"
)

func newExpense(large bool) *models.Expense {
	return &models.Expense{
		BaseModel:      models.BaseModel{ID: "exp-1"},
		Title:          "Réfection de la toiture",
		Category:       models.ExpenseCategoryWorks,
		Amount:         45000,
		ExpenseDate:    time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		IsLargeExpense: large,
	}
}

func TestLargeExpense_NotFlagged_Ignored(t *testing.T) {
	env := newTestEnv(false)
	env.users.users = []models.User{resident("alice", "alice@example.com")}

	results := env.dispatch(NewExpenseEvent(newExpense(false), true))

	require.Len(t, results, 1)
	assert.Equal(t, StateSkipped, results[0].State)
	assert.Equal(t, SkipNotLarge, results[0].SkipReason)
	assert.Empty(t, env.store.created)
	assert.Empty(t, env.mailer.sent)
}

func TestLargeExpense_ThreeResidentsTwoEmails(t *testing.T) {
	// Three residents, one without an email address: one notification
	// with three recipients, exactly two send attempts.
	env := newTestEnv(false)
	env.users.users = []models.User{
		resident("alice", "alice@example.com"),
		resident("bob", "bob@example.com"),
		resident("carol", ""),
	}

	results := env.dispatch(NewExpenseEvent(newExpense(true), true))

	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, StateDispatched, result.State)
	assert.Equal(t, 2, result.EmailsSent)

	require.Len(t, env.store.created, 1)
	notification := env.store.created[0]
	assert.Len(t, notification.Recipients, 3)
	assert.Equal(t, models.PriorityHigh, notification.Priority)

	assert.Equal(t, []string{"alice@example.com", "bob@example.com"}, env.mailer.recipients())
}

func TestLargeExpense_OneBadAddressDoesNotAbortTheRest(t *testing.T) {
	env := newTestEnv(false)
	env.users.users = []models.User{
		resident("alice", "alice@example.com"),
		resident("bob", "bob@example.com"),
		resident("carol", "carol@example.com"),
	}
	env.mailer.failFor["bob@example.com"] = errors.New("mailbox unavailable")

	results := env.dispatch(NewExpenseEvent(newExpense(true), true))

	require.Len(t, results, 1)
	result := results[0]
	assert.Equal(t, StateDispatched, result.State)
	assert.Equal(t, 2, result.EmailsSent)
	assert.Equal(t, 1, result.EmailsFailed)
	assert.Equal(t, []string{"alice@example.com", "carol@example.com"}, env.mailer.recipients())
}

func TestLargeExpense_NoResidents_Skips(t *testing.T) {
	env := newTestEnv(false)
	env.users.users = []models.User{staff("syndic1", "s@example.com", models.UserRoleSyndic)}

	results := env.dispatch(NewExpenseEvent(newExpense(true), true))

	require.Len(t, results, 1)
	assert.Equal(t, StateSkipped, results[0].State)
	assert.Equal(t, SkipNoResidents, results[0].SkipReason)
}

func TestLargeExpense_MissingDescriptionGetsDefaultText(t *testing.T) {
	env := newTestEnv(false)
	env.users.users = []models.User{resident("alice", "alice@example.com")}

	env.dispatch(NewExpenseEvent(newExpense(true), true))

	require.Len(t, env.mailer.sent, 1)
	assert.Contains(t, env.mailer.sent[0].body, "Aucune description")
}

func TestLargeExpense_DirectoryFailureIsAbsorbed(t *testing.T) {
	env := newTestEnv(false)
	env.users.err = errors.New("db down")

	results := env.dispatch(NewExpenseEvent(newExpense(true), true))

	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Failures)
	assert.Empty(t, env.mailer.sent)
}
