package dispatch

import (
	"github.com/google/uuid"

	"syndicpro/internal/config"
	"syndicpro/internal/email"
	"syndicpro/internal/models"
)

type sentEmail struct {
	to       string
	subject  string
	template string
	body     string
}

type fakeMailer struct {
	sent []sentEmail

	// failFor makes any send to these addresses fail.
	failFor map[string]error
	// failTemplates makes SendTemplate fail for every address.
	failTemplates error
}

func (m *fakeMailer) Send(msg *email.Email) error {
	if err, ok := m.failFor[msg.To[0]]; ok {
		return err
	}
	m.sent = append(m.sent, sentEmail{to: msg.To[0], subject: msg.Subject, body: msg.Body})
	return nil
}

func (m *fakeMailer) SendTemplate(to []string, subject, templateName string, data email.TemplateData) error {
	if m.failTemplates != nil {
		return m.failTemplates
	}
	if err, ok := m.failFor[to[0]]; ok {
		return err
	}
	m.sent = append(m.sent, sentEmail{to: to[0], subject: subject, template: templateName})
	return nil
}

func (m *fakeMailer) recipients() []string {
	addrs := make([]string, 0, len(m.sent))
	for _, s := range m.sent {
		addrs = append(addrs, s.to)
	}
	return addrs
}

type fakeDirectory struct {
	users []models.User
	err   error
}

func (d *fakeDirectory) FindByRoles(roles ...models.UserRole) ([]models.User, error) {
	if d.err != nil {
		return nil, d.err
	}
	var out []models.User
	for _, u := range d.users {
		for _, role := range roles {
			if u.Role == role {
				out = append(out, u)
				break
			}
		}
	}
	return out, nil
}

type fakeStore struct {
	created []*models.Notification
	err     error
}

func (s *fakeStore) Create(notification *models.Notification, recipients []models.User) error {
	if s.err != nil {
		return s.err
	}
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	notification.Recipients = recipients
	s.created = append(s.created, notification)
	return nil
}

type auditEntry struct {
	action     string
	targetID   string
	targetType string
}

type fakeAudit struct {
	entries []auditEntry
	err     error
}

func (a *fakeAudit) Record(action string, actorID *string, targetID, targetType string, meta map[string]interface{}) error {
	if a.err != nil {
		return a.err
	}
	a.entries = append(a.entries, auditEntry{action: action, targetID: targetID, targetType: targetType})
	return nil
}

func (a *fakeAudit) actions() []string {
	out := make([]string, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.action)
	}
	return out
}

// testEnv wires the full handler registry over fakes, mirroring the
// production wiring.
type testEnv struct {
	cfg        *config.Config
	mailer     *fakeMailer
	users      *fakeDirectory
	store      *fakeStore
	audit      *fakeAudit
	dispatcher *Dispatcher
	deliverer  *Deliverer
}

func newTestEnv(sendRealEmails bool) *testEnv {
	cfg := &config.Config{}
	cfg.Notifications.SendRealEmails = sendRealEmails

	env := &testEnv{
		cfg:    cfg,
		mailer: &fakeMailer{failFor: make(map[string]error)},
		users:  &fakeDirectory{},
		store:  &fakeStore{},
		audit:  &fakeAudit{},
	}

	env.dispatcher = NewDispatcher()
	env.deliverer = NewDeliverer(env.store, env.dispatcher)

	env.dispatcher.Register(DocumentCreated,
		NewDocumentUploadedHandler(env.mailer, env.deliverer, env.audit, cfg))
	env.dispatcher.Register(PaymentCreated,
		NewPaymentReceivedHandler(env.users, env.mailer, env.deliverer, env.audit))
	env.dispatcher.Register(ExpenseCreated,
		NewLargeExpenseHandler(env.users, env.mailer, env.deliverer, env.audit))
	env.dispatcher.Register(NotificationCreated,
		NewNotificationBroadcastHandler(env.mailer, env.audit, cfg))

	return env
}

func (e *testEnv) dispatch(event Event) []Result {
	return e.dispatcher.Dispatch(NewContext(), event)
}

func resident(username, emailAddr string) models.User {
	return models.User{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Username:  username,
		Email:     emailAddr,
		Role:      models.UserRoleResident,
	}
}

func staff(username, emailAddr string, role models.UserRole) models.User {
	return models.User{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		Username:  username,
		Email:     emailAddr,
		Role:      role,
	}
}
