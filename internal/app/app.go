// Package app wires the application together: database, email
// provider, dispatch registry, services, HTTP layer.
package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"syndicpro/internal/auth"
	"syndicpro/internal/config"
	"syndicpro/internal/dispatch"
	"syndicpro/internal/email"
	"syndicpro/internal/handlers"
	"syndicpro/internal/logger"
	"syndicpro/internal/middleware"
	"syndicpro/internal/models"
	"syndicpro/internal/repositories"
	"syndicpro/internal/routes"
	"syndicpro/internal/services"
	"syndicpro/internal/validator"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	Router *gin.Engine

	Dispatcher *dispatch.Dispatcher
	Email      email.Provider

	AuthService         services.AuthService
	DocumentService     services.DocumentService
	PaymentService      services.PaymentService
	ExpenseService      services.ExpenseService
	NotificationService services.NotificationService
}

func New(cfg *config.Config) (*App, error) {
	logger.Init(cfg.Server.Env)

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	provider, err := email.NewGomailProvider(&email.SMTPConfig{
		Host:         cfg.Email.SMTPHost,
		Port:         cfg.Email.SMTPPort,
		Username:     cfg.Email.SMTPUser,
		Password:     cfg.Email.SMTPPassword,
		FromEmail:    cfg.Email.FromEmail,
		FromName:     cfg.Email.FromName,
		TemplatesDir: cfg.Email.TemplatesDir,
	})
	if err != nil {
		return nil, fmt.Errorf("email provider: %w", err)
	}

	userRepo := repositories.NewUserRepository(db)
	documentRepo := repositories.NewDocumentRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	auditRepo := repositories.NewOperationLogRepository(db)

	dispatcher := BuildDispatcher(cfg, userRepo, notificationRepo, auditRepo, provider)
	deliverer := dispatch.NewDeliverer(notificationRepo, dispatcher)

	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.TTL)
	v := validator.New()

	a := &App{
		Config:     cfg,
		DB:         db,
		Dispatcher: dispatcher,
		Email:      provider,

		AuthService:         services.NewAuthService(userRepo, tokens),
		DocumentService:     services.NewDocumentService(documentRepo, dispatcher),
		PaymentService:      services.NewPaymentService(paymentRepo, dispatcher),
		ExpenseService:      services.NewExpenseService(expenseRepo, dispatcher),
		NotificationService: services.NewNotificationService(notificationRepo, userRepo, deliverer),
	}

	if err := a.seedFirstAdmin(userRepo); err != nil {
		return nil, fmt.Errorf("seed admin: %w", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logging(), middleware.Database(db))

	routes.Setup(r, routes.Handlers{
		Auth:          handlers.NewAuthHandler(a.AuthService, v),
		Documents:     handlers.NewDocumentHandler(a.DocumentService, v),
		Payments:      handlers.NewPaymentHandler(a.PaymentService, v),
		Expenses:      handlers.NewExpenseHandler(a.ExpenseService, v),
		Notifications: handlers.NewNotificationHandler(a.NotificationService, v),
	}, tokens)
	a.Router = r

	return a, nil
}

// BuildDispatcher assembles the event registry. Which handler runs for
// which event kind is decided here and nowhere else.
func BuildDispatcher(
	cfg *config.Config,
	users dispatch.UserDirectory,
	notifications dispatch.NotificationStore,
	audit dispatch.AuditLog,
	mailer dispatch.Mailer,
) *dispatch.Dispatcher {
	dispatcher := dispatch.NewDispatcher()
	deliverer := dispatch.NewDeliverer(notifications, dispatcher)

	dispatcher.Register(dispatch.DocumentCreated,
		dispatch.NewDocumentUploadedHandler(mailer, deliverer, audit, cfg))
	dispatcher.Register(dispatch.PaymentCreated,
		dispatch.NewPaymentReceivedHandler(users, mailer, deliverer, audit))
	dispatcher.Register(dispatch.ExpenseCreated,
		dispatch.NewLargeExpenseHandler(users, mailer, deliverer, audit))
	dispatcher.Register(dispatch.NotificationCreated,
		dispatch.NewNotificationBroadcastHandler(mailer, audit, cfg))

	return dispatcher
}

// Run starts the HTTP server.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port)
	logger.Info("server starting", "addr", addr)
	return a.Router.Run(addr)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Document{},
		&models.Payment{},
		&models.Expense{},
		&models.Notification{},
		&models.NotificationRead{},
		&models.OperationLog{},
	)
}

// seedFirstAdmin creates the initial superadmin account when the
// config provides one and no user with that email exists yet.
func (a *App) seedFirstAdmin(users repositories.UserRepository) error {
	if a.Config.FirstAdminEmail == "" || a.Config.FirstAdminPassword == "" {
		return nil
	}
	if _, err := users.FindByEmail(a.Config.FirstAdminEmail); err == nil {
		return nil
	}

	hash, err := auth.HashPassword(a.Config.FirstAdminPassword)
	if err != nil {
		return err
	}
	admin := &models.User{
		Username:     "admin",
		Email:        a.Config.FirstAdminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleSuperAdmin,
	}
	if err := users.Create(admin); err != nil {
		return err
	}
	logger.Info("seeded first admin", "email", a.Config.FirstAdminEmail)
	return nil
}
