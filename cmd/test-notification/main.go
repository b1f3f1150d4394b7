// Command test-notification creates a real notification for one
// resident and runs it through the dispatch path, so an operator can
// verify end to end that the broadcast emails go out.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"syndicpro/internal/app"
	"syndicpro/internal/config"
	"syndicpro/internal/dispatch"
	"syndicpro/internal/email"
	"syndicpro/internal/models"
	"syndicpro/internal/repositories"
)

func main() {
	_ = godotenv.Load()

	resident := flag.String("resident", "", "resident username or email (default: first resident with an email)")
	flag.Parse()

	cfg := config.MustLoad()

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect database: %v\n", err)
		os.Exit(1)
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
		fmt.Fprintf(os.Stderr, "email provider: %v\n", err)
		os.Exit(1)
	}

	userRepo := repositories.NewUserRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	auditRepo := repositories.NewOperationLogRepository(db)

	var user *models.User
	if *resident != "" {
		user, err = userRepo.FindByRoleAndIdentifier(models.UserRoleResident, *resident)
	} else {
		user, err = userRepo.FirstWithEmail(models.UserRoleResident)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "resident lookup: %v\n", err)
		os.Exit(1)
	}
	if user.Email == "" {
		fmt.Fprintf(os.Stderr, "resident %s has no email address\n", user.Username)
		os.Exit(1)
	}

	dispatcher := app.BuildDispatcher(cfg, userRepo, notificationRepo, auditRepo, provider)
	deliverer := dispatch.NewDeliverer(notificationRepo, dispatcher)

	notification := &models.Notification{
		Title:    "Notification de test",
		Message:  fmt.Sprintf("Notification de test envoyée le %s.", time.Now().Format("02/01/2006 15:04")),
		Type:     models.NotificationTypeGeneralAnnouncement,
		Priority: models.PriorityLow,
		IsActive: true,
	}
	if err := deliverer.Deliver(dispatch.NewContext(), notification, []models.User{*user}, false); err != nil {
		fmt.Fprintf(os.Stderr, "deliver: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("notification %s created for %s (%s)\n", notification.ID, user.DisplayName(), user.Email)
	if !cfg.Notifications.SendRealEmails {
		fmt.Println("note: send_real_emails is disabled, no email was sent")
	}
}
