package services

import (
	"errors"

	"syndicpro/internal/dispatch"
	"syndicpro/internal/models"
	"syndicpro/internal/repositories"
	"syndicpro/pkg/apperrors"
)

type NotificationService interface {
	// CreateAnnouncement creates a notification addressed to every
	// user of the given roles and dispatches the creation event, so
	// the broadcast email path runs for it.
	CreateAnnouncement(input CreateAnnouncementInput) (*models.Notification, error)
	ListForUser(userID string, limit, offset int) ([]models.Notification, error)
	UnreadCount(userID string) (int64, error)
	MarkAsRead(notificationID, userID string) error
}

type CreateAnnouncementInput struct {
	Title          string
	Message        string
	Type           models.NotificationType
	Priority       models.NotificationPriority
	SenderID       *string
	RecipientRoles []models.UserRole
}

type notificationService struct {
	notifications repositories.NotificationRepository
	users         repositories.UserRepository
	deliverer     *dispatch.Deliverer
}

func NewNotificationService(
	notifications repositories.NotificationRepository,
	users repositories.UserRepository,
	deliverer *dispatch.Deliverer,
) NotificationService {
	return &notificationService{
		notifications: notifications,
		users:         users,
		deliverer:     deliverer,
	}
}

func (s *notificationService) CreateAnnouncement(input CreateAnnouncementInput) (*models.Notification, error) {
	roles := input.RecipientRoles
	if len(roles) == 0 {
		roles = []models.UserRole{models.UserRoleResident}
	}
	recipients, err := s.users.FindByRoles(roles...)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(recipients) == 0 {
		return nil, apperrors.NewBadRequestError("No recipients for the selected roles")
	}

	notificationType := input.Type
	if notificationType == "" {
		notificationType = models.NotificationTypeGeneralAnnouncement
	}
	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	notification := &models.Notification{
		Title:    input.Title,
		Message:  input.Message,
		Type:     notificationType,
		Priority: priority,
		IsActive: true,
		SenderID: input.SenderID,
	}

	// No marker here: nothing emailed for this notification yet, the
	// broadcast handler decides whether emails go out.
	if err := s.deliverer.Deliver(dispatch.NewContext(), notification, recipients, false); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notification, nil
}

func (s *notificationService) ListForUser(userID string, limit, offset int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	notifications, err := s.notifications.FindForUser(userID, limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return notifications, nil
}

func (s *notificationService) UnreadCount(userID string) (int64, error) {
	count, err := s.notifications.CountUnread(userID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return count, nil
}

func (s *notificationService) MarkAsRead(notificationID, userID string) error {
	if _, err := s.notifications.FindByID(notificationID); err != nil {
		if errors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.NewNotFoundError("notification", "Notification not found")
		}
		return apperrors.InternalError(err)
	}
	return s.notifications.MarkAsRead(notificationID, userID)
}
