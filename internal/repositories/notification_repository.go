package repositories

import (
	"errors"

	"gorm.io/gorm"

	"syndicpro/internal/models"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationRepository interface {
	// Create persists the notification together with its recipient set
	// in a single transaction.
	Create(notification *models.Notification, recipients []models.User) error
	FindByID(id string) (*models.Notification, error)

	// FindForUser lists active notifications addressed to the user,
	// newest first.
	FindForUser(userID string, limit, offset int) ([]models.Notification, error)
	CountUnread(userID string) (int64, error)
	MarkAsRead(notificationID, userID string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(notification *models.Notification, recipients []models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Recipients").Create(notification).Error; err != nil {
			return err
		}
		if len(recipients) > 0 {
			if err := tx.Model(notification).Association("Recipients").Append(&recipients); err != nil {
				return err
			}
		}
		notification.Recipients = recipients
		return nil
	})
}

func (r *notificationRepository) FindByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.
		Preload("Sender").
		Preload("Recipients").
		First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindForUser(userID string, limit, offset int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.
		Preload("Sender").
		Joins("JOIN notification_recipients nr ON nr.notification_id = notifications.id").
		Where("nr.user_id = ? AND notifications.is_active = ?", userID, true).
		Order("notifications.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) CountUnread(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Joins("JOIN notification_recipients nr ON nr.notification_id = notifications.id").
		Where("nr.user_id = ? AND notifications.is_active = ?", userID, true).
		Where("notifications.id NOT IN (?)",
			r.db.Model(&models.NotificationRead{}).
				Select("notification_id").
				Where("user_id = ?", userID)).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkAsRead(notificationID, userID string) error {
	var existing models.NotificationRead
	err := r.db.
		Where("notification_id = ? AND user_id = ?", notificationID, userID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(&models.NotificationRead{
		NotificationID: notificationID,
		UserID:         userID,
	}).Error
}
