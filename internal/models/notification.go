package models

// Notification is an in-app notification addressed to one or more users.
//
// Email delivery is not tracked here on purpose: whether an email went
// out for a notification is decided at dispatch time and never persisted.
type Notification struct {
	BaseModel
	Title    string               `gorm:"not null" json:"title"`
	Message  string               `json:"message"`
	Type     NotificationType     `gorm:"type:varchar(30);not null" json:"type"`
	Priority NotificationPriority `gorm:"type:varchar(10);default:'medium'" json:"priority"`
	IsActive bool                 `gorm:"default:true" json:"is_active"`

	SenderID   *string `gorm:"type:uuid" json:"sender_id"`
	Sender     *User   `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Recipients []User  `gorm:"many2many:notification_recipients" json:"recipients,omitempty"`
}

// NotificationRead tracks per-recipient read state.
type NotificationRead struct {
	BaseModel
	NotificationID string `gorm:"type:uuid;index;not null" json:"notification_id"`
	UserID         string `gorm:"type:uuid;index;not null" json:"user_id"`
}
