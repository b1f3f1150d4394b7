package models

import "gorm.io/datatypes"

// Audit actions recorded in the operation log.
const (
	ActionDocumentCreated     = "DOCUMENT_CREATED"
	ActionPaymentCreated      = "PAYMENT_CREATED"
	ActionExpenseCreated      = "EXPENSE_CREATED"
	ActionNotificationCreated = "NOTIFICATION_CREATED"
)

// OperationLog is an append-only audit trail entry. Writing it is always
// best-effort: a failed audit write must never block the operation it
// describes.
type OperationLog struct {
	BaseModel
	Action     string         `gorm:"not null;index" json:"action"`
	ActorID    *string        `gorm:"type:uuid" json:"actor_id"`
	Actor      *User          `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
	TargetID   string         `json:"target_id"`
	TargetType string         `json:"target_type"`
	Meta       datatypes.JSON `gorm:"type:jsonb" json:"meta"`
}
