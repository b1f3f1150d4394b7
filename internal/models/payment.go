package models

import "time"

// Payment records money received against a document.
type Payment struct {
	BaseModel
	Amount        float64       `gorm:"not null" json:"amount"`
	PaymentDate   time.Time     `json:"payment_date"`
	PaymentMethod PaymentMethod `gorm:"type:varchar(20)" json:"payment_method"`
	Reference     string        `json:"reference"`

	DocumentID *string   `gorm:"type:uuid;index" json:"document_id"`
	Document   *Document `gorm:"foreignKey:DocumentID" json:"document,omitempty"`
}
