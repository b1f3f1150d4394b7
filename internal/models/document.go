package models

import "time"

// Document is a financial document attached to a resident's space
// (invoice, receipt, charge call...).
type Document struct {
	BaseModel
	Title        string       `gorm:"not null" json:"title"`
	DocumentType DocumentType `gorm:"type:varchar(30);not null" json:"document_type"`
	Amount       float64      `json:"amount"`
	Date         time.Time    `json:"date"`
	Description  string       `json:"description"`

	ResidentID   *string `gorm:"type:uuid;index" json:"resident_id"`
	Resident     *User   `gorm:"foreignKey:ResidentID" json:"resident,omitempty"`
	UploadedByID *string `gorm:"type:uuid" json:"uploaded_by_id"`
	UploadedBy   *User   `gorm:"foreignKey:UploadedByID" json:"uploaded_by,omitempty"`
}
