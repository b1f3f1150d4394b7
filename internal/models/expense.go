package models

import "time"

// Expense is a building expense. Large expenses (IsLargeExpense) are
// announced to every resident when recorded.
type Expense struct {
	BaseModel
	Title          string          `gorm:"not null" json:"title"`
	Category       ExpenseCategory `gorm:"type:varchar(30)" json:"category"`
	Amount         float64         `gorm:"not null" json:"amount"`
	ExpenseDate    time.Time       `json:"expense_date"`
	Description    string          `json:"description"`
	IsLargeExpense bool            `gorm:"default:false" json:"is_large_expense"`

	AddedByID *string `gorm:"type:uuid" json:"added_by_id"`
	AddedBy   *User   `gorm:"foreignKey:AddedByID" json:"added_by,omitempty"`
}
