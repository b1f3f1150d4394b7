package repositories

import (
	"errors"

	"gorm.io/gorm"

	"syndicpro/internal/models"
)

var ErrExpenseNotFound = errors.New("expense not found")

type ExpenseRepository interface {
	Create(expense *models.Expense) error
	FindByID(id string) (*models.Expense, error)
	FindAll() ([]models.Expense, error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return err
	}
	return r.db.
		Preload("AddedBy").
		First(expense, "id = ?", expense.ID).Error
}

func (r *expenseRepository) FindByID(id string) (*models.Expense, error) {
	var expense models.Expense
	err := r.db.Preload("AddedBy").First(&expense, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) FindAll() ([]models.Expense, error) {
	var expenses []models.Expense
	err := r.db.
		Preload("AddedBy").
		Order("expense_date DESC").
		Find(&expenses).Error
	return expenses, err
}
