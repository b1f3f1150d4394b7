package services

import (
	"errors"
	"time"

	"syndicpro/internal/dispatch"
	"syndicpro/internal/models"
	"syndicpro/internal/repositories"
	"syndicpro/pkg/apperrors"
)

type ExpenseService interface {
	Create(input CreateExpenseInput) (*models.Expense, error)
	GetByID(id string) (*models.Expense, error)
	List() ([]models.Expense, error)
}

type CreateExpenseInput struct {
	Title          string
	Category       models.ExpenseCategory
	Amount         float64
	ExpenseDate    time.Time
	Description    string
	IsLargeExpense bool
	AddedByID      *string
}

type expenseService struct {
	expenses   repositories.ExpenseRepository
	dispatcher *dispatch.Dispatcher
}

func NewExpenseService(expenses repositories.ExpenseRepository, dispatcher *dispatch.Dispatcher) ExpenseService {
	return &expenseService{expenses: expenses, dispatcher: dispatcher}
}

func (s *expenseService) Create(input CreateExpenseInput) (*models.Expense, error) {
	expense := &models.Expense{
		Title:          input.Title,
		Category:       input.Category,
		Amount:         input.Amount,
		ExpenseDate:    input.ExpenseDate,
		Description:    input.Description,
		IsLargeExpense: input.IsLargeExpense,
		AddedByID:      input.AddedByID,
	}
	if err := s.expenses.Create(expense); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.dispatcher.Dispatch(dispatch.NewContext(), dispatch.NewExpenseEvent(expense, true))
	return expense, nil
}

func (s *expenseService) GetByID(id string) (*models.Expense, error) {
	expense, err := s.expenses.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrExpenseNotFound) {
			return nil, apperrors.NewNotFoundError("expense", "Expense not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return expense, nil
}

func (s *expenseService) List() ([]models.Expense, error) {
	expenses, err := s.expenses.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return expenses, nil
}
