package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"syndicpro/internal/middleware"
	"syndicpro/internal/models"
	"syndicpro/internal/services"
	"syndicpro/internal/validator"
	"syndicpro/pkg/apperrors"
)

type ExpenseHandler struct {
	BaseHandler
	expenses services.ExpenseService
}

func NewExpenseHandler(expenses services.ExpenseService, v *validator.Validator) *ExpenseHandler {
	return &ExpenseHandler{BaseHandler: NewBaseHandler(v), expenses: expenses}
}

type createExpenseRequest struct {
	Title          string  `json:"title" validate:"required"`
	Category       string  `json:"category" validate:"required,oneof=travaux entretien reparation assurance autre"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	ExpenseDate    string  `json:"expense_date" validate:"required"`
	Description    string  `json:"description"`
	IsLargeExpense bool    `json:"is_large_expense"`
}

func (h *ExpenseHandler) Create(c *gin.Context) {
	var req createExpenseRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	expenseDate, err := time.Parse("2006-01-02", req.ExpenseDate)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("expense_date must be YYYY-MM-DD"))
		return
	}

	input := services.CreateExpenseInput{
		Title:          req.Title,
		Category:       models.ExpenseCategory(req.Category),
		Amount:         req.Amount,
		ExpenseDate:    expenseDate,
		Description:    req.Description,
		IsLargeExpense: req.IsLargeExpense,
	}
	if addedByID, ok := middleware.CallerID(c); ok {
		input.AddedByID = &addedByID
	}

	expense, err := h.expenses.Create(input)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) GetByID(c *gin.Context) {
	expense, err := h.expenses.GetByID(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenses.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}
