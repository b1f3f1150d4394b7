package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"syndicpro/internal/models"
	"syndicpro/internal/services"
	"syndicpro/internal/validator"
	"syndicpro/pkg/apperrors"
)

type PaymentHandler struct {
	BaseHandler
	payments services.PaymentService
}

func NewPaymentHandler(payments services.PaymentService, v *validator.Validator) *PaymentHandler {
	return &PaymentHandler{BaseHandler: NewBaseHandler(v), payments: payments}
}

type createPaymentRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	PaymentDate   string  `json:"payment_date" validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=especes cheque virement carte"`
	Reference     string  `json:"reference"`
	DocumentID    *string `json:"document_id"`
}

func (h *PaymentHandler) Create(c *gin.Context) {
	var req createPaymentRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("payment_date must be YYYY-MM-DD"))
		return
	}

	payment, err := h.payments.Create(services.CreatePaymentInput{
		Amount:        req.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		Reference:     req.Reference,
		DocumentID:    req.DocumentID,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) GetByID(c *gin.Context) {
	payment, err := h.payments.GetByID(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.payments.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
