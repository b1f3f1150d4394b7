package services

import (
	"errors"
	"time"

	"syndicpro/internal/dispatch"
	"syndicpro/internal/models"
	"syndicpro/internal/repositories"
	"syndicpro/pkg/apperrors"
)

type PaymentService interface {
	Create(input CreatePaymentInput) (*models.Payment, error)
	GetByID(id string) (*models.Payment, error)
	List() ([]models.Payment, error)
}

type CreatePaymentInput struct {
	Amount        float64
	PaymentDate   time.Time
	PaymentMethod models.PaymentMethod
	Reference     string
	DocumentID    *string
}

type paymentService struct {
	payments   repositories.PaymentRepository
	dispatcher *dispatch.Dispatcher
}

func NewPaymentService(payments repositories.PaymentRepository, dispatcher *dispatch.Dispatcher) PaymentService {
	return &paymentService{payments: payments, dispatcher: dispatcher}
}

func (s *paymentService) Create(input CreatePaymentInput) (*models.Payment, error) {
	payment := &models.Payment{
		Amount:        input.Amount,
		PaymentDate:   input.PaymentDate,
		PaymentMethod: input.PaymentMethod,
		Reference:     input.Reference,
		DocumentID:    input.DocumentID,
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.dispatcher.Dispatch(dispatch.NewContext(), dispatch.NewPaymentEvent(payment, true))
	return payment, nil
}

func (s *paymentService) GetByID(id string) (*models.Payment, error) {
	payment, err := s.payments.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.NewNotFoundError("payment", "Payment not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return payment, nil
}

func (s *paymentService) List() ([]models.Payment, error) {
	payments, err := s.payments.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return payments, nil
}
