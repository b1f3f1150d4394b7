package repositories

import (
	"errors"

	"gorm.io/gorm"

	"syndicpro/internal/models"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	// Create persists the payment and reloads it with its document
	// chain (document, resident, uploader).
	Create(payment *models.Payment) error
	FindByID(id string) (*models.Payment, error)
	FindAll() ([]models.Payment, error)
}

type paymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(payment *models.Payment) error {
	if err := r.db.Create(payment).Error; err != nil {
		return err
	}
	return r.db.
		Preload("Document").
		Preload("Document.Resident").
		Preload("Document.UploadedBy").
		First(payment, "id = ?", payment.ID).Error
}

func (r *paymentRepository) FindByID(id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.
		Preload("Document").
		Preload("Document.Resident").
		Preload("Document.UploadedBy").
		First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll() ([]models.Payment, error) {
	var payments []models.Payment
	err := r.db.
		Preload("Document").
		Preload("Document.Resident").
		Order("created_at DESC").
		Find(&payments).Error
	return payments, err
}
