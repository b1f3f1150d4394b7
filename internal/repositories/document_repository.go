package repositories

import (
	"errors"

	"gorm.io/gorm"

	"syndicpro/internal/models"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentRepository interface {
	// Create persists the document and reloads it with its resident
	// and uploader, so the dispatch layer receives the full record.
	Create(document *models.Document) error
	FindByID(id string) (*models.Document, error)
	FindByResident(residentID string) ([]models.Document, error)
	FindAll() ([]models.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(document *models.Document) error {
	if err := r.db.Create(document).Error; err != nil {
		return err
	}
	return r.db.
		Preload("Resident").
		Preload("UploadedBy").
		First(document, "id = ?", document.ID).Error
}

func (r *documentRepository) FindByID(id string) (*models.Document, error) {
	var document models.Document
	err := r.db.
		Preload("Resident").
		Preload("UploadedBy").
		First(&document, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (r *documentRepository) FindByResident(residentID string) ([]models.Document, error) {
	var documents []models.Document
	err := r.db.
		Preload("UploadedBy").
		Where("resident_id = ?", residentID).
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}

func (r *documentRepository) FindAll() ([]models.Document, error) {
	var documents []models.Document
	err := r.db.
		Preload("Resident").
		Preload("UploadedBy").
		Order("created_at DESC").
		Find(&documents).Error
	return documents, err
}
