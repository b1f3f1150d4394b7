package services

import (
	"errors"
	"time"

	"syndicpro/internal/dispatch"
	"syndicpro/internal/models"
	"syndicpro/internal/repositories"
	"syndicpro/pkg/apperrors"
)

type DocumentService interface {
	// Create persists the document and dispatches the creation event.
	// Whatever the dispatch outcome, a persisted document is a success.
	Create(input CreateDocumentInput) (*models.Document, error)
	GetByID(id string) (*models.Document, error)
	ListByResident(residentID string) ([]models.Document, error)
	List() ([]models.Document, error)
}

type CreateDocumentInput struct {
	Title        string
	DocumentType models.DocumentType
	Amount       float64
	Date         time.Time
	Description  string
	ResidentID   *string
	UploadedByID *string
}

type documentService struct {
	documents  repositories.DocumentRepository
	dispatcher *dispatch.Dispatcher
}

func NewDocumentService(documents repositories.DocumentRepository, dispatcher *dispatch.Dispatcher) DocumentService {
	return &documentService{documents: documents, dispatcher: dispatcher}
}

func (s *documentService) Create(input CreateDocumentInput) (*models.Document, error) {
	document := &models.Document{
		Title:        input.Title,
		DocumentType: input.DocumentType,
		Amount:       input.Amount,
		Date:         input.Date,
		Description:  input.Description,
		ResidentID:   input.ResidentID,
		UploadedByID: input.UploadedByID,
	}
	if err := s.documents.Create(document); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.dispatcher.Dispatch(dispatch.NewContext(), dispatch.NewDocumentEvent(document, true))
	return document, nil
}

func (s *documentService) GetByID(id string) (*models.Document, error) {
	document, err := s.documents.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.NewNotFoundError("document", "Document not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return document, nil
}

func (s *documentService) ListByResident(residentID string) ([]models.Document, error) {
	documents, err := s.documents.FindByResident(residentID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return documents, nil
}

func (s *documentService) List() ([]models.Document, error) {
	documents, err := s.documents.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return documents, nil
}
