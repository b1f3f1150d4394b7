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

type DocumentHandler struct {
	BaseHandler
	documents services.DocumentService
}

func NewDocumentHandler(documents services.DocumentService, v *validator.Validator) *DocumentHandler {
	return &DocumentHandler{BaseHandler: NewBaseHandler(v), documents: documents}
}

type createDocumentRequest struct {
	Title        string  `json:"title" validate:"required"`
	DocumentType string  `json:"document_type" validate:"required,oneof=facture quittance appel_de_charges avis contrat autre"`
	Amount       float64 `json:"amount" validate:"gte=0"`
	Date         string  `json:"date" validate:"required"`
	Description  string  `json:"description"`
	ResidentID   *string `json:"resident_id"`
}

func (h *DocumentHandler) Create(c *gin.Context) {
	var req createDocumentRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("date must be YYYY-MM-DD"))
		return
	}

	input := services.CreateDocumentInput{
		Title:        req.Title,
		DocumentType: models.DocumentType(req.DocumentType),
		Amount:       req.Amount,
		Date:         date,
		Description:  req.Description,
		ResidentID:   req.ResidentID,
	}
	if uploaderID, ok := middleware.CallerID(c); ok {
		input.UploadedByID = &uploaderID
	}

	document, err := h.documents.Create(input)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, document)
}

func (h *DocumentHandler) GetByID(c *gin.Context) {
	document, err := h.documents.GetByID(c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, document)
}

func (h *DocumentHandler) List(c *gin.Context) {
	if residentID := c.Query("resident_id"); residentID != "" {
		documents, err := h.documents.ListByResident(residentID)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}
		c.JSON(http.StatusOK, documents)
		return
	}

	documents, err := h.documents.List()
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, documents)
}
