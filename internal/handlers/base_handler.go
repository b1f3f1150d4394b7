// Package handlers holds the HTTP layer. Handlers bind and validate
// request bodies, call the services, and render JSON. Notification and
// email outcomes never surface here: a created record is a 201 no
// matter what the dispatch layer did afterwards.
package handlers

import (
	"github.com/gin-gonic/gin"

	"syndicpro/internal/validator"
	"syndicpro/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) BaseHandler {
	return BaseHandler{validator: v}
}

// bindAndValidate decodes the JSON body into req and validates it.
// It renders the error response itself and reports success.
func (h *BaseHandler) bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		if verr, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(verr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}
