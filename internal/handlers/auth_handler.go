package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"syndicpro/internal/middleware"
	"syndicpro/internal/models"
	"syndicpro/internal/services"
	"syndicpro/internal/validator"
	"syndicpro/pkg/apperrors"
)

type AuthHandler struct {
	BaseHandler
	auth services.AuthService
}

func NewAuthHandler(auth services.AuthService, v *validator.Validator) *AuthHandler {
	return &AuthHandler{BaseHandler: NewBaseHandler(v), auth: auth}
}

type loginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	token, user, err := h.auth.Login(req.Identifier, req.Password)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, loginResponse{Token: token, User: user})
}

type registerRequest struct {
	Username  string `json:"username" validate:"required,min=3"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role" validate:"omitempty,oneof=resident syndic superadmin other"`
	Apartment string `json:"apartment"`
	Phone     string `json:"phone"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !h.bindAndValidate(c, &req) {
		return
	}

	user, err := h.auth.Register(services.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.UserRole(req.Role),
		Apartment: req.Apartment,
		Phone:     req.Phone,
	})
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return
	}

	user, err := h.auth.Me(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
