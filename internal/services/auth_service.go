package services

import (
	"errors"

	"syndicpro/internal/auth"
	"syndicpro/internal/models"
	"syndicpro/internal/repositories"
	"syndicpro/pkg/apperrors"
)

type AuthService interface {
	// Login accepts a username or an email as identifier.
	Login(identifier, password string) (string, *models.User, error)
	Register(input RegisterInput) (*models.User, error)
	Me(userID string) (*models.User, error)
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      models.UserRole
	Apartment string
	Phone     string
}

type authService struct {
	users  repositories.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Login(identifier, password string) (string, *models.User, error) {
	user, err := s.users.FindByUsername(identifier)
	if errors.Is(err, repositories.ErrUserNotFound) {
		user, err = s.users.FindByEmail(identifier)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", nil, apperrors.NewUnauthorizedError("Invalid credentials")
		}
		return "", nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, apperrors.InternalError(err)
	}
	return token, user, nil
}

func (s *authService) Register(input RegisterInput) (*models.User, error) {
	if err := auth.ValidatePassword(input.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	if _, err := s.users.FindByUsername(input.Username); err == nil {
		return nil, apperrors.NewBadRequestError("Username already taken")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := input.Role
	if role == "" {
		role = models.UserRoleResident
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         role,
		Apartment:    input.Apartment,
		Phone:        input.Phone,
	}
	if err := s.users.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *authService) Me(userID string) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
