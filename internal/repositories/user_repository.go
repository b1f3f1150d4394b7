package repositories

import (
	"errors"

	"gorm.io/gorm"

	"syndicpro/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsername(username string) (*models.User, error)

	// FindByRoles returns every user whose role is in roles.
	FindByRoles(roles ...models.UserRole) ([]models.User, error)

	// FindByRoleAndIdentifier matches username or email equality within
	// a role, used by the operator test commands.
	FindByRoleAndIdentifier(role models.UserRole, identifier string) (*models.User, error)

	// FirstWithEmail returns the first user of a role having an email.
	FirstWithEmail(role models.UserRole) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByRoles(roles ...models.UserRole) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("role IN ?", roles).Order("created_at").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByRoleAndIdentifier(role models.UserRole, identifier string) (*models.User, error) {
	var user models.User
	err := r.db.
		Where("role = ?", role).
		Where("username = ? OR email = ?", identifier, identifier).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FirstWithEmail(role models.UserRole) (*models.User, error) {
	var user models.User
	err := r.db.
		Where("role = ?", role).
		Where("email <> ''").
		Order("created_at").
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
