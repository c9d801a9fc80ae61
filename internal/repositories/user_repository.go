package repositories

import "contactlog/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
}
