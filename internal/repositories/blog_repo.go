package repositories

import (
	"contactlog/internal/models"
)

// BlogRepository defines the interface for blog data access.
type BlogRepository interface {
	GetAll() ([]models.Blog, error)
	GetByID(id string) (*models.Blog, error)
	Create(blog *models.Blog) error
	Update(blog *models.Blog) error
	Delete(id string) error
}
