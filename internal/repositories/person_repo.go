package repositories

import (
	"contactlog/internal/models"
)

// PersonRepository defines the interface for phonebook data access.
type PersonRepository interface {
	GetAll() ([]models.Person, error)
	GetByID(id string) (*models.Person, error)
	Create(person *models.Person) error
	Update(person *models.Person) error
	Delete(id string) error
	Count() (int64, error)
}
