package repositories

import (
	"contactlog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPersonRepository is a GORM implementation of PersonRepository.
type GORMPersonRepository struct {
	db *gorm.DB
}

// NewGORMPersonRepository creates a new instance of GORMPersonRepository.
func NewGORMPersonRepository(db *gorm.DB) *GORMPersonRepository {
	return &GORMPersonRepository{
		db: db,
	}
}

// GetAll retrieves all persons from the database.
func (r *GORMPersonRepository) GetAll() ([]models.Person, error) {
	var persons []models.Person
	if err := r.db.Find(&persons).Error; err != nil {
		return nil, translateError(err)
	}
	return persons, nil
}

// GetByID retrieves a single person by its ID from the database.
func (r *GORMPersonRepository) GetByID(id string) (*models.Person, error) {
	var person models.Person
	if err := r.db.First(&person, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &person, nil
}

// Create creates a new person in the database. The identifier is assigned
// here if the caller left it empty.
func (r *GORMPersonRepository) Create(person *models.Person) error {
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	if err := r.db.Create(person).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update replaces an existing person's fields in full. The person must
// already exist; Save alone would upsert, so existence is checked first.
func (r *GORMPersonRepository) Update(person *models.Person) error {
	var existing models.Person
	if err := r.db.First(&existing, "id = ?", person.ID).Error; err != nil {
		return translateError(err)
	}
	person.CreatedAt = existing.CreatedAt
	if err := r.db.Save(person).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Delete deletes a person by its ID from the database.
func (r *GORMPersonRepository) Delete(id string) error {
	res := r.db.Delete(&models.Person{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored persons.
func (r *GORMPersonRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Person{}).Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}
