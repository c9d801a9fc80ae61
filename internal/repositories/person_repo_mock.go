package repositories

import (
	"sync"
	"time"

	"contactlog/internal/models"

	"github.com/google/uuid"
)

// MockPersonRepository is an in-memory implementation of PersonRepository.
// It mirrors the database semantics, including the uniqueness constraint
// on the name column.
type MockPersonRepository struct {
	persons map[string]models.Person
	mu      sync.RWMutex
}

// NewMockPersonRepository creates a new instance of MockPersonRepository.
func NewMockPersonRepository() *MockPersonRepository {
	return &MockPersonRepository{
		persons: make(map[string]models.Person),
	}
}

// GetAll returns all persons.
func (r *MockPersonRepository) GetAll() ([]models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	personList := make([]models.Person, 0, len(r.persons))
	for _, person := range r.persons {
		personList = append(personList, person)
	}
	return personList, nil
}

// GetByID returns a person by its ID.
func (r *MockPersonRepository) GetByID(id string) (*models.Person, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	person, ok := r.persons[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &person, nil
}

// Create adds a new person, enforcing the unique-name constraint.
func (r *MockPersonRepository) Create(person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.persons {
		if existing.Name == person.Name {
			return ErrDuplicate
		}
	}
	if person.ID == "" {
		person.ID = uuid.New().String()
	}
	person.CreatedAt = time.Now()
	person.UpdatedAt = time.Now()
	r.persons[person.ID] = *person
	return nil
}

// Update replaces an existing person's fields in full.
func (r *MockPersonRepository) Update(person *models.Person) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.persons[person.ID]
	if !ok {
		return ErrNotFound
	}
	for id, other := range r.persons {
		if id != person.ID && other.Name == person.Name {
			return ErrDuplicate
		}
	}
	person.CreatedAt = existing.CreatedAt
	person.UpdatedAt = time.Now()
	r.persons[person.ID] = *person
	return nil
}

// Delete removes a person by its ID.
func (r *MockPersonRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.persons[id]; !ok {
		return ErrNotFound
	}
	delete(r.persons, id)
	return nil
}

// Count returns the number of stored persons.
func (r *MockPersonRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.persons)), nil
}
