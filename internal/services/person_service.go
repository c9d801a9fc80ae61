package services

import (
	"encoding/json"
	"errors"
	"log"

	"contactlog/internal/models"
	"contactlog/internal/repositories"
	"contactlog/internal/validation"
	"contactlog/pkg/events"
)

// PersonService handles business logic for phonebook entries. Every record
// is validated before it reaches the repository, and every record leaving
// the service is converted to its external representation.
type PersonService struct {
	repo     repositories.PersonRepository
	validate *validation.Validator
	mqClient *events.Client // nil when no broker is configured
}

// NewPersonService creates a new PersonService.
func NewPersonService(repo repositories.PersonRepository, validate *validation.Validator, mqClient *events.Client) *PersonService {
	return &PersonService{
		repo:     repo,
		validate: validate,
		mqClient: mqClient,
	}
}

// List retrieves all persons in repository order.
func (s *PersonService) List() ([]models.PersonResponse, error) {
	persons, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]models.PersonResponse, 0, len(persons))
	for i := range persons {
		responses = append(responses, persons[i].External())
	}
	return responses, nil
}

// Get retrieves a single person by its ID.
func (s *PersonService) Get(id string) (models.PersonResponse, error) {
	if err := checkID(id); err != nil {
		return models.PersonResponse{}, err
	}
	person, err := s.repo.GetByID(id)
	if err != nil {
		return models.PersonResponse{}, err
	}
	return person.External(), nil
}

// Create validates and stores a new person. The identifier is assigned by
// the repository; anything the client supplied is ignored.
func (s *PersonService) Create(person models.Person) (models.PersonResponse, error) {
	person.ID = ""
	if err := s.validate.Struct(person); err != nil {
		return models.PersonResponse{}, err
	}
	if err := s.repo.Create(&person); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.PersonResponse{}, &ConflictError{Field: "name"}
		}
		return models.PersonResponse{}, err
	}
	s.publishEvent("person.created", person.ID)
	return person.External(), nil
}

// Update replaces the person's fields in full, re-running validation so a
// partial edit can never persist an invalid record.
func (s *PersonService) Update(id string, person models.Person) (models.PersonResponse, error) {
	if err := checkID(id); err != nil {
		return models.PersonResponse{}, err
	}
	person.ID = id
	if err := s.validate.Struct(person); err != nil {
		return models.PersonResponse{}, err
	}
	if err := s.repo.Update(&person); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.PersonResponse{}, &ConflictError{Field: "name"}
		}
		return models.PersonResponse{}, err
	}
	return person.External(), nil
}

// Delete removes a person by its ID. A missing record reports NotFound;
// repeated deletes are benign from the client's point of view.
func (s *PersonService) Delete(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("person.deleted", id)
	return nil
}

// Count returns the number of stored persons, for the info endpoint.
func (s *PersonService) Count() (int64, error) {
	return s.repo.Count()
}

// publishEvent emits a record-change event when a broker is configured.
// Publishing is best effort; a broker failure never fails the request.
func (s *PersonService) publishEvent(eventType, id string) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]string{
		"kind": "person",
		"id":   id,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", eventType, err)
		return
	}
	if err := s.mqClient.Publish(eventType, body); err != nil {
		log.Printf("Warning: failed to publish %s event for %s: %v", eventType, id, err)
	}
}
