package services

import (
	"encoding/json"
	"log"

	"contactlog/internal/models"
	"contactlog/internal/repositories"
	"contactlog/internal/validation"
	"contactlog/pkg/events"
)

// BlogService handles business logic for blog entries.
type BlogService struct {
	repo     repositories.BlogRepository
	validate *validation.Validator
	mqClient *events.Client // nil when no broker is configured
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repositories.BlogRepository, validate *validation.Validator, mqClient *events.Client) *BlogService {
	return &BlogService{
		repo:     repo,
		validate: validate,
		mqClient: mqClient,
	}
}

// List retrieves all blogs in repository order.
func (s *BlogService) List() ([]models.BlogResponse, error) {
	blogs, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	responses := make([]models.BlogResponse, 0, len(blogs))
	for i := range blogs {
		responses = append(responses, blogs[i].External())
	}
	return responses, nil
}

// Get retrieves a single blog by its ID.
func (s *BlogService) Get(id string) (models.BlogResponse, error) {
	if err := checkID(id); err != nil {
		return models.BlogResponse{}, err
	}
	blog, err := s.repo.GetByID(id)
	if err != nil {
		return models.BlogResponse{}, err
	}
	return blog.External(), nil
}

// Create validates and stores a new blog. Likes defaults to zero when the
// payload omits it.
func (s *BlogService) Create(blog models.Blog) (models.BlogResponse, error) {
	blog.ID = ""
	if err := s.validate.Struct(blog); err != nil {
		return models.BlogResponse{}, err
	}
	if err := s.repo.Create(&blog); err != nil {
		return models.BlogResponse{}, err
	}
	s.publishEvent("blog.created", blog.ID)
	return blog.External(), nil
}

// Update replaces the blog's fields in full, re-running validation.
func (s *BlogService) Update(id string, blog models.Blog) (models.BlogResponse, error) {
	if err := checkID(id); err != nil {
		return models.BlogResponse{}, err
	}
	blog.ID = id
	if err := s.validate.Struct(blog); err != nil {
		return models.BlogResponse{}, err
	}
	if err := s.repo.Update(&blog); err != nil {
		return models.BlogResponse{}, err
	}
	return blog.External(), nil
}

// Delete removes a blog by its ID.
func (s *BlogService) Delete(id string) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publishEvent("blog.deleted", id)
	return nil
}

// publishEvent emits a record-change event when a broker is configured.
func (s *BlogService) publishEvent(eventType, id string) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(map[string]string{
		"kind": "blog",
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
