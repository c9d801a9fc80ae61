package services_test

import (
	"testing"

	"contactlog/internal/models"
	"contactlog/internal/repositories"
	"contactlog/internal/services"
	"contactlog/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBlogRepository is a mock implementation of repositories.BlogRepository
type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) GetAll() ([]models.Blog, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Blog), args.Error(1)
}

func (m *MockBlogRepository) GetByID(id string) (*models.Blog, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Blog), args.Error(1)
}

func (m *MockBlogRepository) Create(blog *models.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Update(blog *models.Blog) error {
	args := m.Called(blog)
	return args.Error(0)
}

func (m *MockBlogRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

const testBlogID = "9c3de5d2-8c4f-43d3-9a61-2f1f6a3b0d7f"

func newBlogService(repo repositories.BlogRepository) *services.BlogService {
	return services.NewBlogService(repo, validation.New(), nil)
}

func TestBlogService_CreateDefaultsLikes(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := newBlogService(mockRepo)

	mockRepo.On("Create", mock.AnythingOfType("*models.Blog")).Run(func(args mock.Arguments) {
		blog := args.Get(0).(*models.Blog)
		blog.ID = testBlogID
	}).Return(nil).Once()

	created, err := service.Create(models.Blog{Title: "Go at scale", Author: "Rob", URL: "https://example.com"})
	assert.NoError(t, err)
	assert.Equal(t, testBlogID, created.ID)
	assert.Equal(t, 0, created.Likes)
	mockRepo.AssertExpectations(t)
}

func TestBlogService_Update(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := newBlogService(mockRepo)

	mockRepo.On("Update", mock.AnythingOfType("*models.Blog")).Return(nil).Once()
	updated, err := service.Update(testBlogID, models.Blog{Title: "Revised", Likes: 5})
	assert.NoError(t, err)
	assert.Equal(t, testBlogID, updated.ID)
	assert.Equal(t, 5, updated.Likes)
	mockRepo.AssertExpectations(t)

	_, err = service.Update("bogus", models.Blog{Title: "Revised"})
	assert.ErrorIs(t, err, services.ErrBadID)
}

func TestBlogService_Delete(t *testing.T) {
	mockRepo := new(MockBlogRepository)
	service := newBlogService(mockRepo)

	mockRepo.On("Delete", testBlogID).Return(repositories.ErrNotFound).Once()
	assert.ErrorIs(t, service.Delete(testBlogID), repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)

	assert.ErrorIs(t, service.Delete("bogus"), services.ErrBadID)
}
