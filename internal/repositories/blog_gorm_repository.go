package repositories

import (
	"contactlog/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{
		db: db,
	}
}

// GetAll retrieves all blogs from the database.
func (r *GORMBlogRepository) GetAll() ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.Find(&blogs).Error; err != nil {
		return nil, translateError(err)
	}
	return blogs, nil
}

// GetByID retrieves a single blog by its ID from the database.
func (r *GORMBlogRepository) GetByID(id string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.First(&blog, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return &blog, nil
}

// Create creates a new blog in the database.
func (r *GORMBlogRepository) Create(blog *models.Blog) error {
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	if err := r.db.Create(blog).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Update replaces an existing blog's fields in full.
func (r *GORMBlogRepository) Update(blog *models.Blog) error {
	var existing models.Blog
	if err := r.db.First(&existing, "id = ?", blog.ID).Error; err != nil {
		return translateError(err)
	}
	blog.CreatedAt = existing.CreatedAt
	if err := r.db.Save(blog).Error; err != nil {
		return translateError(err)
	}
	return nil
}

// Delete deletes a blog by its ID from the database.
func (r *GORMBlogRepository) Delete(id string) error {
	res := r.db.Delete(&models.Blog{}, "id = ?", id)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
