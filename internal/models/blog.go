package models

import "time"

// Blog represents one blog entry. None of the content fields are mandatory;
// Likes defaults to zero when the create payload omits it.
type Blog struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title     string    `json:"title" gorm:"type:varchar(255)" validate:"max=255"`
	Author    string    `json:"author" gorm:"type:varchar(100)" validate:"max=100"`
	URL       string    `json:"url" gorm:"type:varchar(500)" validate:"max=500"`
	Likes     int       `json:"likes" validate:"gte=0"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BlogResponse is the externally visible form of a Blog.
type BlogResponse struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// External converts a stored Blog into its response representation.
func (b *Blog) External() BlogResponse {
	if b.ID == "" {
		panic("models: blog has no assigned id")
	}
	return BlogResponse{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
}
