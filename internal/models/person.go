package models

import "time"

// Person represents one phonebook entry.
type Person struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Number    string    `json:"number" gorm:"type:varchar(50)" validate:"required,phone"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// PersonResponse is the externally visible form of a Person. The identifier
// is always exposed as the string field "id"; timestamps stay internal.
type PersonResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// External converts a stored Person into its response representation.
// Calling it on a person without an assigned ID is a programming error.
func (p *Person) External() PersonResponse {
	if p.ID == "" {
		panic("models: person has no assigned id")
	}
	return PersonResponse{
		ID:     p.ID,
		Name:   p.Name,
		Number: p.Number,
	}
}
