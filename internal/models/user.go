package models

import "time"

// User represents a registered account.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Name         string    `json:"name" gorm:"type:varchar(100)" validate:"max=100"`
	PasswordHash string    `gorm:"type:varchar(255)"` // No json tag for security
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// UserResponse is the externally visible form of a User. The password hash
// must never appear here.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// External converts a stored User into its response representation,
// dropping the password hash.
func (u *User) External() UserResponse {
	if u.ID == "" {
		panic("models: user has no assigned id")
	}
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
	}
}
