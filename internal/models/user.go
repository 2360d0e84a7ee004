package models

import (
	"time"
)

// User represents a registered account in the system
type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	IsStaff      bool      `json:"is_staff" db:"is_staff"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Display projects a user to the author fields embedded in post
// and comment payloads
func (u *User) Display() *Author {
	return &Author{ID: u.ID, Name: u.Name}
}

// RegisterInput is the request body for creating an account
type RegisterInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginInput is the request body for obtaining a token
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
