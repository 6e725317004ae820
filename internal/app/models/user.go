package models

import (
	"time"
)

// RoleType represents the role of a user account
type RoleType string

const (
	// RoleTeacher is the default role for registered accounts
	RoleTeacher RoleType = "teacher"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Maria Souza"`                     // User's display name
	Email     string    `json:"email" db:"email" example:"maria@escola.com"`              // User's email address (unique)
	Password  string    `json:"-" db:"password"`                                          // User's hashed password (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"teacher"`                         // User's role, defaults to teacher
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}
