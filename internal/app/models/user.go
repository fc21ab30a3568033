package models

import (
	"time"
)

// User defines the user model based on the 'users' table. The backend only
// needs a stable owner identifier for offerings and schedules; the remaining
// attributes exist so the fallback user can be materialized with sensible
// placeholder values.
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"default"`                 // Login name
	Email     string    `json:"email" db:"email" example:"default@example.com"`           // Email address
	FullName  string    `json:"fullName" db:"full_name" example:"Default User"`           // Display name
	Password  string    `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
}

// FallbackUserID is the well-known owner assigned to schedules created
// without an explicit user.
const FallbackUserID int64 = 1
