package models

import (
	"time"

	"github.com/google/uuid"
)

// User defines the user model based on the 'users' table. Professors only
// reference users by id, as the evaluator of an evaluation.
type User struct {
	ID        uuid.UUID `json:"id" db:"id" example:"0b6f7f5e-7d0a-4c55-8a8e-0c7a0f5b2e01"` // Unique identifier for the user
	Username  string    `json:"username" db:"username" example:"evaluador"`                 // Login name
	Email     string    `json:"email" db:"email" example:"evaluador@sis-eval.app"`          // Contact address
	IsActive  bool      `json:"isActive" db:"is_active" example:"true"`                     // Whether the account is active
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`   // Timestamp when the user was created
}
