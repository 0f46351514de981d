package userRepo

import "staymate/models"

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by exact email match. Returns nil when not found.
	GetByEmail(email string) (*models.User, error)
	// GetByID retrieves a user by its unique ID. Returns nil when not found.
	GetByID(id string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
}
