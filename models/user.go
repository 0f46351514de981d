package models

import "time"

// User represents a platform user, keyed by unique email.
type User struct {
	ID          string    `bson:"id" json:"id"` // Unique user identifier (e.g., UUID)
	Email       string    `bson:"email" json:"email"`
	FullName    string    `bson:"full_name" json:"full_name"`
	PhoneNumber string    `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
