package models

import "time"

// Booking status values.
const (
	BookingStatusConfirmed = "confirmed"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID         string    `bson:"id" json:"id"`                   // Unique booking identifier (e.g., UUID)
	UserID     string    `bson:"user_id" json:"user_id"`         // User who made the booking
	ListingID  string    `bson:"listing_id" json:"listing_id"`   // Listing that was booked
	CheckIn    string    `bson:"check_in" json:"check_in"`       // Check-in date in "YYYY-MM-DD" format
	CheckOut   string    `bson:"check_out" json:"check_out"`     // Check-out date in "YYYY-MM-DD" format
	NumGuests  int       `bson:"num_guests" json:"num_guests"`   // Number of guests
	TotalPrice float64   `bson:"total_price" json:"total_price"` // Calculated total price
	Status     string    `bson:"status" json:"status"`           // e.g., "confirmed"
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`   // Timestamp when booking was created
}
