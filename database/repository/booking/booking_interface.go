package bookingRepo

import "staymate/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// CountOverlapping counts confirmed bookings for a listing whose date range
	// intersects [checkIn, checkOut). Dates are "YYYY-MM-DD" strings.
	CountOverlapping(listingID, checkIn, checkOut string) (int64, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
}
