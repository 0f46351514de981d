// File: services/assistant/tool_booking.go
package assistant

import (
	"context"
	"fmt"
	"time"

	"staymate/models"
	"staymate/utils"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func createBookingTool(d *toolDeps) *registeredTool {
	return &registeredTool{
		kind:    toolCreateBooking,
		apology: "Sorry, I wasn't able to create your booking just now. Please try again in a moment.",
		run:     d.createBooking,
		declaration: &genai.FunctionDeclaration{
			Name:        "create_booking",
			Description: "Creates the final booking record. Call this only after the listing's availability was confirmed, the user's details were recorded and the user explicitly confirmed. Parameters left out are filled in from the previous steps.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"user_id": {
						Type:        genai.TypeString,
						Description: "Optional. The booking user's ID; defaults to the user resolved earlier in the conversation.",
					},
					"listing_id": {
						Type:        genai.TypeString,
						Description: "Optional. The listing to book; defaults to the listing selected during the availability check.",
					},
					"check_in": {
						Type:        genai.TypeString,
						Description: "Optional. Check-in date (YYYY-MM-DD); defaults to the date from the availability check.",
					},
					"check_out": {
						Type:        genai.TypeString,
						Description: "Optional. Check-out date (YYYY-MM-DD); defaults to the date from the availability check.",
					},
					"guests": {
						Type:        genai.TypeInteger,
						Description: "Optional. Number of guests; defaults to the number gathered earlier.",
					},
					"total_price": {
						Type:        genai.TypeNumber,
						Description: "Optional. Total price; defaults to the price calculated during the availability check.",
					},
				},
			},
		},
	}
}

// createBooking validates the assembled booking details, re-checks for
// overlapping bookings immediately before insertion to narrow the
// double-booking race, and inserts the booking row. Arguments the model
// omits are backfilled from the conversation record.
func (d *toolDeps) createBooking(ctx context.Context, sessionID string, args map[string]any) (*toolOutcome, error) {
	record, err := d.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	info := record.EnsureInfo()

	userID, _ := argString(args, "user_id")
	if userID == "" {
		userID = record.UserID
	}
	listingID, _ := argString(args, "listing_id")
	if listingID == "" && info.SelectedListingID != nil {
		listingID = *info.SelectedListingID
	}
	checkIn, _ := argString(args, "check_in")
	if checkIn == "" && info.CheckIn != nil {
		checkIn = *info.CheckIn
	}
	checkOut, _ := argString(args, "check_out")
	if checkOut == "" && info.CheckOut != nil {
		checkOut = *info.CheckOut
	}
	guests, ok := argInt(args, "guests")
	if !ok && info.Guests != nil {
		guests = *info.Guests
	}
	if guests <= 0 {
		guests = 1
	}
	totalPrice, ok := argFloat(args, "total_price")
	if !ok && info.TotalPrice != nil {
		totalPrice = *info.TotalPrice
	}

	if userID == "" {
		return bookingError("I don't have your user details yet. Please share your email address and full name first."), nil
	}
	if listingID == "" {
		return bookingError("No listing has been selected for this booking yet."), nil
	}
	if checkIn == "" || checkOut == "" {
		return bookingError("Missing check-in or check-out date for the booking."), nil
	}
	dateIn, errIn := time.Parse(dateLayout, checkIn)
	dateOut, errOut := time.Parse(dateLayout, checkOut)
	if errIn != nil || errOut != nil {
		return bookingError("Invalid date format provided. Please use YYYY-MM-DD."), nil
	}
	if !dateIn.Before(dateOut) {
		return bookingError("Check-out date must be after check-in date."), nil
	}

	listing, err := d.listings.GetByID(listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return bookingError("The selected listing could not be found anymore."), nil
	}
	if totalPrice <= 0 {
		nights := int(dateOut.Sub(dateIn).Hours() / 24)
		totalPrice = float64(nights) * listing.PricePerNight
	}

	// Re-verify availability immediately before insertion. This narrows the
	// check-then-create race, it does not eliminate it.
	overlapping, err := d.bookings.CountOverlapping(listingID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if overlapping > 0 {
		return &toolOutcome{Observation: map[string]any{
			"status":        "unavailable",
			"listing_title": listing.Title,
			"message":       fmt.Sprintf("%s is no longer available for %s to %s.", listing.Title, checkIn, checkOut),
		}}, nil
	}

	booking := &models.Booking{
		ID:         uuid.NewString(),
		UserID:     userID,
		ListingID:  listingID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		NumGuests:  guests,
		TotalPrice: totalPrice,
		Status:     models.BookingStatusConfirmed,
		CreatedAt:  time.Now(),
	}
	if err := d.bookings.Create(booking); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("Booking created",
		zap.String("sessionID", sessionID),
		zap.String("bookingID", booking.ID),
		zap.String("listingID", listingID))

	return &toolOutcome{
		Observation: map[string]any{
			"status":        "success",
			"booking_id":    booking.ID,
			"listing_title": listing.Title,
			"message":       fmt.Sprintf("Booking confirmed for %s from %s to %s.", listing.Title, checkIn, checkOut),
		},
		Booking: &models.BookingConfirmation{
			BookingID:    booking.ID,
			ListingID:    listingID,
			ListingTitle: listing.Title,
			CheckIn:      checkIn,
			CheckOut:     checkOut,
			Guests:       guests,
			TotalPrice:   totalPrice,
			Status:       booking.Status,
		},
	}, nil
}

// bookingError wraps a validation failure as a structured tool result.
func bookingError(message string) *toolOutcome {
	return &toolOutcome{Observation: map[string]any{
		"status":  "error",
		"message": message,
	}}
}
