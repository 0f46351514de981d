// File: services/assistant/tool_availability.go
package assistant

import (
	"context"
	"time"

	"staymate/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

func checkAvailabilityTool(d *toolDeps) *registeredTool {
	return &registeredTool{
		kind:    toolCheckAvailability,
		apology: "Sorry, I couldn't check the availability of that listing just now. Could you try again?",
		run:     d.checkAvailability,
		declaration: &genai.FunctionDeclaration{
			Name:        "check_availability",
			Description: "Checks if a specific listing is available for booking between the check-in and check-out dates by looking for overlapping bookings.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name": {
						Type:        genai.TypeString,
						Description: "The name of the listing chosen by the user.",
					},
					"check_in": {
						Type:        genai.TypeString,
						Description: "The desired check-in date (YYYY-MM-DD).",
					},
					"check_out": {
						Type:        genai.TypeString,
						Description: "The desired check-out date (YYYY-MM-DD).",
					},
				},
				Required: []string{"name", "check_in", "check_out"},
			},
		},
	}
}

// checkAvailability resolves the listing by name, validates the date range,
// counts overlapping confirmed bookings and, when the listing is free,
// computes the total price and persists the selection into the session's
// extracted info. Lookup and validation failures are structured error
// payloads for the model to relay, not errors.
func (d *toolDeps) checkAvailability(ctx context.Context, sessionID string, args map[string]any) (*toolOutcome, error) {
	name, ok := argString(args, "name")
	if !ok {
		return errorObservation("Missing listing name for availability check."), nil
	}
	checkIn, okIn := argString(args, "check_in")
	checkOut, okOut := argString(args, "check_out")
	if !okIn || !okOut {
		return errorObservation("Missing check-in or check-out date for availability check."), nil
	}

	dateIn, errIn := time.Parse(dateLayout, checkIn)
	dateOut, errOut := time.Parse(dateLayout, checkOut)
	if errIn != nil || errOut != nil {
		return errorObservation("Invalid date format provided. Please use YYYY-MM-DD."), nil
	}
	if !dateIn.Before(dateOut) {
		return errorObservation("Check-out date must be after check-in date."), nil
	}

	listing, err := d.listings.GetByTitle(name)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return errorObservation("Listing not found."), nil
	}

	overlapping, err := d.bookings.CountOverlapping(listing.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	isAvailable := overlapping == 0

	result := map[string]any{
		"listing_id":                 listing.ID,
		"check_in":                   checkIn,
		"check_out":                  checkOut,
		"is_available":               isAvailable,
		"conflicting_bookings_found": overlapping,
	}

	outcome := &toolOutcome{Observation: result}

	if isAvailable {
		nights := int(dateOut.Sub(dateIn).Hours() / 24)
		totalPrice := float64(nights) * listing.PricePerNight
		result["total_price"] = totalPrice
		result["listing_title"] = listing.Title

		record, err := d.store.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		info := record.EnsureInfo()
		info.SelectedListingID = &listing.ID
		info.SelectedListingTitle = &listing.Title
		info.TotalPrice = &totalPrice
		info.CheckIn = &checkIn
		info.CheckOut = &checkOut
		if err := d.store.Put(ctx, sessionID, record); err != nil {
			return nil, err
		}
		outcome.Info = info.Clone()

		utils.GetLogger().Debug("Listing available, selection persisted",
			zap.String("sessionID", sessionID),
			zap.String("listingID", listing.ID),
			zap.Float64("totalPrice", totalPrice))
	}

	return outcome, nil
}

// errorObservation wraps a domain validation failure as a tool result.
func errorObservation(message string) *toolOutcome {
	return &toolOutcome{Observation: map[string]any{"error": message}}
}
