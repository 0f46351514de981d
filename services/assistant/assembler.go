// File: services/assistant/assembler.go
package assistant

import "staymate/models"

// assembleResponse maps the loop's outputs into the external reply contract.
// Raw tool-internal errors never cross this boundary; failures arrive here
// already translated into the reply text.
func assembleResponse(reply string, info *models.ExtractedInfo, outcome *toolOutcome) *models.ChatResponse {
	resp := &models.ChatResponse{
		Response:    reply,
		UpdatedInfo: info,
	}
	if outcome != nil {
		resp.Listings = outcome.Listings
		resp.Booking = outcome.Booking
	}
	return resp
}
