// File: services/assistant/tool_params.go
package assistant

import (
	"context"

	"staymate/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

func updateBookingParametersTool(d *toolDeps) *registeredTool {
	return &registeredTool{
		kind:    toolUpdateBookingParameters,
		apology: "Sorry, I encountered an issue trying to update your booking details. Could you try again?",
		run:     d.updateBookingParameters,
		declaration: &genai.FunctionDeclaration{
			Name:        "update_booking_parameters",
			Description: "Updates or records booking parameters like destination, check-in date, check-out date, or number of guests based on user input. Use this whenever the user provides any of these specific details.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"destination": {
						Type:        genai.TypeString,
						Description: "The city, region, or specific area the user wants to book accommodation in (e.g., 'Paris', 'Soho, London').",
					},
					"check_in": {
						Type:        genai.TypeString,
						Description: "The user's desired check-in date, formatted as YYYY-MM-DD (e.g., '2025-07-15').",
					},
					"check_out": {
						Type:        genai.TypeString,
						Description: "The user's desired check-out date, formatted as YYYY-MM-DD (e.g., '2025-07-22').",
					},
					"guests": {
						Type:        genai.TypeInteger,
						Description: "The total number of guests requiring accommodation (e.g., 2).",
					},
				},
			},
		},
	}
}

// updateBookingParameters merges the non-null arguments into the session's
// extracted info and persists the result. Fields not supplied are kept as-is.
func (d *toolDeps) updateBookingParameters(ctx context.Context, sessionID string, args map[string]any) (*toolOutcome, error) {
	record, err := d.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	info := record.EnsureInfo()

	if v, ok := argString(args, "destination"); ok {
		info.Destination = &v
	}
	if v, ok := argString(args, "check_in"); ok {
		info.CheckIn = &v
	}
	if v, ok := argString(args, "check_out"); ok {
		info.CheckOut = &v
	}
	if v, ok := argInt(args, "guests"); ok {
		info.Guests = &v
	}

	if err := d.store.Put(ctx, sessionID, record); err != nil {
		return nil, err
	}

	utils.GetLogger().Debug("Updated booking parameters",
		zap.String("sessionID", sessionID), zap.Any("info", info))

	return &toolOutcome{
		Observation: infoToMap(info),
		Info:        info.Clone(),
	}, nil
}
