// File: services/assistant/tool_user.go
package assistant

import (
	"context"
	"strings"
	"time"

	"staymate/models"
	"staymate/utils"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func getOrCreateUserTool(d *toolDeps) *registeredTool {
	return &registeredTool{
		kind:    toolGetOrCreateUser,
		apology: "Sorry, I had trouble saving your details. Could you try again?",
		run:     d.getOrCreateUser,
		declaration: &genai.FunctionDeclaration{
			Name:        "get_or_create_user",
			Description: "Looks up a user by their email address. If the user doesn't exist, creates a new user record with the provided email, full name and optional phone number. Returns the user's ID and status.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"email": {
						Type:        genai.TypeString,
						Description: "The user's email address.",
					},
					"full_name": {
						Type:        genai.TypeString,
						Description: "The user's full name.",
					},
					"phone_number": {
						Type:        genai.TypeString,
						Description: "Optional. The user's phone number.",
					},
				},
				Required: []string{"email", "full_name"},
			},
		},
	}
}

// getOrCreateUser resolves a user by exact, case-sensitive email equality,
// inserting a new row when absent, and persists the resolved user id into
// the session record.
func (d *toolDeps) getOrCreateUser(ctx context.Context, sessionID string, args map[string]any) (*toolOutcome, error) {
	email, _ := argString(args, "email")
	fullName, _ := argString(args, "full_name")
	phoneNumber, _ := argString(args, "phone_number")

	if email == "" || !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return &toolOutcome{Observation: map[string]any{
			"status":        "error",
			"error_message": "Invalid email address provided.",
		}}, nil
	}

	status := "found"
	user, err := d.users.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &models.User{
			ID:          uuid.NewString(),
			Email:       email,
			FullName:    fullName,
			PhoneNumber: phoneNumber,
			CreatedAt:   time.Now(),
		}
		if err := d.users.Create(user); err != nil {
			return nil, err
		}
		status = "created"
	}

	record, err := d.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	record.UserID = user.ID
	if err := d.store.Put(ctx, sessionID, record); err != nil {
		return nil, err
	}

	utils.GetLogger().Debug("Resolved user for session",
		zap.String("sessionID", sessionID),
		zap.String("userID", user.ID),
		zap.String("status", status))

	return &toolOutcome{Observation: map[string]any{
		"status":    status,
		"user_id":   user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
	}}, nil
}
