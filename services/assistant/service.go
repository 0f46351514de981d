// File: services/assistant/service.go
package assistant

import (
	"context"
	"fmt"

	"staymate/models"
	"staymate/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// Chat roles on the wire. Assistant turns map to the model's "model" role.
const (
	roleUser      = "user"
	roleModel     = "model"
	roleFunction  = "function"
	roleAssistant = "assistant"
)

// Fallback replies for failures the user should never see raw errors for.
const (
	replyGenericFailure = "I apologize, but I'm having trouble processing your request right now. Please try again in a moment."
	replyUnknownTool    = "Sorry, I got a bit confused there. Could you rephrase?"
)

// ProcessMessage runs one turn of the conversation: load state, call the
// model, dispatch at most one requested tool, call the model again for the
// phrased reply, then persist and assemble the response. Every failure path
// resolves to a textual reply and a best-effort state save.
func (s *DefaultAssistantService) ProcessMessage(ctx context.Context, req models.ChatRequest) *models.ChatResponse {
	record := s.Sessions.Load(ctx, req.SessionID)
	priorInfo := record.Info.Clone()

	turns := buildModelHistory(record.History, req.Message)
	reply, outcome := s.runTurn(ctx, req.SessionID, turns)

	// A successful tool has already persisted its state changes; re-read the
	// record so the final save doesn't clobber them with the stale snapshot.
	// On failure paths the stale snapshot is exactly the rollback we want.
	if outcome != nil {
		record = s.Sessions.Load(ctx, req.SessionID)
	}
	record.History = append(record.History,
		models.Message{Role: roleUser, Content: req.Message},
		models.Message{Role: roleAssistant, Content: reply},
	)
	s.Sessions.Save(ctx, req.SessionID, record)

	info := priorInfo
	if outcome != nil && outcome.Info != nil {
		info = outcome.Info
	}
	return assembleResponse(reply, info, outcome)
}

// runTurn drives the two-pass model protocol for one request. It returns the
// reply text and, when a tool ran to completion, its outcome. A nil outcome
// means state must be treated as unchanged.
func (s *DefaultAssistantService) runTurn(ctx context.Context, sessionID string, turns []*genai.Content) (string, *toolOutcome) {
	logger := utils.GetLogger()

	resp, err := s.LLM.Generate(ctx, turns, true)
	if err != nil {
		logger.Error("Model call failed", zap.String("sessionID", sessionID), zap.Error(err))
		return replyGenericFailure, nil
	}
	part, err := firstPart(resp)
	if err != nil {
		logger.Error("Malformed model response", zap.String("sessionID", sessionID), zap.Error(err))
		return replyGenericFailure, nil
	}

	call, requested := part.(genai.FunctionCall)
	if !requested {
		text, ok := part.(genai.Text)
		if !ok {
			logger.Error("Unexpected part kind in model response", zap.String("sessionID", sessionID))
			return replyGenericFailure, nil
		}
		return string(text), nil
	}

	tool, known := s.Tools.lookup(call.Name)
	if !known {
		logger.Warn("Model requested unknown tool",
			zap.String("sessionID", sessionID), zap.String("tool", call.Name))
		return replyUnknownTool, nil
	}

	logger.Debug("Dispatching tool",
		zap.String("sessionID", sessionID), zap.String("tool", call.Name))

	outcome, err := tool.run(ctx, sessionID, call.Args)
	if err != nil {
		logger.Error("Tool execution failed",
			zap.String("sessionID", sessionID), zap.String("tool", call.Name), zap.Error(err))
		return tool.apology, nil
	}

	// Feed the tool's observation back for the text-only second pass.
	turns = append(turns,
		&genai.Content{Role: roleModel, Parts: []genai.Part{call}},
		&genai.Content{Role: roleFunction, Parts: []genai.Part{genai.FunctionResponse{
			Name:     call.Name,
			Response: outcome.Observation,
		}}},
	)
	second, err := s.LLM.Generate(ctx, turns, false)
	if err != nil {
		logger.Error("Second model call failed",
			zap.String("sessionID", sessionID), zap.String("tool", call.Name), zap.Error(err))
		return tool.apology, nil
	}
	reply, err := firstText(second)
	if err != nil {
		logger.Error("Malformed second model response",
			zap.String("sessionID", sessionID), zap.String("tool", call.Name), zap.Error(err))
		return tool.apology, nil
	}
	return reply, outcome
}

// buildModelHistory converts the stored history plus the new user message
// into the model's expected turn sequence.
func buildModelHistory(history []models.Message, userMessage string) []*genai.Content {
	turns := make([]*genai.Content, 0, len(history)+1)
	for _, msg := range history {
		role := roleUser
		if msg.Role == roleAssistant {
			role = roleModel
		}
		turns = append(turns, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return append(turns, &genai.Content{
		Role:  roleUser,
		Parts: []genai.Part{genai.Text(userMessage)},
	})
}

// firstPart extracts the first content part of the first candidate. Only
// these are ever consulted; their absence is a hard failure for the pass.
func firstPart(resp *genai.GenerateContentResponse) (genai.Part, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("model response missing candidates")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return nil, fmt.Errorf("model response missing content parts")
	}
	return content.Parts[0], nil
}

// firstText extracts the first part and requires it to be text.
func firstText(resp *genai.GenerateContentResponse) (string, error) {
	part, err := firstPart(resp)
	if err != nil {
		return "", err
	}
	text, ok := part.(genai.Text)
	if !ok {
		return "", fmt.Errorf("model response part is not text")
	}
	return string(text), nil
}
