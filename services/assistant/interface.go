package assistant

import (
	"context"

	"staymate/models"
)

// AssistantService defines the interface for the conversational booking assistant.
// ProcessMessage turns one user message into one assistant reply. It never
// fails the caller: every error path resolves to a best-effort textual reply.
type AssistantService interface {
	ProcessMessage(ctx context.Context, req models.ChatRequest) *models.ChatResponse
}

// DefaultAssistantService implements AssistantService.
type DefaultAssistantService struct {
	LLM      Generator
	Sessions SessionStore
	Tools    *ToolRegistry
}

// NewDefaultAssistantService wires the assistant with its collaborators.
func NewDefaultAssistantService(llm Generator, sessions SessionStore, tools *ToolRegistry) *DefaultAssistantService {
	return &DefaultAssistantService{
		LLM:      llm,
		Sessions: sessions,
		Tools:    tools,
	}
}
