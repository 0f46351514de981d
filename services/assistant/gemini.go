// File: services/assistant/gemini.go
package assistant

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Generator abstracts the LLM call so the orchestration loop can be
// exercised without the network.
type Generator interface {
	// Generate sends the turn sequence to the model. The final turn is the
	// message being submitted; everything before it is replayed history.
	// When withTools is true the registry's function declarations are
	// attached, otherwise the model may only complete with text.
	Generate(ctx context.Context, turns []*genai.Content, withTools bool) (*genai.GenerateContentResponse, error)
}

// GeminiClient implements Generator against the Gemini API.
type GeminiClient struct {
	client    *genai.Client
	modelName string
	tools     []*genai.Tool
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string, tools []*genai.Tool) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiClient{client: client, modelName: modelName, tools: tools}, nil
}

func (g *GeminiClient) Generate(ctx context.Context, turns []*genai.Content, withTools bool) (*genai.GenerateContentResponse, error) {
	if len(turns) == 0 {
		return nil, fmt.Errorf("empty turn sequence")
	}

	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	if withTools {
		model.Tools = g.tools
	}

	session := model.StartChat()
	session.History = turns[:len(turns)-1]
	last := turns[len(turns)-1]

	resp, err := session.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}
	return resp, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}
