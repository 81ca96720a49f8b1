package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var (
	// ErrClientUnavailable is returned when no API credential was configured
	// at startup.
	ErrClientUnavailable = errors.New("gemini client not initialized")

	// ErrGenerationFailed covers remote API errors and malformed structured
	// responses. The cause is embedded in the error message.
	ErrGenerationFailed = errors.New("generation failed")
)

// GenerationRequest is immutable once built and consumed exactly once.
type GenerationRequest struct {
	Model       string
	Instruction string
	Content     string
	Temperature float32
	Schema      *Schema
}

// GenerationResult carries the raw model text and, when a schema was
// supplied, the parsed and validated field mapping. Fields is never
// partially populated: a parse or shape failure fails the whole call.
type GenerationResult struct {
	Text   string
	Fields map[string]any
}

type GeminiService interface {
	Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error)
}

type geminiService struct {
	client *genai.Client
}

// NewGeminiService creates the gateway. An empty API key yields a gateway
// whose calls fail with ErrClientUnavailable; construction itself succeeds
// so the server can still start and serve upload-only routes.
func NewGeminiService(apiKey string) (GeminiService, error) {
	if apiKey == "" {
		return &geminiService{}, nil
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{client: client}, nil
}

// Generate makes a single attempt against the generation API. No retry, no
// backoff, no deadline beyond the client's own defaults.
func (g *geminiService) Generate(ctx context.Context, req GenerationRequest) (*GenerationResult, error) {
	if g.client == nil {
		return nil, ErrClientUnavailable
	}

	temperature := req.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:       &temperature,
		SystemInstruction: genai.NewContentFromText(req.Instruction, genai.RoleUser),
	}
	if req.Schema != nil {
		config.ResponseMIMEType = "application/json"
		config.ResponseSchema = req.Schema.GenAI()
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Content), config)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: no response generated", ErrGenerationFailed)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: no text content in response", ErrGenerationFailed)
	}

	if req.Schema == nil {
		return &GenerationResult{Text: text}, nil
	}

	fields, err := decodeStructured(text, req.Schema)
	if err != nil {
		return nil, err
	}

	return &GenerationResult{Text: text, Fields: fields}, nil
}

// decodeStructured parses a schema-constrained response and re-validates it
// locally, so a non-conforming model reply is surfaced as a generation
// failure instead of being forwarded as-is.
func decodeStructured(text string, schema *Schema) (map[string]any, error) {
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		return nil, fmt.Errorf("%w: malformed structured response: %v", ErrGenerationFailed, err)
	}

	compiled, err := schema.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	if err := compiled.Validate(decoded); err != nil {
		return nil, fmt.Errorf("%w: response does not match schema: %v", ErrGenerationFailed, err)
	}

	fields, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: structured response is not an object", ErrGenerationFailed)
	}

	return fields, nil
}
