package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction over external generative-text services.
// The content pipeline issues one-shot Generate calls and never holds
// conversation state.
type Provider interface {
	// Generate submits a prompt and returns the provider's raw output.
	// When the request carries a Schema, providers that support native
	// structured output are instructed to conform to it; the returned
	// Content is still treated as untrusted free text by callers.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the provider's role and constraints.
	System string

	// Messages is the conversation. Every call in this application is
	// single-turn: one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response should conform to.
	// Providers with structured-output support enforce it server-side.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines a JSON structure requested from the provider.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "scenario-list").
	Name string

	// Description is sent to the provider to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds a provider's output.
type Response struct {
	// Content is the raw generated output. Never assumed to be valid JSON
	// by itself; the content parser owns extraction and validation.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "blocked".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
