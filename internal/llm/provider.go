// Package llm is the single seam between the app and its language models.
// Question generation and feedback scoring both go through Provider; which
// vendor sits behind it is a configuration detail.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one structured completion per call.
type Provider interface {
	// Generate runs a single completion. When the request carries a Schema
	// the provider asks the vendor for native structured output and the
	// returned Content is JSON already validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model, for the call log and doctor.
	ModelID() string
}

// Request is everything a completion needs. Interview prompts are single
// turn: a system framing plus one user message carrying the setup or the
// sealed answers.
type Request struct {
	System      string
	Messages    []Message
	Schema      *Schema // nil means free text
	MaxTokens   int
	Temperature float64 // 0 is deterministic and the default
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the completion must satisfy. Name doubles as
// the vendor-side identifier, so keep it kebab-case and stable.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons, normalized across vendors.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response is the completion plus its accounting.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	Usage      Usage
	Model      string // the model that actually served the call
	StopReason string // StopEnd or StopMaxTokens
}

// Usage is the token count for one call, fed to the call log and the cost
// estimate in doctor.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
