package ai

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no provider credential is available.
var ErrNotConfigured = errors.New("AI service not configured")

// Exchange is one prior user/assistant turn replayed for continuity.
type Exchange struct {
	UserMessage string `json:"user_message"`
	AIResponse  string `json:"ai_response"`
}

// CompletionRequest is a single synchronous completion call. SessionID scopes
// provider-side continuity per user, not per conversation thread.
type CompletionRequest struct {
	SessionID    string
	SystemPrompt string
	History      []Exchange
	Message      string
}

// Provider is the sole boundary to the hosted language model: one blocking
// call, a text reply or an error. No retries, no streaming.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
