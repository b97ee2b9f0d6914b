package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one stored exchange with the assistant. Append-only.
type ChatMessage struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	UserMessage string    `json:"user_message" db:"user_message"`
	AIResponse  string    `json:"ai_response" db:"ai_response"`
	Timestamp   time.Time `json:"timestamp" db:"created_at"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ChatResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
