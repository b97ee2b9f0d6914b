package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vitalsync/portal-api/internal/model"
)

func (r *chatRepository) Create(ctx context.Context, message *model.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (
			id, user_id, user_message, ai_response, created_at
		) VALUES ($1, $2, $3, $4, $5)
	`

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.UserID,
		message.UserMessage,
		message.AIResponse,
		message.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to store chat message: %w", err)
	}
	return nil
}

func (r *chatRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*model.ChatMessage, error) {
	query := `
		SELECT id, user_id, user_message, ai_response, created_at
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	messages := []*model.ChatMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list chat history: %w", err)
	}
	return messages, nil
}
