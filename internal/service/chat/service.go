package chat

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/vitalsync/portal-api/internal/ai"
	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/repository"
	apperrors "github.com/vitalsync/portal-api/pkg/errors"
)

const historyLimit = 50

// systemPrompt instructs the model to stick to general wellness information,
// never diagnose, and defer to professionals.
const systemPrompt = `You are VitalSync AI, a helpful healthcare assistant. You provide general health information, wellness tips, and guidance.

IMPORTANT GUIDELINES:
1. Always recommend consulting a healthcare professional for medical advice
2. Never diagnose conditions or prescribe treatments
3. Provide evidence-based health information
4. Be empathetic and supportive
5. Encourage healthy lifestyle choices
6. If the user describes emergency symptoms, advise them to seek immediate medical attention

You can help with:
- General health questions
- Wellness and lifestyle tips
- Understanding symptoms (without diagnosis)
- Medication reminders and tips
- Mental health support and resources
- Nutrition and exercise guidance`

type Service struct {
	repo     repository.ChatRepository
	provider ai.Provider
	cache    ContextCache
}

// NewService accepts a nil provider (AI unconfigured) and a nil cache
// (context-free completions).
func NewService(repo repository.ChatRepository, provider ai.Provider, cache ContextCache) *Service {
	return &Service{
		repo:     repo,
		provider: provider,
		cache:    cache,
	}
}

// Send forwards one message to the language model and persists the exchange.
// Provider failures surface as a single error kind with the underlying
// message attached; there is no retry and no partial output.
func (s *Service) Send(ctx context.Context, user *model.User, message string) (*model.ChatResponse, error) {
	if s.provider == nil {
		return nil, apperrors.Unavailable("AI service not configured", nil)
	}

	sessionID := fmt.Sprintf("health-chat-%s", user.ID)

	var history []ai.Exchange
	if s.cache != nil {
		var err error
		history, err = s.cache.Recent(ctx, user.ID)
		if err != nil {
			// Continuity is best-effort: a cache failure degrades to a
			// context-free completion.
			log.Debug().Err(err).Msg("chat context cache unavailable")
			history = nil
		}
	}

	reply, err := s.provider.Complete(ctx, ai.CompletionRequest{
		SessionID:    sessionID,
		SystemPrompt: systemPrompt,
		History:      history,
		Message:      message,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("AI chat error")
		return nil, apperrors.Internal(fmt.Sprintf("AI service error: %v", err), err)
	}

	entry := &model.ChatMessage{
		ID:          uuid.New(),
		UserID:      user.ID,
		UserMessage: message,
		AIResponse:  reply,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		log.Error().Err(err).Str("user_id", user.ID.String()).Msg("AI chat error")
		return nil, apperrors.Internal(fmt.Sprintf("AI service error: %v", err), err)
	}

	if s.cache != nil {
		if err := s.cache.Append(ctx, user.ID, ai.Exchange{UserMessage: message, AIResponse: reply}); err != nil {
			log.Debug().Err(err).Msg("failed to append chat context")
		}
	}

	return &model.ChatResponse{
		Response:  reply,
		Timestamp: entry.Timestamp,
	}, nil
}

// History returns the caller's most recent exchanges, newest first.
func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]*model.ChatMessage, error) {
	return s.repo.ListByUser(ctx, userID, historyLimit)
}
