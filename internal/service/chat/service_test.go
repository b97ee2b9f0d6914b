package chat

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsync/portal-api/internal/ai"
	"github.com/vitalsync/portal-api/internal/model"
	apperrors "github.com/vitalsync/portal-api/pkg/errors"
)

type fakeChatRepo struct {
	mu    sync.Mutex
	items []*model.ChatMessage
}

func (r *fakeChatRepo) Create(_ context.Context, m *model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	cp := *m
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeChatRepo) ListByUser(_ context.Context, userID uuid.UUID, limit int) ([]*model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*model.ChatMessage
	for i := len(r.items) - 1; i >= 0 && len(out) < limit; i-- {
		if r.items[i].UserID == userID {
			cp := *r.items[i]
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeProvider struct {
	reply   string
	err     error
	lastReq ai.CompletionRequest
}

func (p *fakeProvider) Complete(_ context.Context, req ai.CompletionRequest) (string, error) {
	p.lastReq = req
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

type fakeCache struct {
	exchanges []ai.Exchange
}

func (c *fakeCache) Recent(context.Context, uuid.UUID) ([]ai.Exchange, error) {
	return c.exchanges, nil
}

func (c *fakeCache) Append(_ context.Context, _ uuid.UUID, ex ai.Exchange) error {
	c.exchanges = append(c.exchanges, ex)
	return nil
}

func testUser() *model.User {
	return &model.User{ID: uuid.New(), Email: "a@x.com", FullName: "A"}
}

func TestSendPersistsExchange(t *testing.T) {
	repo := &fakeChatRepo{}
	provider := &fakeProvider{reply: "Drink more water."}
	svc := NewService(repo, provider, nil)
	user := testUser()

	resp, err := svc.Send(context.Background(), user, "How do I stay hydrated?")
	require.NoError(t, err)
	assert.Equal(t, "Drink more water.", resp.Response)
	assert.False(t, resp.Timestamp.IsZero())

	history, err := svc.History(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "How do I stay hydrated?", history[0].UserMessage)
	assert.Equal(t, "Drink more water.", history[0].AIResponse)

	// The session key scopes continuity per user.
	assert.Equal(t, "health-chat-"+user.ID.String(), provider.lastReq.SessionID)
	assert.Contains(t, provider.lastReq.SystemPrompt, "Never diagnose")
}

func TestSendWithoutProvider(t *testing.T) {
	svc := NewService(&fakeChatRepo{}, nil, nil)

	_, err := svc.Send(context.Background(), testUser(), "hello")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPStatus())
	assert.Equal(t, "AI service not configured", appErr.Message)
}

func TestSendProviderFailure(t *testing.T) {
	repo := &fakeChatRepo{}
	provider := &fakeProvider{err: errors.New("quota exceeded")}
	svc := NewService(repo, provider, nil)
	user := testUser()

	_, err := svc.Send(context.Background(), user, "hello")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 500, appErr.HTTPStatus())
	assert.Contains(t, appErr.Message, "AI service error")
	assert.Contains(t, appErr.Message, "quota exceeded")

	// A failed call persists nothing.
	history, err := svc.History(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSendReplaysCachedContext(t *testing.T) {
	repo := &fakeChatRepo{}
	provider := &fakeProvider{reply: "Sleep helps too."}
	cache := &fakeCache{exchanges: []ai.Exchange{
		{UserMessage: "How do I stay hydrated?", AIResponse: "Drink more water."},
	}}
	svc := NewService(repo, provider, cache)

	_, err := svc.Send(context.Background(), testUser(), "Anything else?")
	require.NoError(t, err)

	require.Len(t, provider.lastReq.History, 1)
	assert.Equal(t, "Drink more water.", provider.lastReq.History[0].AIResponse)

	// The new exchange lands in the cache for the next call.
	require.Len(t, cache.exchanges, 2)
	assert.Equal(t, "Sleep helps too.", cache.exchanges[1].AIResponse)
}

func TestHistoryNewestFirst(t *testing.T) {
	repo := &fakeChatRepo{}
	provider := &fakeProvider{reply: "ok"}
	svc := NewService(repo, provider, nil)
	user := testUser()

	for _, msg := range []string{"first", "second", "third"} {
		_, err := svc.Send(context.Background(), user, msg)
		require.NoError(t, err)
	}

	history, err := svc.History(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "third", history[0].UserMessage)
	assert.Equal(t, "first", history[2].UserMessage)
}
