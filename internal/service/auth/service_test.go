package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsync/portal-api/config"
	"github.com/vitalsync/portal-api/internal/email"
	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/repository"
	pkgauth "github.com/vitalsync/portal-api/pkg/auth"
	apperrors "github.com/vitalsync/portal-api/pkg/errors"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, req *model.UpdateProfileRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.DateOfBirth != nil {
		u.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		u.Gender = req.Gender
	}
	if req.Address != nil {
		u.Address = req.Address
	}
	return nil
}

func newTestService(repo repository.UserRepository) *Service {
	tokens := pkgauth.NewJWTService(pkgauth.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	return NewService(repo, tokens, email.NewService(config.SMTPConfig{}))
}

func registerRequest() *model.RegisterRequest {
	return &model.RegisterRequest{
		Email:    "a@x.com",
		Password: "pw1234",
		FullName: "A",
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	reg, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, reg.AccessToken)
	assert.Equal(t, "bearer", reg.TokenType)
	assert.Equal(t, "a@x.com", reg.User.Email)
	assert.Empty(t, reg.User.PasswordHash)

	login, err := svc.Login(context.Background(), "a@x.com", "pw1234")
	require.NoError(t, err)
	assert.NotEmpty(t, login.AccessToken)

	// Both tokens authenticate; the old one is not revoked by the new login.
	for _, token := range []string{reg.AccessToken, login.AccessToken} {
		user, err := svc.Authenticate(context.Background(), token)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", user.Email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPStatus())
	assert.Equal(t, "Email already registered", appErr.Message)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), "a@x.com", "nope")
	_, unknownEmail := svc.Login(context.Background(), "b@x.com", "pw1234")

	for _, err := range []error{wrongPassword, unknownEmail} {
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, 401, appErr.HTTPStatus())
		assert.Equal(t, "Invalid credentials", appErr.Message)
	}
}

func TestAuthenticateExpiredToken(t *testing.T) {
	repo := newFakeUserRepo()
	expired := pkgauth.NewJWTService(pkgauth.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})
	svc := NewService(repo, expired, email.NewService(config.SMTPConfig{}))

	reg, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), reg.AccessToken)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPStatus())
	assert.Equal(t, "Token expired", appErr.Message)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Authenticate(context.Background(), "garbage")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid token", appErr.Message)
}

func TestAuthenticateUserMissing(t *testing.T) {
	repo := newFakeUserRepo()
	tokens := pkgauth.NewJWTService(pkgauth.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	svc := NewService(repo, tokens, email.NewService(config.SMTPConfig{}))

	// A valid token for an id with no user row.
	token, err := tokens.Generate(uuid.New())
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 401, appErr.HTTPStatus())
	assert.Equal(t, "User not found", appErr.Message)
}

func TestUpdateProfilePartialMerge(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	reg, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	phone := "555-0100"
	updated, err := svc.UpdateProfile(context.Background(), reg.User.ID, &model.UpdateProfileRequest{Phone: &phone})
	require.NoError(t, err)

	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)
	// Omitted fields stay untouched.
	assert.Equal(t, "A", updated.FullName)

	// An empty update is a no-op read-back.
	same, err := svc.UpdateProfile(context.Background(), reg.User.ID, &model.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.Equal(t, updated.FullName, same.FullName)
	assert.Equal(t, *updated.Phone, *same.Phone)
}
