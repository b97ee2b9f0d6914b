package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsync/portal-api/config"
	"github.com/vitalsync/portal-api/internal/email"
	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/repository"
	authService "github.com/vitalsync/portal-api/internal/service/auth"
	pkgauth "github.com/vitalsync/portal-api/pkg/auth"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, req *model.UpdateProfileRequest) error {
	user, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Address != nil {
		user.Address = req.Address
	}
	return nil
}

func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := pkgauth.NewJWTService(pkgauth.JWTConfig{Secret: "test-secret"})
	svc := authService.NewService(newFakeUserRepo(), tokens, email.NewService(config.SMTPConfig{}))

	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doJSON(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRegisterThenLogin(t *testing.T) {
	engine := setupTest(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "a@x.com",
		"password":  "pw1234",
		"full_name": "A",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var registered model.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &registered))
	assert.NotEmpty(t, registered.AccessToken)
	assert.Equal(t, "bearer", registered.TokenType)
	require.NotNil(t, registered.User)
	assert.Equal(t, "a@x.com", registered.User.Email)
	assert.NotContains(t, w.Body.String(), "password")

	w = doJSON(engine, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "a@x.com",
		"password": "pw1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var logged model.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	assert.NotEmpty(t, logged.AccessToken)
	assert.Equal(t, registered.User.ID, logged.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	engine := setupTest(t)

	body := gin.H{"email": "a@x.com", "password": "pw1234", "full_name": "A"}
	w := doJSON(engine, http.MethodPost, "/api/v1/auth/register", body)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(engine, http.MethodPost, "/api/v1/auth/register", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already registered")
}

func TestRegisterValidation(t *testing.T) {
	engine := setupTest(t)

	// Malformed email.
	w := doJSON(engine, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "not-an-email",
		"password":  "pw1234",
		"full_name": "A",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Password below the minimum length.
	w = doJSON(engine, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "a@x.com",
		"password":  "pw",
		"full_name": "A",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	engine := setupTest(t)

	w := doJSON(engine, http.MethodPost, "/api/v1/auth/register", gin.H{
		"email":     "a@x.com",
		"password":  "pw1234",
		"full_name": "A",
	})
	require.Equal(t, http.StatusOK, w.Code)

	wrongPassword := doJSON(engine, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "a@x.com",
		"password": "wrong",
	})
	unknownEmail := doJSON(engine, http.MethodPost, "/api/v1/auth/login", gin.H{
		"email":    "b@x.com",
		"password": "pw1234",
	})

	// Both failures look the same to the caller.
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), "Invalid credentials")
}
