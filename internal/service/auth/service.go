package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/vitalsync/portal-api/internal/email"
	"github.com/vitalsync/portal-api/internal/model"
	"github.com/vitalsync/portal-api/internal/repository"
	pkgauth "github.com/vitalsync/portal-api/pkg/auth"
	apperrors "github.com/vitalsync/portal-api/pkg/errors"
)

const bcryptCost = 12

type Service struct {
	users    repository.UserRepository
	tokens   pkgauth.TokenService
	emailSvc email.Service
}

func NewService(users repository.UserRepository, tokens pkgauth.TokenService, emailSvc email.Service) *Service {
	return &Service{
		users:    users,
		tokens:   tokens,
		emailSvc: emailSvc,
	}
}

// Register creates the account and issues a first token. The email existence
// check is a fast path; the unique constraint on users.email is what actually
// closes the duplicate-registration race.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
	if existing, err := s.users.GetByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, apperrors.BadRequest("Email already registered", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashed),
		FullName:     req.FullName,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
		Address:      req.Address,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperrors.BadRequest("Email already registered", err)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	go func() {
		if err := s.emailSvc.SendWelcome(context.Background(), user.Email, user.FullName); err != nil {
			log.Warn().Err(err).Str("email", user.Email).Msg("failed to send welcome email")
		}
	}()

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Public(),
	}, nil
}

// Login issues a fresh token. Unknown email and wrong password produce the
// identical error so account existence does not leak.
func (s *Service) Login(ctx context.Context, email, password string) (*model.TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid credentials", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid credentials", err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Public(),
	}, nil
}

// Authenticate resolves a bearer token to its user, with distinct failures
// for expiry, a bad token and a missing user.
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, pkgauth.ErrTokenExpired) {
			return nil, apperrors.Unauthorized("Token expired", err)
		}
		return nil, apperrors.Unauthorized("Invalid token", err)
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.Unauthorized("User not found", err)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	return user.Public(), nil
}

// UpdateProfile merges the provided fields and returns the updated user.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateProfileRequest) (*model.User, error) {
	if !req.Empty() {
		if err := s.users.UpdateProfile(ctx, userID, req); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, apperrors.Unauthorized("User not found", err)
			}
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user.Public(), nil
}
