package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"interview_quiz/internal/common"
	"interview_quiz/internal/common/security"
	"interview_quiz/internal/domain/model"
	"interview_quiz/internal/domain/repository"
	"interview_quiz/internal/platform/cache"
	"interview_quiz/internal/platform/metrics"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
	metrics  *metrics.Collector
}

func NewAuthService(userRepo repository.UserRepository, collector *metrics.Collector) *AuthService {
	return &AuthService{userRepo: userRepo, metrics: collector}
}

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.Errorf("username and password are required: %w", common.ErrBadRequest)
	}

	// A taken username is a plain 400, matching the signup contract. The
	// unique constraint still backstops a concurrent insert.
	_, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err == nil {
		return nil, common.Errorf("username already exists: %w", common.ErrBadRequest)
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Role:           model.RoleUser, // Default role
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrConflict) {
			// Lost a race with a concurrent signup for the same name.
			// Keep the same 400 the pre-check would have produced.
			return nil, common.Errorf("username already exists: %w", common.ErrBadRequest)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.RecordSignup()
	return &SignupResponse{Message: "User created successfully", ID: user.ID}, nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, common.Errorf("username and password are required: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Same response as a wrong password, to prevent
			// username enumeration.
			s.metrics.RecordLogin(false)
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		s.metrics.RecordLogin(false)
		return nil, common.ErrUnauthorized
	}

	token, err := security.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	user.HashedPassword = ""
	s.metrics.RecordLogin(true)
	return &AuthResponse{User: user, Token: token}, nil
}

// Logout revokes the presented token for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if err := cache.RevokeToken(ctx, tokenID, ttl); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
