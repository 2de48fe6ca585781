package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/auth"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/repositories"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when the username or password does not match
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository is the interface that wraps user lookups for authentication
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type authService struct {
	repo           UserRepository
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(repo UserRepository, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *authService {
	return &authService{
		repo:           repo,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

// Login verifies the credentials and returns a signed access token
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	if req.Username == "" || req.Password == "" {
		return "", NewValidationError("username and password are required")
	}

	user, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login failed", zap.String("username", req.Username))
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenGenerator.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in", zap.Int("user_id", user.ID))
	return token, nil
}
