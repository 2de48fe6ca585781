package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"go.uber.org/zap"
)

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ClientRepository is the interface that wraps recipient persistence
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	ListAll(ctx context.Context) ([]models.Client, error)
	Delete(ctx context.Context, id int) error
}

type clientService struct {
	repo   ClientRepository
	logger *zap.Logger
}

// NewClientService creates a new client service
func NewClientService(repo ClientRepository, logger *zap.Logger) *clientService {
	return &clientService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and stores a new client
func (s *clientService) Create(ctx context.Context, req *models.CreateClientRequest) (int, error) {
	if req.Name == "" {
		return 0, NewValidationError("name is required")
	}

	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailRegex.MatchString(normalizedEmail) {
		return 0, NewValidationError("invalid email format")
	}

	client := &models.Client{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   normalizedEmail,
	}

	if err := s.repo.Create(ctx, client); err != nil {
		return 0, fmt.Errorf("failed to create client: %w", err)
	}

	s.logger.Info("client created",
		zap.Int("client_id", client.ID),
		zap.String("email", client.Email),
	)

	return client.ID, nil
}

// ListAll retrieves every client
func (s *clientService) ListAll(ctx context.Context) ([]models.Client, error) {
	return s.repo.ListAll(ctx)
}

// Delete removes a client by its ID
func (s *clientService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("client deleted", zap.Int("client_id", id))
	return nil
}
