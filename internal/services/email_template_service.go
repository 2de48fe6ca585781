package services

import (
	"context"
	"fmt"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"go.uber.org/zap"
)

// EmailTemplateRepository is the interface that wraps email template persistence
type EmailTemplateRepository interface {
	Create(ctx context.Context, template *models.EmailTemplate) error
	GetByID(ctx context.Context, id int) (*models.EmailTemplate, error)
	GetAllByUser(ctx context.Context, userID int) ([]models.EmailTemplateListItem, error)
	Delete(ctx context.Context, id int) error
}

type emailTemplateService struct {
	repo   EmailTemplateRepository
	logger *zap.Logger
}

// NewEmailTemplateService creates a new email template service
func NewEmailTemplateService(repo EmailTemplateRepository, logger *zap.Logger) *emailTemplateService {
	return &emailTemplateService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and stores a new email template for userID
func (s *emailTemplateService) Create(ctx context.Context, userID int, req *models.CreateEmailTemplateRequest) (int, error) {
	if req.Title == "" {
		return 0, NewValidationError("title is required")
	}
	if req.BodyHTML == "" {
		return 0, NewValidationError("body_html is required")
	}

	template := &models.EmailTemplate{
		UserID:   userID,
		Title:    req.Title,
		BodyHTML: req.BodyHTML,
	}

	if err := s.repo.Create(ctx, template); err != nil {
		return 0, fmt.Errorf("failed to create email template: %w", err)
	}

	s.logger.Info("email template created",
		zap.Int("template_id", template.ID),
		zap.String("title", template.Title),
	)

	return template.ID, nil
}

// GetByID retrieves an email template by its ID
func (s *emailTemplateService) GetByID(ctx context.Context, id int) (*models.EmailTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

// GetAllByUser retrieves all templates owned by userID
func (s *emailTemplateService) GetAllByUser(ctx context.Context, userID int) ([]models.EmailTemplateListItem, error) {
	return s.repo.GetAllByUser(ctx, userID)
}

// Delete removes an email template by its ID
func (s *emailTemplateService) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("email template deleted", zap.Int("template_id", id))
	return nil
}
