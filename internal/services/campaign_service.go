package services

import (
	"context"
	"fmt"
	"time"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"go.uber.org/zap"
)

// CampaignRepository is the interface that wraps campaign persistence
// used by the scheduling entry point
type CampaignRepository interface {
	// Create inserts a new campaign with status "pending"
	Create(ctx context.Context, campaign *models.Campaign) error
	// GetAll retrieves a paginated list of campaigns for a user
	GetAll(ctx context.Context, page, count, userID int) ([]models.CampaignListItem, error)
}

// TemplateChecker is the interface that wraps template existence checks
type TemplateChecker interface {
	// ExistsByID checks if an email template exists with the given ID
	ExistsByID(ctx context.Context, id int) (bool, error)
}

type campaignService struct {
	repo         CampaignRepository
	templateRepo TemplateChecker
	logger       *zap.Logger
}

// NewCampaignService creates a new campaign service
func NewCampaignService(repo CampaignRepository, templateRepo TemplateChecker, logger *zap.Logger) *campaignService {
	return &campaignService{
		repo:         repo,
		templateRepo: templateRepo,
		logger:       logger,
	}
}

// Schedule validates the request and creates a pending campaign owned by userID
func (s *campaignService) Schedule(ctx context.Context, userID int, req *models.ScheduleCampaignRequest) (int, error) {
	if req.TemplateID <= 0 {
		return 0, NewValidationError("template_id is required")
	}
	if req.ScheduledAt == "" {
		return 0, NewValidationError("scheduled_at is required")
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return 0, NewValidationError("scheduled_at must be RFC3339: %v", err)
	}

	exists, err := s.templateRepo.ExistsByID(ctx, req.TemplateID)
	if err != nil {
		return 0, fmt.Errorf("failed to check template: %w", err)
	}
	if !exists {
		return 0, NewValidationError("email template %d not found", req.TemplateID)
	}

	campaign := &models.Campaign{
		TemplateID:  req.TemplateID,
		UserID:      userID,
		ScheduledAt: scheduledAt,
	}

	if err := s.repo.Create(ctx, campaign); err != nil {
		return 0, fmt.Errorf("failed to create campaign: %w", err)
	}

	s.logger.Info("campaign scheduled",
		zap.Int("campaign_id", campaign.ID),
		zap.Int("template_id", campaign.TemplateID),
		zap.Time("scheduled_at", campaign.ScheduledAt),
	)

	return campaign.ID, nil
}

// GetAll retrieves a paginated list of campaigns for a user
func (s *campaignService) GetAll(ctx context.Context, page, count, userID int) ([]models.CampaignListItem, error) {
	if page < 1 {
		page = 1
	}
	if count < 1 {
		count = 20
	}

	return s.repo.GetAll(ctx, page, count, userID)
}
