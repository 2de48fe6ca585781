package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/repositories"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// CampaignStore defines methods for due campaign operations
type CampaignStore interface {
	// FetchDue returns pending campaigns whose scheduled time is at or before now,
	// ordered by scheduled time then ID
	FetchDue(ctx context.Context, now time.Time) ([]models.Campaign, error)
	// MarkSent transitions a campaign to "sent"
	MarkSent(ctx context.Context, id int) error
}

// TemplateStore defines template lookups for due campaigns
type TemplateStore interface {
	GetByID(ctx context.Context, id int) (*models.EmailTemplate, error)
}

// ClientStore defines recipient lookups for due campaigns
type ClientStore interface {
	ListAll(ctx context.Context) ([]models.Client, error)
}

// Dispatcher sends a rendered template to every client in order
type Dispatcher interface {
	Dispatch(ctx context.Context, tmpl *models.EmailTemplate, clients []models.Client) *models.DispatchReport
}

// Scheduler periodically dispatches due campaigns
type Scheduler struct {
	campaignRepo CampaignStore
	templateRepo TemplateStore
	clientRepo   ClientStore
	dispatcher   Dispatcher
	logger       *zap.Logger
	cron         *cron.Cron
	cronSpec     string
	tickMu       sync.Mutex
}

// NewScheduler creates a new scheduler instance
func NewScheduler(campaignRepo CampaignStore, templateRepo TemplateStore, clientRepo ClientStore, dispatcher Dispatcher, cronSpec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		campaignRepo: campaignRepo,
		templateRepo: templateRepo,
		clientRepo:   clientRepo,
		dispatcher:   dispatcher,
		logger:       logger,
		cron:         cron.New(),
		cronSpec:     cronSpec,
	}
}

// Start starts the scheduler loop
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cronSpec, func() {
		s.RunTick(context.Background())
	}); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("Scheduler started", zap.String("cron", s.cronSpec))
	return nil
}

// Stop stops the scheduler and waits for an in-flight tick to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

// RunTick executes one scheduling pass. If the previous pass is still
// running, the tick is skipped so a campaign is never dispatched twice.
func (s *Scheduler) RunTick(ctx context.Context) {
	if !s.tickMu.TryLock() {
		s.logger.Debug("Previous tick still running, skipping")
		return
	}
	defer s.tickMu.Unlock()

	campaigns, err := s.campaignRepo.FetchDue(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to fetch due campaigns", zap.Error(err))
		return
	}

	if len(campaigns) == 0 {
		return
	}

	s.logger.Info("Dispatching due campaigns", zap.Int("count", len(campaigns)))

	for _, campaign := range campaigns {
		s.dispatchCampaign(ctx, campaign)
	}
}

// dispatchCampaign sends one campaign to every client and marks it sent.
// The campaign is marked sent once every recipient has been attempted,
// even when some sends fail.
func (s *Scheduler) dispatchCampaign(ctx context.Context, campaign models.Campaign) {
	tmpl, err := s.templateRepo.GetByID(ctx, campaign.TemplateID)
	if err != nil {
		if errors.Is(err, repositories.ErrTemplateNotFound) {
			s.logger.Warn("Campaign references missing template, leaving pending",
				zap.Int("campaign_id", campaign.ID),
				zap.Int("template_id", campaign.TemplateID),
			)
			return
		}
		s.logger.Error("Failed to load template",
			zap.Int("campaign_id", campaign.ID),
			zap.Error(err),
		)
		return
	}

	clients, err := s.clientRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list clients",
			zap.Int("campaign_id", campaign.ID),
			zap.Error(err),
		)
		return
	}

	report := s.dispatcher.Dispatch(ctx, tmpl, clients)

	if err := s.campaignRepo.MarkSent(ctx, campaign.ID); err != nil {
		s.logger.Error("Failed to mark campaign sent",
			zap.Int("campaign_id", campaign.ID),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Campaign dispatched",
		zap.Int("campaign_id", campaign.ID),
		zap.Int("attempted", report.Attempted),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
	)
}
