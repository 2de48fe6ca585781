package services

import (
	"context"
	"fmt"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/mailer"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/render"
	"go.uber.org/zap"
)

// TemplateReader is the interface that wraps template lookup for dispatching
type TemplateReader interface {
	// GetByID retrieves an email template by its ID
	//
	// If the template does not exist, repositories.ErrTemplateNotFound is
	// returned.
	GetByID(ctx context.Context, id int) (*models.EmailTemplate, error)
}

// ClientLister is the interface that wraps recipient listing for dispatching
type ClientLister interface {
	// ListAll retrieves every client in a stable order
	ListAll(ctx context.Context) ([]models.Client, error)
}

type dispatchService struct {
	templateRepo TemplateReader
	clientRepo   ClientLister
	sender       mailer.MailSender
	logger       *zap.Logger
}

// NewDispatchService creates a new dispatch service
func NewDispatchService(templateRepo TemplateReader, clientRepo ClientLister, sender mailer.MailSender, logger *zap.Logger) *dispatchService {
	return &dispatchService{
		templateRepo: templateRepo,
		clientRepo:   clientRepo,
		sender:       sender,
		logger:       logger,
	}
}

// Dispatch renders and sends the template to each recipient in order.
// A failed send is recorded in the report and does not stop the loop;
// one bad address must not block the rest of the list.
func (s *dispatchService) Dispatch(ctx context.Context, tmpl *models.EmailTemplate, clients []models.Client) *models.DispatchReport {
	report := &models.DispatchReport{}

	for _, client := range clients {
		report.Attempted++

		body := render.Render(tmpl.BodyHTML, client)
		if err := s.sender.Send(ctx, client.Email, tmpl.Title, body); err != nil {
			report.Failed++
			report.Failures = append(report.Failures, models.SendFailure{
				ClientID: client.ID,
				Email:    client.Email,
				Error:    err.Error(),
			})
			s.logger.Warn("send failed",
				zap.Int("template_id", tmpl.ID),
				zap.Int("client_id", client.ID),
				zap.String("email", client.Email),
				zap.Error(err),
			)
			continue
		}

		report.Succeeded++
	}

	return report
}

// DispatchNow fires the template to the current client set immediately,
// outside the scheduling state machine. It never touches campaign state.
func (s *dispatchService) DispatchNow(ctx context.Context, templateID int) (*models.DispatchReport, error) {
	tmpl, err := s.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	clients, err := s.clientRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	report := s.Dispatch(ctx, tmpl, clients)

	s.logger.Info("immediate dispatch finished",
		zap.Int("template_id", templateID),
		zap.Int("attempted", report.Attempted),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
	)

	return report, nil
}
