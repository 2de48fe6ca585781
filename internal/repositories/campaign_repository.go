package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
)

type campaignRepository struct {
	db *sql.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *sql.DB) *campaignRepository {
	return &campaignRepository{db: db}
}

// Create inserts a new campaign with status "pending"
func (r *campaignRepository) Create(ctx context.Context, campaign *models.Campaign) error {
	query := `
		INSERT INTO scheduled_campaigns (template_id, user_id, scheduled_at, status)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		campaign.TemplateID, campaign.UserID, campaign.ScheduledAt, models.CampaignStatusPending)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	campaign.ID = int(id)
	campaign.Status = models.CampaignStatusPending
	return nil
}

// FetchDue retrieves pending campaigns whose scheduled time is at or before now,
// earliest first, ties broken by id
func (r *campaignRepository) FetchDue(ctx context.Context, now time.Time) ([]models.Campaign, error) {
	query := `
		SELECT id, template_id, user_id, scheduled_at, status, created_at
		FROM scheduled_campaigns
		WHERE status = ? AND scheduled_at <= ?
		ORDER BY scheduled_at ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, models.CampaignStatusPending, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query due campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := rows.Scan(&c.ID, &c.TemplateID, &c.UserID, &c.ScheduledAt, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return campaigns, nil
}

// MarkSent transitions a campaign to "sent". Marking an already-sent campaign
// is a no-op, not an error.
func (r *campaignRepository) MarkSent(ctx context.Context, id int) error {
	query := `UPDATE scheduled_campaigns SET status = ? WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, models.CampaignStatusSent, id); err != nil {
		return fmt.Errorf("failed to mark campaign as sent: %w", err)
	}

	return nil
}

// GetByID retrieves a campaign by ID
func (r *campaignRepository) GetByID(ctx context.Context, id int) (*models.Campaign, error) {
	query := `
		SELECT id, template_id, user_id, scheduled_at, status, created_at
		FROM scheduled_campaigns
		WHERE id = ?
		LIMIT 1
	`

	campaign := &models.Campaign{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&campaign.ID,
		&campaign.TemplateID,
		&campaign.UserID,
		&campaign.ScheduledAt,
		&campaign.Status,
		&campaign.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign by ID: %w", err)
	}

	return campaign, nil
}

// GetAll retrieves a paginated list of campaigns for a user, newest first
func (r *campaignRepository) GetAll(ctx context.Context, page, count, userID int) ([]models.CampaignListItem, error) {
	offset := (page - 1) * count

	query := `
		SELECT id, template_id, scheduled_at, status, created_at
		FROM scheduled_campaigns
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, userID, count, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []models.CampaignListItem
	for rows.Next() {
		var c models.CampaignListItem
		if err := rows.Scan(&c.ID, &c.TemplateID, &c.ScheduledAt, &c.Status, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return campaigns, nil
}
