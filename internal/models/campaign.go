package models

import "time"

// CampaignStatus represents the delivery status of a campaign
type CampaignStatus string

const (
	CampaignStatusPending CampaignStatus = "pending"
	CampaignStatusSent    CampaignStatus = "sent"
)

// Campaign represents a scheduled request to send one template to all clients
type Campaign struct {
	ID          int            `json:"id"`
	TemplateID  int            `json:"template_id"`
	UserID      int            `json:"user_id"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at,omitempty"`
}

// ScheduleCampaignRequest represents a request to schedule a campaign
type ScheduleCampaignRequest struct {
	TemplateID  int    `json:"template_id"`
	ScheduledAt string `json:"scheduled_at"` // RFC3339
}

// DispatchNowRequest represents a request to fire a campaign immediately
type DispatchNowRequest struct {
	TemplateID int `json:"template_id"`
}

// CampaignListItem represents a campaign in a list response
type CampaignListItem struct {
	ID          int            `json:"id"`
	TemplateID  int            `json:"template_id"`
	ScheduledAt time.Time      `json:"scheduled_at"`
	Status      CampaignStatus `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
}
