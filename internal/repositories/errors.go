// Package repositories provides MySQL data access for the application
package repositories

import "errors"

// Sentinel errors for not-found conditions, matched with errors.Is
var (
	ErrTemplateNotFound = errors.New("email template not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrClientNotFound   = errors.New("client not found")
)
