package models

import "time"

// EmailTemplate represents an email template with placeholder tokens
type EmailTemplate struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	BodyHTML  string    `json:"body_html"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// CreateEmailTemplateRequest represents a request to create an email template
type CreateEmailTemplateRequest struct {
	Title    string `json:"title"`
	BodyHTML string `json:"body_html"`
}

// EmailTemplateListItem represents an email template in a list response
type EmailTemplateListItem struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
