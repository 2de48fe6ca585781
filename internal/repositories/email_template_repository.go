package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
)

type emailTemplateRepository struct {
	db *sql.DB
}

// NewEmailTemplateRepository creates a new email template repository
func NewEmailTemplateRepository(db *sql.DB) *emailTemplateRepository {
	return &emailTemplateRepository{db: db}
}

// Create inserts a new email template
func (r *emailTemplateRepository) Create(ctx context.Context, template *models.EmailTemplate) error {
	query := `
		INSERT INTO email_templates (user_id, title, body_html)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, template.UserID, template.Title, template.BodyHTML)
	if err != nil {
		return fmt.Errorf("failed to create email template: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	template.ID = int(id)
	return nil
}

// GetByID retrieves an email template by ID
func (r *emailTemplateRepository) GetByID(ctx context.Context, id int) (*models.EmailTemplate, error) {
	query := `
		SELECT id, user_id, title, body_html, created_at
		FROM email_templates
		WHERE id = ?
		LIMIT 1
	`

	template := &models.EmailTemplate{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&template.ID,
		&template.UserID,
		&template.Title,
		&template.BodyHTML,
		&template.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get email template by ID: %w", err)
	}

	return template, nil
}

// ExistsByID checks if an email template exists with the given ID
func (r *emailTemplateRepository) ExistsByID(ctx context.Context, id int) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM email_templates WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check ID existence: %w", err)
	}

	return exists, nil
}

// GetAllByUser retrieves the templates owned by a user, newest first
func (r *emailTemplateRepository) GetAllByUser(ctx context.Context, userID int) ([]models.EmailTemplateListItem, error) {
	query := `
		SELECT id, title, created_at
		FROM email_templates
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query email templates: %w", err)
	}
	defer rows.Close()

	var templates []models.EmailTemplateListItem
	for rows.Next() {
		var template models.EmailTemplateListItem
		if err := rows.Scan(&template.ID, &template.Title, &template.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan email template: %w", err)
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return templates, nil
}

// Delete deletes an email template by ID
func (r *emailTemplateRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM email_templates WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete email template: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrTemplateNotFound
	}

	return nil
}
