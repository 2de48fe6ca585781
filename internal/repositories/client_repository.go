package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
)

type clientRepository struct {
	db *sql.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *sql.DB) *clientRepository {
	return &clientRepository{db: db}
}

// Create inserts a new client
func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (name, surname, email)
		VALUES (?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query, client.Name, client.Surname, client.Email)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	client.ID = int(id)
	return nil
}

// ListAll retrieves every client in a stable order
func (r *clientRepository) ListAll(ctx context.Context) ([]models.Client, error) {
	query := `
		SELECT id, name, surname, email
		FROM clients
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	var clients []models.Client
	for rows.Next() {
		var c models.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Surname, &c.Email); err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return clients, nil
}

// Delete deletes a client by ID
func (r *clientRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM clients WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrClientNotFound
	}

	return nil
}
