package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEmailTemplateTestRepository creates an email template repository with a mock database
func setupEmailTemplateTestRepository(t *testing.T) (*emailTemplateRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewEmailTemplateRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestEmailTemplateRepository_Create(t *testing.T) {
	tests := []struct {
		name          string
		template      *models.EmailTemplate
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name: "success",
			template: &models.EmailTemplate{
				UserID:   100,
				Title:    "Welcome",
				BodyHTML: "<p>Hello {name}</p>",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO email_templates`).
					WithArgs(100, "Welcome", "<p>Hello {name}</p>").
					WillReturnResult(sqlmock.NewResult(3, 1))
			},
			expectedID: 3,
		},
		{
			name: "database error",
			template: &models.EmailTemplate{
				UserID:   100,
				Title:    "Welcome",
				BodyHTML: "<p>Hello {name}</p>",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO email_templates`).
					WithArgs(100, "Welcome", "<p>Hello {name}</p>").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEmailTemplateTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			ctx := context.Background()
			err := repo.Create(ctx, tt.template)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.template.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmailTemplateRepository_GetByID(t *testing.T) {
	createdAt := time.Now()

	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "user_id", "title", "body_html", "created_at"}).
					AddRow(1, 100, "Welcome", "<p>Hello {name}</p>", createdAt)
				mock.ExpectQuery(`SELECT (.+) FROM email_templates`).
					WithArgs(1).
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM email_templates`).
					WithArgs(99).
					WillReturnError(sql.ErrNoRows)
			},
			expectedError: ErrTemplateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEmailTemplateTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			ctx := context.Background()
			template, err := repo.GetByID(ctx, tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, template)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, template)
				assert.Equal(t, tt.id, template.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmailTemplateRepository_ExistsByID(t *testing.T) {
	tests := []struct {
		name     string
		id       int
		exists   bool
		expected bool
	}{
		{name: "exists", id: 1, exists: true, expected: true},
		{name: "does not exist", id: 99, exists: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEmailTemplateTestRepository(t)
			defer cleanup()

			rows := sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists)
			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs(tt.id).
				WillReturnRows(rows)

			ctx := context.Background()
			exists, err := repo.ExistsByID(ctx, tt.id)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEmailTemplateRepository_Delete(t *testing.T) {
	tests := []struct {
		name          string
		id            int
		setupMock     func(sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "success",
			id:   1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM email_templates`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM email_templates`).
					WithArgs(99).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: ErrTemplateNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupEmailTemplateTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			ctx := context.Background()
			err := repo.Delete(ctx, tt.id)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
