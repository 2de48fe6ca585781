package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/LucasFerreiradeFreitas/LevelMarketingApp/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupClientTestRepository creates a client repository with a mock database
func setupClientTestRepository(t *testing.T) (*clientRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewClientRepository(db)

	cleanup := func() {
		db.Close()
	}

	return repo, mock, cleanup
}

func TestClientRepository_Create(t *testing.T) {
	surname := "Silva"

	tests := []struct {
		name          string
		client        *models.Client
		setupMock     func(sqlmock.Sqlmock)
		expectedError bool
		expectedID    int
	}{
		{
			name: "success with surname",
			client: &models.Client{
				Name:    "Ana",
				Surname: &surname,
				Email:   "ana@example.com",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO clients`).
					WithArgs("Ana", &surname, "ana@example.com").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			expectedID: 1,
		},
		{
			name: "success without surname",
			client: &models.Client{
				Name:  "Bruno",
				Email: "bruno@example.com",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO clients`).
					WithArgs("Bruno", nil, "bruno@example.com").
					WillReturnResult(sqlmock.NewResult(2, 1))
			},
			expectedID: 2,
		},
		{
			name: "database error",
			client: &models.Client{
				Name:  "Carla",
				Email: "carla@example.com",
			},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO clients`).
					WithArgs("Carla", nil, "carla@example.com").
					WillReturnError(errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupClientTestRepository(t)
			defer cleanup()

			tt.setupMock(mock)

			ctx := context.Background()
			err := repo.Create(ctx, tt.client)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.client.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestClientRepository_ListAll(t *testing.T) {
	surname := "Silva"

	t.Run("returns clients ordered by id", func(t *testing.T) {
		repo, mock, cleanup := setupClientTestRepository(t)
		defer cleanup()

		rows := sqlmock.NewRows([]string{"id", "name", "surname", "email"}).
			AddRow(1, "Ana", surname, "ana@example.com").
			AddRow(2, "Bruno", nil, "bruno@example.com")
		mock.ExpectQuery(`SELECT (.+) FROM clients`).
			WillReturnRows(rows)

		ctx := context.Background()
		clients, err := repo.ListAll(ctx)

		assert.NoError(t, err)
		require.Len(t, clients, 2)
		assert.Equal(t, "Ana", clients[0].Name)
		require.NotNil(t, clients[0].Surname)
		assert.Equal(t, surname, *clients[0].Surname)
		assert.Nil(t, clients[1].Surname)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error", func(t *testing.T) {
		repo, mock, cleanup := setupClientTestRepository(t)
		defer cleanup()

		mock.ExpectQuery(`SELECT (.+) FROM clients`).
			WillReturnError(errors.New("database error"))

		ctx := context.Background()
		clients, err := repo.ListAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, clients)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestClientRepository_Delete(t *testing.T) {
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
				mock.ExpectExec(`DELETE FROM clients`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM clients`).
					WithArgs(99).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectedError: ErrClientNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := setupClientTestRepository(t)
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
