package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopbot/internal/domain"
)

var userRowColumns = []string{
	"id", "external_id", "display_name", "username", "phone_number",
	"language", "active", "created_at", "updated_at",
}

func TestUserRepo_GetOrCreate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		setup         func(mock sqlmock.Sqlmock)
		expectedNew   bool
		expectedPhone string
		expectedError bool
	}{
		{
			name: "new user",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO users").
					WithArgs(int64(500), "Ali", "ali", "uz").
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow(1, 500, "Ali", "ali", "", "uz", true, now, now))
			},
			expectedNew: true,
		},
		{
			name: "existing user",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO users").
					WithArgs(int64(500), "Ali", "ali", "uz").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectQuery("SELECT (.+) FROM users WHERE external_id = \\$1").
					WithArgs(int64(500)).
					WillReturnRows(sqlmock.NewRows(userRowColumns).
						AddRow(1, 500, "Ali", "ali", "+998901234567", "ru", true, now, now))
			},
			expectedNew:   false,
			expectedPhone: "+998901234567",
		},
		{
			name: "database error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO users").
					WithArgs(int64(500), "Ali", "ali", "uz").
					WillReturnError(sql.ErrConnDone)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)
			repo := NewUserRepo(db)

			user, isNew, err := repo.GetOrCreate(context.Background(), &domain.User{
				ExternalID:  500,
				DisplayName: "Ali",
				Username:    "ali",
			})

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedNew, isNew)
				assert.Equal(t, int64(500), user.ExternalID)
				assert.Equal(t, tt.expectedPhone, user.PhoneNumber)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_GetByExternalID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE external_id = \\$1").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err = NewUserRepo(db).GetByExternalID(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_SetPhone(t *testing.T) {
	tests := []struct {
		name        string
		affected    int64
		expectedErr error
	}{
		{name: "phone stored", affected: 1, expectedErr: nil},
		{name: "unknown user", affected: 0, expectedErr: domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec("UPDATE users SET phone_number").
				WithArgs(int64(500), "+998901234567").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err = NewUserRepo(db).SetPhone(context.Background(), 500, "+998901234567")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepo_SetLanguage(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE users SET language").
		WithArgs(int64(500), "ru").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = NewUserRepo(db).SetLanguage(context.Background(), 500, domain.LangRU)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_ToggleActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("UPDATE users SET active = NOT active").
		WithArgs(int64(500)).
		WillReturnRows(sqlmock.NewRows([]string{"active"}).AddRow(false))
	mock.ExpectQuery("UPDATE users SET active = NOT active").
		WithArgs(int64(501)).
		WillReturnError(sql.ErrNoRows)

	repo := NewUserRepo(db)

	active, err := repo.ToggleActive(context.Background(), 500)
	assert.NoError(t, err)
	assert.False(t, active)

	_, err = repo.ToggleActive(context.Background(), 501)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
