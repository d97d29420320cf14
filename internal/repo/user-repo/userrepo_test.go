package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/storefront/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("SELECT user_id, basket, balance FROM users WHERE user_id = $1")

	tests := []struct {
		name      string
		userID    int64
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:   "User found",
			userID: 42,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "basket", "balance"}).
					AddRow(int64(42), "5:M:20.0:CityA:District1:1700000000", 150.5)
				mock.ExpectQuery(query).WithArgs(int64(42)).WillReturnRows(rows)
			},
			result: &domain.User{
				ID:      42,
				Basket:  "5:M:20.0:CityA:District1:1700000000",
				Balance: 150.5,
			},
		},
		{
			name:   "User not found",
			userID: 43,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(43)).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:   "Database error",
			userID: 44,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(44)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Ensure(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "New user",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(int64(42)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Existing user is left alone",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(int64(42)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(int64(42)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Ensure(context.Background(), 42)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
