package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/storefront/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestGetBalance(t *testing.T) {
	service, repo := NewMock(t)
	ctx := context.Background()

	tests := []struct {
		name            string
		userID          int64
		prepareMock     func()
		expectedBalance float64
		expectedError   bool
	}{
		{
			name:   "Stored balance",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, int64(1)).Return(&domain.User{ID: 1, Balance: 42.5}, nil)
			},
			expectedBalance: 42.5,
		},
		{
			name:   "Unknown user has zero balance",
			userID: 2,
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, int64(2)).Return(nil, nil)
			},
			expectedBalance: 0,
		},
		{
			name:   "Repository error",
			userID: 3,
			prepareMock: func() {
				repo.EXPECT().FindByID(ctx, int64(3)).Return(nil, errors.New("database error"))
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			balance, err := service.GetBalance(ctx, tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectedBalance, balance)
		})
	}
}
