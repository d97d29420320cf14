package pg

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releaseSQL = `UPDATE products SET reserved = reserved - 1 WHERE id = $1 AND reserved > 0`

func NewMock(t *testing.T) (*Manager, *Conn, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return NewTXManager(mockDB), New(mockDB), mockDB
}

func TestManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		fn        func(conn *Conn) TransactionalFn
		expectErr bool
	}{
		{
			name: "commits when fn succeeds",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(releaseSQL)).WithArgs(5).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := conn.Exec(ctx, releaseSQL, 5)
					return err
				}
			},
		},
		{
			name: "rolls back when fn fails",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(releaseSQL)).WithArgs(5).WillReturnError(errors.New("boom"))
				mock.ExpectRollback()
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					_, err := conn.Exec(ctx, releaseSQL, 5)
					return err
				}
			},
			expectErr: true,
		},
		{
			name: "begin failure never runs fn",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("no connection"))
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error {
					t.Error("fn must not run without a transaction")
					return nil
				}
			},
			expectErr: true,
		},
		{
			name: "commit failure is reported",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn: func(conn *Conn) TransactionalFn {
				return func(ctx context.Context) error { return nil }
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, conn, mock := NewMock(t)
			tt.mockSetup(mock)

			err := manager.Begin(context.Background(), tt.fn(conn))

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestManager_BeginNested(t *testing.T) {
	manager, conn, mock := NewMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(releaseSQL)).WithArgs(1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(regexp.QuoteMeta(releaseSQL)).WithArgs(2).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := manager.Begin(context.Background(), func(ctx context.Context) error {
		if _, err := conn.Exec(ctx, releaseSQL, 1); err != nil {
			return err
		}
		return manager.Begin(ctx, func(ctx context.Context) error {
			_, err := conn.Exec(ctx, releaseSQL, 2)
			return err
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManager_BeginPanicRollsBack(t *testing.T) {
	manager, _, mock := NewMock(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = manager.Begin(context.Background(), func(ctx context.Context) error {
			panic("crash between release and clear")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
