package basketrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/internal/pg"
	"github.com/GlebRadaev/storefront/pkg/basket"
)

var (
	lockSQL    = regexp.QuoteMeta(`SELECT basket FROM users WHERE user_id = $1 FOR UPDATE`)
	releaseSQL = regexp.QuoteMeta(releaseQuery)
	reserveSQL = regexp.QuoteMeta(reserveQuery)
	saveSQL    = regexp.QuoteMeta(`UPDATE users SET basket = $1 WHERE user_id = $2`)
	upsertSQL  = regexp.QuoteMeta(`INSERT INTO users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	t.Cleanup(mockDB.Close)
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

// newTxRepo wires the repository to a real transaction manager over pgxmock so
// that BEGIN, COMMIT and ROLLBACK are observable.
func newTxRepo(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)

	return New(pg.New(mockDB), pg.NewTXManager(mockDB)), mockDB
}

func runInTx(ctx context.Context, fn pg.TransactionalFn) error {
	return fn(ctx)
}

func TestRepository_GetBasket(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`SELECT basket FROM users WHERE user_id = $1`)

	tests := []struct {
		name      string
		userID    int64
		mockSetup func()
		expectErr bool
		result    string
	}{
		{
			name:   "Stored basket",
			userID: 42,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows([]string{"basket"}).AddRow("5:M:20.0:CityA:District1:1700000000"))
			},
			result: "5:M:20.0:CityA:District1:1700000000",
		},
		{
			name:   "Unknown user has empty basket",
			userID: 43,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(43)).WillReturnError(pgx.ErrNoRows)
			},
			result: "",
		},
		{
			name:   "Database error",
			userID: 44,
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(int64(44)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBasket(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Clear(t *testing.T) {
	repo, mock, tx := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		released  int
	}{
		{
			name: "Releases every hold then empties the basket",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows([]string{"basket"}).
						AddRow("5:M:20.0:CityA:District1:1700000000,7:L:15.0:CityA:District1:1700000000,9:broken"))
				mock.ExpectExec(releaseSQL).WithArgs(5).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(releaseSQL).WithArgs(7).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(releaseSQL).WithArgs(9).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectExec(saveSQL).WithArgs("", int64(42)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			released: 3,
		},
		{
			name: "Unknown user clears nothing",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mock.ExpectQuery(lockSQL).WithArgs(int64(42)).WillReturnError(pgx.ErrNoRows)
			},
			released: 0,
		},
		{
			name: "Empty basket clears nothing",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows([]string{"basket"}).AddRow(""))
			},
			released: 0,
		},
		{
			name: "Release error stops the clear",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(runInTx)
				mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows([]string{"basket"}).AddRow("5:M:20.0:CityA:District1:1700000000"))
				mock.ExpectExec(releaseSQL).WithArgs(5).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			released, err := repo.Clear(context.Background(), 42)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.released, released)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ClearIsAtomic(t *testing.T) {
	t.Run("Commit after release and clear", func(t *testing.T) {
		repo, mock := newTxRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"basket"}).
				AddRow("5:M:20.0:CityA:District1:1700000000,7:L:15.0:CityA:District1:1700000000"))
		mock.ExpectExec(releaseSQL).WithArgs(5).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(releaseSQL).WithArgs(7).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(saveSQL).WithArgs("", int64(42)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		released, err := repo.Clear(context.Background(), 42)

		assert.NoError(t, err)
		assert.Equal(t, 2, released)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure between release and clear rolls everything back", func(t *testing.T) {
		repo, mock := newTxRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"basket"}).
				AddRow("5:M:20.0:CityA:District1:1700000000,7:L:15.0:CityA:District1:1700000000"))
		mock.ExpectExec(releaseSQL).WithArgs(5).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(releaseSQL).WithArgs(7).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(saveSQL).WithArgs("", int64(42)).WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		released, err := repo.Clear(context.Background(), 42)

		assert.Error(t, err)
		assert.Equal(t, 0, released)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second clear of the same basket releases nothing", func(t *testing.T) {
		repo, mock := newTxRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"basket"}).AddRow("5:M:20.0:CityA:District1:1700000000"))
		mock.ExpectExec(releaseSQL).WithArgs(5).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(saveSQL).WithArgs("", int64(42)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"basket"}).AddRow(""))
		mock.ExpectCommit()

		first, err := repo.Clear(context.Background(), 42)
		require.NoError(t, err)
		second, err := repo.Clear(context.Background(), 42)
		require.NoError(t, err)

		assert.Equal(t, 1, first)
		assert.Equal(t, 0, second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Add(t *testing.T) {
	now := time.Unix(1700001000, 0)
	entry := basket.NewEntry(5, "M", 20, "CityA", "District1", now)

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr error
		released  int
	}{
		{
			name: "Reserves and appends to a fresh basket",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(upsertSQL).WithArgs(int64(42)).WillReturnResult(pgxmock.NewResult("INSERT", 1))
				mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows([]string{"basket"}).AddRow(""))
				mock.ExpectExec(reserveSQL).WithArgs(5).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(saveSQL).WithArgs("5:M:20:CityA:District1:1700001000", int64(42)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Expired and broken holds are released before reserving",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(upsertSQL).WithArgs(int64(42)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows([]string{"basket"}).
						AddRow("1:M:1:a:b:1700000000,2:M:1:a:b:1700000900,3:M"))
				mock.ExpectExec(releaseSQL).WithArgs(1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(releaseSQL).WithArgs(3).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(reserveSQL).WithArgs(5).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(saveSQL).WithArgs("2:M:1:a:b:1700000900,5:M:20:CityA:District1:1700001000", int64(42)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
			},
			released: 2,
		},
		{
			name: "Sold out product is rejected and nothing is kept",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectExec(upsertSQL).WithArgs(int64(42)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
				mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
					WillReturnRows(pgxmock.NewRows([]string{"basket"}).AddRow("1:M:1:a:b:1700000000"))
				mock.ExpectExec(releaseSQL).WithArgs(1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec(reserveSQL).WithArgs(5).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
				mock.ExpectRollback()
			},
			expectErr: domain.ErrOutOfStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTxRepo(t)
			tt.mockSetup(mock)

			released, err := repo.Add(context.Background(), 42, entry, now, domain.DefaultHoldTTL)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.released, released)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ReleaseExpired(t *testing.T) {
	now := time.Unix(1700001000, 0)

	t.Run("Keeps live holds and releases expired ones", func(t *testing.T) {
		repo, mock := newTxRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"basket"}).
				AddRow("1:M:1:a:b:1700000000,2:M:1:a:b:1700000900"))
		mock.ExpectExec(releaseSQL).WithArgs(1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(saveSQL).WithArgs("2:M:1:a:b:1700000900", int64(42)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		released, err := repo.ReleaseExpired(context.Background(), 42, now, domain.DefaultHoldTTL)

		assert.NoError(t, err)
		assert.Equal(t, 1, released)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nothing expired leaves the basket alone", func(t *testing.T) {
		repo, mock := newTxRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
			WillReturnRows(pgxmock.NewRows([]string{"basket"}).AddRow("2:M:1:a:b:1700000900"))
		mock.ExpectCommit()

		released, err := repo.ReleaseExpired(context.Background(), 42, now, domain.DefaultHoldTTL)

		assert.NoError(t, err)
		assert.Equal(t, 0, released)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lock error", func(t *testing.T) {
		repo, mock := newTxRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(lockSQL).WithArgs(int64(42)).WillReturnError(errors.New("database error"))
		mock.ExpectRollback()

		_, err := repo.ReleaseExpired(context.Background(), 42, now, domain.DefaultHoldTTL)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindUsersWithBaskets(t *testing.T) {
	repo, mock, _ := NewMock(t)
	query := regexp.QuoteMeta(`SELECT user_id FROM users WHERE basket <> '' AND user_id > $1 ORDER BY user_id LIMIT $2`)

	t.Run("Users found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(0), 10).
			WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(int64(42)).AddRow(int64(43)))

		users, err := repo.FindUsersWithBaskets(context.Background(), 0, 10)

		assert.NoError(t, err)
		assert.Equal(t, []int64{42, 43}, users)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(int64(43), 10).WillReturnError(errors.New("database error"))

		users, err := repo.FindUsersWithBaskets(context.Background(), 43, 10)

		assert.Error(t, err)
		assert.Nil(t, users)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AddKeepsHoldReadable(t *testing.T) {
	now := time.Unix(1700001000, 0)
	entry := basket.NewEntry(7, "M", 20, "Frankfurt: Main", "Mitte, Old Town", now)
	stored := "7:M:20:Frankfurt%3A Main:Mitte%2C Old Town:1700001000"

	repo, mock := newTxRepo(t)
	mock.ExpectBegin()
	mock.ExpectExec(upsertSQL).WithArgs(int64(42)).WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery(lockSQL).WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows([]string{"basket"}).AddRow("2:M:1:a:b:1700000900"))
	mock.ExpectExec(reserveSQL).WithArgs(7).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(saveSQL).WithArgs("2:M:1:a:b:1700000900,"+stored, int64(42)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	released, err := repo.Add(context.Background(), 42, entry, now, domain.DefaultHoldTTL)

	require.NoError(t, err)
	assert.Zero(t, released)
	assert.NoError(t, mock.ExpectationsWereMet())

	live, _ := basket.Partition(basket.Parse("2:M:1:a:b:1700000900,"+stored), now, domain.DefaultHoldTTL)
	require.Len(t, live, 2, "every reserved unit has one readable hold")
	assert.Equal(t, entry, live[1])
}
