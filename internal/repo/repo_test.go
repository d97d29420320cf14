package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/storefront/internal/pg"
	basketrepo "github.com/GlebRadaev/storefront/internal/repo/basket-repo"
	discountrepo "github.com/GlebRadaev/storefront/internal/repo/discount-repo"
	productrepo "github.com/GlebRadaev/storefront/internal/repo/product-repo"
	referencerepo "github.com/GlebRadaev/storefront/internal/repo/reference-repo"
	resellerrepo "github.com/GlebRadaev/storefront/internal/repo/reseller-repo"
	userrepo "github.com/GlebRadaev/storefront/internal/repo/user-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(pg.New(mockDB), mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.IsType(t, &productrepo.Repository{}, repo.ProductRepo)
	assert.IsType(t, &basketrepo.Repository{}, repo.BasketRepo)
	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &resellerrepo.Repository{}, repo.ResellerRepo)
	assert.IsType(t, &discountrepo.Repository{}, repo.DiscountRepo)
	assert.IsType(t, &referencerepo.Repository{}, repo.ReferenceRepo)
	assert.Same(t, repo.ProductRepo, repo.StockRepo)
	assert.Same(t, repo.BasketRepo, repo.HoldRepo)
	assert.Same(t, repo.UserRepo, repo.AuthRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
