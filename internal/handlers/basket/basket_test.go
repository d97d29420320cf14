package basket

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/storefront/internal/domain"
	"github.com/GlebRadaev/storefront/pkg/auth"
)

func NewMock(t *testing.T) (*BasketHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func userCtx() context.Context {
	return auth.WithUserID(context.Background(), 42)
}

func TestGetBasket(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Priced items and rounded total",
			prepareMock: func() {
				service.EXPECT().Get(userCtx(), int64(42)).Return(&domain.BasketView{
					Items: []domain.BasketItem{{
						ProductID: 7, ProductType: "tea", Size: "L", City: "CityA", District: "District1", Emoji: "🍵",
						Quote: domain.Quote{
							Price:           decimal.RequireFromString("13.5"),
							OriginalPrice:   decimal.NewFromInt(15),
							DiscountAmount:  decimal.RequireFromString("1.5"),
							DiscountPercent: 10,
						},
					}},
					Total: decimal.RequireFromString("13.5"),
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"basket":[{"product_id":7,"type":"tea","size":"L","price":13.5,"original_price":15,"discount_percent":10,"city":"CityA","district":"District1","emoji":"🍵"}],"total":13.5}`,
		},
		{
			name: "Empty basket",
			prepareMock: func() {
				service.EXPECT().Get(userCtx(), int64(42)).Return(&domain.BasketView{Items: []domain.BasketItem{}, Total: decimal.Zero}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"basket":[],"total":0}`,
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().Get(userCtx(), int64(42)).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/basket", nil).WithContext(userCtx())
			w := httptest.NewRecorder()

			handler.GetBasket(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestClearBasket(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Cleared",
			prepareMock: func() {
				service.EXPECT().Clear(userCtx(), int64(42)).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service error",
			prepareMock: func() {
				service.EXPECT().Clear(userCtx(), int64(42)).Return(errors.New("rolled back"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/basket/clear", nil).WithContext(userCtx())
			w := httptest.NewRecorder()

			handler.ClearBasket(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.JSONEq(t, `{"success":true}`, w.Body.String())
			}
		})
	}
}

func TestAddToBasket(t *testing.T) {
	handler, service := NewMock(t)
	expiresAt := time.Date(2026, 10, 15, 12, 15, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Hold created",
			body: `{"product_id":7}`,
			prepareMock: func() {
				service.EXPECT().Add(userCtx(), int64(42), 7).Return(expiresAt, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"success":true,"expires_at":"2026-10-15T12:15:00Z"}`,
		},
		{
			name:         "Malformed body",
			body:         `{"product_id":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"invalid request body"}`,
		},
		{
			name:         "Missing product id",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"success":false,"error":"invalid request body"}`,
		},
		{
			name: "Unknown product",
			body: `{"product_id":8}`,
			prepareMock: func() {
				service.EXPECT().Add(userCtx(), int64(42), 8).Return(time.Time{}, domain.ErrProductNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"success":false,"error":"Product not found or out of stock"}`,
		},
		{
			name: "Last unit taken concurrently",
			body: `{"product_id":9}`,
			prepareMock: func() {
				service.EXPECT().Add(userCtx(), int64(42), 9).Return(time.Time{}, domain.ErrOutOfStock)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"success":false,"error":"Product out of stock"}`,
		},
		{
			name: "Service error",
			body: `{"product_id":10}`,
			prepareMock: func() {
				service.EXPECT().Add(userCtx(), int64(42), 10).Return(time.Time{}, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"success":false,"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/basket/add", strings.NewReader(tt.body)).WithContext(userCtx())
			w := httptest.NewRecorder()

			handler.AddToBasket(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}
