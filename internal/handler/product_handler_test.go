package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"appmart/internal/model"
)

func TestProductHandler_List(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		setupMock  func(*MockProductService)
		wantStatus int
		wantCount  int
	}{
		{
			name:   "returns catalogue",
			method: http.MethodGet,
			setupMock: func(m *MockProductService) {
				m.On("List", mock.Anything).Return([]model.Product{
					{ID: 1, Name: "AI Assistant Pro", Price: decimal.RequireFromString("49.99")},
					{ID: 2, Name: "DataViz Analytics", Price: decimal.RequireFromString("79.99")},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name:   "service failure",
			method: http.MethodGet,
			setupMock: func(m *MockProductService) {
				m.On("List", mock.Anything).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "wrong method",
			method:     http.MethodPost,
			setupMock:  func(m *MockProductService) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockProductService)
			tc.setupMock(svc)
			h := NewProductHandler(svc, zerolog.Nop())

			req := httptest.NewRequest(tc.method, "/api/products", nil)
			rec := httptest.NewRecorder()
			h.List(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				var products []model.Product
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
				assert.Len(t, products, tc.wantCount)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestProductHandler_ByID(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(*MockProductService)
		wantStatus int
	}{
		{
			name: "found",
			path: "/api/products/1",
			setupMock: func(m *MockProductService) {
				m.On("GetByID", mock.Anything, 1).
					Return(&model.Product{ID: 1, Name: "AI Assistant Pro", Price: decimal.RequireFromString("49.99")}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			path: "/api/products/99",
			setupMock: func(m *MockProductService) {
				m.On("GetByID", mock.Anything, 99).Return(nil, model.ErrProductNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "non-numeric id",
			path:       "/api/products/abc",
			setupMock:  func(m *MockProductService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			path: "/api/products/1",
			setupMock: func(m *MockProductService) {
				m.On("GetByID", mock.Anything, 1).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := new(MockProductService)
			tc.setupMock(svc)
			h := NewProductHandler(svc, zerolog.Nop())

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			rec := httptest.NewRecorder()
			h.ByID(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestProductHandler_ByID_PriceWireFormat(t *testing.T) {
	svc := new(MockProductService)
	svc.On("GetByID", mock.Anything, 1).
		Return(&model.Product{ID: 1, Name: "AI Assistant Pro", Price: decimal.RequireFromString("49.99"), Rating: decimal.RequireFromString("4.8")}, nil)
	h := NewProductHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
	rec := httptest.NewRecorder()
	h.ByID(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// Money travels as a quoted decimal string, never a float.
	assert.Contains(t, rec.Body.String(), `"price":"49.99"`)
	assert.Contains(t, rec.Body.String(), `"rating":"4.8"`)
}

func TestProductHandler_ByCategory(t *testing.T) {
	svc := new(MockProductService)
	svc.On("ListByCategory", mock.Anything, "Business").
		Return([]model.Product{{ID: 2, Name: "DataViz Analytics", Category: "Business"}}, nil)
	h := NewProductHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/products/category/Business", nil)
	rec := httptest.NewRecorder()
	h.ByCategory(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []model.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 1)
	assert.Equal(t, "Business", products[0].Category)
}

func TestProductHandler_ByCategory_Missing(t *testing.T) {
	svc := new(MockProductService)
	h := NewProductHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/products/category/", nil)
	rec := httptest.NewRecorder()
	h.ByCategory(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ListByCategory", mock.Anything, mock.Anything)
}

func TestProductHandler_Featured(t *testing.T) {
	svc := new(MockProductService)
	svc.On("ListFeatured", mock.Anything).
		Return([]model.Product{{ID: 1, Name: "AI Assistant Pro", Featured: 1}}, nil)
	h := NewProductHandler(svc, zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/api/products/featured", nil)
	rec := httptest.NewRecorder()
	h.Featured(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []model.Product
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&products))
	require.Len(t, products, 1)
}
