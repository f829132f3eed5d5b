package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"kidswear-backend/internal/catalog"
	handlerHttp "kidswear-backend/internal/handler/http"
	"kidswear-backend/internal/store"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context, filter catalog.ListFilter) ([]bson.M, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.M), args.Error(1)
}

func (m *MockCatalogService) GetProduct(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(bson.M), args.Error(1)
}

func (m *MockCatalogService) SeedProducts(ctx context.Context) (*catalog.SeedResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SeedResult), args.Error(1)
}

func newProductRouter(service catalog.Service) *chi.Mux {
	router := chi.NewRouter()
	handlerHttp.NewProductHandler(service).RegisterRoutes(router)
	return router
}

func TestProductHandler_handleListProducts_Success(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newProductRouter(mockService)

	id := primitive.NewObjectID()
	docs := []bson.M{{"_id": id, "title": "Boys Cotton T-Shirt"}}

	mockService.On("ListProducts", mock.Anything, catalog.ListFilter{
		Category: "Boys",
		Query:    "shirt",
		Limit:    50,
	}).Return(docs, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=Boys&q=shirt", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body []map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, id.Hex(), body[0]["id"])
	assert.NotContains(t, body[0], "_id")
	assert.Equal(t, "Boys Cotton T-Shirt", body[0]["title"])
	mockService.AssertExpectations(t)
}

func TestProductHandler_handleListProducts_LimitBounds(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "zero", query: "limit=0"},
		{name: "too_large", query: "limit=500"},
		{name: "negative", query: "limit=-5"},
		{name: "not_a_number", query: "limit=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockCatalogService)
			router := newProductRouter(mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/products?"+tt.query, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			mockService.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
		})
	}
}

func TestProductHandler_handleListProducts_DefaultLimit(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newProductRouter(mockService)

	mockService.On("ListProducts", mock.Anything, catalog.ListFilter{Limit: 50}).
		Return([]bson.M{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
	mockService.AssertExpectations(t)
}

func TestProductHandler_handleListProducts_StoreNotConfigured(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newProductRouter(mockService)

	mockService.On("ListProducts", mock.Anything, mock.Anything).
		Return(nil, store.ErrNotConfigured).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "Database not configured", body["error"])
}

func TestProductHandler_handleGetProduct_MalformedID(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newProductRouter(mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/products/not-a-valid-id", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "Invalid product id", body["error"])
	mockService.AssertNotCalled(t, "GetProduct", mock.Anything, mock.Anything)
}

func TestProductHandler_handleGetProduct_NotFound(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newProductRouter(mockService)

	id, err := primitive.ObjectIDFromHex("507f1f77bcf86cd799439011")
	require.NoError(t, err)

	mockService.On("GetProduct", mock.Anything, id).
		Return(nil, catalog.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products/507f1f77bcf86cd799439011", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "Product not found", body["error"])
}

func TestProductHandler_handleGetProduct_Success(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newProductRouter(mockService)

	id := primitive.NewObjectID()
	mockService.On("GetProduct", mock.Anything, id).
		Return(bson.M{"_id": id, "title": "Baby Romper Set", "price_bdt": 990.0}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+id.Hex(), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, id.Hex(), body["id"])
	assert.NotContains(t, body, "_id")
	assert.Equal(t, "Baby Romper Set", body["title"])
}

func TestProductHandler_handleSeedProducts_FirstRun(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newProductRouter(mockService)

	mockService.On("SeedProducts", mock.Anything).
		Return(&catalog.SeedResult{Inserted: 4}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/products/seed", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "Seeded sample products", body["message"])
	assert.Equal(t, float64(4), body["inserted"])
}

func TestProductHandler_handleSeedProducts_AlreadySeeded(t *testing.T) {
	mockService := new(MockCatalogService)
	router := newProductRouter(mockService)

	mockService.On("SeedProducts", mock.Anything).
		Return(&catalog.SeedResult{AlreadySeeded: true, Existing: 4}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/products/seed", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "Products already exist", body["message"])
	assert.Equal(t, float64(4), body["count"])
	assert.NotContains(t, body, "inserted")
}
