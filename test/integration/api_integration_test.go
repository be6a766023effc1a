package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"appmart/internal/handler"
	"appmart/internal/model"
	"appmart/internal/router"
	"appmart/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, testDB *TestDB) http.Handler {
	t.Helper()

	logger := zerolog.Nop()

	productService := service.NewProductService(testDB.Store, nil, logger)
	orderService := service.NewOrderService(testDB.Store, logger)
	authService := service.NewAuthService(testDB.Store, logger)

	productHandler := handler.NewProductHandler(productService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)

	return router.New(productHandler, orderHandler, authHandler, logger)
}

func checkoutPayload(total string) []byte {
	payload := map[string]interface{}{
		"firstName":  "Jane",
		"lastName":   "Doe",
		"email":      "jane@example.com",
		"cardNumber": "4242424242424242",
		"expDate":    "12/27",
		"cvv":        "123",
		"items": []map[string]interface{}{
			{"id": 1, "name": "AI Assistant Pro", "price": "49.99", "quantity": 1},
		},
		"subtotal": "49.99",
		"tax":      "3.4993",
		"total":    total,
	}
	body, _ := json.Marshal(payload)
	return body
}

func TestProductAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("GET /api/products returns the full catalogue", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Store)

		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		assert.Len(t, products, 6)
	})

	t.Run("GET /api/products/featured returns featured only", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Store)

		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/featured", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Equal(t, 1, p.Featured)
		}
	})

	t.Run("GET /api/products/category/{category} filters", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Store)

		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/category/Business", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var products []model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&products))
		require.NotEmpty(t, products)
		for _, p := range products {
			assert.Equal(t, "Business", p.Category)
		}
	})

	t.Run("GET /api/products/{id} returns specific product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Store)

		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/1", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var product model.Product
		require.NoError(t, json.NewDecoder(w.Body).Decode(&product))
		assert.Equal(t, 1, product.ID)
		assert.Equal(t, "AI Assistant Pro", product.Name)
	})

	t.Run("GET /api/products/{id} returns 404 for unknown product", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/products/999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GET /health returns 200", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestOrderAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("POST /api/orders places an order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Store)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(checkoutPayload("53.4893")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var confirmation model.OrderConfirmation
		require.NoError(t, json.NewDecoder(w.Body).Decode(&confirmation))
		assert.Equal(t, model.OrderStatusCompleted, confirmation.Status)
		assert.True(t, confirmation.Total.Equal(decimal.RequireFromString("53.4893")))
	})

	t.Run("POST /api/orders rejects a tampered total", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Store)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(checkoutPayload("0.01")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var count int
		require.NoError(t, testDB.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM orders").Scan(&count))
		assert.Zero(t, count)
	})

	t.Run("POST /api/orders rejects unknown products", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(checkoutPayload("53.4893")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "does not exist")
	})

	t.Run("GET /api/orders/{id} returns order with items", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		SeedCatalogue(t, testDB.Store)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewBuffer(checkoutPayload("53.4893")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)

		var confirmation model.OrderConfirmation
		require.NoError(t, json.NewDecoder(w.Body).Decode(&confirmation))

		w = httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/1", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var detail model.OrderDetail
		require.NoError(t, json.NewDecoder(w.Body).Decode(&detail))
		assert.Equal(t, confirmation.OrderID, detail.ID)
		require.Len(t, detail.Items, 1)
		assert.Equal(t, 1, detail.Items[0].ProductID)
	})

	t.Run("GET /api/orders/{id} returns 404 for unknown order", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/42", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAuthAPI_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		server.ServeHTTP(w, req)
		return w
	}

	t.Run("register, duplicate, login", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := post("/api/register", `{"username": "alice", "password": "secret123"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.NotContains(t, w.Body.String(), "secret123")

		w = post("/api/register", `{"username": "alice", "password": "secret123"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Username already exists")

		w = post("/api/login", `{"username": "alice", "password": "secret123"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var user model.User
		require.NoError(t, json.NewDecoder(w.Body).Decode(&user))
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("wrong password returns 401", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := post("/api/register", `{"username": "bob", "password": "secret123"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = post("/api/login", `{"username": "bob", "password": "wrong-pass"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stored password is a bcrypt hash", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		w := post("/api/register", `{"username": "carol", "password": "secret123"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		var stored string
		require.NoError(t, testDB.Pool.QueryRow(context.Background(),
			"SELECT password FROM users WHERE username = $1", "carol",
		).Scan(&stored))
		assert.NotEqual(t, "secret123", stored)
		assert.Contains(t, stored, "$2a$")
	})
}

func TestCORS_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	server := setupTestServer(t, testDB)

	t.Run("OPTIONS request returns CORS headers", func(t *testing.T) {
		w := httptest.NewRecorder()
		server.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/products", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "GET")
	})
}
