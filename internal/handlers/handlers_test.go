package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chicchariot/internal/config"
	"chicchariot/internal/email"
	"chicchariot/internal/storage"
	"chicchariot/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := storage.Initialize(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, storage.Migrate(db))

	stores, err := store.NewStores(db)
	require.NoError(t, err)

	cfg := &config.Config{Env: "development"}
	r := gin.New()
	SetupRoutes(r, cfg, stores, email.NewService(cfg), zerolog.Nop())
	return r, stores
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, r *gin.Engine, username, password string) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": username, "password": password})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCatalogIsPublic(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot struct {
		Items      []json.RawMessage `json:"items"`
		Categories []string          `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Len(t, snapshot.Items, 8)
	assert.Len(t, snapshot.Categories, 6)
}

func TestItemDetailUnknownID(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/catalog/items/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartRequiresLogin(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/cart", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "sagar", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignupThenCartFlow(t *testing.T) {
	r, stores := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{"username": "mira", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{"itemId": "1"})
	require.Equal(t, http.StatusOK, w.Code)

	var cart struct {
		Count    int     `json:"count"`
		Subtotal float64 `json:"subtotal"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Equal(t, 1, cart.Count)

	item, ok := stores.Catalog.ItemByID("1")
	require.True(t, ok)
	assert.Equal(t, item.Price, cart.Subtotal)
}

func TestCheckoutDecrementsStockAndClearsCart(t *testing.T) {
	r, stores := setupTestRouter(t)
	loginAs(t, r, "sagar", "123")

	w := doJSON(t, r, http.MethodPost, "/api/cart/items", gin.H{"itemId": "2"})
	require.Equal(t, http.StatusOK, w.Code)

	before, ok := stores.Catalog.StockFor("2")
	require.True(t, ok)

	w = doJSON(t, r, http.MethodPost, "/api/checkout", gin.H{
		"customer":      gin.H{"fullName": "Sagar", "phone": "555-0100", "address": "12 Lane"},
		"paymentMethod": "Cash on Delivery",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	after, _ := stores.Catalog.StockFor("2")
	assert.Equal(t, before-1, after)
	assert.Equal(t, 0, stores.Cart.Count())
	assert.Len(t, stores.Orders.List(""), 1)
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	r, _ := setupTestRouter(t)
	loginAs(t, r, "sagar", "123")

	w := doJSON(t, r, http.MethodPost, "/api/checkout", gin.H{
		"customer":      gin.H{"fullName": "Sagar", "phone": "555-0100", "address": "12 Lane"},
		"paymentMethod": "Phone Pay",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutesRejectRegularUser(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", gin.H{"username": "mira", "password": "pw"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{"name": "Shoes"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminCategoryLifecycle(t *testing.T) {
	r, _ := setupTestRouter(t)
	loginAs(t, r, "sagar", "123")

	w := doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{"name": "Shoes"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/categories", gin.H{"name": "shoes"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/categories/Shoes", gin.H{"name": "Footwear"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/categories/Footwear", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminCannotRemoveSelf(t *testing.T) {
	r, stores := setupTestRouter(t)
	loginAs(t, r, "sagar", "123")

	admins := stores.Auth.Admins()
	require.Len(t, admins, 1)

	w := doJSON(t, r, http.MethodDelete, "/api/admin/admins/"+admins[0].ID, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddReviewRequiresKnownItem(t *testing.T) {
	r, _ := setupTestRouter(t)
	loginAs(t, r, "sagar", "123")

	w := doJSON(t, r, http.MethodPost, "/api/reviews", gin.H{"itemId": "nope", "rating": 4})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/reviews", gin.H{"itemId": "1", "rating": 9, "comment": "Lovely"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/catalog/items/1/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AverageRating float64 `json:"averageRating"`
		ReviewCount   int     `json:"reviewCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5.0, resp.AverageRating)
	assert.Equal(t, 1, resp.ReviewCount)
}
