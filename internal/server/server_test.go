package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"velocity-shop/internal/client"
	"velocity-shop/internal/config"
	"velocity-shop/internal/dto"
	"velocity-shop/internal/model"
	"velocity-shop/internal/repository"
	"velocity-shop/internal/server"
	"velocity-shop/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T, allowOrigins ...string) http.Handler {
	t.Helper()

	store, err := client.OpenStore(context.Background(), config.Store{
		Driver:      config.StoreDriverSqlite,
		DatabaseURL: ":memory:",
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })

	srv := server.NewServer(
		quietLogger(),
		allowOrigins,
		service.NewUserService(repository.NewUserRepository()),
		service.NewProductService(repository.NewProductRepository()),
		service.NewCartService(store.Cart),
		service.NewOrderService(store.Orders, store.Cart),
	)
	return srv.Handler()
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestLogin(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodPost, "/api/auth/login", `{"username":"user2","password":"user@2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"success":true,"userId":"user2","username":"user2","message":"Login successful"}`,
		rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/auth/login", `{"username":"user1","password":"user@2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user1", decode[dto.LoginResponse](t, rec).UserID)

	rec = do(t, h, http.MethodPost, "/api/auth/login", `{"username":"USER1","password":"user@1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail":"Invalid credentials"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, "/api/auth/login", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid req body", decode[dto.ErrorResponse](t, rec).Detail)
}

func TestProducts(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]model.Product](t, rec), 6)

	rec = do(t, h, http.MethodGet, "/api/products?category=men", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, p := range decode[[]model.Product](t, rec) {
		assert.Equal(t, model.CategoryWomen, p.Category)
	}

	rec = do(t, h, http.MethodGet, "/api/products?sort=price-asc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var prices []float64
	for _, p := range decode[[]model.Product](t, rec) {
		prices = append(prices, p.Price)
	}
	assert.Equal(t, []float64{100, 120, 160, 35, 65, 85}, prices)

	rec = do(t, h, http.MethodGet, "/api/products?search=zz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetProduct(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/products/prod1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[model.Product](t, rec)
	assert.Equal(t, "Air Zoom Pegasus", p.Name)
	assert.Equal(t, 120.0, p.Price)

	rec = do(t, h, http.MethodGet, "/api/products/nonexistent", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Product not found"}`, rec.Body.String())
}

func addToCart(t *testing.T, h http.Handler, userID, productID string) {
	t.Helper()

	body := `{"userId":"` + userID + `","productId":"` + productID +
		`","name":"Test Product","price":100,"quantity":1,"size":"M","image":"test.jpg"}`
	rec := do(t, h, http.MethodPost, "/api/cart/add", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Added to cart"}`, rec.Body.String())
}

func TestCartRoundTrip(t *testing.T) {
	h := newTestServer(t)

	addToCart(t, h, "user1", "prod1")

	rec := do(t, h, http.MethodGet, "/api/cart/user1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	rec = do(t, h, http.MethodGet, "/api/cart/user2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	raw := decode[[]map[string]any](t, rec)
	require.Len(t, raw, 1)
	assert.NotContains(t, raw[0], "_id")
	assert.Equal(t, "user1", raw[0]["userId"])
	itemID := raw[0]["id"].(string)

	rec = do(t, h, http.MethodPut, "/api/cart/"+itemID, `{"quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	items := decode[[]model.CartItem](t, do(t, h, http.MethodGet, "/api/cart/user2", ""))
	require.Len(t, items, 1)
	assert.Equal(t, model.CartItem{
		ID:        itemID,
		UserID:    "user1",
		ProductID: "prod1",
		Name:      "Test Product",
		Price:     100,
		Quantity:  3,
		Size:      "M",
		Image:     "test.jpg",
	}, items[0])

	rec = do(t, h, http.MethodPut, "/api/cart/missing", `{"quantity":3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Item not found"}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/cart/"+itemID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/cart/"+itemID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Item not found"}`, rec.Body.String())
}

func TestCart_OtherUsersAreNotSwapped(t *testing.T) {
	h := newTestServer(t)

	addToCart(t, h, "user3", "prod2")

	items := decode[[]model.CartItem](t, do(t, h, http.MethodGet, "/api/cart/user3", ""))
	require.Len(t, items, 1)
	assert.Equal(t, "prod2", items[0].ProductID)
}

func TestCreateOrder_ClearsSubmittingUsersStoredCart(t *testing.T) {
	h := newTestServer(t)

	addToCart(t, h, "user1", "prod1")
	addToCart(t, h, "user2", "prod2")

	body := `{"userId":"user1","items":[{"productId":"prod1","quantity":1}],"total":110,` +
		`"shippingInfo":{"address":"1 Main St"},"paymentInfo":{"cardNumber":"4111"}}`
	rec := do(t, h, http.MethodPost, "/api/orders", body)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[dto.OrderResponse](t, rec)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.OrderID)

	// user2's view shows what is stored under user1: now empty
	items := decode[[]model.CartItem](t, do(t, h, http.MethodGet, "/api/cart/user2", ""))
	assert.Empty(t, items)

	// user1's view shows user2's stored cart, untouched
	items = decode[[]model.CartItem](t, do(t, h, http.MethodGet, "/api/cart/user1", ""))
	require.Len(t, items, 1)
	assert.Equal(t, "user2", items[0].UserID)

	second := decode[dto.OrderResponse](t, do(t, h, http.MethodPost, "/api/orders", body))
	assert.NotEqual(t, resp.OrderID, second.OrderID)
}

func TestCORS(t *testing.T) {
	t.Run("allow all echoes the origin", func(t *testing.T) {
		h := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight", func(t *testing.T) {
		h := newTestServer(t)

		req := httptest.NewRequest(http.MethodOptions, "/api/cart/abc", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPut)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
	})

	t.Run("restricted origins", func(t *testing.T) {
		h := newTestServer(t, "http://shop.example")

		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.Header.Set("Origin", "http://shop.example")
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "http://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

type brokenCartService struct {
	service.CartService
}

func (brokenCartService) ListByUser(ctx context.Context, userID string) ([]*model.CartItem, error) {
	return nil, errors.New("connection refused")
}

func TestStoreFailureIsInternalError(t *testing.T) {
	srv := server.NewServer(
		quietLogger(),
		nil,
		service.NewUserService(repository.NewUserRepository()),
		service.NewProductService(repository.NewProductRepository()),
		brokenCartService{},
		nil,
	)

	rec := do(t, srv.Handler(), http.MethodGet, "/api/cart/user3", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	h := newTestServer(t)

	rec := do(t, h, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())
}
