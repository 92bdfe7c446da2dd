package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	cartapp "github.com/shopcraft/storefront/internal/cart/app"
	cartdomain "github.com/shopcraft/storefront/internal/cart/domain"
	"github.com/shopcraft/storefront/internal/storeerr"
)

type fakeCartStore struct {
	slots map[string][]byte
}

func newFakeCartStore() *fakeCartStore { return &fakeCartStore{slots: make(map[string][]byte)} }

func (f *fakeCartStore) Load(ctx context.Context, key string) ([]byte, error) {
	raw, ok := f.slots[key]
	if !ok {
		return nil, storeerr.ErrNotFound
	}
	return raw, nil
}

func (f *fakeCartStore) Save(ctx context.Context, key string, data []byte) error {
	f.slots[key] = data
	return nil
}

type fakeCartMirror struct {
	items map[string][]cartdomain.LineItem
}

func newFakeCartMirror() *fakeCartMirror {
	return &fakeCartMirror{items: make(map[string][]cartdomain.LineItem)}
}

func (f *fakeCartMirror) Save(ctx context.Context, userID string, items []cartdomain.LineItem) error {
	f.items[userID] = items
	return nil
}

func (f *fakeCartMirror) Load(ctx context.Context, userID string) ([]cartdomain.LineItem, error) {
	return f.items[userID], nil
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func newCartRouter(t *testing.T) (*gin.Engine, *fakeCartMirror) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mirror := newFakeCartMirror()
	h := NewCartHandler(cartapp.NewService(newFakeCartStore()), mirror)

	r := gin.New()
	r.GET("/cart", h.Get)
	r.POST("/cart/items", h.AddItem)
	r.PUT("/cart/items/:productID", h.SetQuantity)
	r.DELETE("/cart/items/:productID", h.RemoveItem)
	r.DELETE("/cart", h.Clear)
	r.POST("/cart/backup", h.Backup)
	r.POST("/cart/restore", h.Restore)
	return r, mirror
}

func doJSON(r *gin.Engine, method, path, session, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(headerSessionID, session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartHandlerRequiresSession(t *testing.T) {
	r, _ := newCartRouter(t)

	w := doJSON(r, http.MethodGet, "/cart", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.Equal(t, "NOT_AUTHENTICATED", env.Code)
	require.NotEmpty(t, env.Error)
}

func TestCartHandlerAddAndGet(t *testing.T) {
	r, _ := newCartRouter(t)

	w := doJSON(r, http.MethodPost, "/cart/items", "sess-1",
		`{"product_id":"p1","title":"Headphones","price":8999,"quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success)

	var cart cartResponse
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	require.Equal(t, int64(17998), cart.Total)
	require.Equal(t, "179.98", cart.TotalDisplay)
	require.Equal(t, 2, cart.ItemCount)

	w = doJSON(r, http.MethodGet, "/cart", "sess-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	require.Equal(t, int32(2), cart.Items[0].Quantity)
}

func TestCartHandlerEmptyCartHasItemsArray(t *testing.T) {
	r, _ := newCartRouter(t)

	w := doJSON(r, http.MethodGet, "/cart", "sess-1", "")
	require.Equal(t, http.StatusOK, w.Code)

	// Clients iterate items unconditionally; null would break them.
	require.Contains(t, w.Body.String(), `"items":[]`)
}

func TestCartHandlerRejectsBadBody(t *testing.T) {
	r, _ := newCartRouter(t)

	w := doJSON(r, http.MethodPost, "/cart/items", "sess-1", `{"price":100}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, "INVALID_ARGUMENT", env.Code)
}

func TestCartHandlerSetQuantityAndClear(t *testing.T) {
	r, _ := newCartRouter(t)

	doJSON(r, http.MethodPost, "/cart/items", "sess-1",
		`{"product_id":"p1","title":"Lamp","price":4200}`)

	w := doJSON(r, http.MethodPut, "/cart/items/p1", "sess-1", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	var cart cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Equal(t, 5, cart.ItemCount)

	w = doJSON(r, http.MethodDelete, "/cart", "sess-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Zero(t, cart.ItemCount)
	require.Empty(t, cart.Items)
}

func TestCartBackupRestore(t *testing.T) {
	r, mirror := newCartRouter(t)

	add := httptest.NewRequest(http.MethodPost, "/cart/items",
		strings.NewReader(`{"product_id":"p1","title":"Mug","price":1850,"quantity":3}`))
	add.Header.Set("Content-Type", "application/json")
	add.Header.Set(headerUserID, "u1")
	add.Header.Set(headerSessionID, "sess-a")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, add)
	require.Equal(t, http.StatusOK, w.Code)

	backup := httptest.NewRequest(http.MethodPost, "/cart/backup", nil)
	backup.Header.Set(headerUserID, "u1")
	backup.Header.Set(headerSessionID, "sess-a")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, backup)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, mirror.items["u1"], 1)

	// Restore into a fresh session on another device.
	restore := httptest.NewRequest(http.MethodPost, "/cart/restore", nil)
	restore.Header.Set(headerUserID, "u1")
	restore.Header.Set(headerSessionID, "sess-b")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, restore)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	var cart cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	require.Len(t, cart.Items, 1)
	require.Equal(t, int32(3), cart.Items[0].Quantity)
	require.Equal(t, int64(5550), cart.Total)
}
