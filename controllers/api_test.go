package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloud-tech1/food-finds-clone/configs"
	"github.com/cloud-tech1/food-finds-clone/repository"
	"github.com/cloud-tech1/food-finds-clone/routes"
	"github.com/cloud-tech1/food-finds-clone/session"
	"github.com/cloud-tech1/food-finds-clone/storage"
)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewStore(storage.NewMemory())
	rr := repository.NewRestaurantRepository()
	or := repository.NewOrderRepository()
	configs.SeedCatalog(rr, or)

	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{Session: store, Restaurants: rr, Orders: or})
	return r, store
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

func dataField(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var env struct {
		OK   bool           `json:"ok"`
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.OK)
	return env.Data
}

func TestCartMutationsRequireLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"menuItemId": 1})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// reading the cart is public
	w = doJSON(t, r, http.MethodGet, "/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderFlow(t *testing.T) {
	r, store := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "a@b.c"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User", dataField(t, w)["name"]) // default display name

	// two adds of the same item merge
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"menuItemId": 1})
	w = doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"menuItemId": 1})
	require.Equal(t, http.StatusOK, w.Code)
	cart := dataField(t, w)
	assert.Equal(t, float64(2), cart["count"])
	assert.Equal(t, 640.0, cart["total"])

	// unknown menu item is a 404
	w = doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"menuItemId": 999})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/cart/items/1", gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(3), dataField(t, w)["count"])

	w = doJSON(t, r, http.MethodPost, "/checkout/quote", gin.H{"promoCode": "SAVE20"})
	require.Equal(t, http.StatusOK, w.Code)
	quote := dataField(t, w)
	assert.Equal(t, 960.0, quote["subtotal"]) // 3 x 320

	w = doJSON(t, r, http.MethodPost, "/checkout", gin.H{"address": "42 Park Lane", "promoCode": ""})
	require.Equal(t, http.StatusCreated, w.Code)
	order := dataField(t, w)
	assert.Equal(t, "ORD005", order["id"])
	assert.Equal(t, "pending", order["status"])
	assert.Equal(t, "Spice Garden", order["restaurantName"])

	// checkout emptied the cart
	assert.Equal(t, 0, store.CartCount())

	w = doJSON(t, r, http.MethodGet, "/orders?status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "ORD005", list.Data[0]["id"])
}

func TestLogoutClearsSession(t *testing.T) {
	r, store := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/auth/signup", gin.H{"name": "Priya", "email": "p@q.r", "phone": "555"})
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"menuItemId": 2})
	require.Equal(t, 1, store.CartCount())

	w := doJSON(t, r, http.MethodPost, "/auth/logout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, 0, store.CartCount())

	w = doJSON(t, r, http.MethodGet, "/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRestaurantSearchAndDetail(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/restaurants?q=pizza", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Pizza Palace", list.Data[0]["name"])

	w = doJSON(t, r, http.MethodGet, "/restaurants/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := dataField(t, w)
	categories := detail["categories"].([]any)
	assert.Equal(t, "All", categories[0])

	w = doJSON(t, r, http.MethodGet, "/restaurants/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	stats := dataField(t, w)
	assert.Equal(t, float64(6), stats["totalRestaurants"])
	assert.Equal(t, 1950.0, stats["totalRevenue"])

	w = doJSON(t, r, http.MethodPost, "/admin/restaurants", gin.H{"name": "Noodle House", "cuisine": "Chinese"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/admin/orders/ORD001/status", gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmed", dataField(t, w)["status"])

	w = doJSON(t, r, http.MethodPatch, "/admin/orders/ORD001/status", gin.H{"status": "shipped"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/admin/restaurants/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSessionSurvivesRestart(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mem := storage.NewMemory()

	store := session.NewStore(mem)
	rr := repository.NewRestaurantRepository()
	or := repository.NewOrderRepository()
	configs.SeedCatalog(rr, or)
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{Session: store, Restaurants: rr, Orders: or})

	doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "a@b.c", "name": "A"})
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"menuItemId": 1})
	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"menuItemId": 4})

	// a new store over the same durable storage is a process restart
	reloaded := session.NewStore(mem)
	assert.True(t, reloaded.IsAuthenticated())
	assert.Equal(t, 2, reloaded.CartCount())
	assert.Equal(t, 380.0, reloaded.CartTotal())
}
