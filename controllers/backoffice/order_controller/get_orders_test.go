package order_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func newOrderRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	config.RedisClient = rdb

	router := gin.New()
	router.GET("/backoffice/orders", GetBackofficeOrders)
	router.GET("/backoffice/orders/:id", GetBackofficeOrderByID)
	return router
}

func storeOrder(t *testing.T, order models.Order) {
	t.Helper()
	raw, err := json.Marshal(order)
	require.NoError(t, err)
	require.NoError(t, config.RedisClient.Set(config.Ctx, orderKeyPrefix+order.ID, raw, 0).Err())
}

func testOrder(id, customer, recipient string, placedAt time.Time) models.Order {
	return models.Order{
		ID:            id,
		CustomerID:    7,
		CustomerName:  customer,
		RecipientName: recipient,
		Status:        models.OrderStatusPending,
		PaymentMethod: models.PaymentMethodCOD,
		Total:         25990000,
		CreatedAt:     placedAt,
	}
}

func decodeOrderList(t *testing.T, body []byte) []models.Order {
	t.Helper()
	var resp struct {
		Data struct {
			Orders []models.Order `json:"orders"`
			Total  int            `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, resp.Data.Total, len(resp.Data.Orders))
	return resp.Data.Orders
}

func TestGetOrdersNewestFirst(t *testing.T) {
	router := newOrderRouter(t)
	now := time.Now()
	storeOrder(t, testOrder("ORD-001", "Nguyen Van An", "Nguyen Van An", now.Add(-2*time.Hour)))
	storeOrder(t, testOrder("ORD-002", "Tran Thi Binh", "Le Minh Chau", now))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/backoffice/orders", nil))
	require.Equal(t, http.StatusOK, w.Code)

	orders := decodeOrderList(t, w.Body.Bytes())
	require.Len(t, orders, 2)
	assert.Equal(t, "ORD-002", orders[0].ID)
	assert.Equal(t, "ORD-001", orders[1].ID)
}

func TestGetOrdersSearch(t *testing.T) {
	router := newOrderRouter(t)
	now := time.Now()
	storeOrder(t, testOrder("ORD-001", "Nguyen Van An", "Nguyen Van An", now.Add(-time.Hour)))
	storeOrder(t, testOrder("ORD-002", "Tran Thi Binh", "Le Minh Chau", now))

	// Matches customer name, case-insensitive
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/backoffice/orders?q=binh", nil))
	require.Equal(t, http.StatusOK, w.Code)
	orders := decodeOrderList(t, w.Body.Bytes())
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-002", orders[0].ID)

	// Matches recipient name
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/backoffice/orders?q=chau", nil))
	require.Len(t, decodeOrderList(t, w.Body.Bytes()), 1)

	// Matches order ID
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/backoffice/orders?q=ord-001", nil))
	orders = decodeOrderList(t, w.Body.Bytes())
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-001", orders[0].ID)

	// No match
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/backoffice/orders?q=nothing", nil))
	assert.Empty(t, decodeOrderList(t, w.Body.Bytes()))
}

func TestGetOrdersSkipsCorruptEntries(t *testing.T) {
	router := newOrderRouter(t)
	storeOrder(t, testOrder("ORD-001", "Nguyen Van An", "Nguyen Van An", time.Now()))
	require.NoError(t, config.RedisClient.Set(config.Ctx, orderKeyPrefix+"ORD-BAD", "{not json", 0).Err())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/backoffice/orders", nil))
	require.Equal(t, http.StatusOK, w.Code)

	orders := decodeOrderList(t, w.Body.Bytes())
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-001", orders[0].ID)
}

func TestGetOrderByID(t *testing.T) {
	router := newOrderRouter(t)
	storeOrder(t, testOrder("ORD-001", "Nguyen Van An", "Nguyen Van An", time.Now()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/backoffice/orders/ORD-001", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Nguyen Van An", resp.Data.CustomerName)
	assert.Equal(t, models.PaymentMethodCOD, resp.Data.PaymentMethod)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/backoffice/orders/ORD-999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
