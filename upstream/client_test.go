package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

func TestListProductsSendsQuery(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		_ = json.NewEncoder(w).Encode([]models.UpstreamProduct{
			{ProductID: "PH_001", ProductName: "iPhone 15"},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	list, err := client.ListProducts(context.Background(), "iphone 15")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "/buyer/products", gotPath)
	assert.Equal(t, "iphone 15", gotQuery)
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.UpstreamProduct{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.StaffListProducts(context.Background(), "tok-123", "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestLoginTranslatesBuyerRole(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok",
			"role":         "customer",
			"userId":       7,
			"username":     "an",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	resp, err := client.Login(context.Background(), "an", "secret", models.RoleBuyer)
	require.NoError(t, err)

	// buyer goes out as customer and comes back as buyer
	assert.Equal(t, "customer", gotBody["role"])
	assert.Equal(t, models.RoleBuyer, resp.Role)
	assert.Equal(t, 7, resp.UserID)
}

func TestErrorDecodedFromDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Insufficient stock"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Checkout(context.Background(), "tok", models.CheckoutPayload{})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Insufficient stock", apiErr.Message)
	assert.Equal(t, http.StatusConflict, StatusOf(err))
}

func TestErrorFallsBackToHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.ListProducts(context.Background(), "")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "HTTP 500", apiErr.Message)
}

func TestStatusOfNonAPIError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 50*time.Millisecond)
	_, err := client.ListProducts(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, StatusOf(err))
}

func TestStaffCreateProductMultipart(t *testing.T) {
	var gotFields map[string]string
	var gotFilename string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFields = map[string]string{}
		for name, vals := range r.MultipartForm.Value {
			gotFields[name] = vals[0]
		}
		if files := r.MultipartForm.File["image"]; len(files) > 0 {
			gotFilename = files[0].Filename
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.UpstreamProduct{ProductID: "PH_010", ProductName: "New Phone"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	created, err := client.StaffCreateProduct(context.Background(), "tok", models.StaffProductForm{
		ProductID:   "PH_010",
		ProductName: "New Phone",
		Brand:       "Apple",
		Price:       19990000,
		Quantity:    10,
	}, &ProductImage{Filename: "phone.jpg", Content: []byte("fake-jpeg")})
	require.NoError(t, err)

	assert.Equal(t, "PH_010", created.ProductID)
	assert.Equal(t, "New Phone", gotFields["productName"])
	assert.Equal(t, "Apple", gotFields["brand"])
	assert.Equal(t, "19990000", gotFields["price"])
	assert.Equal(t, "10", gotFields["quantity"])
	// Creation always carries the initial status
	assert.Equal(t, "Active", gotFields["status"])
	assert.Equal(t, "phone.jpg", gotFilename)
}

func TestStaffUpdateProductStatusPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	err := client.StaffUpdateProductStatus(context.Background(), "tok", "PH_001", "Deactivated")
	require.NoError(t, err)
	assert.Equal(t, "/staff/products/PH_001/update_product_status", gotPath)
	assert.Equal(t, "Deactivated", gotBody["status"])
}
