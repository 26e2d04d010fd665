package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthZoneai/benjour-customer-sub000/internal/domain"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, staticToken(token), server.Client())
}

// ============================================
// Request Decoration Tests
// ============================================

func TestClient_AttachesBearerToken(t *testing.T) {
	c := newTestClient(t, "tok-abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.WriteHeader(http.StatusOK)
	})

	err := c.ClearCart(context.Background())

	require.NoError(t, err)
}

func TestClient_EmptyTokenGoesUnauthenticated(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"token":"issued","role":"USER","user_name":"ken"}`))
	})

	result, err := c.Login(context.Background(), "ken@example.com", "secret12")

	require.NoError(t, err)
	assert.Equal(t, "issued", result.Token)
}

// ============================================
// Error Mapping Tests
// ============================================

func TestClient_NonSuccessBecomesAPIError(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "already in cart"})
	})

	err := c.AddCartItem(context.Background(), 1, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "already in cart", apiErr.Message)
}

func TestClient_TransportFailureBecomesAPIError(t *testing.T) {
	c := New("http://127.0.0.1:1", staticToken("tok"), nil)

	err := c.ClearCart(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRemote)
}

func TestClient_ErrorBodyFallsBackToStatusText(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "plain text, not json", http.StatusInternalServerError)
	})

	err := c.ClearCart(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

// ============================================
// Mapping Tests
// ============================================

func TestClient_FetchCart_MapsSnapshot(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		w.Write([]byte(`{"items":[{"id":1,"name":"Apple","price":2.5,"image":"x","quantity":2}]}`))
	})

	items, err := c.FetchCart(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "Apple", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].Price.Equal(decimal.NewFromFloat(2.5)))
}

func TestClient_FetchCart_MissingPriceIsMappingError(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[{"id":1,"name":"Apple","quantity":2}]}`))
	})

	_, err := c.FetchCart(context.Background())

	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "cart item", mapErr.Resource)
	assert.Equal(t, "price", mapErr.Field)
}

func TestClient_ListOrdersByStatus(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "placed", r.URL.Query().Get("status"))
		w.Write([]byte(`[{"id":7,"user_id":"u1","total":12.5,"status":"placed","items":[{"product_id":1,"quantity":2,"price":6.25}]}]`))
	})

	orders, err := c.ListOrdersByStatus(context.Background(), domain.StatusPlaced)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(7), orders[0].ID)
	assert.Equal(t, domain.StatusPlaced, orders[0].Status)
	require.Len(t, orders[0].Items, 1)
}

func TestClient_ListOrdersByStatus_UnknownStatusIsMappingError(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":7,"user_id":"u1","total":1.0,"status":"teleported","items":[]}]`))
	})

	_, err := c.ListOrdersByStatus(context.Background(), domain.StatusPlaced)

	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "status", mapErr.Field)
}

func TestClient_UpdateOrderStatus_RejectsUnknownStatus(t *testing.T) {
	called := false
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	err := c.UpdateOrderStatus(context.Background(), 7, domain.OrderStatus("teleported"))

	assert.ErrorIs(t, err, domain.ErrUnknownStatus)
	assert.False(t, called)
}

func TestClient_Login_MissingTokenIsMappingError(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"role":"USER"}`))
	})

	_, err := c.Login(context.Background(), "a@b.c", "secret12")

	var mapErr *MappingError
	require.ErrorAs(t, err, &mapErr)
	assert.Equal(t, "auth", mapErr.Resource)
}

// ============================================
// Multipart Upload Tests
// ============================================

func TestClient_CreateItem_SendsMultipart(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/grocery/items", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Gala Apples", r.FormValue("name"))
		assert.Equal(t, "3.20", r.FormValue("price"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "apples.jpg", header.Filename)

		w.Write([]byte(`{"id":11,"name":"Gala Apples","price":3.2,"image":"/img/apples.jpg","domain":"grocery"}`))
	})

	product, err := c.CreateItem(
		context.Background(),
		domain.DomainGrocery,
		ItemParams{Name: "Gala Apples", Price: "3.20", CategoryID: 4},
		"apples.jpg",
		strings.NewReader("fake image bytes"),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(11), product.ID)
	assert.Equal(t, domain.DomainGrocery, product.Domain)
}
