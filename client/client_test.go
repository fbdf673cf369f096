package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"local-market/models"

	"github.com/stretchr/testify/assert"
)

func TestRetryRecoversFromGatewayErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode([]models.Business{{ID: 1, Name: "Bakery"}})
	}))
	defer server.Close()

	c := newTestClient(server)
	businesses := c.FetchBusinesses("", "")

	assert.Len(t, businesses, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestRetryExhaustionReadReturnsEmpty(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := newTestClient(server)
	businesses := c.FetchBusinesses("", "")

	assert.Empty(t, businesses)
	// Initial attempt plus three retries.
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestRetrySleepsGrowLinearly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer server.Close()

	var delays []time.Duration
	c := New(server.URL)
	c.sleep = func(d time.Duration) { delays = append(delays, d) }

	c.FetchAds()

	assert.Equal(t, []time.Duration{
		1000 * time.Millisecond,
		2000 * time.Millisecond,
		3000 * time.Millisecond,
	}, delays)
}

func TestRetryExhaustionWriteReturnsError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := newTestClient(server)
	_, err := c.CreateOrder(&models.CreateOrderRequest{BusinessID: 1})

	assert.Error(t, err)
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
}

func TestClientErrorsAreNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid request"}`))
	}))
	defer server.Close()

	c := newTestClient(server)
	_, err := c.CreateOrder(&models.CreateOrderRequest{BusinessID: 1})

	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWriteSurfacesServerErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"You already have a business"}`))
	}))
	defer server.Close()

	c := newTestClient(server)
	err := c.AddFavorite(1, 2)

	assert.Error(t, err)
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "You already have a business", apiErr.Message)
}

func TestTrackOrderAbsentReturnsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Order not found"}`))
	}))
	defer server.Close()

	c := newTestClient(server)
	assert.Nil(t, c.TrackOrder("ORD-UNKNOWN-XXXX"))
}

func TestTrackOrderFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/track/ORD-ABC123-XY9Z", r.URL.Path)
		json.NewEncoder(w).Encode(models.Order{
			ID:          7,
			OrderNumber: "ORD-ABC123-XY9Z",
			Status:      "preparing",
		})
	}))
	defer server.Close()

	c := newTestClient(server)
	order := c.TrackOrder("ORD-ABC123-XY9Z")

	assert.NotNil(t, order)
	assert.Equal(t, "preparing", order.Status)
}

func TestReadDegradesWhenServerUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // transport errors from here on

	c := newTestClient(server)

	assert.Empty(t, c.FetchBusinesses("", ""))
	assert.Empty(t, c.FetchUserOrders(1))
	assert.Nil(t, c.FetchBusiness(1))
}

func TestFetchBusinessOrdersBuildsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1,2,3", r.URL.Query().Get("business_ids"))
		json.NewEncoder(w).Encode([]models.Order{})
	}))
	defer server.Close()

	c := newTestClient(server)
	c.FetchBusinessOrders([]int{1, 2, 3})
}
