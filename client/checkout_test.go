package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"local-market/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotalsDelivery(t *testing.T) {
	items := []CartItem{
		{Price: 10.00, Quantity: 2},
		{Price: 3.50, Quantity: 1},
	}

	totals := ComputeTotals(items, DeliveryTypeDelivery, 2.00, 5.00)

	assert.InDelta(t, 23.50, totals.Subtotal, 0.001)
	assert.InDelta(t, 2.00, totals.DeliveryFee, 0.001)
	assert.InDelta(t, 5.00, totals.Discount, 0.001)
	assert.InDelta(t, 20.50, totals.Total, 0.001)
}

func TestComputeTotalsPickupSkipsFee(t *testing.T) {
	items := []CartItem{{Price: 10.00, Quantity: 1}}

	totals := ComputeTotals(items, DeliveryTypePickup, 2.00, 0)

	assert.InDelta(t, 0, totals.DeliveryFee, 0.001)
	assert.InDelta(t, 10.00, totals.Total, 0.001)
}

func TestComputeTotalsDiscountCappedAtSubtotal(t *testing.T) {
	items := []CartItem{
		{Price: 10.00, Quantity: 2},
		{Price: 5.00, Quantity: 3},
	}

	totals := ComputeTotals(items, DeliveryTypeDelivery, 2.00, 50.00)

	assert.InDelta(t, 35.00, totals.Subtotal, 0.001)
	assert.InDelta(t, 35.00, totals.Discount, 0.001)
	// The discount is capped at the subtotal, so the fee survives.
	assert.InDelta(t, 2.00, totals.Total, 0.001)
}

func TestComputeTotalsNegativeDiscountIgnored(t *testing.T) {
	items := []CartItem{{Price: 10.00, Quantity: 1}}

	totals := ComputeTotals(items, DeliveryTypePickup, 0, -5)

	assert.InDelta(t, 0, totals.Discount, 0.001)
	assert.InDelta(t, 10.00, totals.Total, 0.001)
}

func TestAvailablePaymentMethodsDelivery(t *testing.T) {
	methods := AvailablePaymentMethods(DeliveryTypeDelivery, nil)
	assert.Equal(t, []string{"gpay", "paytm", "card", "cod"}, methods)
}

func TestAvailablePaymentMethodsPickup(t *testing.T) {
	methods := AvailablePaymentMethods(DeliveryTypePickup, nil)
	assert.Equal(t, []string{"gpay", "paytm", "card", "cop"}, methods)
}

func TestAvailablePaymentMethodsIntersectsAccepted(t *testing.T) {
	methods := AvailablePaymentMethods(DeliveryTypeDelivery, []string{"gpay", "cod", "cop"})
	assert.Equal(t, []string{"gpay", "cod"}, methods)
}

func TestValidateCheckoutInfoOrder(t *testing.T) {
	info := CheckoutInfo{}
	assert.ErrorIs(t, ValidateCheckoutInfo(info, DeliveryTypeDelivery), ErrNameRequired)

	info.Name = "Asha"
	assert.ErrorIs(t, ValidateCheckoutInfo(info, DeliveryTypeDelivery), ErrPhoneRequired)

	info.Phone = "9876543210"
	assert.ErrorIs(t, ValidateCheckoutInfo(info, DeliveryTypeDelivery), ErrEmailRequired)

	info.Email = "   "
	assert.ErrorIs(t, ValidateCheckoutInfo(info, DeliveryTypeDelivery), ErrEmailRequired)

	info.Email = "asha@example.com"
	assert.ErrorIs(t, ValidateCheckoutInfo(info, DeliveryTypeDelivery), ErrAddressRequired)

	info.Address = "12 Main St"
	assert.NoError(t, ValidateCheckoutInfo(info, DeliveryTypeDelivery))
}

func TestValidateCheckoutInfoAcceptsAnyNonEmptyEmail(t *testing.T) {
	info := CheckoutInfo{Name: "Asha", Phone: "9876543210", Email: "myemail"}
	assert.NoError(t, ValidateCheckoutInfo(info, DeliveryTypePickup))
}

func TestValidateCheckoutInfoPickupSkipsAddress(t *testing.T) {
	info := CheckoutInfo{Name: "Asha", Phone: "9876543210", Email: "asha@example.com"}
	assert.NoError(t, ValidateCheckoutInfo(info, DeliveryTypePickup))
}

func newTestClient(server *httptest.Server) *Client {
	c := New(server.URL)
	c.sleep = func(time.Duration) {}
	return c
}

func TestSubmitClearsOnlyThatBusinessCart(t *testing.T) {
	var markUsedCalled bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/orders":
			var req models.CreateOrderRequest
			json.NewDecoder(r.Body).Decode(&req)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(models.Order{
				ID:          1,
				OrderNumber: req.OrderNumber,
				BusinessID:  req.BusinessID,
				Status:      "pending",
			})
		case "/api/spin-codes/use":
			markUsedCalled = true
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"message":"Code marked as used"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	store := NewCartStore()
	store.AddItem(testProduct(1, 10, 12.00))
	store.AddItem(testProduct(2, 20, 4.00))

	ck := NewCheckout(newTestClient(server), store)

	code := "SPIN-AB12CD34"
	order, err := ck.Submit(SubmitParams{
		BusinessID:     10,
		DeliveryType:   DeliveryTypePickup,
		Info:           CheckoutInfo{Name: "Asha", Phone: "9876543210", Email: "asha@example.com"},
		PaymentMethod:  "gpay",
		DiscountCode:   &code,
		DiscountAmount: 2.00,
	})

	assert.NoError(t, err)
	assert.NotNil(t, order)
	assert.NotEmpty(t, order.OrderNumber)
	assert.Empty(t, store.ItemsForBusiness(10))
	assert.Len(t, store.ItemsForBusiness(20), 1)
	assert.True(t, markUsedCalled)
}

func TestSubmitFailureLeavesCartIntact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Business not found"}`))
	}))
	defer server.Close()

	store := NewCartStore()
	store.AddItem(testProduct(1, 10, 12.00))

	ck := NewCheckout(newTestClient(server), store)

	_, err := ck.Submit(SubmitParams{
		BusinessID:    10,
		DeliveryType:  DeliveryTypePickup,
		Info:          CheckoutInfo{Name: "Asha", Phone: "9876543210", Email: "asha@example.com"},
		PaymentMethod: "gpay",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Business not found")
	assert.Len(t, store.ItemsForBusiness(10), 1)
}

func TestSubmitValidationBlocksRequest(t *testing.T) {
	requestCount := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
	}))
	defer server.Close()

	store := NewCartStore()
	store.AddItem(testProduct(1, 10, 12.00))

	ck := NewCheckout(newTestClient(server), store)

	_, err := ck.Submit(SubmitParams{
		BusinessID:    10,
		DeliveryType:  DeliveryTypeDelivery,
		Info:          CheckoutInfo{Name: "Asha", Phone: "9876543210", Email: "asha@example.com"},
		PaymentMethod: "cod",
	})

	assert.ErrorIs(t, err, ErrAddressRequired)
	assert.Equal(t, 0, requestCount)
}

func TestSubmitEmptyCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ck := NewCheckout(newTestClient(server), NewCartStore())

	_, err := ck.Submit(SubmitParams{
		BusinessID:    10,
		DeliveryType:  DeliveryTypePickup,
		Info:          CheckoutInfo{Name: "Asha", Phone: "9876543210", Email: "asha@example.com"},
		PaymentMethod: "gpay",
	})

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSpinCodeIsFixedAmount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/spin-codes/spin", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.SpinCode{
			Code:           "SPIN-AB12CD34",
			BusinessID:     10,
			DiscountType:   "fixed",
			DiscountAmount: 20,
		})
	}))
	defer server.Close()

	c := newTestClient(server)
	sc, err := c.Spin(&models.SpinRequest{BusinessID: 10})
	assert.NoError(t, err)
	assert.Equal(t, "fixed", sc.DiscountType)

	// The won amount is rupees off the subtotal, never a percentage.
	items := []CartItem{{Price: 15.00, Quantity: 1}}
	totals := ComputeTotals(items, DeliveryTypePickup, 0, sc.DiscountAmount)
	assert.InDelta(t, 15.00, totals.Discount, 0.001)
	assert.InDelta(t, 0, totals.Total, 0.001)
}

func TestApplyDiscount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/spin-codes/validate", r.URL.Path)
		json.NewEncoder(w).Encode(models.SpinCode{
			Code:           "SPIN-AB12CD34",
			BusinessID:     10,
			DiscountAmount: 15,
		})
	}))
	defer server.Close()

	ck := NewCheckout(newTestClient(server), NewCartStore())

	amount, err := ck.ApplyDiscount("SPIN-AB12CD34", 10)
	assert.NoError(t, err)
	assert.InDelta(t, 15, amount, 0.001)
}
