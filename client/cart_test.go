package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProduct(productID, businessID int, price float64) CartProduct {
	return CartProduct{
		ProductID:    productID,
		BusinessID:   businessID,
		BusinessName: "Test Business",
		Name:         "Test Product",
		Price:        FlexFloat(price),
		Image:        "https://example.com/p.jpg",
	}
}

func TestAddItemMergesSameProduct(t *testing.T) {
	store := NewCartStore()

	store.AddItem(testProduct(1, 10, 5.50))
	store.AddItem(testProduct(1, 10, 5.50))
	store.AddItem(testProduct(1, 10, 5.50))

	items := store.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 3, store.ItemCount())
	assert.InDelta(t, 16.50, store.CartTotal(), 0.001)
}

func TestAddItemSumsIncomingQuantities(t *testing.T) {
	store := NewCartStore()

	first := testProduct(1, 10, 5.00)
	first.Quantity = 2
	second := testProduct(1, 10, 5.00)
	second.Quantity = 3

	store.AddItem(first)
	store.AddItem(second)

	items := store.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItemSameProductDifferentBusinesses(t *testing.T) {
	store := NewCartStore()

	store.AddItem(testProduct(1, 10, 5.00))
	store.AddItem(testProduct(1, 20, 6.00))

	assert.Len(t, store.Items(), 2)
	assert.Equal(t, 1, store.ItemQuantity(1, 10))
	assert.Equal(t, 1, store.ItemQuantity(1, 20))
}

func TestAddItemSelectsBusiness(t *testing.T) {
	store := NewCartStore()

	store.AddItem(testProduct(1, 10, 5.00))
	assert.Equal(t, 10, store.SelectedBusinessID())

	store.AddItem(testProduct(2, 20, 3.00))
	assert.Equal(t, 20, store.SelectedBusinessID())
}

func TestRemoveItemDecrementsThenDeletes(t *testing.T) {
	store := NewCartStore()

	store.AddItem(testProduct(1, 10, 5.00))
	store.AddItem(testProduct(1, 10, 5.00))

	store.RemoveItem(1, 10)
	assert.Equal(t, 1, store.ItemQuantity(1, 10))

	store.RemoveItem(1, 10)
	assert.Equal(t, 0, store.ItemQuantity(1, 10))
	assert.Empty(t, store.Items())
}

func TestRemoveItemDefaultsToSelectedBusiness(t *testing.T) {
	store := NewCartStore()

	store.AddItem(testProduct(1, 10, 5.00))
	store.RemoveItem(1)

	assert.Empty(t, store.Items())
}

func TestUpdateQuantity(t *testing.T) {
	store := NewCartStore()
	store.AddItem(testProduct(1, 10, 5.00))

	store.UpdateQuantity(1, 7, 10)
	assert.Equal(t, 7, store.ItemQuantity(1, 10))

	store.UpdateQuantity(1, 0, 10)
	assert.Empty(t, store.Items())
}

func TestUpdateQuantityNegativeRemoves(t *testing.T) {
	store := NewCartStore()
	store.AddItem(testProduct(1, 10, 5.00))

	store.UpdateQuantity(1, -1, 10)
	assert.Empty(t, store.Items())
}

func TestClearBusinessCartKeepsOtherBusinesses(t *testing.T) {
	store := NewCartStore()

	store.AddItem(testProduct(1, 10, 5.00))
	store.AddItem(testProduct(2, 20, 3.00))
	store.AddCustomOrder(CustomOrderDraft{BusinessID: 10, Description: "engraved mug"})
	store.AddCustomOrder(CustomOrderDraft{BusinessID: 20, Description: "birthday cake"})
	store.SetSelectedBusiness(10)

	store.ClearBusinessCart(10)

	assert.Empty(t, store.ItemsForBusiness(10))
	assert.Len(t, store.ItemsForBusiness(20), 1)
	assert.Empty(t, store.CustomOrdersForBusiness(10))
	assert.Len(t, store.CustomOrdersForBusiness(20), 1)
	assert.Equal(t, 0, store.SelectedBusinessID())
}

func TestClearBusinessCartKeepsUnrelatedSelection(t *testing.T) {
	store := NewCartStore()

	store.AddItem(testProduct(1, 10, 5.00))
	store.AddItem(testProduct(2, 20, 3.00))
	store.SetSelectedBusiness(20)

	store.ClearBusinessCart(10)

	assert.Equal(t, 20, store.SelectedBusinessID())
}

func TestClearCartResetsEverything(t *testing.T) {
	store := NewCartStore()

	store.AddItem(testProduct(1, 10, 5.00))
	store.AddCustomOrder(CustomOrderDraft{BusinessID: 10, Description: "custom sign"})

	store.ClearCart()

	assert.Empty(t, store.Items())
	assert.Empty(t, store.CustomOrders())
	assert.Equal(t, 0, store.SelectedBusinessID())
}

func TestBusinessCartsGrouping(t *testing.T) {
	store := NewCartStore()

	first := testProduct(1, 10, 5.00)
	first.BusinessName = "Bakery"
	second := testProduct(2, 20, 3.00)
	second.BusinessName = "Florist"

	store.AddItem(first)
	store.AddItem(first)
	store.AddItem(second)

	carts := store.BusinessCarts()
	assert.Len(t, carts, 2)
	assert.Equal(t, "Bakery", carts[0].BusinessName)
	assert.Equal(t, 2, carts[0].ItemCount)
	assert.InDelta(t, 10.00, carts[0].Total, 0.001)
	assert.Equal(t, "Florist", carts[1].BusinessName)
}

func TestItemQuantityUnknownProduct(t *testing.T) {
	store := NewCartStore()
	assert.Equal(t, 0, store.ItemQuantity(99, 10))
}

func TestAddCustomOrderStampsDraft(t *testing.T) {
	store := NewCartStore()

	draft := store.AddCustomOrder(CustomOrderDraft{
		BusinessID:  10,
		Description: "wooden shelf, 80cm",
		Status:      "accepted", // ignored, always starts pending
	})

	assert.Equal(t, "pending", draft.Status)
	assert.NotZero(t, draft.ID)
	assert.False(t, draft.CreatedAt.IsZero())
}

func TestUpdateCustomOrderStatusWithQuote(t *testing.T) {
	store := NewCartStore()
	draft := store.AddCustomOrder(CustomOrderDraft{BusinessID: 10, Description: "cake"})

	amount := 45.0
	store.UpdateCustomOrderStatus(draft.ID, "quoted", &amount, "three tiers")

	orders := store.CustomOrders()
	assert.Equal(t, "quoted", orders[0].Status)
	assert.Equal(t, 45.0, *orders[0].QuoteAmount)
	assert.Equal(t, "three tiers", orders[0].QuoteNote)
}

func TestFlexFloatUnmarshal(t *testing.T) {
	var payload struct {
		Price FlexFloat `json:"price"`
	}

	assert.NoError(t, json.Unmarshal([]byte(`{"price": 12.5}`), &payload))
	assert.Equal(t, FlexFloat(12.5), payload.Price)

	assert.NoError(t, json.Unmarshal([]byte(`{"price": "7.25"}`), &payload))
	assert.Equal(t, FlexFloat(7.25), payload.Price)

	assert.NoError(t, json.Unmarshal([]byte(`{"price": null}`), &payload))
	assert.Equal(t, FlexFloat(0), payload.Price)
}
