package client

import (
	"errors"
	"strings"

	"local-market/models"
	"local-market/utils"
)

const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

// Online methods work for any delivery type; cash methods are tied to how the
// order is handed over.
var paymentMethods = []struct {
	id           string
	deliveryOnly bool
	pickupOnly   bool
}{
	{id: "gpay"},
	{id: "paytm"},
	{id: "card"},
	{id: "cod", deliveryOnly: true},
	{id: "cop", pickupOnly: true},
}

// Totals is the checkout math for one business's cart.
type Totals struct {
	Subtotal    float64
	DeliveryFee float64
	Discount    float64
	Total       float64
}

// ComputeTotals derives the order totals: the delivery fee applies only to
// delivery orders, and the discount never exceeds the subtotal.
func ComputeTotals(items []CartItem, deliveryType string, deliveryFee, discount float64) Totals {
	t := Totals{Subtotal: totalOf(items)}

	if deliveryType == DeliveryTypeDelivery {
		t.DeliveryFee = deliveryFee
	}

	if discount > t.Subtotal {
		discount = t.Subtotal
	}
	if discount < 0 {
		discount = 0
	}
	t.Discount = discount

	t.Total = t.Subtotal + t.DeliveryFee - t.Discount
	return t
}

// AvailablePaymentMethods filters the fixed method list by delivery type and
// intersects it with what the business accepts. A business with no configured
// methods accepts all of them.
func AvailablePaymentMethods(deliveryType string, accepted []string) []string {
	acceptedSet := map[string]bool{}
	for _, m := range accepted {
		acceptedSet[m] = true
	}

	methods := []string{}
	for _, m := range paymentMethods {
		if m.deliveryOnly && deliveryType != DeliveryTypeDelivery {
			continue
		}
		if m.pickupOnly && deliveryType != DeliveryTypePickup {
			continue
		}
		if len(accepted) > 0 && !acceptedSet[m.id] {
			continue
		}
		methods = append(methods, m.id)
	}
	return methods
}

// CheckoutInfo is the customer-entered form data.
type CheckoutInfo struct {
	Name    string
	Phone   string
	Email   string
	Address string
}

var (
	ErrNameRequired    = errors.New("name is required")
	ErrPhoneRequired   = errors.New("phone is required")
	ErrEmailRequired   = errors.New("email is required")
	ErrAddressRequired = errors.New("delivery address is required")
	ErrEmptyCart       = errors.New("cart is empty")
)

// ValidateCheckoutInfo checks the form in fixed order: name, phone, email,
// then address for delivery orders. The first failure is returned. Fields
// only need to be non-empty; the email format is not inspected.
func ValidateCheckoutInfo(info CheckoutInfo, deliveryType string) error {
	if strings.TrimSpace(info.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(info.Phone) == "" {
		return ErrPhoneRequired
	}
	if strings.TrimSpace(info.Email) == "" {
		return ErrEmailRequired
	}
	if deliveryType == DeliveryTypeDelivery && strings.TrimSpace(info.Address) == "" {
		return ErrAddressRequired
	}
	return nil
}

// Checkout drives order submission against one cart store.
type Checkout struct {
	client *Client
	store  *CartStore
}

func NewCheckout(client *Client, store *CartStore) *Checkout {
	return &Checkout{client: client, store: store}
}

// SubmitParams is everything the checkout screen collects.
type SubmitParams struct {
	BusinessID     int
	DeliveryType   string
	Info           CheckoutInfo
	PaymentMethod  string
	DeliveryFee    float64
	DiscountCode   *string
	DiscountAmount float64
	UserID         *int
	DeviceID       *string
	Notes          *string
}

// Submit validates the form, computes totals, posts the order and clears the
// business's cart on success. On failure the cart is left untouched so the
// customer can retry.
func (ck *Checkout) Submit(p SubmitParams) (*models.Order, error) {
	if err := ValidateCheckoutInfo(p.Info, p.DeliveryType); err != nil {
		return nil, err
	}

	items := ck.store.ItemsForBusiness(p.BusinessID)
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	totals := ComputeTotals(items, p.DeliveryType, p.DeliveryFee, p.DiscountAmount)

	snapshots := make([]models.OrderItemInput, len(items))
	for i, item := range items {
		snapshots[i] = models.OrderItemInput{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Image:       item.Image,
		}
	}

	req := &models.CreateOrderRequest{
		UserID:         p.UserID,
		DeviceID:       p.DeviceID,
		BusinessID:     p.BusinessID,
		OrderNumber:    utils.GenerateOrderNumber(),
		DeliveryType:   p.DeliveryType,
		CustomerName:   p.Info.Name,
		CustomerPhone:  p.Info.Phone,
		CustomerEmail:  p.Info.Email,
		PaymentMethod:  p.PaymentMethod,
		Subtotal:       totals.Subtotal,
		DeliveryFee:    totals.DeliveryFee,
		DiscountCode:   p.DiscountCode,
		DiscountAmount: totals.Discount,
		Total:          totals.Total,
		Notes:          p.Notes,
		Items:          snapshots,
	}
	if p.DeliveryType == DeliveryTypeDelivery {
		addr := p.Info.Address
		req.DeliveryAddress = &addr
	}

	order, err := ck.client.CreateOrder(req)
	if err != nil {
		return nil, err
	}

	ck.store.ClearBusinessCart(p.BusinessID)

	// Redeeming the code is best effort; the order already exists.
	if p.DiscountCode != nil && *p.DiscountCode != "" {
		if err := ck.client.MarkSpinCodeUsed(*p.DiscountCode); err != nil {
			ck.client.logger.Debug().Err(err).Str("code", *p.DiscountCode).
				Msg("failed to mark discount code used")
		}
	}

	return order, nil
}

// ApplyDiscount validates a code against the business and returns the fixed
// discount amount it grants.
func (ck *Checkout) ApplyDiscount(code string, businessID int) (float64, error) {
	sc, err := ck.client.ValidateSpinCode(code, businessID)
	if err != nil {
		return 0, err
	}
	return sc.DiscountAmount, nil
}
