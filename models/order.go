package models

import "time"

// Order statuses a business owner may set. There is no enforced transition
// graph; any status can follow any other.
var OrderStatuses = []string{
	"pending", "confirmed", "preparing", "ready", "out_for_delivery", "delivered", "cancelled",
}

type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"order_number"`
	UserID          *int        `json:"user_id,omitempty"`
	DeviceID        *string     `json:"device_id,omitempty"`
	BusinessID      int         `json:"business_id"`
	BusinessOwnerID int         `json:"business_owner_id,omitempty"`
	BusinessName    string      `json:"business_name,omitempty"`
	DeliveryType    string      `json:"delivery_type"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	CustomerEmail   string      `json:"customer_email"`
	DeliveryAddress *string     `json:"delivery_address,omitempty"`
	PaymentMethod   string      `json:"payment_method"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"delivery_fee"`
	DiscountCode    *string     `json:"discount_code,omitempty"`
	DiscountAmount  float64     `json:"discount_amount"`
	Total           float64     `json:"total"`
	Notes           *string     `json:"notes,omitempty"`
	Status          string      `json:"status"`
	TrackingURL     *string     `json:"tracking_url,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is a snapshot of a product at order time. Name and price are
// denormalized and never change after creation, even if the product does.
type OrderItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
}
