package models

import "time"

// OrderMode controls which purchase flows a storefront accepts.
// "catalog" = product cart only, "custom" = shopping-list requests only.
const (
	OrderModeCatalog = "catalog"
	OrderModeCustom  = "custom"
	OrderModeBoth    = "both"
)

type Business struct {
	ID                  int       `json:"id"`
	UserID              int       `json:"user_id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Image               string    `json:"image,omitempty"`
	Type                string    `json:"type"`
	Phone               string    `json:"phone"`
	Email               string    `json:"email,omitempty"`
	Address             string    `json:"address"`
	Location            string    `json:"location,omitempty"`
	Categories          []string  `json:"categories"`
	PaymentMethods      []string  `json:"payment_methods"`
	DeliveryFee         float64   `json:"delivery_fee"`
	MinOrder            float64   `json:"min_order"`
	DeliveryTime        string    `json:"delivery_time,omitempty"`
	OrderMode           string    `json:"order_mode"`
	Status              string    `json:"status"`
	CustomOrdersEnabled bool      `json:"custom_orders_enabled"`
	DeliveryEnabled     bool      `json:"delivery_enabled"`
	PickupEnabled       bool      `json:"pickup_enabled"`
	SpinWheelEnabled    bool      `json:"spin_wheel_enabled"`
	SpinDiscounts       []float64 `json:"spin_discounts,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
