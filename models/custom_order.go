package models

import "time"

// CustomOrder is a free-form shopping request not tied to catalog products.
// The business prices it later via a quote.
type CustomOrder struct {
	ID                 int       `json:"id"`
	BusinessID         int       `json:"business_id"`
	UserID             *int      `json:"user_id,omitempty"`
	DeviceID           *string   `json:"device_id,omitempty"`
	CustomerName       string    `json:"customer_name"`
	CustomerPhone      string    `json:"customer_phone"`
	Description        string    `json:"description"`
	ImageURL           *string   `json:"image_url,omitempty"`
	DeliveryPreference string    `json:"delivery_preference"`
	Status             string    `json:"status"`
	QuoteAmount        *float64  `json:"quote_amount,omitempty"`
	QuoteNote          *string   `json:"quote_note,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
