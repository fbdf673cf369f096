package models

import "time"

// SpinCode is a fixed-amount discount token won on a business's spin wheel,
// redeemable once at checkout against that business.
type SpinCode struct {
	ID             int       `json:"id"`
	Code           string    `json:"code"`
	BusinessID     int       `json:"business_id"`
	BusinessName   string    `json:"business_name,omitempty"`
	DiscountType   string    `json:"discount_type"`
	DiscountAmount float64   `json:"discount_amount"`
	Used           bool      `json:"used"`
	UserID         *int      `json:"user_id,omitempty"`
	DeviceID       *string   `json:"device_id,omitempty"`
	ExpiresAt      time.Time `json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}
