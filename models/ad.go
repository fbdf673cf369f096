package models

import "time"

type Ad struct {
	ID         int       `json:"id"`
	BusinessID int       `json:"business_id"`
	Title      string    `json:"title"`
	Image      string    `json:"image"`
	Link       string    `json:"link,omitempty"`
	Views      int       `json:"views"`
	Clicks     int       `json:"clicks"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}
