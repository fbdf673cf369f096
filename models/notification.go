package models

import "time"

type Notification struct {
	ID         int       `json:"id"`
	UserID     *int      `json:"user_id,omitempty"`
	BusinessID *int      `json:"business_id,omitempty"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Type       string    `json:"type"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type Favorite struct {
	ID         int       `json:"id"`
	UserID     int       `json:"user_id"`
	BusinessID int       `json:"business_id"`
	CreatedAt  time.Time `json:"created_at"`
}
