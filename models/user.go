package models

import "time"

type User struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          *string   `json:"phone,omitempty"`
	Password       string    `json:"-"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	IsBusinessUser bool      `json:"is_business_user"`
	LoginMethod    string    `json:"login_method"`
	PushToken      *string   `json:"push_token,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Address struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Label     string    `json:"label"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone,omitempty"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
